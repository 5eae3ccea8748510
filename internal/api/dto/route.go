package dto

type DirectionStepResponse struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Instruction     string  `json:"instruction"`
	Name            string  `json:"name"`
	Maneuver        string  `json:"maneuver"`
}

type WaypointResponse struct {
	Kind             string                  `json:"kind"`
	Lat              float64                 `json:"lat"`
	Lon              float64                 `json:"lon"`
	OrderID          int                     `json:"order_id"`
	Step             int                     `json:"step"`
	DistanceKm       float64                 `json:"distance_km"`
	EstimatedMinutes float64                 `json:"estimated_minutes"`
	Instruction      string                  `json:"instruction"`
	DirectionSteps   []DirectionStepResponse `json:"direction_steps,omitempty"`
}

type VehicleRouteResponse struct {
	Vehicle   VehicleResponse    `json:"vehicle"`
	Waypoints []WaypointResponse `json:"waypoints"`
}

type FleetRoutesResponse struct {
	Routes map[int]VehicleRouteResponse `json:"routes"`
}

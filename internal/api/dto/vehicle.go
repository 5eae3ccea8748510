package dto

type VehicleResponse struct {
	VehicleID int     `json:"vehicle_id"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	MaxWeight float64 `json:"max_weight"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

type UpdateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

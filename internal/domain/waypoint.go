package domain

// Kind of stop a waypoint represents. The synthetic return-to-base stop is
// emitted as a delivery waypoint with OrderID 0.
const (
	WaypointPickup   = "pickup"
	WaypointDelivery = "delivery"
)

// One fine-grained turn instruction supplied by the directions provider.
type DirectionStep struct {
	DistanceMeters  float64
	DurationSeconds float64
	Instruction     string
	Name            string
	Maneuver        string
}

// Waypoint is one stop in an enriched route.
//
// Step numbers are 1-based and strictly increasing within a route.
// DirectionSteps is empty when the leg was estimated locally instead of
// fetched from the directions provider.
type Waypoint struct {
	Kind             string
	Location         Coordinate
	OrderID          int
	Step             int
	DistanceKm       float64
	EstimatedMinutes float64
	Instruction      string
	DirectionSteps   []DirectionStep
}

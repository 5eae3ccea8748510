package domain

// Operability status of a vehicle. The routing core accepts whatever set the
// caller passes in; filtering to available vehicles is the caller's job.
const (
	VehicleAvailable   = "available"
	VehicleBusy        = "busy"
	VehicleMaintenance = "maintenance"
)

// Snapshot of a delivery vehicle owned by the fleet collaborator.
// MaxWeight is the maximum carryable weight in kilograms.
type Vehicle struct {
	ID        int
	Type      string
	MaxWeight float64
	Location  Coordinate
	Status    string
}

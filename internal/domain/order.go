package domain

// Lifecycle status of an order. Only pending orders enter the routing core.
const (
	OrderPending    = "pending"
	OrderInProgress = "in_progress"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Snapshot of a delivery order owned by the order collaborator.
// Weight is in kilograms and must be positive.
type Order struct {
	ID                int
	Weight            float64
	Pickup            Coordinate
	Delivery          Coordinate
	Status            string
	AssignedVehicleID int
}

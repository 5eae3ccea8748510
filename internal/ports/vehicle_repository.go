package ports

import (
	"context"

	"fleet-dispatch-service/internal/domain"
)

// Port: a boundary for retrieving Vehicle snapshots from a data source.
type VehicleRepository interface {
	// Retrieve all vehicles, optionally filtered by status (empty = all).
	ListVehicles(ctx context.Context, status string) ([]*domain.Vehicle, error)
	// Retrieve a single vehicle by id.
	GetVehicle(ctx context.Context, id int) (*domain.Vehicle, error)
	// Update a vehicle's current location.
	UpdateVehicleLocation(ctx context.Context, id int, loc domain.Coordinate) error
}

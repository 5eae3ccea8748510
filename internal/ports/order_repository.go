package ports

import (
	"context"

	"fleet-dispatch-service/internal/domain"
)

// Port: a boundary for retrieving Order snapshots from a data source.
type OrderRepository interface {
	// Retrieve all orders, optionally filtered by status (empty = all).
	ListOrders(ctx context.Context, status string) ([]*domain.Order, error)
	// Retrieve a single order by id.
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	// Update an order's status and, when vehicleID > 0, its assignment.
	UpdateOrderStatus(ctx context.Context, id int, status string, vehicleID int) error
}

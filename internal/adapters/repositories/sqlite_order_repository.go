package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleet-dispatch-service/internal/domain"
)

// SQL-backed implementation of the OrderRepository port.
type SQLOrderRepository struct{ DB *sql.DB }

func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{DB: db}
}

// Return all orders, optionally filtered by status.
func (s *SQLOrderRepository) ListOrders(ctx context.Context, status string) ([]*domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `
	SELECT order_id, status, weight, pickup_lat, pickup_lon, delivery_lat, delivery_lon, assigned_vehicle_id
	FROM orders
	`
	args := []any{}
	if status != "" {
		query += "WHERE status = ?\n"
		args = append(args, status)
	}
	query += "ORDER BY order_id;"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, 64)
	for rows.Next() {
		o := &domain.Order{}
		err := rows.Scan(
			&o.ID, &o.Status, &o.Weight,
			&o.Pickup.Lat, &o.Pickup.Lon,
			&o.Delivery.Lat, &o.Delivery.Lon,
			&o.AssignedVehicleID,
		)
		if err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

// Return a single order by id.
func (s *SQLOrderRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `
	SELECT order_id, status, weight, pickup_lat, pickup_lon, delivery_lat, delivery_lon, assigned_vehicle_id
	FROM orders
	WHERE order_id = ?;
	`

	o := &domain.Order{}
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.Status, &o.Weight,
		&o.Pickup.Lat, &o.Pickup.Lon,
		&o.Delivery.Lat, &o.Delivery.Lon,
		&o.AssignedVehicleID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}

	return o, nil
}

// Update an order's status and, when vehicleID > 0, its assignment.
func (s *SQLOrderRepository) UpdateOrderStatus(ctx context.Context, id int, status string, vehicleID int) error {
	if s.DB == nil {
		return errors.New("order repository: DB is nil")
	}

	var (
		res sql.Result
		err error
	)
	if vehicleID > 0 {
		res, err = s.DB.ExecContext(ctx, `
		UPDATE orders SET status = ?, assigned_vehicle_id = ? WHERE order_id = ?;
		`, status, vehicleID, id)
	} else {
		res, err = s.DB.ExecContext(ctx, `
		UPDATE orders SET status = ? WHERE order_id = ?;
		`, status, id)
	}
	if err != nil {
		return fmt.Errorf("update order %d status: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order %d status: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update order %d status: %w", id, ErrNotFound)
	}

	return nil
}

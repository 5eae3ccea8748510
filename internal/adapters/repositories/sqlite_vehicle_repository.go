package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleet-dispatch-service/internal/domain"
)

// SQL-backed implementation of the VehicleRepository port.
type SQLVehicleRepository struct{ DB *sql.DB }

func NewSQLVehicleRepository(db *sql.DB) *SQLVehicleRepository {
	return &SQLVehicleRepository{DB: db}
}

// Return all vehicles, optionally filtered by status.
func (s *SQLVehicleRepository) ListVehicles(ctx context.Context, status string) ([]*domain.Vehicle, error) {
	if s.DB == nil {
		return nil, errors.New("vehicle repository: DB is nil")
	}

	query := `
	SELECT vehicle_id, type, status, max_weight, lat, lon
	FROM vehicles
	`
	args := []any{}
	if status != "" {
		query += "WHERE status = ?\n"
		args = append(args, status)
	}
	query += "ORDER BY vehicle_id;"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicles table: %w", err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0, 16)
	for rows.Next() {
		v := &domain.Vehicle{}
		if err := rows.Scan(&v.ID, &v.Type, &v.Status, &v.MaxWeight, &v.Location.Lat, &v.Location.Lon); err != nil {
			return nil, fmt.Errorf("list vehicles: scan row: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: row iteration: %w", err)
	}

	return vehicles, nil
}

// Return a single vehicle by id.
func (s *SQLVehicleRepository) GetVehicle(ctx context.Context, id int) (*domain.Vehicle, error) {
	if s.DB == nil {
		return nil, errors.New("vehicle repository: DB is nil")
	}

	query := `
	SELECT vehicle_id, type, status, max_weight, lat, lon
	FROM vehicles
	WHERE vehicle_id = ?;
	`

	v := &domain.Vehicle{}
	err := s.DB.QueryRowContext(ctx, query, id).
		Scan(&v.ID, &v.Type, &v.Status, &v.MaxWeight, &v.Location.Lat, &v.Location.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get vehicle %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get vehicle %d: %w", id, err)
	}

	return v, nil
}

// Update a vehicle's current location.
func (s *SQLVehicleRepository) UpdateVehicleLocation(ctx context.Context, id int, loc domain.Coordinate) error {
	if s.DB == nil {
		return errors.New("vehicle repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `
	UPDATE vehicles SET lat = ?, lon = ? WHERE vehicle_id = ?;
	`, loc.Lat, loc.Lon, id)
	if err != nil {
		return fmt.Errorf("update vehicle %d location: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update vehicle %d location: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update vehicle %d location: %w", id, ErrNotFound)
	}

	return nil
}

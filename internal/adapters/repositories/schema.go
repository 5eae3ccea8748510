package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id INTEGER PRIMARY KEY,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		max_weight REAL NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id INTEGER PRIMARY KEY,
		status TEXT NOT NULL,
		weight REAL NOT NULL,
		pickup_lat REAL NOT NULL,
		pickup_lon REAL NOT NULL,
		delivery_lat REAL NOT NULL,
		delivery_lon REAL NOT NULL,
		assigned_vehicle_id INTEGER NOT NULL DEFAULT 0
	);
	`

	createOrderStatusIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
	`

	statements := []string{
		createVehiclesQuery,
		createOrdersQuery,
		createOrderStatusIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type VehicleSeed struct {
	VehicleID int     `json:"vehicle_id"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	MaxWeight float64 `json:"max_weight"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

type OrderSeed struct {
	OrderID     int     `json:"order_id"`
	Status      string  `json:"status"`
	Weight      float64 `json:"weight"`
	PickupLat   float64 `json:"pickup_lat"`
	PickupLon   float64 `json:"pickup_lon"`
	DeliveryLat float64 `json:"delivery_lat"`
	DeliveryLon float64 `json:"delivery_lon"`
}

type FleetSeed struct {
	Vehicles []VehicleSeed `json:"vehicles"`
	Orders   []OrderSeed   `json:"orders"`
}

// Populate the database with fleet and order data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed fleet: read %q: %w", jsonPath, err)
	}

	var data FleetSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed fleet: parse json: %w", err)
	}

	for i, v := range data.Vehicles {
		if v.VehicleID <= 0 {
			return fmt.Errorf("seed fleet: invalid vehicle_id at index %d: %d", i, v.VehicleID)
		}
		if v.MaxWeight <= 0 {
			return fmt.Errorf("seed fleet: vehicle %d: max_weight must be positive", v.VehicleID)
		}
		if strings.TrimSpace(v.Status) == "" {
			return fmt.Errorf("seed fleet: vehicle %d: status cannot be empty", v.VehicleID)
		}
	}
	for i, o := range data.Orders {
		if o.OrderID <= 0 {
			return fmt.Errorf("seed fleet: invalid order_id at index %d: %d", i, o.OrderID)
		}
		if o.Weight <= 0 {
			return fmt.Errorf("seed fleet: order %d: weight must be positive", o.OrderID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed fleet: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	vehicleStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO vehicles (
		vehicle_id, type, status, max_weight, lat, lon
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare vehicle insert: %w", err)
	}
	defer vehicleStmt.Close()

	for _, v := range data.Vehicles {
		if _, err := vehicleStmt.Exec(v.VehicleID, v.Type, v.Status, v.MaxWeight, v.Lat, v.Lon); err != nil {
			return fmt.Errorf("seed fleet: insert vehicle_id=%d: %w", v.VehicleID, err)
		}
	}

	orderStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO orders (
		order_id, status, weight, pickup_lat, pickup_lon, delivery_lat, delivery_lon, assigned_vehicle_id
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, 0);
	`)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare order insert: %w", err)
	}
	defer orderStmt.Close()

	for _, o := range data.Orders {
		status := o.Status
		if status == "" {
			status = "pending"
		}
		if _, err := orderStmt.Exec(o.OrderID, status, o.Weight, o.PickupLat, o.PickupLon, o.DeliveryLat, o.DeliveryLon); err != nil {
			return fmt.Errorf("seed fleet: insert order_id=%d: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fleet: commit tx: %w", err)
	}

	return nil
}

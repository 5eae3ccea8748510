package services

import (
	"context"
	"errors"
	"fmt"

	"fleet-dispatch-service/internal/domain"
	"fleet-dispatch-service/internal/platform/obs"
	"fleet-dispatch-service/internal/ports"
)

// ErrNoOrdersInArea reports an area-routing request whose bounding box
// matched no pending order.
var ErrNoOrdersInArea = errors.New("no pending orders in the requested area")

// ErrInvalidArea reports a bounding box whose edges are inverted.
var ErrInvalidArea = errors.New("invalid area bounds")

// An enriched route for one vehicle, ready for presentation.
type VehicleRoute struct {
	Vehicle   *domain.Vehicle
	Waypoints []domain.Waypoint
}

// Bounding box for area-restricted routing, in degrees.
type Area struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Contains reports whether an order belongs to the area.
// Orders are filtered by pickup coordinate only; the delivery location is
// deliberately not consulted (behavior-preserving asymmetry).
func (a Area) Contains(order *domain.Order) bool {
	return order.Pickup.Lat <= a.North &&
		order.Pickup.Lat >= a.South &&
		order.Pickup.Lon <= a.East &&
		order.Pickup.Lon >= a.West
}

func (a Area) validate() error {
	if a.North <= a.South {
		return fmt.Errorf("%w: north must be greater than south", ErrInvalidArea)
	}
	if a.East <= a.West {
		return fmt.Errorf("%w: east must be greater than west", ErrInvalidArea)
	}
	return nil
}

// Compute an enriched route for a single vehicle over all pending orders.
func OptimizeVehicleRoute(
	ctx context.Context,
	vehicleID int,
	vehicles ports.VehicleRepository,
	orders ports.OrderRepository,
	provider ports.DirectionsProvider,
) (_ *VehicleRoute, err error) {
	defer obs.Time(ctx, "dispatch.OptimizeVehicleRoute")(&err)

	vehicle, err := vehicles.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("optimize vehicle route: get vehicle %d: %w", vehicleID, err)
	}

	pending, err := orders.ListOrders(ctx, domain.OrderPending)
	if err != nil {
		return nil, fmt.Errorf("optimize vehicle route: list pending orders: %w", err)
	}

	route := OptimizeRoute(vehicle, pending)
	return &VehicleRoute{
		Vehicle:   vehicle,
		Waypoints: EnrichRoute(ctx, route, provider),
	}, nil
}

// Compute enriched routes for every available vehicle over all pending
// orders. Vehicles that receive no orders are absent from the result.
func OptimizeFleetRoutes(
	ctx context.Context,
	vehicles ports.VehicleRepository,
	orders ports.OrderRepository,
	provider ports.DirectionsProvider,
) (_ map[int]*VehicleRoute, err error) {
	defer obs.Time(ctx, "dispatch.OptimizeFleetRoutes")(&err)

	available, err := vehicles.ListVehicles(ctx, domain.VehicleAvailable)
	if err != nil {
		return nil, fmt.Errorf("optimize fleet routes: list available vehicles: %w", err)
	}

	pending, err := orders.ListOrders(ctx, domain.OrderPending)
	if err != nil {
		return nil, fmt.Errorf("optimize fleet routes: list pending orders: %w", err)
	}

	return enrichFleet(ctx, available, pending, provider), nil
}

// Compute enriched routes restricted to pending orders whose pickup falls
// inside the bounding box.
func OptimizeAreaRoutes(
	ctx context.Context,
	area Area,
	vehicles ports.VehicleRepository,
	orders ports.OrderRepository,
	provider ports.DirectionsProvider,
) (_ map[int]*VehicleRoute, err error) {
	defer obs.Time(ctx, "dispatch.OptimizeAreaRoutes")(&err)

	if err := area.validate(); err != nil {
		return nil, fmt.Errorf("optimize area routes: %w", err)
	}

	available, err := vehicles.ListVehicles(ctx, domain.VehicleAvailable)
	if err != nil {
		return nil, fmt.Errorf("optimize area routes: list available vehicles: %w", err)
	}

	pending, err := orders.ListOrders(ctx, domain.OrderPending)
	if err != nil {
		return nil, fmt.Errorf("optimize area routes: list pending orders: %w", err)
	}

	inArea := make([]*domain.Order, 0, len(pending))
	for _, order := range pending {
		if area.Contains(order) {
			inArea = append(inArea, order)
		}
	}
	if len(inArea) == 0 {
		return nil, ErrNoOrdersInArea
	}

	return enrichFleet(ctx, available, inArea, provider), nil
}

func enrichFleet(
	ctx context.Context,
	vehicles []*domain.Vehicle,
	orders []*domain.Order,
	provider ports.DirectionsProvider,
) map[int]*VehicleRoute {
	byID := make(map[int]*domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	result := make(map[int]*VehicleRoute)
	for vehicleID, route := range OptimizeFleet(vehicles, orders) {
		result[vehicleID] = &VehicleRoute{
			Vehicle:   byID[vehicleID],
			Waypoints: EnrichRoute(ctx, route, provider),
		}
	}

	return result
}

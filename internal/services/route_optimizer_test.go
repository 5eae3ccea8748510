package services

import (
	"reflect"
	"testing"

	"fleet-dispatch-service/internal/domain"
)

var base = domain.Coordinate{Lat: 13.4966, Lon: 39.4753}

func TestOptimizeRoutePicksNearestPickupFirst(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, MaxWeight: 5000, Location: base}

	// Order A's pickup sits exactly at the vehicle start; B's is ~0.7 km out.
	orderA := &domain.Order{ID: 1, Weight: 500, Pickup: base, Delivery: domain.Coordinate{Lat: 13.51, Lon: 39.49}}
	orderB := &domain.Order{ID: 2, Weight: 1000, Pickup: domain.Coordinate{Lat: 13.5, Lon: 39.48}, Delivery: domain.Coordinate{Lat: 13.52, Lon: 39.5}}

	route := OptimizeRoute(vehicle, []*domain.Order{orderB, orderA})
	if len(route) != 2 {
		t.Fatalf("route length = %d, want 2", len(route))
	}
	if route[0].ID != 1 {
		t.Fatalf("first order = %d, want 1 (pickup at vehicle start)", route[0].ID)
	}
	if route[1].ID != 2 {
		t.Fatalf("second order = %d, want 2", route[1].ID)
	}
}

func TestOptimizeRouteCapacityInvariant(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, MaxWeight: 1500, Location: base}

	orders := []*domain.Order{
		{ID: 1, Weight: 800, Pickup: base, Delivery: base},
		{ID: 2, Weight: 700, Pickup: domain.Coordinate{Lat: 13.5, Lon: 39.48}, Delivery: base},
		{ID: 3, Weight: 600, Pickup: domain.Coordinate{Lat: 13.51, Lon: 39.49}, Delivery: base},
	}

	route := OptimizeRoute(vehicle, orders)

	total := 0.0
	for _, o := range route {
		total += o.Weight
	}
	if total > vehicle.MaxWeight {
		t.Fatalf("route weight %v exceeds capacity %v", total, vehicle.MaxWeight)
	}
	if len(route) != 2 {
		t.Fatalf("route length = %d, want 2 (orders 1 and 2 fill the vehicle)", len(route))
	}
}

func TestOptimizeRouteStopsWhenNothingFits(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, MaxWeight: 1000, Location: base}

	// The nearby order exceeds capacity outright; the far one fits. The
	// router must still assign the far order and never the heavy one.
	heavyNear := &domain.Order{ID: 1, Weight: 4000, Pickup: base, Delivery: base}
	lightFar := &domain.Order{ID: 2, Weight: 300, Pickup: domain.Coordinate{Lat: 13.6, Lon: 39.6}, Delivery: base}

	route := OptimizeRoute(vehicle, []*domain.Order{heavyNear, lightFar})
	if len(route) != 1 || route[0].ID != 2 {
		t.Fatalf("route = %+v, want only order 2", route)
	}
}

func TestOptimizeRouteTerminatesAtCapacity(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, MaxWeight: 1000, Location: base}

	orders := []*domain.Order{
		{ID: 1, Weight: 900, Pickup: base, Delivery: base},
		{ID: 2, Weight: 500, Pickup: domain.Coordinate{Lat: 13.5, Lon: 39.48}, Delivery: base},
	}

	// After order 1 is carried, nothing else fits: the router stops.
	route := OptimizeRoute(vehicle, orders)
	if len(route) != 1 || route[0].ID != 1 {
		t.Fatalf("route = %+v, want only order 1", route)
	}
}

func TestOptimizeRouteDeterministic(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, MaxWeight: 5000, Location: base}

	// Both pickups are at the same point; the earlier input order must win
	// the tie, on every invocation.
	orders := []*domain.Order{
		{ID: 7, Weight: 100, Pickup: domain.Coordinate{Lat: 13.5, Lon: 39.48}, Delivery: base},
		{ID: 3, Weight: 100, Pickup: domain.Coordinate{Lat: 13.5, Lon: 39.48}, Delivery: base},
	}

	first := OptimizeRoute(vehicle, orders)
	for i := 0; i < 10; i++ {
		again := OptimizeRoute(vehicle, orders)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
	if first[0].ID != 7 {
		t.Fatalf("tie-break winner = %d, want 7 (earliest in input)", first[0].ID)
	}
}

func TestOptimizeRouteAdvancesToDeliveryPoint(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, MaxWeight: 5000, Location: base}

	// Order 1 delivers right next to order 3's pickup, far from order 2's.
	// Sequential pickup-then-deliver execution must make order 3 the second
	// stop even though order 2's pickup is closer to the vehicle start.
	orders := []*domain.Order{
		{ID: 1, Weight: 100, Pickup: base, Delivery: domain.Coordinate{Lat: 13.6, Lon: 39.6}},
		{ID: 2, Weight: 100, Pickup: domain.Coordinate{Lat: 13.5, Lon: 39.48}, Delivery: base},
		{ID: 3, Weight: 100, Pickup: domain.Coordinate{Lat: 13.601, Lon: 39.601}, Delivery: base},
	}

	route := OptimizeRoute(vehicle, orders)
	if len(route) != 3 {
		t.Fatalf("route length = %d, want 3", len(route))
	}
	if route[0].ID != 1 || route[1].ID != 3 || route[2].ID != 2 {
		t.Fatalf("route order = [%d %d %d], want [1 3 2]", route[0].ID, route[1].ID, route[2].ID)
	}
}

func TestOptimizeFleetSingleHeavyOrder(t *testing.T) {
	vehicles := []*domain.Vehicle{
		{ID: 1, MaxWeight: 5000, Location: base},
		{ID: 2, MaxWeight: 2000, Location: base},
	}
	orders := []*domain.Order{
		{ID: 1, Weight: 3000, Pickup: base, Delivery: domain.Coordinate{Lat: 13.51, Lon: 39.49}},
	}

	routes := OptimizeFleet(vehicles, orders)
	if len(routes) != 1 {
		t.Fatalf("mapping size = %d, want exactly 1", len(routes))
	}
	route, ok := routes[1]
	if !ok {
		t.Fatal("expected the 5000-capacity vehicle to receive the order")
	}
	if len(route) != 1 || route[0].ID != 1 {
		t.Fatalf("route = %+v, want order 1", route)
	}
}

func TestOptimizeFleetLargestCapacityFirst(t *testing.T) {
	vehicles := []*domain.Vehicle{
		{ID: 1, MaxWeight: 1000, Location: base},
		{ID: 2, MaxWeight: 5000, Location: base},
	}
	orders := []*domain.Order{
		{ID: 1, Weight: 800, Pickup: base, Delivery: base},
		{ID: 2, Weight: 900, Pickup: base, Delivery: base},
		{ID: 3, Weight: 700, Pickup: base, Delivery: base},
	}

	routes := OptimizeFleet(vehicles, orders)

	// Vehicle 2 goes first and absorbs everything; vehicle 1 gets nothing.
	if len(routes) != 1 {
		t.Fatalf("mapping size = %d, want 1", len(routes))
	}
	if len(routes[2]) != 3 {
		t.Fatalf("vehicle 2 route length = %d, want 3", len(routes[2]))
	}
}

func TestOptimizeFleetLeavesUnroutableOrdersOut(t *testing.T) {
	vehicles := []*domain.Vehicle{
		{ID: 1, MaxWeight: 500, Location: base},
	}
	orders := []*domain.Order{
		{ID: 1, Weight: 800, Pickup: base, Delivery: base},
	}

	routes := OptimizeFleet(vehicles, orders)
	if len(routes) != 0 {
		t.Fatalf("mapping = %+v, want empty (order exceeds every capacity)", routes)
	}
}

func TestOptimizeFleetCapacityTieBreaksOnInputOrder(t *testing.T) {
	vehicles := []*domain.Vehicle{
		{ID: 4, MaxWeight: 2000, Location: base},
		{ID: 9, MaxWeight: 2000, Location: base},
	}
	orders := []*domain.Order{
		{ID: 1, Weight: 1500, Pickup: base, Delivery: base},
	}

	routes := OptimizeFleet(vehicles, orders)
	if _, ok := routes[4]; !ok {
		t.Fatalf("routes = %+v, want vehicle 4 (earliest on capacity tie)", routes)
	}
}

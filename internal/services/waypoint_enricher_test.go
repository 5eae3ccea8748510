package services

import (
	"context"
	"math"
	"strings"
	"testing"

	"fleet-dispatch-service/internal/adapters/directions"
	"fleet-dispatch-service/internal/domain"
	"fleet-dispatch-service/internal/ports"
)

func TestEnrichRouteEmptyRoute(t *testing.T) {
	waypoints := EnrichRoute(context.Background(), nil, nil)
	if len(waypoints) != 0 {
		t.Fatalf("waypoints = %+v, want empty", waypoints)
	}
}

func TestEnrichRouteStepMonotonicityAndReturnLeg(t *testing.T) {
	route := []*domain.Order{
		{ID: 1, Weight: 500, Pickup: base, Delivery: domain.Coordinate{Lat: 13.51, Lon: 39.49}},
		{ID: 2, Weight: 1000, Pickup: domain.Coordinate{Lat: 13.5, Lon: 39.48}, Delivery: domain.Coordinate{Lat: 13.52, Lon: 39.5}},
	}

	waypoints := EnrichRoute(context.Background(), route, nil)

	// Two waypoints per order plus the return-to-base stop.
	if len(waypoints) != 5 {
		t.Fatalf("waypoint count = %d, want 5", len(waypoints))
	}

	for i, wp := range waypoints {
		if wp.Step != i+1 {
			t.Fatalf("waypoint %d step = %d, want %d", i, wp.Step, i+1)
		}
	}

	last := waypoints[len(waypoints)-1]
	if last.OrderID != 0 {
		t.Fatalf("final waypoint order id = %d, want 0 (return to base)", last.OrderID)
	}
	if last.Kind != domain.WaypointDelivery {
		t.Fatalf("final waypoint kind = %q, want delivery", last.Kind)
	}
	if last.Location != route[0].Pickup {
		t.Fatalf("final waypoint location = %+v, want first pickup %+v", last.Location, route[0].Pickup)
	}
	if !strings.HasPrefix(last.Instruction, "Return to base.") {
		t.Fatalf("final instruction = %q", last.Instruction)
	}

	if waypoints[0].Kind != domain.WaypointPickup || waypoints[1].Kind != domain.WaypointDelivery {
		t.Fatalf("order 1 kinds = %q, %q, want pickup, delivery", waypoints[0].Kind, waypoints[1].Kind)
	}
}

// unavailableProvider mimics a permanently degraded directions provider.
type unavailableProvider struct{ calls int }

func (p *unavailableProvider) GetLeg(ctx context.Context, start, end domain.Coordinate) (ports.LegResult, bool) {
	p.calls++
	return ports.LegResult{}, false
}

func TestEnrichRouteFallbackTiming(t *testing.T) {
	provider := &unavailableProvider{}

	route := []*domain.Order{
		{ID: 1, Weight: 500, Pickup: base, Delivery: domain.Coordinate{Lat: 13.51, Lon: 39.49}},
	}

	waypoints := EnrichRoute(context.Background(), route, provider)
	if provider.calls != 3 {
		t.Fatalf("provider calls = %d, want 3 (one per leg)", provider.calls)
	}

	for i, wp := range waypoints {
		want := wp.DistanceKm / 40 * 60
		if math.Abs(wp.EstimatedMinutes-want) > 1e-9 {
			t.Fatalf("waypoint %d time = %v, want %v (km/40*60)", i, wp.EstimatedMinutes, want)
		}
		if len(wp.DirectionSteps) != 0 {
			t.Fatalf("waypoint %d has direction steps despite degraded provider", i)
		}
	}
}

func TestEnrichRouteUsesProviderDurationAndSteps(t *testing.T) {
	pickup := base
	delivery := domain.Coordinate{Lat: 13.51, Lon: 39.49}
	route := []*domain.Order{{ID: 1, Weight: 500, Pickup: pickup, Delivery: delivery}}

	steps := []domain.DirectionStep{
		{DistanceMeters: 900, DurationSeconds: 120, Instruction: "Head north", Name: "Main St", Maneuver: "depart"},
	}
	provider := directions.NewMockDirectionsProvider([]directions.MockLeg{
		// First leg starts at the first pickup, so start == end.
		{From: pickup, To: pickup, Leg: ports.LegResult{DurationSeconds: 0}},
		{From: pickup, To: delivery, Leg: ports.LegResult{DistanceMeters: 2100, DurationSeconds: 600, Steps: steps}},
		// Return leg intentionally unregistered: it must degrade alone.
	})

	waypoints := EnrichRoute(context.Background(), route, provider)
	if len(waypoints) != 3 {
		t.Fatalf("waypoint count = %d, want 3", len(waypoints))
	}

	deliveryWp := waypoints[1]
	if deliveryWp.EstimatedMinutes != 10 {
		t.Fatalf("delivery time = %v minutes, want 10 (600s from provider)", deliveryWp.EstimatedMinutes)
	}
	if len(deliveryWp.DirectionSteps) != 1 || deliveryWp.DirectionSteps[0].Instruction != "Head north" {
		t.Fatalf("direction steps = %+v, want provider steps", deliveryWp.DirectionSteps)
	}

	// The distance shown stays the local estimate, even on enriched legs.
	wantKm := domain.DistanceKm(pickup, delivery)
	if math.Abs(deliveryWp.DistanceKm-wantKm) > 1e-9 {
		t.Fatalf("delivery distance = %v, want local %v", deliveryWp.DistanceKm, wantKm)
	}

	// Provider failure on the return leg never aborts enrichment.
	returnWp := waypoints[2]
	if len(returnWp.DirectionSteps) != 0 {
		t.Fatalf("return leg steps = %+v, want none", returnWp.DirectionSteps)
	}
	wantReturn := returnWp.DistanceKm / 40 * 60
	if math.Abs(returnWp.EstimatedMinutes-wantReturn) > 1e-9 {
		t.Fatalf("return time = %v, want local estimate %v", returnWp.EstimatedMinutes, wantReturn)
	}
}

func TestEnrichRouteInstructionText(t *testing.T) {
	route := []*domain.Order{
		{ID: 42, Weight: 500, Pickup: base, Delivery: domain.Coordinate{Lat: 13.51, Lon: 39.49}},
	}

	waypoints := EnrichRoute(context.Background(), route, nil)

	if !strings.HasPrefix(waypoints[0].Instruction, "Drive to pickup location for Order #42.") {
		t.Fatalf("pickup instruction = %q", waypoints[0].Instruction)
	}
	if !strings.HasPrefix(waypoints[1].Instruction, "Deliver Order #42 to customer.") {
		t.Fatalf("delivery instruction = %q", waypoints[1].Instruction)
	}
	if !strings.Contains(waypoints[1].Instruction, "km") || !strings.Contains(waypoints[1].Instruction, "minutes") {
		t.Fatalf("delivery instruction missing metrics: %q", waypoints[1].Instruction)
	}
}

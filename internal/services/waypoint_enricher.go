package services

import (
	"context"
	"fmt"

	"fleet-dispatch-service/internal/domain"
	"fleet-dispatch-service/internal/ports"
)

// Average speed assumed by the local ETA estimate when the directions
// provider has no result for a leg.
const fallbackSpeedKmh = 40

// Expand an ordered route into a step-numbered waypoint sequence with
// per-leg distance and ETA.
//
// Each order contributes a pickup and a delivery waypoint; a synthetic
// return-to-base waypoint (OrderID 0) closes the route. Distances always
// come from the local haversine estimate. When the directions provider
// returns a leg, its duration replaces the local time estimate and its
// turn-by-turn steps are attached; otherwise the leg is estimated at a fixed
// speed and DirectionSteps stays empty.
//
// Legs are failure-isolated: provider degradation on one leg never aborts
// the rest, so enrichment always produces a result (possibly with
// local-estimate-only waypoints).
func EnrichRoute(
	ctx context.Context,
	route []*domain.Order,
	provider ports.DirectionsProvider,
) []domain.Waypoint {
	if len(route) == 0 {
		return []domain.Waypoint{}
	}

	waypoints := make([]domain.Waypoint, 0, 2*len(route)+1)
	position := route[0].Pickup
	step := 1

	for _, order := range route {
		pickupKm, pickupMin, pickupSteps := enrichLeg(ctx, provider, position, order.Pickup)
		waypoints = append(waypoints, domain.Waypoint{
			Kind:             domain.WaypointPickup,
			Location:         order.Pickup,
			OrderID:          order.ID,
			Step:             step,
			DistanceKm:       pickupKm,
			EstimatedMinutes: pickupMin,
			Instruction: fmt.Sprintf(
				"Drive to pickup location for Order #%d. Distance: %.2f km, Estimated time: %.0f minutes",
				order.ID, pickupKm, pickupMin,
			),
			DirectionSteps: pickupSteps,
		})
		step++

		deliveryKm, deliveryMin, deliverySteps := enrichLeg(ctx, provider, order.Pickup, order.Delivery)
		waypoints = append(waypoints, domain.Waypoint{
			Kind:             domain.WaypointDelivery,
			Location:         order.Delivery,
			OrderID:          order.ID,
			Step:             step,
			DistanceKm:       deliveryKm,
			EstimatedMinutes: deliveryMin,
			Instruction: fmt.Sprintf(
				"Deliver Order #%d to customer. Distance: %.2f km, Estimated time: %.0f minutes",
				order.ID, deliveryKm, deliveryMin,
			),
			DirectionSteps: deliverySteps,
		})
		step++

		position = order.Delivery
	}

	// Close the route back at the first pickup.
	returnKm, returnMin, returnSteps := enrichLeg(ctx, provider, position, route[0].Pickup)
	waypoints = append(waypoints, domain.Waypoint{
		Kind:             domain.WaypointDelivery,
		Location:         route[0].Pickup,
		OrderID:          0,
		Step:             step,
		DistanceKm:       returnKm,
		EstimatedMinutes: returnMin,
		Instruction: fmt.Sprintf(
			"Return to base. Distance: %.2f km, Estimated time: %.0f minutes",
			returnKm, returnMin,
		),
		DirectionSteps: returnSteps,
	})

	return waypoints
}

// enrichLeg computes distance and ETA for a single leg, preferring the
// directions provider and falling back to the fixed-speed estimate.
func enrichLeg(
	ctx context.Context,
	provider ports.DirectionsProvider,
	start, end domain.Coordinate,
) (km float64, minutes float64, steps []domain.DirectionStep) {
	km = domain.DistanceKm(start, end)
	minutes = km / fallbackSpeedKmh * 60

	if provider == nil {
		return km, minutes, nil
	}

	leg, ok := provider.GetLeg(ctx, start, end)
	if !ok {
		return km, minutes, nil
	}

	return km, leg.DurationSeconds / 60, leg.Steps
}

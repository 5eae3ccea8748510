package services

import (
	"fleet-dispatch-service/internal/domain"
)

// Sequence orders for one vehicle using a greedy nearest-neighbor algorithm
// under the vehicle's weight capacity.
//
// At each step the order whose pickup is closest to the current position is
// selected from the orders that still fit; the position then advances to that
// order's delivery point (sequential pickup-then-deliver execution). Ties are
// broken by input order: the earliest candidate wins, which keeps the result
// deterministic for identical snapshots.
//
// The algorithm does not attempt global route optimization (e.g., VRP
// solvers). It trades optimality for O(n^2) simplicity and determinism.
//
// Orders that never fit are left unassigned; that is not an error. The sum
// of weights in the returned route never exceeds vehicle.MaxWeight.
func OptimizeRoute(vehicle *domain.Vehicle, orders []*domain.Order) []*domain.Order {
	remaining := make([]*domain.Order, len(orders))
	copy(remaining, orders)

	route := make([]*domain.Order, 0, len(orders))
	position := vehicle.Location
	carried := 0.0

	for len(remaining) > 0 {
		bestIdx := -1
		bestDist := 0.0

		// Select the nearest pickup among orders that still fit (greedy step.)
		for i, order := range remaining {
			if carried+order.Weight > vehicle.MaxWeight {
				continue
			}

			d := domain.DistanceKm(position, order.Pickup)
			// Strict less-than keeps the earliest candidate on ties.
			if bestIdx == -1 || d < bestDist {
				bestIdx = i
				bestDist = d
			}
		}

		// No remaining order fits the residual capacity.
		if bestIdx == -1 {
			break
		}

		next := remaining[bestIdx]
		route = append(route, next)
		carried += next.Weight
		position = next.Delivery
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return route
}

// Assign orders across a fleet by repeatedly routing the largest-capacity
// vehicle against the still-unassigned orders.
//
// Largest-first maximizes the chance that heavy orders are absorbed early,
// reducing fragmentation; it is a heuristic bias, not an optimality
// guarantee. Each vehicle is considered at most once, even if capacity
// remains unused. Ties on capacity are broken by input order.
//
// Orders left unassigned are simply absent from the result; an empty mapping
// signals "unroutable with the current fleet", not a failure.
func OptimizeFleet(vehicles []*domain.Vehicle, orders []*domain.Order) map[int][]*domain.Order {
	routes := make(map[int][]*domain.Order)

	remainingVehicles := make([]*domain.Vehicle, len(vehicles))
	copy(remainingVehicles, vehicles)
	remainingOrders := make([]*domain.Order, len(orders))
	copy(remainingOrders, orders)

	for len(remainingVehicles) > 0 && len(remainingOrders) > 0 {
		// Strict greater-than keeps the earliest vehicle on capacity ties.
		best := 0
		for i, v := range remainingVehicles {
			if v.MaxWeight > remainingVehicles[best].MaxWeight {
				best = i
			}
		}
		vehicle := remainingVehicles[best]

		route := OptimizeRoute(vehicle, remainingOrders)
		if len(route) > 0 {
			routes[vehicle.ID] = route

			assigned := make(map[int]struct{}, len(route))
			for _, order := range route {
				assigned[order.ID] = struct{}{}
			}

			kept := remainingOrders[:0]
			for _, order := range remainingOrders {
				if _, ok := assigned[order.ID]; !ok {
					kept = append(kept, order)
				}
			}
			remainingOrders = kept
		}

		remainingVehicles = append(remainingVehicles[:best], remainingVehicles[best+1:]...)
	}

	return routes
}

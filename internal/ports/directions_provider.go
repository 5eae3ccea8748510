package ports

import (
	"context"

	"fleet-dispatch-service/internal/domain"
)

// Turn-by-turn result for a single leg between two coordinates.
type LegResult struct {
	DistanceMeters  float64
	DurationSeconds float64
	Steps           []domain.DirectionStep
}

// Contract for retrieving turn-by-turn directions for one leg.
//
// GetLeg reports ok=false when no result is available (provider not
// configured, timeout, throttling exhausted, malformed response). That is a
// normal outcome meaning "fall back to the local estimate", never an error:
// callers must not treat degraded service as a failure of the route
// computation.
type DirectionsProvider interface {
	GetLeg(ctx context.Context, start, end domain.Coordinate) (LegResult, bool)
}

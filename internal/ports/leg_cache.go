package ports

import (
	"context"

	"fleet-dispatch-service/internal/domain"
)

// Cache of leg results keyed by coordinate pair.
type LegCache interface {
	// Return a cached leg result; ok=false on a miss.
	Get(ctx context.Context, start, end domain.Coordinate) (LegResult, bool, error)
	// Store a leg result for a coordinate pair.
	Put(ctx context.Context, start, end domain.Coordinate, leg LegResult) error
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fleet-dispatch-service/internal/domain"
	"fleet-dispatch-service/internal/ports"
)

// RedisLegCache stores directions results keyed by coordinate pair so
// repeated enrichment of the same legs does not spend provider quota.
//
// Coordinates are rounded to 6 decimal places (~0.1 m) when building keys,
// so float noise does not fragment the cache.
type RedisLegCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLegCache(client *redis.Client, ttl time.Duration) *RedisLegCache {
	return &RedisLegCache{client: client, ttl: ttl}
}

func legKey(start, end domain.Coordinate) string {
	return fmt.Sprintf("leg:%.6f,%.6f:%.6f,%.6f", start.Lat, start.Lon, end.Lat, end.Lon)
}

// Return a cached leg result; ok=false on a miss.
func (c *RedisLegCache) Get(
	ctx context.Context,
	start, end domain.Coordinate,
) (ports.LegResult, bool, error) {
	if c.client == nil {
		return ports.LegResult{}, false, errors.New("leg cache: redis client is nil")
	}

	raw, err := c.client.Get(ctx, legKey(start, end)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.LegResult{}, false, nil
	}
	if err != nil {
		return ports.LegResult{}, false, fmt.Errorf("leg cache get: %w", err)
	}

	var leg ports.LegResult
	if err := json.Unmarshal(raw, &leg); err != nil {
		return ports.LegResult{}, false, fmt.Errorf("leg cache decode: %w", err)
	}

	return leg, true, nil
}

// Store a leg result for a coordinate pair, bounded by the cache TTL.
func (c *RedisLegCache) Put(
	ctx context.Context,
	start, end domain.Coordinate,
	leg ports.LegResult,
) error {
	if c.client == nil {
		return errors.New("leg cache: redis client is nil")
	}

	raw, err := json.Marshal(leg)
	if err != nil {
		return fmt.Errorf("leg cache encode: %w", err)
	}

	if err := c.client.Set(ctx, legKey(start, end), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("leg cache put: %w", err)
	}

	return nil
}

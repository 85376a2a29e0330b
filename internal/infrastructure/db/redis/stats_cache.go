package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unifit/unifit-api/internal/core/domain"
)

const (
	dashboardKey    = "unifit:stats:dashboard"
	defaultCacheTTL = time.Minute
)

// StatsCache stores the last dashboard payload as JSON under a single key.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) when nothing is cached.
func (c *StatsCache) Get(ctx context.Context) (*domain.Dashboard, error) {
	raw, err := c.client.Get(ctx, dashboardKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}
	return decodeDashboard(raw)
}

func (c *StatsCache) Set(ctx context.Context, d *domain.Dashboard) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	if err := c.client.Set(ctx, dashboardKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}

func decodeDashboard(raw []byte) (*domain.Dashboard, error) {
	var d domain.Dashboard
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &d, nil
}

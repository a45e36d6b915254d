package cache

import (
	"context"
	"time"
)

// NoOpCache is a cache implementation that does nothing. It is the default
// when no Redis is configured: every lookup is a miss, every write succeeds.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) GetSummary(ctx context.Context, key string) (*Entry, error) {
	return nil, nil
}

func (c *NoOpCache) SetSummary(ctx context.Context, key string, entry *Entry, ttl time.Duration) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores summarize results per URL so re-submitting a URL skips the
// fetch+LLM pipeline. A hit never skips the session-state transition.
type Cache interface {
	// GetSummary retrieves a cached result by key. Returns nil on miss.
	GetSummary(ctx context.Context, key string) (*Entry, error)

	// SetSummary stores a result with TTL.
	SetSummary(ctx context.Context, key string, entry *Entry, ttl time.Duration) error

	// Close closes the cache connection.
	Close() error
}

// Entry is a cached summarize result.
type Entry struct {
	Summary   string `json:"summary"`
	MainTopic string `json:"main_topic"`
}

// Key derives a stable cache key from a URL.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

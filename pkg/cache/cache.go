// Package cache provides caching for solver results and parsed graphs.
//
// Solving the same dataset with the same algorithm and parameters is fully
// deterministic (the tabu solver is pinned by its seed), so results can be
// cached indefinitely and keyed by content: the graph hash plus the solve
// parameters. Two backends are provided, a file cache for CLI usage and a
// Redis cache for server deployments, plus a no-op NullCache for tests and
// for --no-cache runs.
package cache

import (
	"context"
	"time"
)

// TTLs for the different cache layers. Results are content-addressed and
// never go stale, but bounded TTLs keep disused entries from accumulating.
const (
	// TTLResult is how long solver results are kept.
	TTLResult = 30 * 24 * time.Hour

	// TTLGraph is how long parsed graph snapshots are kept.
	TTLGraph = 7 * 24 * time.Hour
)

// Cache is the storage interface for cached entries.
//
// Get returns the data, whether the key was present, and any storage error.
// A miss is not an error. Set with a zero ttl stores the entry without an
// expiration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ResultKeyOpts carries every solve parameter that affects the result.
// Changing any field must produce a different cache key.
type ResultKeyOpts struct {
	Algorithm     string
	Target        int
	MaxIterations int
	Tenure        int
	Seed          int64
}

// Keyer generates cache keys for the different cached layers.
type Keyer interface {
	// ResultKey generates a key for a solver result on the graph with the
	// given content hash.
	ResultKey(graphHash string, opts ResultKeyOpts) string

	// GraphKey generates a key for a parsed graph snapshot.
	GraphKey(source string) string
}

// DefaultKeyer is the standard key generation scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ResultKey generates a key for a solver result.
func (k *DefaultKeyer) ResultKey(graphHash string, opts ResultKeyOpts) string {
	return hashKey("result", graphHash, opts)
}

// GraphKey generates a key for a parsed graph snapshot.
func (k *DefaultKeyer) GraphKey(source string) string {
	return hashKey("graph", source)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

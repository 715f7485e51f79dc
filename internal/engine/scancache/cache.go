// Package scancache implements the in-memory memoization of dependency scan results.
package scancache

import (
	"maps"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
)

var _ ports.ScanResultCache = (*Cache)(nil)

// Cache maps source file paths to scan results.
// Results are deep-copied on the way in and out, so callers never share storage with the cache.
type Cache struct {
	shards []*shard
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]domain.ScanResult
}

// New creates a cache guarded by a single lock.
func New() *Cache {
	return NewSharded(1)
}

// NewSharded creates a cache that spreads paths over n independently locked shards.
func NewSharded(n int) *Cache {
	if n < 1 {
		n = 1
	}
	c := &Cache{shards: make([]*shard, n)}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[string]domain.ScanResult)}
	}
	return c
}

func (c *Cache) shardFor(path string) *shard {
	if len(c.shards) == 1 {
		return c.shards[0]
	}
	return c.shards[xxhash.Sum64String(path)%uint64(len(c.shards))]
}

// Value returns the result stored for path, or the invalid zero result.
func (c *Cache) Value(path string) domain.ScanResult {
	s := c.shardFor(path)
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.entries[path]
	if !ok {
		return domain.ScanResult{}
	}
	return result.Clone()
}

// Insert stores result for path, replacing any previous value.
func (c *Cache) Insert(path string, result domain.ScanResult) {
	stored := result.Clone()

	s := c.shardFor(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[path] = stored
}

// Snapshot returns a copy of all entries.
func (c *Cache) Snapshot() map[string]domain.ScanResult {
	out := make(map[string]domain.ScanResult)
	for _, s := range c.shards {
		s.mu.RLock()
		for path, result := range maps.All(s.entries) {
			out[path] = result.Clone()
		}
		s.mu.RUnlock()
	}
	return out
}

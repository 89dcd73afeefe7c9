package graph

import (
	"slices"
	"sync"

	"github.com/persistorai/wikigraph/internal/models"
)

// CachedNode is a materialized node together with the outgoing links it was
// fetched with. Node.Depth and Node.Centrality are not meaningful on a cached
// entry; callers re-stamp depth on every materialization.
type CachedNode struct {
	Node  models.GraphNode
	Links []string
}

// NodeCache memoizes materialized nodes by id. Entries are write-once: the
// first writer for a key wins and the entry is never replaced or evicted.
// Implementations must be safe for concurrent use.
type NodeCache interface {
	Get(id string) (CachedNode, bool)
	LoadOrStore(id string, entry CachedNode) (actual CachedNode, loaded bool)
	Len() int
}

// MemoryCache is a process-lifetime NodeCache backed by a map.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]CachedNode
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]CachedNode)}
}

// Get returns the entry for id, if present.
func (c *MemoryCache) Get(id string) (CachedNode, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]

	return e, ok
}

// LoadOrStore returns the existing entry for id if present. Otherwise it stores
// entry and returns it. loaded is true when the entry was already present.
func (c *MemoryCache) LoadOrStore(id string, entry CachedNode) (CachedNode, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[id]; ok {
		return existing, true
	}

	entry.Node.Centrality = nil
	entry.Links = slices.Clone(entry.Links)
	c.entries[id] = entry

	return entry, false
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

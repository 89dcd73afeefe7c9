package graph

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/metrics"
	"github.com/persistorai/wikigraph/internal/models"
)

// Traversal limits.
const (
	MaxExploreDepth = 3
	MaxNodesCeiling = 200

	batchSize     = 15
	nodesPerDepth = 5
	exploreFanOut = max(3, nodesPerDepth-2)
	expandFanOut  = nodesPerDepth
)

type frontierEntry struct {
	id    string
	level int
}

// Builder runs breadth-first explorations from a root article.
type Builder struct {
	provider ContentProvider
	cache    NodeCache
	log      *logrus.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(provider ContentProvider, cache NodeCache, log *logrus.Logger) *Builder {
	return &Builder{provider: provider, cache: cache, log: log}
}

// traversal holds the state of a single Explore call.
type traversal struct {
	depth    int
	maxNodes int
	frontier []frontierEntry
	visited  map[string]bool
	nodes    []models.GraphNode
	edges    []models.GraphEdge
}

// Explore builds the graph reachable from root within depth hops, holding at
// most maxNodes nodes. maxNodes above MaxNodesCeiling is clamped.
//
// Nodes appear in materialization order, which is BFS order except that
// cache hits within a batch come before that batch's fetched entries.
func (b *Builder) Explore(ctx context.Context, root string, depth, maxNodes int) (*models.GraphData, error) {
	if root == "" {
		return nil, models.InvalidParameter("root id is required")
	}

	if depth < 0 || depth > MaxExploreDepth {
		return nil, models.InvalidParameter("depth must be between 0 and %d", MaxExploreDepth)
	}

	if maxNodes < 1 {
		return nil, models.InvalidParameter("max nodes must be at least 1")
	}

	maxNodes = min(maxNodes, MaxNodesCeiling)

	b.log.WithFields(logrus.Fields{
		"root":      root,
		"depth":     depth,
		"max_nodes": maxNodes,
	}).Debug("graph.explore")

	t := &traversal{
		depth:    depth,
		maxNodes: maxNodes,
		frontier: []frontierEntry{{id: root, level: 0}},
		visited:  make(map[string]bool),
	}

	for len(t.frontier) > 0 && len(t.nodes) < t.maxNodes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("exploring %q: %w", root, err)
		}

		misses := b.drainBatch(t)
		if len(misses) == 0 {
			continue
		}

		b.fetchBatch(ctx, t, misses)
	}

	if len(t.nodes) == 0 || t.nodes[0].ID != root {
		return nil, fmt.Errorf("exploring %q: %w", root, models.ErrArticleNotFound)
	}

	assignCentrality(t.nodes, t.edges, b.log)
	metrics.NodeCacheSize.Set(float64(b.cache.Len()))

	b.log.WithFields(logrus.Fields{
		"root":  root,
		"nodes": len(t.nodes),
		"edges": len(t.edges),
	}).Info("graph.explore complete")

	return &models.GraphData{
		Nodes:      t.nodes,
		Edges:      t.edges,
		RootNode:   root,
		TotalNodes: len(t.nodes),
		TotalEdges: len(t.edges),
		MaxDepth:   depth,
	}, nil
}

// drainBatch pops frontier entries until a batch is full or the remaining node
// budget is reserved. Cache hits are materialized immediately; misses are
// returned for fetching.
func (b *Builder) drainBatch(t *traversal) []frontierEntry {
	capacity := min(batchSize, t.maxNodes-len(t.nodes))
	accepted := 0

	var misses []frontierEntry

	for len(t.frontier) > 0 && accepted < capacity {
		e := t.frontier[0]
		t.frontier = t.frontier[1:]

		if t.visited[e.id] || e.level > t.depth {
			continue
		}

		t.visited[e.id] = true
		accepted++

		if cached, ok := b.cache.Get(e.id); ok {
			metrics.NodeCacheLookups.WithLabelValues("hit").Inc()
			t.materialize(e, cached)

			continue
		}

		metrics.NodeCacheLookups.WithLabelValues("miss").Inc()
		misses = append(misses, e)
	}

	return misses
}

// fetchBatch retrieves the batch's misses in one provider call and
// materializes them in dequeue order. Failed items are dropped; items whose
// links could not be fetched are shown but left out of the cache.
func (b *Builder) fetchBatch(ctx context.Context, t *traversal, misses []frontierEntry) {
	ids := make([]string, len(misses))
	for i, e := range misses {
		ids[i] = e.id
	}

	fetched := b.provider.FetchMany(ctx, ids)

	for _, e := range misses {
		article := fetched[e.id]
		if article == nil {
			b.log.WithField("id", e.id).Debug("graph.explore: article unavailable, skipping")
			continue
		}

		entry := CachedNode{
			Node:  article.NodeAt(e.id, e.level),
			Links: article.Links,
		}

		if article.LinksIncomplete {
			b.log.WithField("id", e.id).Debug("graph.explore: links incomplete, not caching")
		} else {
			entry, _ = b.cache.LoadOrStore(e.id, entry)
		}

		t.materialize(e, entry)
	}
}

// materialize appends the node at the entry's level and, while depth and
// budget allow, records its link edges and queues unvisited targets.
func (t *traversal) materialize(e frontierEntry, entry CachedNode) {
	node := entry.Node
	node.Depth = e.level
	node.Centrality = nil
	t.nodes = append(t.nodes, node)

	if e.level+1 > t.depth || len(t.nodes) >= t.maxNodes {
		return
	}

	links := entry.Links
	if len(links) > exploreFanOut {
		links = links[:exploreFanOut]
	}

	for _, link := range links {
		t.edges = append(t.edges, models.NewLinkEdge(e.id, link))

		if !t.visited[link] {
			t.frontier = append(t.frontier, frontierEntry{id: link, level: e.level + 1})
		}
	}
}

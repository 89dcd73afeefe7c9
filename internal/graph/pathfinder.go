package graph

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/models"
)

// MaxPathDepth is the largest node count a path search may return.
const MaxPathDepth = 10

// PathFinder searches for the shortest link chain between two articles. It
// keeps its own visited set and does not use the node cache.
type PathFinder struct {
	provider   ContentProvider
	log        *logrus.Logger
	fetchLimit int
}

// NewPathFinder creates a PathFinder. A fetchLimit of zero or less disables
// the fetch cap.
func NewPathFinder(provider ContentProvider, log *logrus.Logger, fetchLimit int) *PathFinder {
	return &PathFinder{provider: provider, log: log, fetchLimit: fetchLimit}
}

type pathStep struct {
	id   string
	path []string
}

// FindShortestPath runs a breadth-first search from source to target. maxDepth
// bounds the number of nodes in the returned path, endpoints included.
// Explored counts provider fetches. Truncated is set when the fetch limit
// stopped the search before the depth bound was exhausted.
func (p *PathFinder) FindShortestPath(ctx context.Context, source, target string, maxDepth int) (*models.PathResult, error) {
	if source == "" || target == "" {
		return nil, models.InvalidParameter("source and target are required")
	}

	if maxDepth < 1 || maxDepth > MaxPathDepth {
		return nil, models.InvalidParameter("max depth must be between 1 and %d", MaxPathDepth)
	}

	log := p.log.WithFields(logrus.Fields{"from": source, "to": target, "max_depth": maxDepth})
	log.Debug("graph.path")

	if source == target {
		return &models.PathResult{Found: true, Path: []string{source}}, nil
	}

	visited := map[string]bool{source: true}
	queue := []pathStep{{id: source, path: []string{source}}}
	explored := 0

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("finding path %q -> %q: %w", source, target, err)
		}

		cur := queue[0]
		queue = queue[1:]

		// Children would exceed the path bound.
		if len(cur.path) >= maxDepth {
			continue
		}

		if p.fetchLimit > 0 && explored >= p.fetchLimit {
			log.WithField("explored", explored).Info("graph.path: fetch limit reached")
			return &models.PathResult{Found: false, Path: []string{}, Explored: explored, Truncated: true}, nil
		}

		article, err := p.provider.FetchOne(ctx, cur.id)
		explored++

		if err != nil || article == nil {
			log.WithError(err).WithField("id", cur.id).Debug("graph.path: article unavailable")
			continue
		}

		for _, link := range article.Links {
			if visited[link] {
				continue
			}

			visited[link] = true

			next := make([]string, len(cur.path)+1)
			copy(next, cur.path)
			next[len(cur.path)] = link

			if link == target {
				log.WithFields(logrus.Fields{"length": len(next), "explored": explored}).Info("graph.path found")
				return &models.PathResult{Found: true, Path: next, Explored: explored}, nil
			}

			queue = append(queue, pathStep{id: link, path: next})
		}
	}

	log.WithField("explored", explored).Info("graph.path not found")

	return &models.PathResult{Found: false, Path: []string{}, Explored: explored}, nil
}

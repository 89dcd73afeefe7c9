package graph

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/models"
)

// DefaultPathFetchLimit caps provider fetches per path search.
const DefaultPathFetchLimit = 500

// Engine bundles the builder, expander and path finder over one provider and
// one shared node cache.
type Engine struct {
	builder  *Builder
	expander *Expander
	paths    *PathFinder
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	pathFetchLimit int
}

// WithPathFetchLimit overrides DefaultPathFetchLimit. Zero or less disables
// the cap.
func WithPathFetchLimit(n int) EngineOption {
	return func(c *engineConfig) { c.pathFetchLimit = n }
}

// NewEngine creates an Engine. cache is shared by every Explore call made
// through the returned Engine.
func NewEngine(provider ContentProvider, cache NodeCache, log *logrus.Logger, opts ...EngineOption) *Engine {
	cfg := engineConfig{pathFetchLimit: DefaultPathFetchLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		builder:  NewBuilder(provider, cache, log),
		expander: NewExpander(provider, log),
		paths:    NewPathFinder(provider, log, cfg.pathFetchLimit),
	}
}

// Explore delegates to Builder.Explore.
func (e *Engine) Explore(ctx context.Context, root string, depth, maxNodes int) (*models.GraphData, error) {
	return e.builder.Explore(ctx, root, depth, maxNodes)
}

// Expand delegates to Expander.Expand.
func (e *Engine) Expand(ctx context.Context, g *models.GraphData, nodeID string, depth int) (*models.GraphData, error) {
	return e.expander.Expand(ctx, g, nodeID, depth)
}

// FindShortestPath delegates to PathFinder.FindShortestPath.
func (e *Engine) FindShortestPath(ctx context.Context, source, target string, maxDepth int) (*models.PathResult, error) {
	return e.paths.FindShortestPath(ctx, source, target, maxDepth)
}

// ComputeMetrics delegates to the package-level ComputeMetrics.
func (e *Engine) ComputeMetrics(g *models.GraphData) models.MetricsReport {
	return ComputeMetrics(g)
}

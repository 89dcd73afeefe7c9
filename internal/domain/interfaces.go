// Package domain defines the canonical service interfaces shared by the HTTP
// layer and the service implementations. Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/persistorai/wikigraph/internal/models"
)

// GraphService defines graph exploration operations.
type GraphService interface {
	Explore(ctx context.Context, title string, depth, maxNodes int) (*models.ExploreResponse, error)
	Expand(ctx context.Context, req models.ExpandRequest) (*models.GraphData, error)
	FindPath(ctx context.Context, req models.PathRequest) (*models.PathResponse, error)
	Metrics(ctx context.Context, title string, depth int) (*models.MetricsReport, error)
	Article(ctx context.Context, title string) (*models.ArticleContent, error)
}

// SearchService defines article search operations.
type SearchService interface {
	Search(ctx context.Context, term string, limit int) (*models.SearchResponse, error)
	Suggestions(ctx context.Context, term string, limit int) ([]string, error)
}

// ExplorationService defines saved exploration operations.
type ExplorationService interface {
	CreateExploration(ctx context.Context, req models.CreateExplorationRequest) (*models.Exploration, error)
	ListExplorations(ctx context.Context, opts models.ExplorationListOpts) (*models.ExplorationList, error)
	GetExploration(ctx context.Context, id string) (*models.Exploration, error)
	UpdateExploration(ctx context.Context, id string, req models.CreateExplorationRequest) (*models.Exploration, error)
	DeleteExploration(ctx context.Context, id string) error
}

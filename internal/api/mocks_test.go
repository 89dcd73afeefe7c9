package api_test

import (
	"context"

	"github.com/persistorai/wikigraph/internal/models"
	"github.com/persistorai/wikigraph/internal/wikipedia"
)

// mockGraphService implements api.GraphService for testing.
type mockGraphService struct {
	exploreFn  func(ctx context.Context, title string, depth, maxNodes int) (*models.ExploreResponse, error)
	expandFn   func(ctx context.Context, req models.ExpandRequest) (*models.GraphData, error)
	findPathFn func(ctx context.Context, req models.PathRequest) (*models.PathResponse, error)
	metricsFn  func(ctx context.Context, title string, depth int) (*models.MetricsReport, error)
	articleFn  func(ctx context.Context, title string) (*models.ArticleContent, error)
}

func (m *mockGraphService) Explore(ctx context.Context, title string, depth, maxNodes int) (*models.ExploreResponse, error) {
	return m.exploreFn(ctx, title, depth, maxNodes)
}

func (m *mockGraphService) Expand(ctx context.Context, req models.ExpandRequest) (*models.GraphData, error) {
	return m.expandFn(ctx, req)
}

func (m *mockGraphService) FindPath(ctx context.Context, req models.PathRequest) (*models.PathResponse, error) {
	return m.findPathFn(ctx, req)
}

func (m *mockGraphService) Metrics(ctx context.Context, title string, depth int) (*models.MetricsReport, error) {
	return m.metricsFn(ctx, title, depth)
}

func (m *mockGraphService) Article(ctx context.Context, title string) (*models.ArticleContent, error) {
	return m.articleFn(ctx, title)
}

// mockSearchService implements api.SearchService for testing.
type mockSearchService struct {
	searchFn      func(ctx context.Context, term string, limit int) (*models.SearchResponse, error)
	suggestionsFn func(ctx context.Context, term string, limit int) ([]string, error)
}

func (m *mockSearchService) Search(ctx context.Context, term string, limit int) (*models.SearchResponse, error) {
	return m.searchFn(ctx, term, limit)
}

func (m *mockSearchService) Suggestions(ctx context.Context, term string, limit int) ([]string, error) {
	return m.suggestionsFn(ctx, term, limit)
}

// mockExplorationService implements api.ExplorationService for testing.
type mockExplorationService struct {
	createFn func(ctx context.Context, req models.CreateExplorationRequest) (*models.Exploration, error)
	listFn   func(ctx context.Context, opts models.ExplorationListOpts) (*models.ExplorationList, error)
	getFn    func(ctx context.Context, id string) (*models.Exploration, error)
	updateFn func(ctx context.Context, id string, req models.CreateExplorationRequest) (*models.Exploration, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockExplorationService) CreateExploration(ctx context.Context, req models.CreateExplorationRequest) (*models.Exploration, error) {
	return m.createFn(ctx, req)
}

func (m *mockExplorationService) ListExplorations(ctx context.Context, opts models.ExplorationListOpts) (*models.ExplorationList, error) {
	return m.listFn(ctx, opts)
}

func (m *mockExplorationService) GetExploration(ctx context.Context, id string) (*models.Exploration, error) {
	return m.getFn(ctx, id)
}

func (m *mockExplorationService) UpdateExploration(ctx context.Context, id string, req models.CreateExplorationRequest) (*models.Exploration, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockExplorationService) DeleteExploration(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockProvider implements api.ProviderStatus for testing.
type mockProvider struct {
	status wikipedia.Status
}

func (m *mockProvider) Status() wikipedia.Status { return m.status }

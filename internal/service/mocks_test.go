package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return log
}

// mockEngine records calls and returns configured responses.
type mockEngine struct {
	mu    sync.Mutex
	calls []string

	explore          func(ctx context.Context, root string, depth, maxNodes int) (*models.GraphData, error)
	expand           func(ctx context.Context, g *models.GraphData, nodeID string, depth int) (*models.GraphData, error)
	findShortestPath func(ctx context.Context, source, target string, maxDepth int) (*models.PathResult, error)
	computeMetrics   func(g *models.GraphData) models.MetricsReport
}

func (m *mockEngine) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockEngine) Explore(ctx context.Context, root string, depth, maxNodes int) (*models.GraphData, error) {
	m.record("Explore")
	return m.explore(ctx, root, depth, maxNodes)
}

func (m *mockEngine) Expand(ctx context.Context, g *models.GraphData, nodeID string, depth int) (*models.GraphData, error) {
	m.record("Expand")
	return m.expand(ctx, g, nodeID, depth)
}

func (m *mockEngine) FindShortestPath(ctx context.Context, source, target string, maxDepth int) (*models.PathResult, error) {
	m.record("FindShortestPath")
	return m.findShortestPath(ctx, source, target, maxDepth)
}

func (m *mockEngine) ComputeMetrics(g *models.GraphData) models.MetricsReport {
	m.record("ComputeMetrics")
	return m.computeMetrics(g)
}

// mockArticles returns configured summaries.
type mockArticles struct {
	fetchSummaryOnly func(ctx context.Context, title string) (*models.ArticleContent, error)
}

func (m *mockArticles) FetchSummaryOnly(ctx context.Context, title string) (*models.ArticleContent, error) {
	return m.fetchSummaryOnly(ctx, title)
}

// mockSearcher returns configured search results.
type mockSearcher struct {
	search func(ctx context.Context, term string, limit int) ([]models.SearchResult, error)
}

func (m *mockSearcher) Search(ctx context.Context, term string, limit int) ([]models.SearchResult, error) {
	return m.search(ctx, term, limit)
}

// mockExplorationStore records calls and returns configured responses.
type mockExplorationStore struct {
	mu    sync.Mutex
	calls []string

	createExploration func(ctx context.Context, req models.CreateExplorationRequest) (*models.Exploration, error)
	listExplorations  func(ctx context.Context, opts models.ExplorationListOpts) (*models.ExplorationList, error)
	getExploration    func(ctx context.Context, id string) (*models.Exploration, error)
	updateExploration func(ctx context.Context, id string, req models.CreateExplorationRequest) (*models.Exploration, error)
	deleteExploration func(ctx context.Context, id string) error
}

func (m *mockExplorationStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockExplorationStore) CreateExploration(ctx context.Context, req models.CreateExplorationRequest) (*models.Exploration, error) {
	m.record("CreateExploration")
	return m.createExploration(ctx, req)
}

func (m *mockExplorationStore) ListExplorations(ctx context.Context, opts models.ExplorationListOpts) (*models.ExplorationList, error) {
	m.record("ListExplorations")
	return m.listExplorations(ctx, opts)
}

func (m *mockExplorationStore) GetExploration(ctx context.Context, id string) (*models.Exploration, error) {
	m.record("GetExploration")
	return m.getExploration(ctx, id)
}

func (m *mockExplorationStore) UpdateExploration(ctx context.Context, id string, req models.CreateExplorationRequest) (*models.Exploration, error) {
	m.record("UpdateExploration")
	return m.updateExploration(ctx, id, req)
}

func (m *mockExplorationStore) DeleteExploration(ctx context.Context, id string) error {
	m.record("DeleteExploration")
	return m.deleteExploration(ctx, id)
}

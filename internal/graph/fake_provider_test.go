package graph

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/models"
)

// fakeProvider serves a fixed link table. Ids missing from links are not found.
type fakeProvider struct {
	mu sync.Mutex

	links   map[string][]string
	failing map[string]bool
	// linkless counts upcoming fetches of an id that lose their links.
	linkless map[string]int

	fetchOne     []string
	fetchMany    [][]string
	fetchSummary []string
}

func newFakeProvider(links map[string][]string) *fakeProvider {
	return &fakeProvider{links: links, failing: map[string]bool{}, linkless: map[string]int{}}
}

func (f *fakeProvider) article(id string) (*models.ArticleContent, bool) {
	ls, ok := f.links[id]
	if !ok || f.failing[id] {
		return nil, false
	}

	a := &models.ArticleContent{
		Title:     id,
		Summary:   "summary of " + id,
		URL:       "https://example.test/wiki/" + id,
		Links:     append([]string(nil), ls...),
		LinkCount: len(ls),
	}

	if f.linkless[id] > 0 {
		f.linkless[id]--
		a.Links, a.LinkCount, a.LinksIncomplete = nil, 0, true
	}

	return a, true
}

func (f *fakeProvider) FetchOne(_ context.Context, id string) (*models.ArticleContent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetchOne = append(f.fetchOne, id)

	a, ok := f.article(id)
	if !ok {
		return nil, models.ErrArticleNotFound
	}

	return a, nil
}

func (f *fakeProvider) FetchMany(_ context.Context, ids []string) map[string]*models.ArticleContent {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetchMany = append(f.fetchMany, append([]string(nil), ids...))

	out := make(map[string]*models.ArticleContent, len(ids))
	for _, id := range ids {
		if a, ok := f.article(id); ok {
			out[id] = a
		}
	}

	return out
}

func (f *fakeProvider) FetchSummaryOnly(_ context.Context, id string) (*models.ArticleContent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetchSummary = append(f.fetchSummary, id)

	a, ok := f.article(id)
	if !ok {
		return nil, models.ErrArticleNotFound
	}

	a.Links = nil

	return a, nil
}

func (f *fakeProvider) manyFetchedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for _, batch := range f.fetchMany {
		out = append(out, batch...)
	}

	return out
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return log
}

func nodeIDs(g *models.GraphData) []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}

	return ids
}

func assertCounts(t *testing.T, g *models.GraphData) {
	t.Helper()

	if g.TotalNodes != len(g.Nodes) {
		t.Errorf("total_nodes = %d, len(nodes) = %d", g.TotalNodes, len(g.Nodes))
	}
	if g.TotalEdges != len(g.Edges) {
		t.Errorf("total_edges = %d, len(edges) = %d", g.TotalEdges, len(g.Edges))
	}
}

func assertCentralityBounds(t *testing.T, g *models.GraphData) {
	t.Helper()

	for _, n := range g.Nodes {
		if n.Centrality == nil {
			t.Errorf("node %s has no centrality", n.ID)
			continue
		}
		if c := *n.Centrality; c < 0 || c > 1 {
			t.Errorf("node %s centrality %f out of [0,1]", n.ID, c)
		}
	}
}

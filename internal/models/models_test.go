package models_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/persistorai/wikigraph/internal/models"
)

func ptr[T any](v T) *T { return &v }

func assertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func assertErrorContains(t *testing.T, err error, want string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}

	if !errors.Is(err, models.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}

	if !strings.Contains(err.Error(), want) {
		t.Errorf("expected error containing %q, got %q", want, err.Error())
	}
}

func oneNodeGraph() models.GraphData {
	return models.GraphData{
		Nodes:      []models.GraphNode{{ID: "A", Label: "A"}},
		RootNode:   "A",
		TotalNodes: 1,
	}
}

func TestExpandRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       models.ExpandRequest
		wantErr   string
		wantDepth int
	}{
		{name: "valid defaults depth", req: models.ExpandRequest{GraphData: oneNodeGraph(), NodeID: "A"}, wantDepth: 1},
		{name: "valid explicit depth", req: models.ExpandRequest{GraphData: oneNodeGraph(), NodeID: "A", Depth: 3}, wantDepth: 3},
		{name: "missing node id", req: models.ExpandRequest{GraphData: oneNodeGraph(), NodeID: "  "}, wantErr: "node_id is required"},
		{name: "depth too high", req: models.ExpandRequest{GraphData: oneNodeGraph(), NodeID: "A", Depth: 4}, wantErr: "depth must be at most 3"},
		{name: "empty graph left to node lookup", req: models.ExpandRequest{NodeID: "A"}, wantDepth: 1},
		{name: "node id too long", req: models.ExpandRequest{GraphData: oneNodeGraph(), NodeID: strings.Repeat("x", 256)}, wantErr: "exceeds maximum length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
			if tc.req.Depth != tc.wantDepth {
				t.Errorf("depth = %d, want %d", tc.req.Depth, tc.wantDepth)
			}
		})
	}
}

func TestPathRequest_Validate(t *testing.T) {
	tests := []struct {
		name         string
		req          models.PathRequest
		wantErr      string
		wantMaxDepth int
	}{
		{name: "valid default depth", req: models.PathRequest{FromArticle: "A", ToArticle: "B"}, wantMaxDepth: 6},
		{name: "valid explicit depth", req: models.PathRequest{FromArticle: "A", ToArticle: "B", MaxDepth: 2}, wantMaxDepth: 2},
		{name: "missing from", req: models.PathRequest{ToArticle: "B"}, wantErr: "from_article is required"},
		{name: "missing to", req: models.PathRequest{FromArticle: "A", ToArticle: " "}, wantErr: "to_article is required"},
		{name: "depth too high", req: models.PathRequest{FromArticle: "A", ToArticle: "B", MaxDepth: 11}, wantErr: "max_depth must be at most 10"},
		{name: "negative depth", req: models.PathRequest{FromArticle: "A", ToArticle: "B", MaxDepth: -1}, wantErr: "max_depth must be at least 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
			if tc.req.MaxDepth != tc.wantMaxDepth {
				t.Errorf("max depth = %d, want %d", tc.req.MaxDepth, tc.wantMaxDepth)
			}
		})
	}
}

func TestCreateExplorationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateExplorationRequest
		wantErr string
	}{
		{name: "valid", req: models.CreateExplorationRequest{Name: "Physics", RootNode: "A", GraphData: oneNodeGraph(), Tags: []string{"science"}}},
		{name: "missing name", req: models.CreateExplorationRequest{RootNode: "A", GraphData: oneNodeGraph()}, wantErr: "name is required"},
		{name: "name too long", req: models.CreateExplorationRequest{Name: strings.Repeat("x", 101), RootNode: "A", GraphData: oneNodeGraph()}, wantErr: "name exceeds maximum length of 100"},
		{name: "description too long", req: models.CreateExplorationRequest{Name: "n", Description: strings.Repeat("x", 501), RootNode: "A", GraphData: oneNodeGraph()}, wantErr: "description exceeds maximum length of 500"},
		{name: "missing root", req: models.CreateExplorationRequest{Name: "n", GraphData: oneNodeGraph()}, wantErr: "root_node is required"},
		{name: "empty tag", req: models.CreateExplorationRequest{Name: "n", RootNode: "A", GraphData: oneNodeGraph(), Tags: []string{""}}, wantErr: "is required"},
		{
			name: "totals mismatch",
			req: models.CreateExplorationRequest{Name: "n", RootNode: "A", GraphData: models.GraphData{
				Nodes: []models.GraphNode{{ID: "A"}}, TotalNodes: 2,
			}},
			wantErr: "totals do not match",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
			if tc.req.Tags == nil {
				t.Error("expected tags to be non-nil after validation")
			}
		})
	}
}

func TestExplorationListOpts_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		in           models.ExplorationListOpts
		wantPage     int
		wantPageSize int
		wantOffset   int
	}{
		{name: "zero values", in: models.ExplorationListOpts{}, wantPage: 1, wantPageSize: 10, wantOffset: 0},
		{name: "page size capped", in: models.ExplorationListOpts{Page: 3, PageSize: 500}, wantPage: 3, wantPageSize: 50, wantOffset: 100},
		{name: "negative page", in: models.ExplorationListOpts{Page: -2, PageSize: 5}, wantPage: 1, wantPageSize: 5, wantOffset: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := tc.in
			opts.Normalize()
			if opts.Page != tc.wantPage || opts.PageSize != tc.wantPageSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", opts.Page, opts.PageSize, tc.wantPage, tc.wantPageSize)
			}
			if opts.Offset() != tc.wantOffset {
				t.Errorf("offset = %d, want %d", opts.Offset(), tc.wantOffset)
			}
		})
	}
}

func TestArticleContent_NodeAt(t *testing.T) {
	a := models.ArticleContent{
		Title:      "Albert Einstein",
		Summary:    "Physicist",
		URL:        "https://en.wikipedia.org/wiki/Albert_Einstein",
		ExternalID: ptr(int64(736)),
		ImageURL:   "https://upload.example/einstein.jpg",
		Links:      []string{"Physics"},
	}

	n := a.NodeAt("Albert Einstein", 2)

	if n.ID != "Albert Einstein" || n.Label != "Albert Einstein" || n.Depth != 2 {
		t.Errorf("unexpected node: %+v", n)
	}
	if n.ExternalID == nil || *n.ExternalID != 736 {
		t.Errorf("external id not carried over: %v", n.ExternalID)
	}
	if n.Centrality != nil {
		t.Error("centrality must be unset on a fresh node")
	}

	empty := models.ArticleContent{}
	if got := empty.NodeAt("X", 0).Label; got != "X" {
		t.Errorf("label fallback = %q, want X", got)
	}
}

func TestGraphData_Lookups(t *testing.T) {
	g := models.GraphData{
		Nodes: []models.GraphNode{{ID: "A"}, {ID: "B"}},
		Edges: []models.GraphEdge{models.NewLinkEdge("A", "B")},
	}

	if g.NodeByID("B") == nil {
		t.Error("expected node B")
	}
	if g.NodeByID("C") != nil {
		t.Error("expected no node C")
	}
	if !g.HasEdge("A", "B") {
		t.Error("expected edge A->B")
	}
	if g.HasEdge("B", "A") {
		t.Error("edges are directed")
	}
	if e := g.Edges[0]; e.Weight != 1.0 || e.Kind != models.EdgeKindLink {
		t.Errorf("unexpected edge defaults: %+v", e)
	}
}

func TestQueryParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  interface{ Validate() error }
		wantErr string
	}{
		{name: "explore ok", params: &models.ExploreParams{Depth: 2, MaxNodes: 30}},
		{name: "explore depth zero", params: &models.ExploreParams{Depth: 0, MaxNodes: 30}, wantErr: "depth must be at least 1"},
		{name: "explore too many nodes", params: &models.ExploreParams{Depth: 1, MaxNodes: 201}, wantErr: "max_nodes must be at most 200"},
		{name: "explore too few nodes", params: &models.ExploreParams{Depth: 1, MaxNodes: 9}, wantErr: "max_nodes must be at least 10"},
		{name: "metrics depth", params: &models.MetricsParams{Depth: 4}, wantErr: "depth must be at most 3"},
		{name: "search ok", params: &models.SearchParams{Term: " einstein ", Limit: 10}},
		{name: "search blank", params: &models.SearchParams{Term: "   ", Limit: 10}, wantErr: "term is required"},
		{name: "search long", params: &models.SearchParams{Term: strings.Repeat("a", 101), Limit: 10}, wantErr: "term exceeds maximum length of 100"},
		{name: "search limit", params: &models.SearchParams{Term: "a", Limit: 51}, wantErr: "limit must be at most 50"},
		{name: "suggest limit", params: &models.SuggestParams{Term: "a", Limit: 21}, wantErr: "limit must be at most 20"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/persistorai/wikigraph/internal/api"
	"github.com/persistorai/wikigraph/internal/middleware"
	"github.com/persistorai/wikigraph/internal/models"
	"github.com/persistorai/wikigraph/internal/wikipedia"
)

func TestNewRouter_Wiring(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var exploredTitle string
	graph := &mockGraphService{
		exploreFn: func(_ context.Context, title string, _, _ int) (*models.ExploreResponse, error) {
			exploredTitle = title
			return &models.ExploreResponse{GraphData: &models.GraphData{RootNode: title}}, nil
		},
	}
	search := &mockSearchService{
		suggestionsFn: func(context.Context, string, int) ([]string, error) { return []string{"Ulm"}, nil },
	}

	h := api.NewRouter(ctx, &api.RouterDeps{
		Log:         testLogger(),
		Provider:    &mockProvider{status: wikipedia.Status{Circuit: "closed"}},
		Graph:       graph,
		Search:      search,
		CORSOrigins: []string{"http://localhost:3000"},
		Version:     "test",
	})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/api/v1/health", wantStatus: http.StatusOK},
		{name: "ready", method: http.MethodGet, path: "/api/v1/ready", wantStatus: http.StatusOK},
		{name: "explore", method: http.MethodGet, path: "/api/v1/explore/AC/DC", wantStatus: http.StatusOK},
		{name: "suggestions", method: http.MethodGet, path: "/api/v1/search/suggestions?term=ul", wantStatus: http.StatusOK},
		{name: "explorations disabled", method: http.MethodGet, path: "/api/v1/explorations", wantStatus: http.StatusServiceUnavailable},
		{name: "metrics endpoint", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nope", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(h, tc.method, tc.path, "")
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("expected a request id header")
			}
			if w.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("expected security headers")
			}
		})
	}

	if exploredTitle != "AC/DC" {
		t.Errorf("explored title = %q, want AC/DC", exploredTitle)
	}
}

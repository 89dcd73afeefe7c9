package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/wikigraph/internal/api"
	"github.com/persistorai/wikigraph/internal/wikipedia"
)

func TestLiveness_ReturnsOK(t *testing.T) {
	t.Parallel()

	provider := &mockProvider{status: wikipedia.Status{Circuit: "closed", CachedArticles: 12}}
	h := api.NewHealthHandler(nil, provider, testLogger(), "test-v1")

	r := gin.New()
	r.GET("/health", h.Liveness)

	w := doRequest(r, http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", body["status"])
	}

	if body["version"] != "test-v1" {
		t.Errorf("expected version 'test-v1', got %v", body["version"])
	}

	if body["database"] != "not_configured" {
		t.Errorf("expected database 'not_configured', got %v", body["database"])
	}

	if body["cached_articles"] != float64(12) {
		t.Errorf("expected 12 cached articles, got %v", body["cached_articles"])
	}
}

func TestReadiness_WithoutDatabase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		circuit      string
		wantProvider string
	}{
		{name: "healthy provider", circuit: "closed", wantProvider: "ok"},
		{name: "open circuit degrades", circuit: "open", wantProvider: "degraded"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := api.NewHealthHandler(nil, &mockProvider{status: wikipedia.Status{Circuit: tc.circuit}}, testLogger(), "v")

			r := gin.New()
			r.GET("/ready", h.Readiness)

			w := doRequest(r, http.MethodGet, "/ready", "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var body struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}

			if body.Status != "ready" || body.Checks["database"] != "not_configured" {
				t.Errorf("unexpected readiness: %+v", body)
			}
			if body.Checks["provider"] != tc.wantProvider {
				t.Errorf("provider = %q, want %q", body.Checks["provider"], tc.wantProvider)
			}
		})
	}
}

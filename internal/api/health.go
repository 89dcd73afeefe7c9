// Package api provides the HTTP handlers for the wikigraph service.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/db"
	"github.com/persistorai/wikigraph/internal/dbpool"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	pool      *dbpool.Pool
	provider  ProviderStatus
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. pool and provider may be nil.
func NewHealthHandler(pool *dbpool.Pool, provider ProviderStatus, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		pool:      pool,
		provider:  provider,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status         string  `json:"status"`
	Version        string  `json:"version"`
	Database       string  `json:"database"`
	Provider       string  `json:"provider"`
	CachedArticles int     `json:"cached_articles"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Database:      "not_configured",
		Provider:      "unknown",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	// Best-effort database ping (non-fatal for liveness).
	if h.pool != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		resp.Database = "connected"
		if err := h.pool.HealthCheck(ctx); err != nil {
			resp.Database = "disconnected"
		}
	}

	if h.provider != nil {
		st := h.provider.Status()
		resp.Provider = "circuit_" + st.Circuit
		resp.CachedArticles = st.CachedArticles
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready. Persistence is optional: without a
// database the service is ready with database "not_configured". An open
// provider circuit degrades but does not fail readiness.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{
		"database": "not_configured",
		"schema":   "not_configured",
		"provider": "ok",
	}
	status := "ready"
	statusCode := http.StatusOK

	if h.pool != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		checks["database"] = "ok"
		checks["schema"] = "unknown"

		if err := h.pool.HealthCheck(ctx); err != nil {
			h.log.WithError(err).Error("readiness: database health check failed")
			checks["database"] = "error"
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
		} else if err := h.checkSchema(ctx); err != nil {
			h.log.WithError(err).Error("readiness: schema check failed")
			checks["schema"] = "error"
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
		} else {
			checks["schema"] = "ok"
		}
	}

	if h.provider != nil && h.provider.Status().Circuit != "closed" {
		h.log.Warn("readiness: content provider circuit not closed")
		checks["provider"] = "degraded"
	}

	c.JSON(statusCode, readinessResponse{
		Status: status,
		Checks: checks,
	})
}

// checkSchema verifies the applied migration version matches the embedded
// migrations.
func (h *HealthHandler) checkSchema(ctx context.Context) error {
	var applied int64
	err := h.pool.QueryRow(ctx,
		"SELECT COALESCE(MAX(version_id), 0) FROM goose_db_version WHERE is_applied").Scan(&applied)
	if err != nil {
		return fmt.Errorf("schema check: %w", err)
	}

	if want := int64(db.SchemaVersion()); applied < want {
		return fmt.Errorf("schema version %d behind expected %d", applied, want)
	}

	return nil
}

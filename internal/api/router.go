package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/dbpool"
	"github.com/persistorai/wikigraph/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log          *logrus.Logger
	Pool         *dbpool.Pool // nil when persistence is disabled
	Provider     ProviderStatus
	Graph        GraphService
	Search       SearchService
	Explorations ExplorationService // nil when persistence is disabled
	CORSOrigins  []string
	Version      string
}

// Router-level limits.
const (
	maxBodySize = 5 << 20 // 5 MB; expand requests carry a whole graph
	rateLimit   = 20      // requests per second per IP
	rateBurst   = 40      // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware("/metrics"))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, deps.Provider, log, deps.Version)
	graph := NewGraphHandler(deps.Graph, log)
	search := NewSearchHandler(deps.Search, log)
	explorations := NewExplorationHandler(deps.Explorations, log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Search and article lookup.
	api.GET("/search", search.Search)
	api.GET("/search/suggestions", search.Suggestions)
	api.GET("/articles/*title", graph.Article)

	// Graph operations. Titles are catch-all params since they may contain '/'.
	api.GET("/explore/*title", graph.Explore)
	api.POST("/explore/expand", graph.Expand)
	api.POST("/path", graph.Path)
	api.GET("/graph/metrics/*title", graph.Metrics)

	// Saved explorations.
	saved := api.Group("/explorations", explorations.RequirePersistence)
	saved.POST("", explorations.Create)
	saved.GET("", explorations.List)
	saved.GET("/:id", explorations.Get)
	saved.PUT("/:id", explorations.Update)
	saved.DELETE("/:id", explorations.Delete)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	return r
}

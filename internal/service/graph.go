// Package service provides business logic between API handlers and the graph
// engine, content provider and data stores.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/wikigraph/internal/domain"
	"github.com/persistorai/wikigraph/internal/metrics"
	"github.com/persistorai/wikigraph/internal/models"
)

// Compile-time check: *GraphService must satisfy domain.GraphService.
var _ domain.GraphService = (*GraphService)(nil)

// Engine is the graph core GraphService drives.
type Engine interface {
	Explore(ctx context.Context, root string, depth, maxNodes int) (*models.GraphData, error)
	Expand(ctx context.Context, g *models.GraphData, nodeID string, depth int) (*models.GraphData, error)
	FindShortestPath(ctx context.Context, source, target string, maxDepth int) (*models.PathResult, error)
	ComputeMetrics(g *models.GraphData) models.MetricsReport
}

// ArticleLookup resolves article summaries.
type ArticleLookup interface {
	FetchSummaryOnly(ctx context.Context, title string) (*models.ArticleContent, error)
}

// GraphService wraps the engine with timing, metrics and request validation.
type GraphService struct {
	engine   Engine
	articles ArticleLookup
	pageURL  string
	log      *logrus.Logger
}

// NewGraphService creates a GraphService. pageURL is the prefix used to build
// article links in path responses.
func NewGraphService(engine Engine, articles ArticleLookup, pageURL string, log *logrus.Logger) *GraphService {
	return &GraphService{engine: engine, articles: articles, pageURL: pageURL, log: log}
}

// Explore checks the root article exists, then builds the link graph around
// it. A provider failure on the root surfaces as ErrProviderUnavailable
// rather than as a missing article.
func (s *GraphService) Explore(ctx context.Context, title string, depth, maxNodes int) (*models.ExploreResponse, error) {
	s.log.WithFields(logrus.Fields{
		"title":     title,
		"depth":     depth,
		"max_nodes": maxNodes,
	}).Debug("graph.explore")

	if err := s.requireArticle(ctx, "root", title); err != nil {
		return nil, err
	}

	start := time.Now()
	g, err := s.engine.Explore(ctx, title, depth, maxNodes)
	elapsed := time.Since(start)

	metrics.OperationDuration.WithLabelValues("explore").Observe(elapsed.Seconds())

	if err != nil {
		return nil, err
	}

	metrics.GraphNodes.Observe(float64(g.TotalNodes))

	return &models.ExploreResponse{
		GraphData:         g,
		ExplorationTime:   elapsed.Seconds(),
		ArticlesProcessed: g.TotalNodes,
	}, nil
}

// Expand adds one hop of links around req.NodeID to req.GraphData.
func (s *GraphService) Expand(ctx context.Context, req models.ExpandRequest) (*models.GraphData, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"node_id": req.NodeID,
		"nodes":   len(req.GraphData.Nodes),
	}).Debug("graph.expand")

	start := time.Now()
	defer func() {
		metrics.OperationDuration.WithLabelValues("expand").Observe(time.Since(start).Seconds())
	}()

	return s.engine.Expand(ctx, &req.GraphData, req.NodeID, req.Depth)
}

// FindPath checks both endpoints exist, then searches for the shortest link
// chain between them.
func (s *GraphService) FindPath(ctx context.Context, req models.PathRequest) (*models.PathResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := s.log.WithFields(logrus.Fields{
		"from":      req.FromArticle,
		"to":        req.ToArticle,
		"max_depth": req.MaxDepth,
	})
	log.Debug("graph.path")

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error { return s.requireArticle(egCtx, "source", req.FromArticle) })
	eg.Go(func() error { return s.requireArticle(egCtx, "target", req.ToArticle) })

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := s.engine.FindShortestPath(ctx, req.FromArticle, req.ToArticle, req.MaxDepth)
	elapsed := time.Since(start)

	metrics.OperationDuration.WithLabelValues("path").Observe(elapsed.Seconds())

	if err != nil {
		return nil, err
	}

	metrics.PathArticlesExplored.Observe(float64(res.Explored))

	steps := make([]models.PathStep, len(res.Path))
	for i, title := range res.Path {
		steps[i] = models.PathStep{ArticleTitle: title, URL: s.articleURL(title), Step: i}
	}

	log.WithFields(logrus.Fields{
		"found":     res.Found,
		"length":    len(steps),
		"explored":  res.Explored,
		"truncated": res.Truncated,
	}).Info("graph.path complete")

	return &models.PathResponse{
		PathFound:        res.Found,
		PathLength:       len(steps),
		Path:             steps,
		ExplorationTime:  elapsed.Seconds(),
		ArticlesExplored: res.Explored,
		Truncated:        res.Truncated,
	}, nil
}

// Metrics explores around title and summarizes the resulting graph.
func (s *GraphService) Metrics(ctx context.Context, title string, depth int) (*models.MetricsReport, error) {
	s.log.WithFields(logrus.Fields{"title": title, "depth": depth}).Debug("graph.metrics")

	if err := s.requireArticle(ctx, "root", title); err != nil {
		return nil, err
	}

	g, err := s.engine.Explore(ctx, title, depth, models.DefaultExploreMaxNodes)
	if err != nil {
		return nil, err
	}

	report := s.engine.ComputeMetrics(g)

	return &report, nil
}

// Article returns the summary of a single article.
func (s *GraphService) Article(ctx context.Context, title string) (*models.ArticleContent, error) {
	return s.articles.FetchSummaryOnly(ctx, title)
}

func (s *GraphService) requireArticle(ctx context.Context, role, title string) error {
	if _, err := s.articles.FetchSummaryOnly(ctx, title); err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			return fmt.Errorf("%s article %q: %w", role, title, models.ErrArticleNotFound)
		}

		return fmt.Errorf("checking %s article %q: %w", role, title, err)
	}

	return nil
}

func (s *GraphService) articleURL(title string) string {
	return s.pageURL + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

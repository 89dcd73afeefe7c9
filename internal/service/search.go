package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/domain"
	"github.com/persistorai/wikigraph/internal/metrics"
	"github.com/persistorai/wikigraph/internal/models"
)

// Compile-time check: *SearchService must satisfy domain.SearchService.
var _ domain.SearchService = (*SearchService)(nil)

// Searcher runs article searches against the content provider.
type Searcher interface {
	Search(ctx context.Context, term string, limit int) ([]models.SearchResult, error)
}

// SearchService wraps Searcher with response shaping.
type SearchService struct {
	searcher Searcher
	log      *logrus.Logger
}

// NewSearchService creates a SearchService.
func NewSearchService(searcher Searcher, log *logrus.Logger) *SearchService {
	return &SearchService{searcher: searcher, log: log}
}

// Search returns articles matching term.
func (s *SearchService) Search(ctx context.Context, term string, limit int) (*models.SearchResponse, error) {
	start := time.Now()
	results, err := s.searcher.Search(ctx, term, limit)

	metrics.OperationDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"term": term, "results": len(results)}).Debug("search")

	return &models.SearchResponse{
		Results:    results,
		TotalCount: len(results),
		SearchTerm: term,
	}, nil
}

// Suggestions returns matching titles for autocompletion. Upstream failures
// yield an empty list rather than an error.
func (s *SearchService) Suggestions(ctx context.Context, term string, limit int) ([]string, error) {
	results, err := s.searcher.Search(ctx, term, limit)
	if err != nil {
		s.log.WithError(err).WithField("term", term).Warn("search.suggestions failed")
		return []string{}, nil
	}

	titles := make([]string, 0, len(results))
	for _, r := range results {
		if r.Title != "" {
			titles = append(titles, r.Title)
		}
	}

	return titles, nil
}

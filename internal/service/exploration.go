package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/domain"
	"github.com/persistorai/wikigraph/internal/models"
)

// ExplorationStore is the data-access interface ExplorationService depends on.
// It reuses domain.ExplorationService since the method sets are identical.
type ExplorationStore = domain.ExplorationService

// Compile-time check: *ExplorationService must satisfy domain.ExplorationService.
var _ domain.ExplorationService = (*ExplorationService)(nil)

// ExplorationService validates and logs saved exploration operations.
type ExplorationService struct {
	store ExplorationStore
	log   *logrus.Logger
}

// NewExplorationService creates an ExplorationService.
func NewExplorationService(store ExplorationStore, log *logrus.Logger) *ExplorationService {
	return &ExplorationService{store: store, log: log}
}

// CreateExploration validates and saves a new exploration.
func (s *ExplorationService) CreateExploration(ctx context.Context, req models.CreateExplorationRequest) (*models.Exploration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exp, err := s.store.CreateExploration(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"exploration_id": exp.ID,
		"root_node":      exp.RootNode,
		"nodes":          exp.GraphData.TotalNodes,
	}).Info("exploration.create")

	return exp, nil
}

// ListExplorations returns a page of saved explorations.
func (s *ExplorationService) ListExplorations(ctx context.Context, opts models.ExplorationListOpts) (*models.ExplorationList, error) {
	opts.Normalize()

	return s.store.ListExplorations(ctx, opts)
}

// GetExploration returns one saved exploration (pass-through).
func (s *ExplorationService) GetExploration(ctx context.Context, id string) (*models.Exploration, error) {
	return s.store.GetExploration(ctx, id)
}

// UpdateExploration validates and replaces the contents of a saved exploration.
func (s *ExplorationService) UpdateExploration(ctx context.Context, id string, req models.CreateExplorationRequest) (*models.Exploration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exp, err := s.store.UpdateExploration(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"exploration_id": exp.ID,
		"nodes":          exp.GraphData.TotalNodes,
	}).Info("exploration.update")

	return exp, nil
}

// DeleteExploration removes a saved exploration.
func (s *ExplorationService) DeleteExploration(ctx context.Context, id string) error {
	if err := s.store.DeleteExploration(ctx, id); err != nil {
		return err
	}

	s.log.WithField("exploration_id", id).Info("exploration.delete")

	return nil
}

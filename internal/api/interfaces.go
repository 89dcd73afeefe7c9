package api

import (
	"github.com/persistorai/wikigraph/internal/domain"
	"github.com/persistorai/wikigraph/internal/wikipedia"
)

// Handler dependencies are the canonical domain interfaces.
type (
	GraphService       = domain.GraphService
	SearchService      = domain.SearchService
	ExplorationService = domain.ExplorationService
)

// ProviderStatus reports content provider health.
type ProviderStatus interface {
	Status() wikipedia.Status
}

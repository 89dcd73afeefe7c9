package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/httputil"
	"github.com/persistorai/wikigraph/internal/metrics"
	"github.com/persistorai/wikigraph/internal/models"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest      = "invalid_request"
	ErrCodeNotFound            = "not_found"
	ErrCodeInternalError       = "internal_error"
	ErrCodeProviderUnavailable = "provider_unavailable"
	ErrCodePersistenceDisabled = "persistence_disabled"
	ErrCodeTimeout             = "timeout"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// respondServiceError maps a service error onto the API error contract.
// Unclassified errors are logged and hidden behind a generic message.
func respondServiceError(c *gin.Context, log *logrus.Logger, op string, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidParameter):
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	case errors.Is(err, models.ErrArticleNotFound),
		errors.Is(err, models.ErrNodeNotFound),
		errors.Is(err, models.ErrExplorationNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, models.ErrProviderUnavailable):
		log.WithError(err).WithField("op", op).Warn("content provider unavailable")
		respondError(c, http.StatusBadGateway, ErrCodeProviderUnavailable, "content provider unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		log.WithError(err).WithField("op", op).Warn("request timed out")
		respondError(c, http.StatusGatewayTimeout, ErrCodeTimeout, "request timed out")
	default:
		log.WithError(err).WithField("op", op).Error("request failed")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}

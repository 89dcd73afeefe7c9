package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/models"
)

// SearchHandler serves article search endpoints.
type SearchHandler struct {
	svc SearchService
	log *logrus.Logger
}

// NewSearchHandler creates a SearchHandler with the given service and logger.
func NewSearchHandler(svc SearchService, log *logrus.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: log}
}

// Search handles GET /api/v1/search.
func (h *SearchHandler) Search(c *gin.Context) {
	params := models.SearchParams{Term: c.Query("term")}

	var err error
	if params.Limit, err = queryInt(c, "limit", models.DefaultSearchLimit); err == nil {
		err = params.Validate()
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	resp, err := h.svc.Search(c.Request.Context(), params.Term, params.Limit)
	if err != nil {
		respondServiceError(c, h.log, "search", err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// Suggestions handles GET /api/v1/search/suggestions. It always answers with
// a JSON array so autocompletion never breaks on upstream failures.
func (h *SearchHandler) Suggestions(c *gin.Context) {
	raw := c.Query("term")
	if raw != "" && strings.TrimSpace(raw) == "" {
		c.JSON(http.StatusOK, []string{})

		return
	}

	params := models.SuggestParams{Term: raw}

	var err error
	if params.Limit, err = queryInt(c, "limit", models.DefaultSuggestLimit); err == nil {
		err = params.Validate()
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	titles, err := h.svc.Suggestions(c.Request.Context(), params.Term, params.Limit)
	if err != nil || titles == nil {
		titles = []string{}
	}

	c.JSON(http.StatusOK, titles)
}

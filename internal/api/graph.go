package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/models"
)

// GraphHandler serves exploration, expansion, path and metrics endpoints.
type GraphHandler struct {
	svc GraphService
	log *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given service and logger.
func NewGraphHandler(svc GraphService, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{svc: svc, log: log}
}

// Explore handles GET /api/v1/explore/*title.
func (h *GraphHandler) Explore(c *gin.Context) {
	title, err := titleParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var params models.ExploreParams
	if params.Depth, err = queryInt(c, "depth", models.DefaultExploreDepth); err == nil {
		params.MaxNodes, err = queryInt(c, "max_nodes", models.DefaultExploreMaxNodes)
	}
	if err == nil {
		err = params.Validate()
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	resp, err := h.svc.Explore(c.Request.Context(), title, params.Depth, params.MaxNodes)
	if err != nil {
		respondServiceError(c, h.log, "explore", err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// Expand handles POST /api/v1/explore/expand.
func (h *GraphHandler) Expand(c *gin.Context) {
	var req models.ExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	g, err := h.svc.Expand(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, "expand", err)

		return
	}

	c.JSON(http.StatusOK, g)
}

// Path handles POST /api/v1/path.
func (h *GraphHandler) Path(c *gin.Context) {
	var req models.PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	resp, err := h.svc.FindPath(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, "path", err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// Metrics handles GET /api/v1/graph/metrics/*title.
func (h *GraphHandler) Metrics(c *gin.Context) {
	title, err := titleParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var params models.MetricsParams
	if params.Depth, err = queryInt(c, "depth", models.DefaultMetricsDepth); err == nil {
		err = params.Validate()
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	report, err := h.svc.Metrics(c.Request.Context(), title, params.Depth)
	if err != nil {
		respondServiceError(c, h.log, "metrics", err)

		return
	}

	c.JSON(http.StatusOK, report)
}

// Article handles GET /api/v1/articles/*title.
func (h *GraphHandler) Article(c *gin.Context) {
	title, err := titleParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	article, err := h.svc.Article(c.Request.Context(), title)
	if err != nil {
		respondServiceError(c, h.log, "article", err)

		return
	}

	c.JSON(http.StatusOK, article)
}

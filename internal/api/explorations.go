package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/models"
)

// ExplorationHandler serves saved exploration endpoints. A nil service means
// no database is configured; every endpoint then answers 503.
type ExplorationHandler struct {
	svc ExplorationService
	log *logrus.Logger
}

// NewExplorationHandler creates an ExplorationHandler. svc may be nil.
func NewExplorationHandler(svc ExplorationService, log *logrus.Logger) *ExplorationHandler {
	return &ExplorationHandler{svc: svc, log: log}
}

// RequirePersistence rejects requests when persistence is disabled.
func (h *ExplorationHandler) RequirePersistence(c *gin.Context) {
	if h.svc == nil {
		respondError(c, http.StatusServiceUnavailable, ErrCodePersistenceDisabled,
			"saved explorations require a configured database")

		return
	}

	c.Next()
}

// Create handles POST /api/v1/explorations.
func (h *ExplorationHandler) Create(c *gin.Context) {
	var req models.CreateExplorationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	exp, err := h.svc.CreateExploration(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, "exploration.create", err)

		return
	}

	c.JSON(http.StatusCreated, exp)
}

// List handles GET /api/v1/explorations.
func (h *ExplorationHandler) List(c *gin.Context) {
	opts := models.ExplorationListOpts{
		Search:   c.Query("search"),
		Tag:      c.Query("tag"),
		RootNode: c.Query("root_node"),
	}

	var err error
	if opts.Page, err = queryInt(c, "page", 1); err == nil {
		opts.PageSize, err = queryInt(c, "page_size", models.DefaultExplorationPageSize)
	}
	if err == nil && (opts.Page < 1 || opts.PageSize < 1 || opts.PageSize > models.MaxExplorationPageSize) {
		err = models.InvalidParameter("page must be at least 1 and page_size between 1 and %d", models.MaxExplorationPageSize)
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	list, err := h.svc.ListExplorations(c.Request.Context(), opts)
	if err != nil {
		respondServiceError(c, h.log, "exploration.list", err)

		return
	}

	c.JSON(http.StatusOK, list)
}

// Get handles GET /api/v1/explorations/:id.
func (h *ExplorationHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	exp, err := h.svc.GetExploration(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "exploration.get", err)

		return
	}

	c.JSON(http.StatusOK, exp)
}

// Update handles PUT /api/v1/explorations/:id.
func (h *ExplorationHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.CreateExplorationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	exp, err := h.svc.UpdateExploration(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, h.log, "exploration.update", err)

		return
	}

	c.JSON(http.StatusOK, exp)
}

// Delete handles DELETE /api/v1/explorations/:id.
func (h *ExplorationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.svc.DeleteExploration(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, "exploration.delete", err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true, "exploration_id": id})
}

package handler

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/service"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

// region --- DTOs ---

// ImportRunResponse is one entry of a provider's import history.
type ImportRunResponse struct {
	ID        uint                 `json:"id"`
	Provider  string               `json:"provider"`
	Received  int                  `json:"received"`
	Created   int                  `json:"created"`
	Updated   int                  `json:"updated"`
	Skipped   int                  `json:"skipped"`
	Errors    []models.ImportError `json:"errors"`
	CreatedAt time.Time            `json:"created_at"`
}

func newImportRunResponse(run models.ImportRun) ImportRunResponse {
	errs := []models.ImportError(run.Errors)
	if errs == nil {
		errs = []models.ImportError{}
	}
	return ImportRunResponse{
		ID:        run.ID,
		Provider:  run.Provider,
		Received:  run.Received,
		Created:   run.Created,
		Updated:   run.Updated,
		Skipped:   run.Skipped,
		Errors:    errs,
		CreatedAt: run.CreatedAt,
	}
}

// endregion

type ImportHandler struct {
	Imports *service.ImportService
	Hub     *hub.Hub
	Logger  *zap.Logger
}

// Register mounts the provider-scoped routes; middleware guards all of them.
func (h *ImportHandler) Register(r gin.IRouter, middleware ...gin.HandlerFunc) {
	group := r.Group("/providers/:provider", middleware...)
	group.POST("/games/import", h.ImportGames)
	group.GET("/imports", h.ListImports)
	group.GET("/imports/stream", h.StreamImports)
}

// ImportGames godoc
// @Summary      Import a provider game batch
// @Description  Validates and upserts every record of the batch. Invalid records are reported and skipped; the rest are stored.
// @Tags         imports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        provider path      string  true  "Provider namespace"
// @Param        input    body      []object true "Raw provider records"
// @Success      200 {object} service.ImportStats
// @Failure      400 {object} ErrorResponse "Body is not a JSON array"
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Token is not valid for this provider"
// @Router       /providers/{provider}/games/import [post]
func (h *ImportHandler) ImportGames(c *gin.Context) {
	provider := c.Param("provider")

	records, err := service.DecodeBatch(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats := h.Imports.Import(c.Request.Context(), provider, records)
	c.JSON(http.StatusOK, stats)
}

// ListImports godoc
// @Summary      List recent imports
// @Description  Returns the latest import runs for a provider, newest first.
// @Tags         imports
// @Produce      json
// @Security     BearerAuth
// @Param        provider path  string true  "Provider namespace"
// @Param        limit    query int    false "Max runs" default(20)
// @Success      200 {array}  ImportRunResponse
// @Failure      500 {object} ErrorResponse
// @Router       /providers/{provider}/imports [get]
func (h *ImportHandler) ListImports(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRunsLimit)))
	if err != nil || limit < 1 {
		limit = defaultRunsLimit
	}
	if limit > maxRunsLimit {
		limit = maxRunsLimit
	}

	runs, err := h.Imports.RecentRuns(c.Request.Context(), c.Param("provider"), limit)
	if err != nil {
		logger(h.Logger).Error("list import runs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve imports"})
		return
	}

	response := make([]ImportRunResponse, 0, len(runs))
	for _, run := range runs {
		response = append(response, newImportRunResponse(run))
	}
	c.JSON(http.StatusOK, response)
}

// StreamImports godoc
// @Summary      Stream import events
// @Description  Server-sent events carrying the stats of every finished import for the provider.
// @Tags         imports
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        provider path string true "Provider namespace"
// @Success      200 {string} string "event stream"
// @Router       /providers/{provider}/imports/stream [get]
func (h *ImportHandler) StreamImports(c *gin.Context) {
	if h.Hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Event stream unavailable"})
		return
	}
	provider := c.Param("provider")

	client := make(hub.Client, 8)
	h.Hub.Subscribe(provider, client)
	defer h.Hub.Unsubscribe(provider, client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent(service.EventImportCompleted, string(msg))
			return true
		}
	})
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/service"
)

// region --- DTOs ---

// GameResponse is the public view of a catalog game.
type GameResponse struct {
	Provider   string          `json:"provider" example:"acme"`
	ExternalID string          `json:"external_id" example:"g1"`
	Title      string          `json:"title" example:"Book of X"`
	Category   models.Category `json:"category" example:"slots"`
	RTP        *float64        `json:"rtp" example:"96.5"`
	CreatedAt  time.Time       `json:"created_at"`
}

func newGameResponse(game models.Game) GameResponse {
	var rtp *float64
	if game.RTP.Valid {
		v := game.RTP.Decimal.InexactFloat64()
		rtp = &v
	}
	return GameResponse{
		Provider:   game.Provider,
		ExternalID: game.ExternalID,
		Title:      game.Title,
		Category:   game.Category,
		RTP:        rtp,
		CreatedAt:  game.CreatedAt,
	}
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

type GameHandler struct {
	Catalog *service.CatalogService
	Logger  *zap.Logger
}

func (h *GameHandler) Register(r gin.IRouter) {
	r.GET("/games", h.GetGames)
}

// GetGames godoc
// @Summary      Get a list of active games
// @Description  Retrieves a paginated list of active games, with optional filtering by provider and category.
// @Tags         games
// @Produce      json
// @Param        provider query     string  false  "Provider namespace"
// @Param        category query     string  false  "Category (slots, live, table)"
// @Param        sort     query     string  false  "Sort field (created_at, title)" default(created_at)
// @Param        order    query     string  false  "Sort direction (asc, desc)" default(asc)
// @Param        page     query     int     false  "Page number" default(1)
// @Param        per_page query     int     false  "Items per page" default(20)
// @Success      200 {object} PaginatedGameResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))

	result, err := h.Catalog.ListGames(c.Request.Context(), service.ListGamesParams{
		Provider:  c.Query("provider"),
		Category:  c.Query("category"),
		Sort:      c.Query("sort"),
		Direction: c.Query("order"),
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		logger(h.Logger).Error("list games failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(result.Items))
	for _, game := range result.Items {
		response = append(response, newGameResponse(game))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, result.Total, result.CurrentPage, result.PerPage))
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/service"
)

// RouterConfig carries everything the HTTP API needs.
type RouterConfig struct {
	DB        *gorm.DB
	Imports   *service.ImportService
	Catalog   *service.CatalogService
	Hub       *hub.Hub
	Logger    *zap.Logger
	JWTSecret string
}

// NewRouter builds the engine with health routes and the /api/v1 group.
// Provider routes require a provider-scoped token unless JWTSecret is empty.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	healthHandler := &HealthHandler{DB: cfg.DB}
	healthHandler.Register(router)

	apiV1 := router.Group("/api/v1")
	{
		gameHandler := &GameHandler{Catalog: cfg.Catalog, Logger: cfg.Logger}
		gameHandler.Register(apiV1)

		var guards []gin.HandlerFunc
		if cfg.JWTSecret != "" {
			guards = append(guards, auth.AuthMiddleware(cfg.JWTSecret), auth.ProviderScopeMiddleware())
		}
		importHandler := &ImportHandler{Imports: cfg.Imports, Hub: cfg.Hub, Logger: cfg.Logger}
		importHandler.Register(apiV1, guards...)
	}

	return router
}

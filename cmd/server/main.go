package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/handler"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/logger"
	gormrepository "gamecatalog/backend/internal/repository/gorm"
	"gamecatalog/backend/internal/service"

	// Swagger imports
	_ "gamecatalog/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Game Catalog API
// @version         1.0
// @description     Provider game imports and the public catalog of active games.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, found, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if !found {
		log.Warn("no .env file found, using environment variables only")
	}

	// Connect to the database
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	defer database.Close(db)

	store := gormrepository.New(db)
	store.SkipUnchanged = cfg.ImportSkipUnchanged
	eventHub := hub.NewHub()

	importService := &service.ImportService{Store: store, Hub: eventHub, Logger: log}
	catalogService := &service.CatalogService{
		Store:          store,
		DefaultPerPage: cfg.DefaultPerPage,
		MaxPerPage:     cfg.MaxPerPage,
	}

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty, provider routes are unauthenticated")
	}

	gin.SetMode(cfg.GinMode)
	router := handler.NewRouter(handler.RouterConfig{
		DB:        db,
		Imports:   importService,
		Catalog:   catalogService,
		Hub:       eventHub,
		Logger:    log,
		JWTSecret: cfg.JWTSecret,
	})

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Request contexts end on shutdown so open event streams return.
	srv := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     router,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server is running", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		log.Error("server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

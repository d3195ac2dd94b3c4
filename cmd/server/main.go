package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amrulpxl/erpcore-docs/internal/config"
	"github.com/amrulpxl/erpcore-docs/internal/database"
	"github.com/amrulpxl/erpcore-docs/internal/handlers"
	"github.com/amrulpxl/erpcore-docs/internal/middleware"
	"github.com/amrulpxl/erpcore-docs/internal/repository"
	"github.com/amrulpxl/erpcore-docs/internal/routes"
	"github.com/amrulpxl/erpcore-docs/internal/services"
	"github.com/amrulpxl/erpcore-docs/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting ERP Core docs backend")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(config.AppConfig.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	logger.Info().Str("path", config.AppConfig.DBPath).Msg("Connected to SQLite database")

	ruleRepo := repository.NewRuleRepository(db)
	changelogRepo := repository.NewChangelogRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	authService := services.NewAuthService(adminRepo, config.AppConfig.AdminUsername, config.AppConfig.AdminPassword)

	authHandler := handlers.NewAuthHandler(authService)
	ruleHandler := handlers.NewRuleHandler(ruleRepo)
	changelogHandler := handlers.NewChangelogHandler(changelogRepo)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(config.AppConfig.FrontendURL))

	api := r.Group("/api")
	routes.RegisterAuthRoutes(api, authHandler)
	routes.RegisterRuleRoutes(api, ruleHandler)
	routes.RegisterChangelogRoutes(api, changelogHandler)

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		status := "ok"
		if dbStatus != "ok" {
			status = "degraded"
		}

		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"checks": gin.H{"database": dbStatus},
		})
	})

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

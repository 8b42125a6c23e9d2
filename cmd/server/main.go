package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/execdash/backend/internal/application/configsvc"
	dashboardapp "github.com/execdash/backend/internal/application/dashboard"
	identityapp "github.com/execdash/backend/internal/application/identity"
	"github.com/execdash/backend/internal/infrastructure/config"
	"github.com/execdash/backend/internal/infrastructure/logger"
	"github.com/execdash/backend/internal/infrastructure/persistence"
	"github.com/execdash/backend/internal/interfaces/http/handler"
	"github.com/execdash/backend/internal/interfaces/http/middleware"
	"github.com/execdash/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Executive Dashboard Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with the gorm log adapter routed through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	itemRepo := persistence.NewGormTaxonomyItemRepository(db.DB)
	navigationRepo := persistence.NewGormNavigationItemRepository(db.DB)
	aliasRepo := persistence.NewGormFieldAliasRepository(db.DB)
	initiativeRepo := persistence.NewGormInitiativeRepository(db.DB)
	achievementRepo := persistence.NewGormAchievementRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services
	taxonomyService := configsvc.NewTaxonomyService(itemRepo)
	navigationService := configsvc.NewNavigationService(navigationRepo)
	fieldMappingService := configsvc.NewFieldMappingService(itemRepo, aliasRepo, log)
	initiativeService := dashboardapp.NewInitiativeService(initiativeRepo)
	achievementService := dashboardapp.NewAchievementService(achievementRepo, initiativeRepo)
	userService := identityapp.NewUserService(userRepo)

	// HTTP handlers
	configItemHandler := handler.NewConfigItemHandler(taxonomyService)
	navigationHandler := handler.NewNavigationHandler(navigationService)
	fieldMappingHandler := handler.NewFieldMappingHandler(fieldMappingService)
	initiativeHandler := handler.NewInitiativeHandler(initiativeService)
	achievementHandler := handler.NewAchievementHandler(achievementService)
	userHandler := handler.NewUserHandler(userService)
	systemHandler := handler.NewSystemHandler(db, version)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check outside API versioning
	engine.GET("/health", systemHandler.Health)

	// Versioned API routes
	router.Mount(engine, "v1",
		configItemHandler,
		navigationHandler,
		fieldMappingHandler,
		initiativeHandler,
		achievementHandler,
		userHandler,
		systemHandler,
	)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/kosherspots/kosherspots-api/api/swagger"
	"github.com/kosherspots/kosherspots-api/internal/handler"
	"github.com/kosherspots/kosherspots-api/internal/middleware"
	"github.com/kosherspots/kosherspots-api/internal/repository"
	"github.com/kosherspots/kosherspots-api/internal/service"
	"github.com/kosherspots/kosherspots-api/pkg/cache"
	"github.com/kosherspots/kosherspots-api/pkg/config"
	"github.com/kosherspots/kosherspots-api/pkg/database"
	"github.com/kosherspots/kosherspots-api/pkg/logger"
	corsmiddleware "github.com/kosherspots/kosherspots-api/pkg/middleware/cors"
	reqidmiddleware "github.com/kosherspots/kosherspots-api/pkg/middleware/requestid"
)

// @title Kosher Spots API
// @version 1.0.0
// @description Kosher restaurant directory with live open/closed status
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Directory.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Directory.CacheTTL, logr, cfg.Directory.CacheEnabled && redisClient != nil)

	restaurantRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)

	validate := service.NewValidator()
	restaurantSvc := service.NewRestaurantService(restaurantRepo, cacheSvc, validate, logr)
	statusSvc := service.NewStatusService(nil, metricsSvc, logr)
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	exportSvc := service.NewExportService(restaurantRepo, cfg.Export.MaxRows, logr)

	restaurantHandler := handler.NewRestaurantHandler(restaurantSvc, statusSvc, logr)
	authHandler := handler.NewAuthHandler(authSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/restaurants", restaurantHandler.List)
		api.GET("/restaurants/cities", restaurantHandler.Cities)
		api.GET("/restaurants/:id", restaurantHandler.Get)
		api.GET("/restaurants/:id/status", restaurantHandler.Status)

		api.GET("/metrics/summary", metricsHandler.Snapshot)

		if cfg.Export.Enabled {
			api.GET("/export/restaurants", exportHandler.Restaurants)
		}

		guarded := api.Group("", middleware.JWT(authSvc))
		{
			guarded.POST("/restaurants", restaurantHandler.Create)
			guarded.PUT("/restaurants/:id", restaurantHandler.Update)
			guarded.DELETE("/restaurants/:id", restaurantHandler.Delete)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

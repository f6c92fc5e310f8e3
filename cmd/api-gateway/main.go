package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/students-sa/planner-api/api/swagger"
	"github.com/students-sa/planner-api/internal/handler"
	"github.com/students-sa/planner-api/internal/middleware"
	"github.com/students-sa/planner-api/internal/repository"
	"github.com/students-sa/planner-api/internal/service"
	"github.com/students-sa/planner-api/pkg/cache"
	"github.com/students-sa/planner-api/pkg/config"
	"github.com/students-sa/planner-api/pkg/database"
	"github.com/students-sa/planner-api/pkg/jobs"
	"github.com/students-sa/planner-api/pkg/logger"
	corsmiddleware "github.com/students-sa/planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/students-sa/planner-api/pkg/middleware/requestid"
	"github.com/students-sa/planner-api/pkg/storage"
)

// @title Student Planner API
// @version 1.0.0
// @description Academic planning service: catalog, eligibility, term building, scheduling and exports.
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close() //nolint:errcheck

	store, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Fatal("failed to init export storage", zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)

	validate := validator.New()

	sessionRepo := repository.NewSessionRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	exportRepo := repository.NewExportJobRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsService := service.NewMetricsService()
	cacheService := service.NewCacheService(cacheRepo, metricsService, cfg.Planner.StatsCacheTTL, logr, cfg.Planner.CacheEnabled)

	authService := service.NewAuthService(sessionRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.Session.Secret,
		TokenExpiry: cfg.Session.Expiration,
		Issuer:      "planner-api",
	})
	sessionService := service.NewSessionService(sessionRepo, scheduleRepo, cacheService, validate, logr)
	planService := service.NewPlanService(sessionRepo, cacheService, cfg.Planner.StatsCacheTTL, logr)
	termService := service.NewTermService(sessionRepo, scheduleRepo, cacheService, cfg.Planner.MaxTermCourses, logr)
	scheduleService := service.NewScheduleService(sessionRepo, scheduleRepo, validate, logr)
	exportService := service.NewExportService(exportRepo, sessionRepo, scheduleRepo, store, signer, metricsService, cfg.Exports.SignedURLTTL, logr)

	exportQueue := jobs.NewQueue(service.ExportJobType, exportService.Process, jobs.QueueConfig{
		Workers:    cfg.Exports.WorkerConcurrency,
		MaxRetries: cfg.Exports.WorkerRetries,
		Logger:     logr,
	})
	exportService.AttachQueue(exportQueue)

	queueCtx, stopQueue := context.WithCancel(context.Background())
	exportQueue.Start(queueCtx)

	cleanupDone := make(chan struct{})
	go func() {
		defer close(cleanupDone)
		ticker := time.NewTicker(cfg.Exports.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-queueCtx.Done():
				return
			case <-ticker.C:
				if err := exportService.CleanupExpired(queueCtx); err != nil {
					logr.Warn("export cleanup failed", zap.Error(err))
				}
			}
		}
	}()

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler()
	sessionHandler := handler.NewSessionHandler(sessionService)
	planHandler := handler.NewPlanHandler(planService)
	termHandler := handler.NewTermHandler(termService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	exportHandler := handler.NewExportHandler(exportService)
	metricsHandler := handler.NewMetricsHandler(metricsService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/sign-in", authHandler.SignIn)

		catalogGroup := api.Group("/catalog", middleware.OptionalSession(authService))
		{
			catalogGroup.GET("/colleges", catalogHandler.Colleges)
			catalogGroup.GET("/majors", catalogHandler.Majors)
			catalogGroup.GET("/majors/:slug", catalogHandler.Major)
		}

		api.GET("/system/metrics", metricsHandler.Snapshot)

		// Download is authorized by the signed token itself.
		api.GET("/exports/download/:token", exportHandler.Download)

		authed := api.Group("", middleware.Session(authService))
		{
			authed.GET("/session", sessionHandler.Get)
			authed.POST("/session/majors/:slug/questionnaire", sessionHandler.SubmitQuestionnaire)
			authed.POST("/session/reset", sessionHandler.Reset)

			authed.GET("/plan/available-courses", planHandler.AvailableCourses)
			authed.GET("/plan/stats", planHandler.Stats)

			authed.POST("/term/courses", termHandler.Add)
			authed.DELETE("/term/courses/:courseId", termHandler.Remove)
			authed.POST("/term/courses/:courseId/complete", termHandler.MarkCompleted)

			authed.GET("/schedule", scheduleHandler.Overview)
			authed.PATCH("/schedule/courses/:courseId", scheduleHandler.UpdateField)

			authed.POST("/exports", exportHandler.Request)
			authed.GET("/exports/:id", exportHandler.Status)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("server shutdown failed", zap.Error(err))
	}

	stopQueue()
	exportQueue.Stop()
	<-cleanupDone
	logr.Info("server stopped")
}

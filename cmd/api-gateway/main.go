package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/tahfidz-api/api/swagger"
	"github.com/noah-isme/tahfidz-api/internal/handler"
	"github.com/noah-isme/tahfidz-api/internal/middleware"
	"github.com/noah-isme/tahfidz-api/internal/repository"
	"github.com/noah-isme/tahfidz-api/internal/service"
	"github.com/noah-isme/tahfidz-api/pkg/cache"
	"github.com/noah-isme/tahfidz-api/pkg/config"
	"github.com/noah-isme/tahfidz-api/pkg/database"
	"github.com/noah-isme/tahfidz-api/pkg/jobs"
	"github.com/noah-isme/tahfidz-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/tahfidz-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/tahfidz-api/pkg/middleware/requestid"
)

// @title Tahfidz API
// @version 1.0.0
// @description Checkpoint progression and semester report engine for Quran memorisation programmes
// @BasePath /api/v1
// @schemes http

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
	sugar := logr.Sugar()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		sugar.Fatalw("failed to connect postgres", "error", err)
	}
	defer db.Close()

	var rdb *redis.Client
	if cfg.Cache.Enabled {
		rdb, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			sugar.Warnw("redis unavailable, continuing without cache", "error", err)
			rdb = nil
		}
	}

	metrics := service.NewMetricsService()
	validate := validator.New()

	cacheRepo := repository.NewCacheRepository(rdb, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.DefaultTTL, logr, cfg.Cache.Enabled && rdb != nil)

	learnerRepo := repository.NewLearnerRepository(db)
	groupRepo := repository.NewHalaqahRepository(db)
	recitationRepo := repository.NewRecitationRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	checkpointRepo := repository.NewCheckpointRepository(db)
	reportRepo := repository.NewSemesterReportRepository(db)

	progressSvc := service.NewProgressService(learnerRepo, checkpointRepo, recitationRepo, attendanceRepo, cacheSvc, cfg.Progress.CacheTTL, logr)
	learnerSvc := service.NewLearnerService(learnerRepo, validate, logr)
	recitationSvc := service.NewRecitationService(learnerRepo, recitationRepo, progressSvc, validate, logr)
	evaluationSvc := service.NewEvaluationService(learnerRepo, evaluationRepo, validate, logr)
	attendanceSvc := service.NewAttendanceService(learnerRepo, attendanceRepo, progressSvc, validate, logr)
	checkpointSvc := service.NewCheckpointService(learnerRepo, checkpointRepo, progressSvc, metrics, validate, logr)
	reportSvc := service.NewSemesterReportService(service.SemesterReportServiceParams{
		Reports:     reportRepo,
		Learners:    learnerRepo,
		Groups:      groupRepo,
		Evaluations: evaluationRepo,
		Checkpoints: checkpointRepo,
		Attendance:  attendanceRepo,
		Observer:    metrics,
		Validator:   validate,
		Logger:      logr,
		Bulk:        service.BulkReportRunnerConfig{Concurrency: cfg.Reports.BulkConcurrency},
	})

	jobCfg := service.BulkReportJobConfig{ResultTTL: cfg.Reports.ResultTTL, MaxRetries: cfg.Reports.WorkerRetries}
	worker := service.NewBulkReportWorker(cacheSvc, reportSvc, metrics, logr, jobCfg)
	queue := jobs.NewQueue("semester-report-bulk", worker.Handle, jobs.QueueConfig{
		Workers:    cfg.Reports.WorkerConcurrency,
		MaxRetries: cfg.Reports.WorkerRetries,
		Logger:     logr,
	})
	queue.Start(ctx)
	defer queue.Stop()
	jobSvc := service.NewBulkReportJobService(cacheSvc, queue, logr, jobCfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics, "/metrics", "/health"))
	r.Use(middleware.Actor())
	r.Use(middleware.ResponseMeta())

	metricsHandler := handler.NewMetricsHandler(metrics, db)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerRoutes(r.Group(cfg.APIPrefix), handlers{
		learners:    handler.NewLearnerHandler(learnerSvc),
		records:     handler.NewRecordHandler(recitationSvc, evaluationSvc, attendanceSvc),
		checkpoints: handler.NewCheckpointHandler(checkpointSvc),
		reports:     handler.NewSemesterReportHandler(reportSvc, jobSvc),
		progress:    handler.NewProgressHandler(progressSvc),
	}, logr)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "cache", cacheSvc.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
	}
}

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
	"go.uber.org/zap"

	_ "github.com/nuurulqurantahfizh-max/tahfizh8a/api/swagger"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/handler"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/middleware"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/repository"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/service"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/cache"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/config"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/database"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/export"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/logger"
	corsmiddleware "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/middleware/cors"
	reqidmiddleware "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/middleware/requestid"
)

// @title Tahfizh 8A API
// @version 1.0.0
// @description Hafalan and murajaah records of the Tahfizh class
// @BasePath /api/v1
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

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.NewPostgres(startCtx, cfg.Database)
	if err != nil {
		cancelStart()
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(startCtx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, recap cache disabled", zap.Error(err))
			redisClient = nil
		}
	}
	cancelStart()

	metrics := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.DashboardTTL, logr, cacheRepo.Enabled())

	validate := validator.New()
	policy := models.GradePolicy{ZeroMeansAbsent: cfg.Recap.ScoreZeroMeansAbsent}

	hafalanRepo := repository.NewHafalanRepository(db)
	murajaahRepo := repository.NewMurajaahRepository(db)

	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		PasswordHash:      cfg.Teacher.PasswordHash,
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	hafalanSvc := service.NewHafalanService(service.HafalanServiceParams{
		Repo:      hafalanRepo,
		Cache:     cacheSvc,
		Metrics:   metrics,
		Validator: validate,
		Logger:    logr,
	})
	murajaahSvc := service.NewMurajaahService(service.MurajaahServiceParams{
		Repo:      murajaahRepo,
		Cache:     cacheSvc,
		Metrics:   metrics,
		Validator: validate,
		Logger:    logr,
	})
	recapSvc := service.NewRecapService(service.RecapServiceParams{
		Hafalan:  hafalanRepo,
		Murajaah: murajaahRepo,
		Cache:    cacheSvc,
		Metrics:  metrics,
		Logger:   logr,
		Config: service.RecapServiceConfig{
			CacheTTL:           cfg.Cache.DashboardTTL,
			MurajaahMinTarget:  cfg.Recap.MurajaahMinTarget,
			TopPerformersLimit: cfg.Recap.TopPerformersLimit,
			Policy:             policy,
		},
	})

	htmlRenderer, err := export.NewHTMLRenderer()
	if err != nil {
		logr.Fatal("failed to parse report template", zap.Error(err))
	}
	reportSvc := service.NewReportService(service.ReportServiceParams{
		Hafalan:  hafalanRepo,
		Murajaah: murajaahRepo,
		Recaps:   recapSvc,
		HTML:     htmlRenderer,
		PDF:      export.NewPDFExporter(),
		XLSX:     export.NewXLSXExporter(),
		CSV:      export.NewCSVExporter(),
		Metrics:  metrics,
		Logger:   logr,
		Config: service.ReportServiceConfig{
			SchoolName: cfg.Class.SchoolName,
			ClassName:  cfg.Class.ClassName,
			Policy:     policy,
		},
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.WithResponseMeta())

	routes := handler.Routes{
		Auth:            handler.NewAuthHandler(authSvc),
		Catalog:         handler.NewCatalogHandler(nil),
		Hafalan:         handler.NewHafalanHandler(hafalanSvc),
		Murajaah:        handler.NewMurajaahHandler(murajaahSvc),
		Recap:           handler.NewRecapHandler(recapSvc),
		Report:          handler.NewReportHandler(reportSvc),
		Metrics:         handler.NewMetricsHandler(metrics, db.PingContext),
		RequireTeacher:  middleware.RequireTeacher(authSvc),
		OptionalTeacher: middleware.OptionalTeacher(authSvc),
	}
	routes.Register(r.Group(cfg.APIPrefix))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", server.Addr), zap.String("env", cfg.Env), zap.Bool("cache", cacheSvc.Enabled()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logr.Error("server error", zap.Error(err))
	case sig := <-shutdown:
		logr.Info("start shutdown", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logr.Error("could not stop server gracefully", zap.Error(err))
			if err := server.Close(); err != nil {
				logr.Error("could not force stop server", zap.Error(err))
			}
		}
	}
	logr.Info("server stopped")
}

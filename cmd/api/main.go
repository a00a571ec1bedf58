// @title Page View Service API
// @version 1.0
// @description GA4 page view counts by exact page path.
// @BasePath /
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pageview-service/internal/config"
	"pageview-service/internal/logging"
	"pageview-service/internal/pageviews/adapters/ga4"
	pageviewsHttp "pageview-service/internal/pageviews/adapters/http/fiber"
	pageviewsUsecase "pageview-service/internal/pageviews/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "pageview-service/docs"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(logging.Config{
		Environment: cfg.Env,
		Level:       cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// GA4 reader: a fresh authenticated client per lookup
	fetcher := ga4.NewPageViewFetcher(ga4.NewServiceFromKeyFile, logger.Named("ga4"))

	// Usecases
	getPageViewsUC := pageviewsUsecase.NewGetPageViewsUseCase(fetcher, pageviewsUsecase.Property{
		ID:      cfg.PropertyID,
		KeyFile: cfg.KeyFile,
	})

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	pageViewsHandler := pageviewsHttp.NewPageViewsHandler(getPageViewsUC, cfg.DefaultStartDate)
	app.Get("/page-views", pageViewsHandler.GetPageViews)

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber stopped", zap.Error(err))
		}
	}()

	logger.Info("server started",
		zap.String("port", cfg.Port),
		zap.String("property_id", cfg.PropertyID),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", zap.Error(err))
	}

	logger.Info("server exiting")
}

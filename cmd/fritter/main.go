package main

import (
	"context"
	"time"

	"github.com/lockehooper/fritter-fe/internal/classification"
	"github.com/lockehooper/fritter-fe/internal/event"
	"github.com/lockehooper/fritter-fe/internal/handlers"
	"github.com/lockehooper/fritter-fe/internal/store"
	"github.com/lockehooper/fritter-fe/internal/timeline"
	"github.com/lockehooper/fritter-fe/pkg/config"
	"github.com/lockehooper/fritter-fe/pkg/database"
	"github.com/lockehooper/fritter-fe/pkg/logging"
	"github.com/lockehooper/fritter-fe/pkg/monitoring"
	"github.com/lockehooper/fritter-fe/pkg/server"
	"github.com/lockehooper/fritter-fe/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("fritter")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Fritter (Feed API)")

	// Connect to database
	dbConfig := database.DefaultConfig()
	dbConfig.URL = config.GetEnv("DATABASE_URL", "")
	db := database.MustConnect(dbConfig, logger)
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.ApplySchema(ctx, db, logger); err != nil {
		cancel()
		logger.WithFields(logging.Fields{"error": err.Error()}).Fatal("Failed to apply database schema")
	}
	cancel()

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("fritter", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("fritter", version.Version, version.GitCommit)

	// Add health checks
	healthChecker.AddCheck("database", monitoring.DatabaseHealthCheck(db))
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"DATABASE_URL": config.GetEnv("DATABASE_URL", ""),
	}))

	// Feed metrics
	timelineRebuilds, eventFanout := metricsCollector.CreateFeedMetrics()
	feedMetrics := &handlers.FeedMetrics{
		TimelineRebuilds: timelineRebuilds,
		EventFanout:      eventFanout,
	}

	// Wire the domain layer
	st := store.New(db)
	builder := timeline.NewBuilder(st)
	timelines := timeline.NewManager(st, st, builder)
	guard := classification.NewGuard(st, st)
	events := event.NewService(st, st, st, guard)

	h := handlers.New(
		timelines,
		events,
		guard,
		st,
		st,
		config.GetEnv("VALIDATION_TOKEN", "SOME_CAPTCHA"),
		logger,
		feedMetrics,
	)

	// Setup router with unified monitoring
	router := server.SetupServiceRouter(logger, "fritter", healthChecker, metricsCollector)
	h.RegisterRoutes(router)

	serverConfig := server.DefaultConfig("fritter", config.GetEnv("PORT", "18050"))
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.Fatal(err.Error())
	}
}

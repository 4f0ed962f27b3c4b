package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"allotment-service/internal/infrastructure/config"
	"allotment-service/internal/infrastructure/persistence"
	"allotment-service/internal/interface/httpapi"
	apiRepo "allotment-service/internal/interface/repository"
	"allotment-service/internal/usecase"
	"allotment-service/pkg/logger"
	"allotment-service/pkg/metrics"
	"allotment-service/pkg/schedule"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Allotment Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	dateStrategy, err := schedule.ParseStrategy(cfg.DateStrategy)
	if err != nil {
		log.Fatal("Invalid date strategy", "error", err)
	}
	matchStrategy, err := usecase.ParseMatchStrategy(cfg.MatchStrategy)
	if err != nil {
		log.Fatal("Invalid match strategy", "error", err)
	}
	totalsScope, err := usecase.ParseTotalsScope(cfg.TotalsScope)
	if err != nil {
		log.Fatal("Invalid totals scope", "error", err)
	}
	scheduleYear := cfg.ScheduleYear
	if scheduleYear == 0 {
		scheduleYear = time.Now().Year()
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up metrics
	m := metrics.NewMetrics("allotment")

	// Set up the provider client and session collaborators
	providerRepo := apiRepo.NewHTTPProviderRepository(cfg.ProviderBaseURL, cfg.ProviderTimeout, log)
	normalizer := usecase.NewNormalizer(dateStrategy, scheduleYear, log)
	matcher := usecase.NewMatcher(matchStrategy)
	aggregator := usecase.NewAggregator()

	var opts []usecase.SessionOption

	// Optional station-group master data from PostgreSQL
	if cfg.StationSource == "postgres" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		opts = append(opts, usecase.WithStationGroupRepository(apiRepo.NewGormStationGroupRepository(gormDB)))
		log.Info("Station groups sourced from PostgreSQL")
	}

	// Optional snapshot cache in MongoDB
	var mongoClient *mongo.Client
	if cfg.SnapshotEnabled {
		log.Info("Connecting to MongoDB")
		client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		mongoClient = client
		opts = append(opts, usecase.WithSnapshotRepository(apiRepo.NewMongoSnapshotRepository(db)))
	}

	session := usecase.NewSession(providerRepo, normalizer, matcher, aggregator, totalsScope, log, m, opts...)

	// One-shot reference load; the session stays empty until a reload
	// succeeds, so a provider outage at startup is not fatal.
	if err := session.Load(ctx); err != nil {
		log.Error("Initial reference load failed", "error", err)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	httpapi.NewHandlers(session, log).Register(mux)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if mongoClient != nil {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Allotment Service stopped")
}

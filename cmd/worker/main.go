package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/attribution"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/attribution/markov"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/cache"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/config"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/consumer"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/journey"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/logger"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/queue/sqs"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/repository/clickhouse"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/scoring"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting attribution worker",
		zap.String("environment", cfg.Service.Environment))

	ctx := context.Background()

	// Initialize ClickHouse client
	chClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func() {
		if err := chClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}()

	// Initialize repository
	repo := clickhouse.NewRepository(chClient, log)

	// Initialize schema (create tables if not exist)
	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}

	// Initialize idempotency cache
	idempotency, err := cache.NewIdempotency(ctx, cfg.Valkey, log)
	if err != nil {
		log.Fatal("Failed to create idempotency cache", zap.Error(err))
	}
	defer func() {
		if err := idempotency.Close(); err != nil {
			log.Error("Failed to close idempotency cache", zap.Error(err))
		}
	}()

	// Initialize SQS client
	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	// Initialize the attribution pipeline
	pipeline := service.NewPipeline(
		repo,
		journey.NewBuilder(),
		attribution.NewEngine(cfg.Attribution, log),
		markov.NewCalculator(cfg.Attribution, log),
		scoring.NewEngine(cfg.Scoring, scoring.DefaultAlignmentScores(), log),
		log,
	)

	// Initialize consumer
	c := consumer.NewConsumer(cfg.Worker, sqsClient, pipeline, idempotency, log)

	// Start health check endpoint
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			if err := repo.Ping(r.Context()); err != nil {
				log.Warn("Health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		})

		addr := ":" + cfg.Worker.HealthCheckPort
		log.Info("Health check server starting", zap.String("address", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Error("Health check server error", zap.Error(err))
		}
	}()

	// Start consumer
	consumerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Info("Worker consumer starting")

	go func() {
		if err := c.Start(consumerCtx); err != nil {
			log.Fatal("Consumer error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down worker gracefully")
	cancel()
}

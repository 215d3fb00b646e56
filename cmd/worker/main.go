package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/config"
	"github.com/zoo-visit-planner/internal/pkg/logger"
	"github.com/zoo-visit-planner/internal/repository/cache"
	"github.com/zoo-visit-planner/internal/repository/catalog"
	redisRepo "github.com/zoo-visit-planner/internal/repository/redis"
	"github.com/zoo-visit-planner/internal/usecase"
	"github.com/zoo-visit-planner/internal/worker"
	"github.com/zoo-visit-planner/internal/worker/mapwarm"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Map Warm-up Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Float64s("warm_widths", cfg.Worker.WarmWidths),
		zap.Float64s("warm_dpr", cfg.Worker.WarmPixelRatios))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	catalogRepo, err := catalog.NewDefault(log)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)

	// 5. Initialize use cases (сессии воркеру не нужны)
	mapUC := usecase.NewMapUseCase(nil, catalogRepo, cacheRepo, usecase.MapOptions{
		Padding:      cfg.Map.Padding,
		DefaultWidth: cfg.Map.DefaultWidth,
		HitTolerance: cfg.Map.HitTolerance,
		CacheTTL:     cfg.Cache.MapCacheTTL,
	}, log)

	// 6. Initialize workers
	warmupWorker := mapwarm.NewMapWarmupWorker(streamRepo, mapUC, mapwarm.Options{
		ConsumerGroup: cfg.Worker.ConsumerGroup,
		MaxRetries:    cfg.Worker.MaxRetries,
		Widths:        cfg.Worker.WarmWidths,
		PixelRatios:   cfg.Worker.WarmPixelRatios,
	}, log)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(worker.DefaultShutdownTimeout, log)
	workerManager.Register(warmupWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}

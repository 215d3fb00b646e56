package main

// @title Zoo Visit Planner API
// @version 1.0.0
// @description Сервис планирования посещения зоопарка: выбор вольеров и объектов, жадный маршрут ближайшего соседа, расписание с временем переходов, карта маршрута в SVG и сохранённые планы.
// @description
// @description Основные возможности:
// @description - Каталог локаций с фильтрами и подготовленные туры
// @description - Сессии планирования: выбор, маршрут, расписание
// @description - Карта маршрута (SVG) и hit-test по ней
// @description - Сохранение, загрузка и удаление планов
// @description - Статистика по сохранённым планам

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/zoo-visit-planner/docs"
	"github.com/zoo-visit-planner/internal/config"
	httpDelivery "github.com/zoo-visit-planner/internal/delivery/http"
	"github.com/zoo-visit-planner/internal/delivery/http/handler"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/pkg/logger"
	"github.com/zoo-visit-planner/internal/repository/cache"
	"github.com/zoo-visit-planner/internal/repository/catalog"
	"github.com/zoo-visit-planner/internal/repository/plans"
	redisRepo "github.com/zoo-visit-planner/internal/repository/redis"
	"github.com/zoo-visit-planner/internal/repository/storage"
	"github.com/zoo-visit-planner/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Zoo Visit Planner")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("store_driver", cfg.Store.Driver),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Connect to Redis (optional: map cache, stats cache, plan events)
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
	}

	// 4. Open plan store
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var rawRedis *redis.Client
	if redisClient != nil {
		rawRedis = redisClient.Client()
	}
	store, err := storage.Open(ctx, cfg, rawRedis, log)
	if err != nil {
		log.Fatal("Failed to open plan store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close plan store", zap.Error(err))
		}
	}()

	// 5. Health checks
	health := storage.JoinHealth(store.Health)
	if redisClient != nil {
		health = storage.JoinHealth(store.Health, redisClient.Health)
	}
	if err := health(ctx); err != nil {
		log.Fatal("Health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize Repositories
	catalogRepo, err := catalog.NewDefault(log)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}
	planRepo := plans.NewPlanRepository(store.KV, cfg.Store.Namespace, log)
	statsRepo := plans.NewStatsRepository(catalogRepo, planRepo, log)

	cacheRepo := cache.NewNoopCacheRepository()
	var publisher repository.EventPublisher
	if redisClient != nil {
		cacheRepo = cache.NewCacheRepository(redisClient)
		publisher = redisRepo.NewStreamRepository(rawRedis, cfg.Worker.StreamReadTimeout, log)
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	sessions := usecase.NewSessionStore(cfg.Planner.SessionTTL, nil, log)

	catalogUC := usecase.NewCatalogUseCase(catalogRepo, log)
	plannerUC := usecase.NewPlannerUseCase(sessions, catalogRepo, log)
	planUC := usecase.NewPlanUseCase(planRepo, catalogRepo, sessions, cacheRepo, publisher, log)
	mapUC := usecase.NewMapUseCase(sessions, catalogRepo, cacheRepo, usecase.MapOptions{
		Padding:      cfg.Map.Padding,
		DefaultWidth: cfg.Map.DefaultWidth,
		HitTolerance: cfg.Map.HitTolerance,
		CacheTTL:     cfg.Cache.MapCacheTTL,
	}, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Catalog: handler.NewCatalogHandler(catalogUC, log),
		Session: handler.NewSessionHandler(plannerUC, log),
		Plan:    handler.NewPlanHandler(planUC, log),
		Map:     handler.NewMapHandler(mapUC, log),
		Stats:   handler.NewStatsHandler(statsUC, log),
	}

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers, health)

	// 10. Expire idle sessions in background
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepSessions(sweepCtx, sessions, cfg.Planner.SessionTTL)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")
	stopSweep()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

func sweepSessions(ctx context.Context, sessions *usecase.SessionStore, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions.Sweep()
		}
	}
}

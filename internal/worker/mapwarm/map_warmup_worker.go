package mapwarm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/worker"
)

const workerName = "map-warmup"

// MapWarmer рисует маршрут заранее и кладёт карты в кеш
type MapWarmer interface {
	WarmRoute(ctx context.Context, routeIDs []string, widths, ratios []float64) (int, error)
}

// Options - параметры прогрева
type Options struct {
	ConsumerGroup string
	MaxRetries    int
	RetryDelay    time.Duration
	Widths        []float64
	PixelRatios   []float64
}

// MapWarmupWorker слушает события сохранения планов и прогревает кеш карт
type MapWarmupWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	warmer     MapWarmer
	opts       Options
}

// NewMapWarmupWorker создает новый MapWarmupWorker
func NewMapWarmupWorker(
	streamRepo repository.StreamRepository,
	warmer MapWarmer,
	opts Options,
	logger *zap.Logger,
) *MapWarmupWorker {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}

	return &MapWarmupWorker{
		BaseWorker: worker.NewBaseWorker(workerName, domain.StreamPlanSaved, opts.ConsumerGroup, logger),
		streamRepo: streamRepo,
		warmer:     warmer,
		opts:       opts,
	}
}

// Start запускает воркер
func (w *MapWarmupWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting MapWarmupWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Float64s("widths", w.opts.Widths),
		zap.Float64s("pixel_ratios", w.opts.PixelRatios))

	// Создаем consumer group, если его нет
	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Подписываемся на стрим
	msgChan, err := w.streamRepo.ConsumeStream(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		logger.Error("Failed to consume stream", zap.Error(err))
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn("Message channel closed")
				return fmt.Errorf("message channel closed")
			}

			if err := w.processMessage(ctx, msg); err != nil {
				logger.Error("Failed to process message",
					zap.String("message_id", msg.ID),
					zap.Error(err))
				// Сообщение остаётся в pending и будет прочитано повторно
				continue
			}

			if err := w.streamRepo.AckMessage(ctx, w.Stream(), w.ConsumerGroup(), msg.ID); err != nil {
				logger.Error("Failed to acknowledge message",
					zap.String("message_id", msg.ID),
					zap.Error(err))
			}
		}
	}
}

// processMessage обрабатывает одно сообщение.
// nil означает, что сообщение можно подтвердить: битые события и исчерпанные попытки тоже подтверждаются.
func (w *MapWarmupWorker) processMessage(ctx context.Context, msg domain.StreamMessage) error {
	logger := w.Logger()

	var event domain.PlanSavedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to unmarshal event, skipping",
			zap.String("message_id", msg.ID),
			zap.String("raw_data", msg.Data),
			zap.Error(err))
		return nil
	}

	if !event.HasRoute() {
		logger.Debug("Plan has no route, nothing to warm",
			zap.Int64("plan_id", event.PlanID))
		return nil
	}

	var lastErr error
	for attempt := 1; attempt <= w.opts.MaxRetries; attempt++ {
		warmed, err := w.warmer.WarmRoute(ctx, event.Route, w.opts.Widths, w.opts.PixelRatios)
		if err == nil {
			logger.Info("Map cache warmed",
				zap.Int64("plan_id", event.PlanID),
				zap.String("event_id", event.EventID.String()),
				zap.Int("maps", warmed))
			return nil
		}

		lastErr = err
		logger.Warn("Map warm-up attempt failed",
			zap.Int64("plan_id", event.PlanID),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", w.opts.MaxRetries),
			zap.Error(err))

		if attempt == w.opts.MaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.StopChan():
			return fmt.Errorf("worker stopped during retry: %w", err)
		case <-time.After(w.opts.RetryDelay * time.Duration(attempt)):
		}
	}

	logger.Error("Map warm-up gave up",
		zap.Int64("plan_id", event.PlanID),
		zap.Error(lastErr))
	return nil
}

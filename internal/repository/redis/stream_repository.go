package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
)

const (
	readBatchSize    = 10
	defaultReadBlock = time.Second
	readErrorBackoff = time.Second
	payloadField     = "data"
)

type streamRepository struct {
	client    *redis.Client
	readBlock time.Duration
	logger    *zap.Logger
}

// NewStreamRepository создает новый экземпляр StreamRepository.
// readBlock - сколько XREADGROUP ждёт новых сообщений, <= 0 означает 1 секунду.
func NewStreamRepository(client *redis.Client, readBlock time.Duration, logger *zap.Logger) repository.StreamRepository {
	if readBlock <= 0 {
		readBlock = defaultReadBlock
	}
	return &streamRepository{client: client, readBlock: readBlock, logger: logger}
}

// CreateConsumerGroup создаёт группу с позиции "$" вместе со стримом; существующая группа не ошибка
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	switch {
	case err == nil:
		r.logger.Info("Consumer group created", zap.String("stream", stream), zap.String("group", group))
		return nil
	case strings.HasPrefix(err.Error(), "BUSYGROUP"):
		return nil
	default:
		return fmt.Errorf("create consumer group %s on %s: %w", group, stream, err)
	}
}

// ConsumeStream читает новые сообщения группы в канал до отмены ctx; канал закрывается при выходе.
// Сообщения без поля data подтверждаются и пропускаются.
func (r *streamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	out := make(chan domain.StreamMessage, readBatchSize)
	log := r.logger.With(zap.String("stream", stream), zap.String("consumer", consumer))

	go func() {
		defer close(out)
		defer log.Info("Stream consumer stopped")

		for ctx.Err() == nil {
			batch, err := r.read(ctx, stream, group, consumer)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("Failed to read from stream", zap.Error(err))
				if !sleep(ctx, readErrorBackoff) {
					return
				}
				continue
			}
			for _, msg := range batch {
				if !r.deliver(ctx, out, stream, group, msg) {
					return
				}
			}
		}
	}()

	return out, nil
}

func (r *streamRepository) read(ctx context.Context, stream, group, consumer string) ([]redis.XMessage, error) {
	res, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    readBatchSize,
		Block:    r.readBlock,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var batch []redis.XMessage
	for _, s := range res {
		batch = append(batch, s.Messages...)
	}
	return batch, nil
}

// deliver возвращает false, если ctx отменён до отправки
func (r *streamRepository) deliver(ctx context.Context, out chan<- domain.StreamMessage, stream, group string, msg redis.XMessage) bool {
	data, ok := msg.Values[payloadField].(string)
	if !ok {
		r.logger.Warn("Skipping stream message without payload", zap.String("message_id", msg.ID))
		_ = r.client.XAck(ctx, stream, group, msg.ID).Err()
		return true
	}
	select {
	case out <- domain.StreamMessage{ID: msg.ID, Data: data}:
		return true
	case <-ctx.Done():
		return false
	}
}

// AckMessage подтверждает обработку сообщения
func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	if err := r.client.XAck(ctx, stream, group, messageID).Err(); err != nil {
		return fmt.Errorf("ack %s on %s: %w", messageID, stream, err)
	}
	return nil
}

// PublishToStream кладёт data в стрим как JSON в поле data
func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal stream payload: %w", err)
	}
	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{payloadField: string(payload)},
	}).Result()
	if err != nil {
		return fmt.Errorf("publish to %s: %w", stream, err)
	}
	r.logger.Debug("Published to stream", zap.String("stream", stream), zap.String("message_id", id))
	return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

package worker

import (
	"context"
)

// Worker - фоновый обработчик, которым управляет WorkerManager
type Worker interface {
	// Start блокирует до остановки воркера или отмены контекста
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться
	Stop() error

	// Name возвращает имя воркера
	Name() string
}

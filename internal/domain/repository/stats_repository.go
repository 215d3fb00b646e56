package repository

import (
	"context"

	"github.com/zoo-visit-planner/internal/domain"
)

// StatsRepository интерфейс для работы со статистикой
type StatsRepository interface {
	// GetStatistics возвращает агрегированную статистику по каталогу и сохранённым планам
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}

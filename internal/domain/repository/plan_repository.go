package repository

import (
	"context"

	"github.com/zoo-visit-planner/internal/domain"
)

// KVStore - ключ-значение хранилище документов.
// Get возвращает (nil, nil), если ключа нет.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// PlanRepository - сохранённые планы, хранятся одним JSON-списком под ключом пространства имён.
// Повреждённый или отсутствующий документ читается как пустой список.
type PlanRepository interface {
	// List возвращает все планы в порядке сохранения
	List(ctx context.Context) ([]domain.Plan, error)

	// Get возвращает план по идентификатору
	Get(ctx context.Context, id int64) (domain.Plan, bool, error)

	// Append добавляет план в конец списка
	Append(ctx context.Context, plan domain.Plan) error

	// Delete удаляет план по идентификатору, отсутствие плана не ошибка
	Delete(ctx context.Context, id int64) error

	// ReplaceAll перезаписывает весь список
	ReplaceAll(ctx context.Context, plans []domain.Plan) error
}

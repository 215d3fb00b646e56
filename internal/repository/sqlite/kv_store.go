package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain/repository"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type kvStore struct {
	db     *DB
	logger *zap.Logger
}

// NewKVStore создает KV-хранилище поверх sqlite и применяет схему
func NewKVStore(ctx context.Context, db *DB) (repository.KVStore, error) {
	if _, err := db.ExecContext(ctx, kvSchema); err != nil {
		return nil, fmt.Errorf("apply kv schema: %w", err)
	}
	return &kvStore{db: db, logger: db.logger}, nil
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, s.db.Rebind(`SELECT value FROM kv_store WHERE key = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to read key", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	query := s.db.Rebind(`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		s.logger.Error("Failed to write key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	s.logger.Debug("Key written", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

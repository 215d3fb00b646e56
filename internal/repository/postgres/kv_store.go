package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain/repository"
)

// DefaultKVTable - таблица документов по умолчанию
const DefaultKVTable = "kv_store"

type kvStore struct {
	db     *DB
	table  string
	logger *zap.Logger
}

// NewKVStore создает KV-хранилище в таблице table и применяет схему
func NewKVStore(ctx context.Context, db *DB, table string) (repository.KVStore, error) {
	if table == "" {
		table = DefaultKVTable
	}
	s := &kvStore{
		db:     db,
		table:  pq.QuoteIdentifier(table),
		logger: db.logger,
	}

	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, s.table)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("apply kv schema: %w", err)
	}

	return s, nil
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	query := s.db.Rebind(fmt.Sprintf(`SELECT value FROM %s WHERE key = ?`, s.table))
	err := s.db.GetContext(ctx, &value, query, key)
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
	query := s.db.Rebind(fmt.Sprintf(`INSERT INTO %s (key, value, updated_at) VALUES (?, ?, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`, s.table))
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		s.logger.Error("Failed to write key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	s.logger.Debug("Key written", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

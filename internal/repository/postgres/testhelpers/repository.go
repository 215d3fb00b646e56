package testhelpers

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.Wrap(db, logger)
}

// NewKVStoreForTest creates a KV store on the given table of the test database
func NewKVStoreForTest(ctx context.Context, db *sqlx.DB, table string, logger *zap.Logger) (repository.KVStore, error) {
	return postgres.NewKVStore(ctx, NewDBForTest(db, logger), table)
}

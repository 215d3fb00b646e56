package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/config"
)

const pingTimeout = 5 * time.Second

// DB - пул соединений PostgreSQL для хранилища планов
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New открывает пул через pgx stdlib драйвер и проверяет соединение.
// При неудачном ping пул закрывается.
func New(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	db, err := sqlx.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open plan database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping plan database %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	logger.Info("Plan database connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.String("table", cfg.Table),
	)
	return &DB{DB: db, logger: logger}, nil
}

// Wrap оборачивает уже открытый пул (тесты)
func Wrap(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{DB: sqlxDB, logger: logger}
}

func (db *DB) Close() error {
	db.logger.Info("Closing plan database")
	return db.DB.Close()
}

// Health - проверка доступности для /health
func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

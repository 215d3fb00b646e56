package testhelpers

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/config"
)

const connectAttempts = 3

// TestDB - подключение к тестовой базе планов
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB подключается к базе из TEST_DB_* переменных (по умолчанию localhost:5433).
// Если PostgreSQL недоступен, тест пропускается.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	port, err := strconv.Atoi(envOr("TEST_DB_PORT", "5433"))
	if err != nil {
		t.Fatalf("TEST_DB_PORT: %v", err)
	}
	cfg := config.DatabaseConfig{
		Host:     envOr("TEST_DB_HOST", "localhost"),
		Port:     port,
		User:     envOr("TEST_DB_USER", "postgres"),
		Password: envOr("TEST_DB_PASSWORD", "postgres"),
		DBName:   envOr("TEST_DB_NAME", "zoo_planner_test"),
		SSLMode:  envOr("TEST_DB_SSLMODE", "disable"),
	}

	delay := 200 * time.Millisecond
	var db *sqlx.DB
	for attempt := 1; ; attempt++ {
		db, err = sqlx.Connect("postgres", cfg.DSN())
		if err == nil || attempt == connectAttempts {
			break
		}
		t.Logf("plan database not ready (attempt %d/%d), retrying in %v", attempt, connectAttempts, delay)
		time.Sleep(delay)
		delay *= 2
	}
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	return &TestDB{DB: db, Logger: zap.NewNop()}
}

func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		_ = tdb.DB.Close()
	}
}

// DropTable удаляет таблицу, созданную тестом
func (tdb *TestDB) DropTable(ctx context.Context, table string) error {
	_, err := tdb.DB.ExecContext(ctx, "DROP TABLE IF EXISTS "+pq.QuoteIdentifier(table))
	return err
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

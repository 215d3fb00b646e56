package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/config"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory, Namespace: "zooPlans"}}

	b, err := Open(context.Background(), cfg, nil, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.KV.Set(context.Background(), "k", []byte("v")))
	got, err := b.KV.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
	assert.NoError(t, b.Health(context.Background()))
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		Store:  config.StoreConfig{Driver: config.StoreSQLite, Namespace: "zooPlans"},
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "db", "planner.db")},
	}

	b, err := Open(context.Background(), cfg, nil, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, b.KV.Set(context.Background(), "zooPlans", []byte("[]")))
	assert.NoError(t, b.Health(context.Background()))
	assert.NoError(t, b.Close())
	assert.NoError(t, b.Close())
}

func TestOpen_RedisWithoutClient(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreRedis}}
	_, err := Open(context.Background(), cfg, nil, zap.NewNop())
	assert.Error(t, err)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "floppy"}}
	_, err := Open(context.Background(), cfg, nil, zap.NewNop())
	assert.Error(t, err)
}

func TestJoinHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	bad := func(context.Context) error { return errors.New("down") }

	assert.NoError(t, JoinHealth(ok, nil)(context.Background()))
	assert.EqualError(t, JoinHealth(ok, bad)(context.Background()), "down")
}

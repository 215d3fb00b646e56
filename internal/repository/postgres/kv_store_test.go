package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoo-visit-planner/internal/repository/postgres/testhelpers"
)

func TestKVStore_RoundTrip(t *testing.T) {
	tdb := testhelpers.SetupTestDB(t)
	defer tdb.Close()

	ctx := context.Background()
	table := fmt.Sprintf("kv_test_%d", time.Now().UnixNano())
	defer func() { _ = tdb.DropTable(ctx, table) }()

	store, err := testhelpers.NewKVStoreForTest(ctx, tdb.DB, table, tdb.Logger)
	require.NoError(t, err)

	v, err := store.Get(ctx, "zooPlans")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, store.Set(ctx, "zooPlans", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "zooPlans", []byte(`[{"id":7}]`)))

	v, err = store.Get(ctx, "zooPlans")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":7}]`, string(v))
}

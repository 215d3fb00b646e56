package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	v, err := store.Get(ctx, "zooPlans")
	require.NoError(t, err)
	assert.Nil(t, v)

	value := []byte(`[{"id":1}]`)
	require.NoError(t, store.Set(ctx, "zooPlans", value))
	value[0] = 'X'

	v, err = store.Get(ctx, "zooPlans")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(v), "stored value is isolated from caller buffers")
}

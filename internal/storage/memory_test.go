package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_RoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "expenses")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "expenses", "[]"))
	value, ok, err := kv.Get(ctx, "expenses")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)

	require.NoError(t, kv.Clear(ctx))
	assert.Equal(t, 0, kv.Len())
}

func TestMemoryKV_ErrorInjection(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	boom := errors.New("disk full")

	kv.SetErr = boom
	assert.ErrorIs(t, kv.Set(ctx, "expenses", "[]"), boom)
	assert.ErrorIs(t, kv.SetAll(ctx, map[string]string{"a": "b"}), boom)
	assert.Equal(t, 0, kv.Len(), "failed writes must not land")

	kv.SetErr = nil
	require.NoError(t, kv.Set(ctx, "expenses", "[]"))

	kv.GetErr = boom
	_, _, err := kv.Get(ctx, "expenses")
	assert.ErrorIs(t, err, boom)

	kv.ClearErr = boom
	assert.ErrorIs(t, kv.Clear(ctx), boom)
}

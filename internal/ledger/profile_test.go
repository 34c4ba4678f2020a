package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homexpense/homexpense/internal/model"
	"github.com/homexpense/homexpense/internal/storage"
)

func TestProfileStore_UpdateMergesAndPersists(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	s := NewProfileStore(kv)
	s.Load(ctx)

	require.NoError(t, s.Update(ctx, model.Profile{Name: "Alex"}))
	require.NoError(t, s.Update(ctx, model.Profile{Currency: "$"}))

	got := s.Profile()
	assert.Equal(t, "Alex", got.Name)
	assert.Equal(t, "$", got.Currency)
	assert.Empty(t, got.Email)

	// A fresh store sees the merged result.
	s2 := NewProfileStore(kv)
	s2.Load(ctx)
	assert.Equal(t, got, s2.Profile())
}

func TestProfileStore_UpdateFailureLeavesMemoryUntouched(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	s := NewProfileStore(kv)
	s.Load(ctx)
	require.NoError(t, s.Update(ctx, model.Profile{Name: "Alex"}))

	kv.SetErr = errors.New("disk full")
	err := s.Update(ctx, model.Profile{Name: "Sam"})
	require.Error(t, err)
	assert.Equal(t, "Alex", s.Profile().Name)
}

func TestProfileStore_LoadFallsBackToEmpty(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, ProfileKey, "{broken"))

	s := NewProfileStore(kv)
	s.Load(ctx)
	assert.Equal(t, model.Profile{}, s.Profile())
}

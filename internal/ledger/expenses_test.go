package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homexpense/homexpense/internal/storage"
)

// fakeClock hands out strictly increasing timestamps so generated IDs
// never collide within a test.
func fakeClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func newTestExpenseStore(t *testing.T, kv storage.KV) *ExpenseStore {
	t.Helper()
	s := NewExpenseStore(kv)
	s.now = fakeClock(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	s.Load(context.Background())
	t.Cleanup(s.Close)
	return s
}

func TestExpenseStore_AddAssignsMillisecondID(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := newTestExpenseStore(t, kv)
	ctx := context.Background()

	// Clock starts at 2024-03-01T00:00:00Z and ticks 1ms per call.
	e := s.Add(ctx, 50, "Groceries", "milk", "2024-03-05")
	require.Equal(t, "1709251200001", e.ID)

	e2 := s.Add(ctx, 10, "Other", "", "2024-03-06")
	assert.NotEqual(t, e.ID, e2.ID)
	assert.Len(t, s.List(), 2)
}

func TestExpenseStore_RoundTripThroughPersistence(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := newTestExpenseStore(t, kv)
	ctx := context.Background()

	a := s.Add(ctx, 50, "Groceries", "milk", "2024-03-05")
	b := s.Add(ctx, 120, "Rent", "march rent", "2024-03-01")
	c := s.Add(ctx, 9.99, "Entertainment", "stream", "2024-03-10")
	require.NoError(t, s.Flush(ctx))

	// A fresh store reading the same key must see exactly the same
	// three entries.
	reloaded := newTestExpenseStore(t, kv)
	got := reloaded.List()
	require.Len(t, got, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID},
		[]string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "milk", got[0].Description)
	assert.InDelta(t, 9.99, got[2].Amount, 1e-9)
}

func TestExpenseStore_TotalTracksAddAndDelete(t *testing.T) {
	s := newTestExpenseStore(t, storage.NewMemoryKV())
	ctx := context.Background()

	assert.Zero(t, s.Total())

	e := s.Add(ctx, 42.50, "Utilities", "power", "2024-03-02")
	assert.InDelta(t, 42.50, s.Total(), 1e-9)

	s.Add(ctx, 7.50, "Other", "", "2024-03-03")
	assert.InDelta(t, 50, s.Total(), 1e-9)

	s.Delete(ctx, e.ID)
	assert.InDelta(t, 7.50, s.Total(), 1e-9)

	// Deleting an unknown ID is a no-op.
	s.Delete(ctx, "no-such-id")
	assert.InDelta(t, 7.50, s.Total(), 1e-9)
	assert.Len(t, s.List(), 1)
}

func TestExpenseStore_ByCategory(t *testing.T) {
	s := newTestExpenseStore(t, storage.NewMemoryKV())
	ctx := context.Background()

	s.Add(ctx, 1, "Groceries", "a", "2024-03-01")
	s.Add(ctx, 2, "Rent", "b", "2024-03-01")
	s.Add(ctx, 3, "Groceries", "c", "2024-03-02")

	got := s.ByCategory("Groceries")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Description)
	assert.Equal(t, "c", got[1].Description)

	// Exact string match only.
	assert.Empty(t, s.ByCategory("groceries"))
	assert.Empty(t, s.ByCategory("Travel"))
}

func TestExpenseStore_LoadFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed JSON", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		require.NoError(t, kv.Set(ctx, ExpensesKey, "{not json"))
		s := newTestExpenseStore(t, kv)
		assert.Empty(t, s.List())
	})

	t.Run("read failure", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		kv.GetErr = errors.New("backend down")
		s := NewExpenseStore(kv)
		s.Load(ctx)
		t.Cleanup(s.Close)
		assert.Empty(t, s.List())
	})
}

func TestExpenseStore_WriteFailureKeepsMemoryState(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := newTestExpenseStore(t, kv)
	ctx := context.Background()

	boom := errors.New("disk full")
	kv.SetErr = boom

	s.Add(ctx, 5, "Other", "kept in memory", "2024-03-04")

	// The mutation stays in memory and the failure surfaces on Flush.
	err := s.Flush(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, s.List(), 1)

	// Flush reports each failure window once.
	require.NoError(t, s.Flush(ctx))

	// The next successful mutation re-converges disk with memory.
	kv.SetErr = nil
	s.Add(ctx, 6, "Other", "", "2024-03-05")
	require.NoError(t, s.Flush(ctx))

	reloaded := newTestExpenseStore(t, kv)
	assert.Len(t, reloaded.List(), 2)
}

func TestExpenseStore_WritesResolveInMutationOrder(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := newTestExpenseStore(t, kv)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 25; i++ {
		e := s.Add(ctx, float64(i), "Other", "", "2024-03-01")
		ids = append(ids, e.ID)
	}
	last := ids[len(ids)-1]
	s.Delete(ctx, last)
	require.NoError(t, s.Flush(ctx))

	// The persisted snapshot must reflect the final mutation, not any
	// earlier write that happened to land late.
	reloaded := newTestExpenseStore(t, kv)
	got := reloaded.List()
	require.Len(t, got, 24)
	for _, e := range got {
		assert.NotEqual(t, last, e.ID)
	}
}

func TestExpenseStore_DeletePersistsEmptyArray(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := newTestExpenseStore(t, kv)
	ctx := context.Background()

	e := s.Add(ctx, 1, "Other", "", "2024-03-01")
	s.Delete(ctx, e.ID)
	require.NoError(t, s.Flush(ctx))

	value, ok, err := kv.Get(ctx, ExpensesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[]", value)
}

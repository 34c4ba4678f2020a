package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/homexpense/homexpense/internal/model"
	"github.com/homexpense/homexpense/internal/storage"
)

// BudgetsKey is the persisted key holding the budget list.
const BudgetsKey = "budgets"

// BudgetStore owns the in-memory budget list, with the same load and
// write-through behavior as ExpenseStore on its own persisted key.
//
// One budget per category is the intended shape and Set enforces it by
// upserting. Duplicate categories can still arrive through imported
// snapshots; when they do, Update, Delete, and ByCategory all act on the
// first match in insertion order.
type BudgetStore struct {
	kv      storage.KV
	queue   *writeQueue
	budgets []model.Budget
	mu      sync.RWMutex
	closed  bool
}

// NewBudgetStore creates a store backed by kv. Call Load before reading.
func NewBudgetStore(kv storage.KV) *BudgetStore {
	return &BudgetStore{
		kv:    kv,
		queue: newWriteQueue(kv, BudgetsKey),
	}
}

// Load replaces the in-memory list with the persisted snapshot, with the
// same silent fallback to an empty list as ExpenseStore.Load.
func (s *BudgetStore) Load(ctx context.Context) {
	value, ok, err := s.kv.Get(ctx, BudgetsKey)

	var budgets []model.Budget
	switch {
	case err != nil:
		slog.Error("failed to load budgets", "error", err)
	case !ok:
	default:
		if err := json.Unmarshal([]byte(value), &budgets); err != nil {
			slog.Error("failed to parse persisted budgets", "error", err)
			budgets = nil
		}
	}

	s.mu.Lock()
	s.budgets = budgets
	s.mu.Unlock()

	slog.Debug("budgets loaded", "count", len(budgets))
}

// Set declares or replaces the budget for a category: the first existing
// entry for the category gets the new amount, otherwise a new entry is
// appended.
func (s *BudgetStore) Set(_ context.Context, category string, amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.budgets {
		if b.Category == category {
			s.budgets[i].Amount = amount
			s.persistLocked()
			return
		}
	}
	s.budgets = append(s.budgets, model.Budget{Category: category, Amount: amount})
	s.persistLocked()
}

// Update replaces the amount on the first budget matching category. It is
// a silent no-op when no budget matches.
func (s *BudgetStore) Update(_ context.Context, category string, amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.budgets {
		if b.Category == category {
			s.budgets[i].Amount = amount
			break
		}
	}
	s.persistLocked()
}

// Delete removes the first budget matching category; no-op when absent.
func (s *BudgetStore) Delete(_ context.Context, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.budgets {
		if b.Category == category {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			break
		}
	}
	s.persistLocked()
}

// List returns the budgets in insertion order.
func (s *BudgetStore) List() []model.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// ByCategory returns the first budget matching category.
func (s *BudgetStore) ByCategory(category string) (model.Budget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.budgets {
		if b.Category == category {
			return b, true
		}
	}
	return model.Budget{}, false
}

// Reset drops the in-memory list without touching durable storage.
func (s *BudgetStore) Reset() {
	s.mu.Lock()
	s.budgets = nil
	s.mu.Unlock()
}

// Flush waits until every pending write-through has resolved and returns
// the first persistence failure since the previous Flush.
func (s *BudgetStore) Flush(ctx context.Context) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return nil
	}
	return s.queue.flush(ctx)
}

// Close drains pending writes and stops the store's writer.
func (s *BudgetStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.queue.close()
}

func (s *BudgetStore) persistLocked() {
	if s.closed {
		return
	}
	list := s.budgets
	if list == nil {
		list = []model.Budget{}
	}
	payload, err := json.Marshal(list)
	if err != nil {
		slog.Error("failed to encode budgets", "error", err)
		return
	}
	s.queue.enqueue(string(payload))
}

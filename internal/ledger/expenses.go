package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/homexpense/homexpense/internal/model"
	"github.com/homexpense/homexpense/internal/storage"
)

// ExpensesKey is the persisted key holding the expense list.
const ExpensesKey = "expenses"

// ExpenseStore owns the in-memory expense list and keeps it synchronized
// with durable storage. Mutations apply in memory first and then write the
// whole list through asynchronously; a persistence failure is logged but
// never rolled back, so memory and disk can diverge until the next
// successful write.
type ExpenseStore struct {
	kv       storage.KV
	queue    *writeQueue
	now      func() time.Time
	expenses []model.Expense
	mu       sync.RWMutex
	closed   bool
}

// NewExpenseStore creates a store backed by kv. Call Load before reading.
func NewExpenseStore(kv storage.KV) *ExpenseStore {
	return &ExpenseStore{
		kv:    kv,
		queue: newWriteQueue(kv, ExpensesKey),
		now:   time.Now,
	}
}

// Load replaces the in-memory list with the persisted snapshot. A missing
// key, an unreadable store, or malformed JSON all leave the list empty;
// such failures are logged and deliberately not surfaced, so a corrupt
// snapshot can never take the store down.
func (s *ExpenseStore) Load(ctx context.Context) {
	value, ok, err := s.kv.Get(ctx, ExpensesKey)

	var expenses []model.Expense
	switch {
	case err != nil:
		slog.Error("failed to load expenses", "error", err)
	case !ok:
		// First run, nothing persisted yet.
	default:
		if err := json.Unmarshal([]byte(value), &expenses); err != nil {
			slog.Error("failed to parse persisted expenses", "error", err)
			expenses = nil
		}
	}

	s.mu.Lock()
	s.expenses = expenses
	s.mu.Unlock()

	slog.Debug("expenses loaded", "count", len(expenses))
}

// Add records a new expense and returns it with its assigned ID. The ID
// is the creation time in unix milliseconds; additions within the same
// millisecond collide. Inputs are accepted as-is: amount sign, category
// existence, and description content are the caller's responsibility.
func (s *ExpenseStore) Add(_ context.Context, amount float64, category, description, date string) model.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense := model.Expense{
		ID:          strconv.FormatInt(s.now().UnixMilli(), 10),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
	s.expenses = append(s.expenses, expense)
	s.persistLocked()

	return expense
}

// Delete removes the first expense with the given ID; it is a no-op when
// the ID is absent. The current list is persisted either way.
func (s *ExpenseStore) Delete(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			break
		}
	}
	s.persistLocked()
}

// List returns the expenses in insertion order.
func (s *ExpenseStore) List() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Total returns the all-time sum of expense amounts.
func (s *ExpenseStore) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, e := range s.expenses {
		total += e.Amount
	}
	return total
}

// ByCategory returns the expenses whose category exactly matches name,
// in insertion order.
func (s *ExpenseStore) ByCategory(name string) []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Expense
	for _, e := range s.expenses {
		if e.Category == name {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops the in-memory list. It does not touch durable storage;
// callers clear the backing store separately.
func (s *ExpenseStore) Reset() {
	s.mu.Lock()
	s.expenses = nil
	s.mu.Unlock()
}

// Flush waits until every pending write-through has resolved and returns
// the first persistence failure since the previous Flush.
func (s *ExpenseStore) Flush(ctx context.Context) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return nil
	}
	return s.queue.flush(ctx)
}

// Close drains pending writes and stops the store's writer.
func (s *ExpenseStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.queue.close()
}

// persistLocked enqueues a write-through of the full current list. The
// caller must hold the write lock; enqueuing under the lock is what keeps
// persisted snapshots in mutation order.
func (s *ExpenseStore) persistLocked() {
	if s.closed {
		return
	}
	list := s.expenses
	if list == nil {
		// Persist an empty array, not JSON null.
		list = []model.Expense{}
	}
	payload, err := json.Marshal(list)
	if err != nil {
		slog.Error("failed to encode expenses", "error", err)
		return
	}
	s.queue.enqueue(string(payload))
}

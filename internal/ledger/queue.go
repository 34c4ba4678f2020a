// Package ledger implements the persistent expense, budget, and profile
// stores. Each store owns its in-memory collection, is the sole writer to
// its persisted key, and writes the whole collection through to storage
// after every mutation.
package ledger

import (
	"context"
	"log/slog"

	"github.com/homexpense/homexpense/internal/storage"
)

type writeOp struct {
	flush   chan error
	payload string
}

// writeQueue serializes write-throughs for a single persisted key. Writes
// resolve strictly in mutation order; a failed write is logged and
// remembered, never retried and never rolled back.
type writeQueue struct {
	kv   storage.KV
	ops  chan writeOp
	done chan struct{}
	key  string
	err  error // first failure since the last flush; worker-owned
}

func newWriteQueue(kv storage.KV, key string) *writeQueue {
	q := &writeQueue{
		kv:   kv,
		key:  key,
		ops:  make(chan writeOp, 64),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *writeQueue) run() {
	defer close(q.done)
	for op := range q.ops {
		if op.flush != nil {
			op.flush <- q.err
			q.err = nil
			continue
		}
		// The enqueuing caller may be long gone, so writes use their
		// own context.
		if err := q.kv.Set(context.Background(), q.key, op.payload); err != nil {
			slog.Error("write-through failed", "key", q.key, "error", err)
			if q.err == nil {
				q.err = err
			}
		}
	}
}

func (q *writeQueue) enqueue(payload string) {
	q.ops <- writeOp{payload: payload}
}

// flush blocks until every previously enqueued write has resolved and
// returns the first failure recorded since the last flush.
func (q *writeQueue) flush(ctx context.Context) error {
	reply := make(chan error, 1)
	q.ops <- writeOp{flush: reply}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close drains the queue and stops the worker.
func (q *writeQueue) close() {
	close(q.ops)
	<-q.done
}

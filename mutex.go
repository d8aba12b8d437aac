package subject

import (
	"context"

	"github.com/o-nnerb/subject/internal"
)

// Mutex is an asynchronous mutual-exclusion lock built on the same
// suspend/resume machinery as the subjects. Unlike sync.Mutex, a blocked
// Acquire parks a cancellable waiter instead of the goroutine's scheduler
// slot, and waiters are handed the lock in FIFO order.
type Mutex struct {
	m *internal.Mutex
}

// NewMutex creates an unlocked mutex.
func NewMutex() *Mutex {
	return &Mutex{m: internal.NewMutex()}
}

// Acquire suspends until the lock is free, then holds it. Returns
// ctx.Err() if the wait is cancelled; other waiters are unaffected.
func (m *Mutex) Acquire(ctx context.Context) error {
	return m.m.Acquire(ctx)
}

// Release hands the lock to the oldest pending waiter, or unlocks if none
// remain. Releasing an unheld lock panics.
func (m *Mutex) Release() {
	m.m.Release()
}

// WithExclusive runs body while holding the lock, releasing on every exit
// path, and propagates body's error.
func (m *Mutex) WithExclusive(ctx context.Context, body func() error) error {
	return m.m.WithExclusive(ctx, body)
}

package internal

import (
	"context"
	"sync"

	"github.com/petermattis/goid"
)

// Mutex is an asynchronous mutual-exclusion lock: Acquire suspends instead
// of spinning, and a pending Acquire can be abandoned through its context
// without affecting other waiters.
type Mutex struct {
	mu      sync.Mutex
	locked  bool
	holder  int64
	waiters []*waiter
}

func NewMutex() *Mutex { return &Mutex{} }

// Acquire suspends until the lock is free, then records the caller as
// holder. A free lock is taken without suspension. Returns ctx.Err() if
// the wait is cancelled first.
func (m *Mutex) Acquire(ctx context.Context) error {
	m.mu.Lock()
	if !m.locked {
		m.locked = true
		m.holder = goid.Get()
		m.mu.Unlock()
		return nil
	}
	w := newWaiter()
	m.waiters = append(m.waiters, w)
	m.mu.Unlock()

	select {
	case <-w.ch:
		m.mu.Lock()
		m.holder = goid.Get()
		m.mu.Unlock()
		return nil
	case <-ctx.Done():
	}

	m.mu.Lock()
	if !w.cancel() {
		// Release handed the lock over before the cancellation landed.
		// We hold it now; pass it on so nobody behind us deadlocks.
		m.holder = goid.Get()
		m.mu.Unlock()
		m.Release()
		return ctx.Err()
	}
	m.removeWaiter(w)
	m.mu.Unlock()
	return ctx.Err()
}

// Release hands the lock to the oldest waiter still pending, or unlocks if
// none remain. Cancelled waiters are skipped silently. Hand-off is FIFO.
// Releasing an unheld lock, or releasing from a goroutine that is not the
// holder, is a programmer error and panics.
func (m *Mutex) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.locked {
		panic("subject: Mutex.Release called on an unheld lock")
	}
	if m.holder != 0 && m.holder != goid.Get() {
		panic("subject: Mutex.Release called by a goroutine that is not the holder")
	}
	for len(m.waiters) > 0 {
		w := m.waiters[0]
		m.waiters = m.waiters[1:]
		if w.schedule() {
			// Hand-off: the lock stays held. The resumed waiter records
			// itself as holder when it wakes; until then holder is zero.
			m.holder = 0
			return
		}
	}
	m.locked = false
	m.holder = 0
}

// WithExclusive runs body while holding the lock, releasing on every exit
// path including a panic in body.
func (m *Mutex) WithExclusive(ctx context.Context, body func() error) error {
	if err := m.Acquire(ctx); err != nil {
		return err
	}
	defer m.Release()
	return body()
}

func (m *Mutex) removeWaiter(w *waiter) {
	for i, cur := range m.waiters {
		if cur == w {
			m.waiters = append(m.waiters[:i], m.waiters[i+1:]...)
			return
		}
	}
}

package internal

import (
	"context"
	"sync"
)

// Gate is a single-permit suspension point: closed at construction, opened
// by Signal, and once open every Wait returns without suspending until
// Reset re-arms it.
//
// Chain nodes use a Gate in open-once mode, signalled exactly when the
// node's payload is finalized and never re-armed.
type Gate struct {
	mu      sync.Mutex
	open    bool
	waiters []*waiter
}

func NewGate() *Gate { return &Gate{} }

// Wait suspends the caller until the gate is open. An already-open gate
// returns immediately. Cancellation unblocks only this caller; if a signal
// wins the race against the cancellation, the gate is open and Wait
// returns nil.
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	if g.open {
		g.mu.Unlock()
		return nil
	}
	w := newWaiter()
	g.waiters = append(g.waiters, w)
	g.mu.Unlock()

	select {
	case <-w.ch:
		return nil
	case <-ctx.Done():
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if !w.cancel() {
		return nil
	}
	g.remove(w)
	return ctx.Err()
}

// Signal opens the gate and resumes every parked waiter in arrival order.
// Signalling an already-open gate is a no-op for state but still drains
// any stragglers.
func (g *Gate) Signal() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.open = true
	for _, w := range g.waiters {
		w.schedule()
	}
	g.waiters = nil
}

// IsOpen reports the gate's state without suspending.
func (g *Gate) IsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.open
}

// Reset re-arms an open gate. Only composed primitives re-arm; a chain
// node's gate stays open forever once signalled.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.open = false
}

// Close releases every parked waiter as an implicit signal. Owners must
// call it when tearing down a gate that may never be signalled, so no
// goroutine is left parked on a gate that cannot open.
func (g *Gate) Close() {
	g.Signal()
}

// remove splices w out of the waiter list so a cancelled waiter does not
// occupy a slot until the next drain. Must be called under mu.
func (g *Gate) remove(w *waiter) {
	for i, cur := range g.waiters {
		if cur == w {
			g.waiters = append(g.waiters[:i], g.waiters[i+1:]...)
			return
		}
	}
}

package internal

// waiterState is the lifecycle of a parked waiter. All transitions happen
// under the owning primitive's guard mutex, so a waiter is resumed at most
// once even when a signal races a cancellation.
type waiterState int

const (
	waiterPending waiterState = iota
	waiterScheduled
	waiterCancelled
)

type waiter struct {
	ch    chan struct{}
	state waiterState
}

func newWaiter() *waiter {
	return &waiter{ch: make(chan struct{})}
}

// schedule resumes the waiter and reports whether this call won the
// transition. Cancelled or already-scheduled waiters are left untouched.
// Must be called under the owner's guard mutex.
func (w *waiter) schedule() bool {
	if w.state != waiterPending {
		return false
	}
	w.state = waiterScheduled
	close(w.ch)
	return true
}

// cancel marks the waiter cancelled so later drains skip it. Reports false
// if the waiter was already scheduled, in which case the wake-up stands.
// Must be called under the owner's guard mutex.
func (w *waiter) cancel() bool {
	if w.state != waiterPending {
		return false
	}
	w.state = waiterCancelled
	return true
}

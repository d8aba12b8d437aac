package subject

import (
	"context"

	"github.com/o-nnerb/subject/internal"
)

// Expectation is a one-shot await-a-side-effect helper, typically used in
// tests: the code path under observation calls Fulfill, the test Waits.
// Any number of goroutines may Wait; one Fulfill releases them all, and
// every later Wait returns immediately.
type Expectation struct {
	gate *internal.Gate
}

// NewExpectation creates an unfulfilled expectation.
func NewExpectation() *Expectation {
	return &Expectation{gate: internal.NewGate()}
}

// Fulfill marks the expectation met and wakes every waiter. Safe to call
// more than once; later calls are no-ops.
func (e *Expectation) Fulfill() {
	e.gate.Signal()
}

// Wait suspends until the expectation is fulfilled, or returns ctx.Err()
// if cancelled first.
func (e *Expectation) Wait(ctx context.Context) error {
	return e.gate.Wait(ctx)
}

// Fulfilled reports whether Fulfill has been called, without suspending.
func (e *Expectation) Fulfilled() bool {
	return e.gate.IsOpen()
}

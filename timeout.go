package subject

import (
	"context"
	"time"
)

// WithTimeout races op against a deadline and cancels the loser. The
// winner's result is surfaced: if op finishes first its value and error
// are returned as-is; if the deadline fires first op's context is
// cancelled and the error is context.DeadlineExceeded.
//
// op runs on its own goroutine, so a deadline win does not wait for op to
// notice the cancellation.
func WithTimeout[T any](ctx context.Context, d time.Duration, op func(context.Context) (T, error)) (T, error) {
	var zero T

	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		val T
		err error
	}

	// Buffered so the loser's send never blocks after the deadline won.
	ch := make(chan result, 1)
	go func() {
		v, err := op(opCtx)
		ch <- result{val: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.val, res.err
	case <-timer.C:
		return zero, context.DeadlineExceeded
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

package subject

import (
	"context"

	"github.com/o-nnerb/subject/internal"
)

// Cursor is a per-subscriber traversal handle over a subject. A cursor is
// owned by exactly one consumer and must not be advanced concurrently;
// cursors on the same subject are otherwise fully independent.
type Cursor[T any] struct {
	cursor *internal.Cursor
}

// Next suspends until the next value is published and yields it. It
// returns io.EOF once the subject completed (terminal) and ctx.Err() if
// the wait was cancelled first; after a cancellation the cursor's position
// is unchanged and Next may be called again.
func (c *Cursor[T]) Next(ctx context.Context) (T, error) {
	v, err := c.cursor.Advance(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](v), nil
}

// TryNext yields the next value only if one is already available, without
// suspending.
func (c *Cursor[T]) TryNext() (T, bool) {
	v, ok := c.cursor.TryAdvance()
	if !ok {
		var zero T
		return zero, false
	}
	return as[T](v), true
}

package subject

import "github.com/o-nnerb/subject/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Replay is a broadcast subject that always carries a current value.
// Reading the value never suspends, and a cursor attached at any time
// observes the latest value as its first element.
type Replay[T any] struct {
	chain *internal.Chain
}

// NewReplay creates a replay subject seeded with initial.
func NewReplay[T any](initial T) *Replay[T] {
	c := internal.NewChain()
	c.Append(initial)
	return &Replay[T]{chain: c}
}

// Value returns the current value without suspending.
func (r *Replay[T]) Value() T {
	v, ok := r.chain.Last()
	if !ok {
		panic("subject: Replay has no current value")
	}
	return as[T](v)
}

// Send publishes v as the new current value. Every subscribed cursor
// observes it, in publish order. Send never blocks. Values sent after
// Close are dropped.
func (r *Replay[T]) Send(v T) {
	r.chain.Append(v)
}

// Subscribe attaches a new cursor whose first Next yields the current
// value immediately.
func (r *Replay[T]) Subscribe() *Cursor[T] {
	return &Cursor[T]{cursor: r.chain.Subscribe(true)}
}

// Close completes the subject so every outstanding cursor terminates with
// end-of-stream instead of waiting forever. Safe to call more than once.
func (r *Replay[T]) Close() {
	r.chain.Complete()
}

// Broadcast is a fire-and-forget subject with no initial value: cursors
// observe only values published after they attached.
type Broadcast[T any] struct {
	chain *internal.Chain
}

// NewBroadcast creates an empty broadcast subject.
func NewBroadcast[T any]() *Broadcast[T] {
	return &Broadcast[T]{chain: internal.NewChain()}
}

// Send publishes v to every subscribed cursor and reports whether it was
// accepted. Values sent after Complete are silently dropped. Send never
// blocks.
func (b *Broadcast[T]) Send(v T) bool {
	return b.chain.Append(v)
}

// Subscribe attaches a new cursor at the current unpublished tail; it
// observes nothing retroactively.
func (b *Broadcast[T]) Subscribe() *Cursor[T] {
	return &Cursor[T]{cursor: b.chain.Subscribe(false)}
}

// Complete terminates the subject: every current and future cursor reaches
// end-of-stream deterministically. Safe to call more than once.
func (b *Broadcast[T]) Complete() {
	b.chain.Complete()
}

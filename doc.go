// Package subject provides in-process broadcast primitives for
// asynchronous producers and consumers.
//
// A subject is an append-only chain of write-once value nodes that any
// number of independent cursors traverse concurrently. Every cursor
// observes every value published after it attached, in publish order,
// with no buffering limits and no drops. Publishing never blocks.
//
// # Subjects
//
// [Replay] always carries a current value, seeded at construction. A new
// cursor's first [Cursor.Next] yields the latest value immediately, then
// waits for the next publish:
//
//	s := subject.NewReplay(0)
//	cur := s.Subscribe()
//	s.Send(1)
//	v, _ := cur.Next(ctx) // 0
//	v, _ = cur.Next(ctx)  // 1
//
// [Broadcast] has no initial value; cursors observe only values published
// after they attached. [Broadcast.Complete] terminates every current and
// future cursor, and values sent afterwards are dropped:
//
//	b := subject.NewBroadcast[string]()
//	cur := b.Subscribe()
//	b.Send("a")
//	b.Complete()
//	v, _ := cur.Next(ctx)   // "a"
//	_, err := cur.Next(ctx) // io.EOF
//
// # Iteration contract
//
// [Cursor.Next] returns io.EOF when the subject completed (a normal,
// non-erroring termination) and ctx.Err() when the wait was cancelled.
// The two are distinct: a cancelled cursor is still attached and may be
// advanced again.
//
// # Companions
//
// [Mutex] is an asynchronous mutual-exclusion lock built on the same
// suspend/resume machinery as the chain. [Expectation] is a one-shot
// await-a-side-effect helper for tests. [WithTimeout] races an operation
// against a deadline. [Iterator] and [AsIterator] erase a concrete cursor
// behind a uniform produce-next-or-end contract.
package subject

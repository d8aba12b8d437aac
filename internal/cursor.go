package internal

import (
	"context"
	"io"
)

// Cursor is a single-owner traversal position over a chain. Cursors are
// fully independent: advancing one never blocks or perturbs another, they
// share only write-once nodes.
type Cursor struct {
	node *Node // nil once exhausted
}

// Advance waits for the current node to finalize, yields its payload and
// moves to the successor. End of stream is io.EOF and is terminal. A
// cancelled wait returns ctx.Err() and leaves the position unchanged, so
// the owner may retry.
func (c *Cursor) Advance(ctx context.Context) (any, error) {
	if c.node == nil {
		return nil, io.EOF
	}
	if err := c.node.gate.Wait(ctx); err != nil {
		return nil, err
	}
	n := c.node
	c.node = n.next
	if n.state != StateProduced {
		// Completed, or still waiting after the gate opened (a torn-down
		// chain). Either way the stream is over.
		c.node = nil
		return nil, io.EOF
	}
	return n.value, nil
}

// TryAdvance yields the current payload only if it is already finalized,
// without suspending. ok is false when the cursor would have to wait or
// the stream is over.
func (c *Cursor) TryAdvance() (any, bool) {
	if c.node == nil || !c.node.gate.IsOpen() {
		return nil, false
	}
	n := c.node
	c.node = n.next
	if n.state != StateProduced {
		c.node = nil
		return nil, false
	}
	return n.value, true
}

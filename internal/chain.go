package internal

import "sync"

// Chain owns the append-only node sequence behind one subject. All tail
// mutation is serialized through a single guard mutex, so publish order is
// exactly the order values become visible. Cursors hold plain node
// references and never take the lock.
//
// Nodes stay alive for as long as the chain or some cursor still references
// them; there is no other retention.
type Chain struct {
	mu   sync.Mutex
	tail *Node // deepest node; StateWaiting unless the chain completed
	last *Node // most recently produced node; nil until the first Append
}

func NewChain() *Chain {
	return &Chain{tail: newNode()}
}

// Append finalizes the logical tail with value, links a fresh waiting
// successor and opens the tail's gate. Publishing never suspends. On a
// completed chain the value is rejected and Append reports false.
func (c *Chain) Append(value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.tailLocked()
	if n.state == StateCompleted {
		return false
	}
	n.value = value
	n.state = StateProduced
	n.next = newNode()
	c.tail = n.next
	c.last = n
	n.gate.Signal()
	return true
}

// Complete finalizes the chain: the tail becomes terminal, its gate opens
// and no successor is ever linked. Safe to call any number of times.
func (c *Chain) Complete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.tailLocked()
	if n.state == StateCompleted {
		return
	}
	n.state = StateCompleted
	c.tail = n
	n.gate.Signal()
}

// tailLocked follows next links to the logical tail. The walk is short in
// practice since tail is maintained on every append. Must be called under
// mu.
func (c *Chain) tailLocked() *Node {
	n := c.tail
	for n.next != nil {
		n = n.next
	}
	return n
}

// Subscribe anchors a new cursor. With replay set it anchors at the latest
// produced node, whose gate is already open, so the cursor's first advance
// yields the current value without suspending. Otherwise it anchors at the
// waiting tail and only future publishes are observed.
func (c *Chain) Subscribe(replay bool) *Cursor {
	c.mu.Lock()
	defer c.mu.Unlock()
	if replay && c.last != nil {
		return &Cursor{node: c.last}
	}
	return &Cursor{node: c.tail}
}

// Last returns the most recently produced value. ok is false if nothing
// has been produced yet.
func (c *Chain) Last() (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return nil, false
	}
	return c.last.value, true
}

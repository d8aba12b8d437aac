package internal

// NodeState is the lifecycle of a chain node. A node is written at most
// once: it leaves StateWaiting for StateProduced or StateCompleted and its
// payload never changes again. The only later mutation is the single link
// that attaches the next waiting node.
type NodeState int

const (
	StateWaiting NodeState = iota
	StateProduced
	StateCompleted
)

// Node is one link of the append-only chain: a write-once payload (or a
// terminal marker) plus a gate that opens exactly when the node is
// finalized. Finalized fields are read without locks; the gate's channel
// close publishes them to readers.
type Node struct {
	state NodeState
	value any
	next  *Node
	gate  *Gate
}

func newNode() *Node {
	return &Node{gate: NewGate()}
}

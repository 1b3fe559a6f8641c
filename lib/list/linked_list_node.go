package list

// Node is one link of the chain. Each node owns its successor through the
// next reference; the tail node's next is nil. Nodes are allocated by the
// list only, either by a push or by a clone.
type Node[T comparable] struct {
	next  *Node[T]
	Value T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func newNode[T comparable](v T, next *Node[T]) *Node[T] {
	return &Node[T]{
		Value: v,
		next:  next,
	}
}

func (e *Node[T]) HasNext() bool {
	if e == nil {
		return false
	}
	return e.next != nil
}

func (e *Node[T]) Next() *Node[T] {
	if e == nil {
		return nil
	}
	return e.next
}

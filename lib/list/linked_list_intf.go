package list

// Note that the singly linked list is not thread safe.
// Callers sharing one list across goroutines have to serialize the access
// by themselves.

type ListErr string

func (err ListErr) Error() string {
	return string(err)
}

const (
	ErrListEmpty ListErr = "empty singly linked list"
)

// SwapStatus reports the outcome of a SwapByValue call. Only SwapSwapped
// relinks the chain; every other status leaves the list untouched.
type SwapStatus uint8

const (
	SwapSwapped SwapStatus = iota
	SwapSameValue
	SwapTooFewNodes
	SwapValueNotFound
)

func (st SwapStatus) String() string {
	switch st {
	case SwapSwapped:
		return "swapped"
	case SwapSameValue:
		return "same value"
	case SwapTooFewNodes:
		return "too few nodes"
	case SwapValueNotFound:
		return "value not found"
	default:
	}
	return "unknown"
}

// SinglyLinkedList is a mutable head-to-tail ordered sequence backed by a
// chain of singly linked nodes with cached head and tail references.
// Elements stored in the nodes are shared with the callers, never owned.
type SinglyLinkedList[T comparable] interface {
	Len() int64
	IsEmpty() bool
	// Front returns the head node of list l or nil if the list is empty.
	Front() *Node[T]
	// Back returns the tail node of list l or nil if the list is empty.
	Back() *Node[T]
	// PeekFront returns the element held by the head node of list l.
	// The bool result is false if the list is empty.
	PeekFront() (T, bool)
	// PeekBack returns the element held by the tail node of list l.
	// The bool result is false if the list is empty.
	PeekBack() (T, bool)
	// PushFront inserts a new node e with value v at the front of list l and returns e.
	PushFront(v T) *Node[T]
	// PushBack inserts a new node e with value v at the back of list l and returns e.
	PushBack(v T) *Node[T]
	// PopFront unlinks the head node of list l and returns its element.
	// The bool result is false if the list is empty.
	PopFront() (T, bool)
	// Foreach traverses the list l and executes function fn for each node.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, e *Node[T]) error) error
	// FindFirst finds the first node that satisfies the compareFn and returns the node and true if found.
	// If compareFn is not provided, it will use the default compare function that compares the value of node.
	FindFirst(v T, compareFn ...func(e *Node[T]) bool) (*Node[T], bool)
	// Values returns the elements of list l as a slice in head-to-tail order.
	Values() []T
	// SwapByValue relinks the first node holding v1 and the first node
	// holding v2 so that the two exchange their positions in the chain.
	// All other nodes stay in place and the size never changes.
	SwapByValue(v1, v2 T) SwapStatus
	// Equal reports whether list l and other hold equal elements in the
	// same order. Lists of different concrete implementations are never
	// equal, even with identical contents.
	Equal(other SinglyLinkedList[T]) bool
	// Clone returns a new list over a freshly allocated chain of nodes
	// holding the same element values in the same order.
	Clone() SinglyLinkedList[T]
	// Hash returns an order sensitive digest of the elements.
	// Two lists equal under Equal produce the same hash.
	Hash() uint64
	// String renders the list as "(e1, e2, ..., en)". Debugging only.
	String() string
}

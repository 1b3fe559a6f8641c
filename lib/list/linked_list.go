package list

import (
	"fmt"
	"math/bits"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/xlog"
)

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

type singlyLinkedList[T comparable] struct {
	head   *Node[T]
	tail   *Node[T]
	hasher chainHasher[T]
	logger xlog.XLogger
	stats  *singlyLinkedListStats
	size   int64
}

func NewSinglyLinkedList[T comparable](opts ...SinglyLinkedListOption) SinglyLinkedList[T] {
	sllOpts := &sllOptions{}
	for _, o := range opts {
		o(sllOpts)
	}
	l := &singlyLinkedList[T]{
		hasher: newChainHasher[T](),
		logger: sllOpts.logger,
	}
	if sllOpts.enableStats {
		l.stats = newSinglyLinkedListStats(sllOpts.statsName)
	}
	return l
}

func (l *singlyLinkedList[T]) Len() int64 {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *singlyLinkedList[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *singlyLinkedList[T]) Front() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *singlyLinkedList[T]) Back() *Node[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

func (l *singlyLinkedList[T]) PeekFront() (v T, exists bool) {
	if l == nil || l.head == nil {
		return
	}
	return l.head.Value, true
}

func (l *singlyLinkedList[T]) PeekBack() (v T, exists bool) {
	if l == nil || l.tail == nil {
		return
	}
	return l.tail.Value, true
}

func (l *singlyLinkedList[T]) PushFront(v T) *Node[T] {
	if l == nil {
		return nil
	}

	e := newNode(v, l.head)
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.size++

	l.stats.IncreasePushCount()
	l.stats.RecordElementCount(1)
	return e
}

func (l *singlyLinkedList[T]) PushBack(v T) *Node[T] {
	if l == nil {
		return nil
	}

	e := newNode(v, nil)
	if l.tail == nil {
		l.head, l.tail = e, e
	} else {
		l.tail.next = e
		l.tail = e
	}
	l.size++

	l.stats.IncreasePushCount()
	l.stats.RecordElementCount(1)
	return e
}

func (l *singlyLinkedList[T]) PopFront() (v T, exists bool) {
	if l == nil || l.head == nil {
		return
	}

	e := l.head
	l.head = e.next
	if l.head == nil {
		l.tail = nil
	}
	// avoid memory leaks
	e.next = nil
	l.size--

	l.stats.IncreasePopCount()
	l.stats.RecordElementCount(-1)
	return e.Value, true
}

func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, e *Node[T]) error) error {
	if l == nil || fn == nil || l.size == 0 {
		return ErrListEmpty
	}

	var idx int64 = 0
	for e := l.head; e != nil; e = e.next {
		if err := fn(idx, e); err != nil {
			return err
		}
		idx++
	}
	return nil
}

func (l *singlyLinkedList[T]) FindFirst(targetV T, compareFn ...func(e *Node[T]) bool) (*Node[T], bool) {
	if l == nil || l.size == 0 {
		return nil, false
	}

	if len(compareFn) <= 0 {
		compareFn = []func(e *Node[T]) bool{
			func(e *Node[T]) bool {
				return e.Value == targetV
			},
		}
	}

	for e := l.head; e != nil; e = e.next {
		if compareFn[0](e) {
			return e, true
		}
	}
	return nil, false
}

func (l *singlyLinkedList[T]) Values() []T {
	if l == nil {
		return nil
	}

	values := make([]T, 0, l.size)
	for e := l.head; e != nil; e = e.next {
		values = append(values, e.Value)
	}
	return values
}

// scanFirst locates the first node holding v and its predecessor. The
// predecessor is nil when the match is the head node. visited counts the
// inspected nodes whether or not the value was found.
func (l *singlyLinkedList[T]) scanFirst(v T) (e, prev *Node[T], visited int64) {
	for e = l.head; e != nil && e.Value != v; e = e.next {
		prev = e
		visited++
	}
	if e != nil {
		visited++
	}
	return e, prev, visited
}

func (l *singlyLinkedList[T]) swapDone(st SwapStatus, v1, v2 T, scanned int64) SwapStatus {
	l.stats.RecordSwap(st, scanned)
	if l.logger != nil {
		l.logger.Debug("sll swap by value",
			zap.Any("v1", v1),
			zap.Any("v2", v2),
			zap.String("status", st.String()),
			zap.Int64("scannedNodes", scanned),
		)
	}
	return st
}

func (l *singlyLinkedList[T]) SwapByValue(v1, v2 T) SwapStatus {
	if l == nil {
		return SwapTooFewNodes
	}
	if v1 == v2 {
		return l.swapDone(SwapSameValue, v1, v2, 0)
	}
	if l.size < 2 {
		return l.swapDone(SwapTooFewNodes, v1, v2, 0)
	}

	e1, prev1, visited1 := l.scanFirst(v1)
	e2, prev2, visited2 := l.scanFirst(v2)
	scanned := visited1 + visited2
	if e1 == nil || e2 == nil {
		return l.swapDone(SwapValueNotFound, v1, v2, scanned)
	}

	wasTail := e1 == l.tail || e2 == l.tail

	// Rewire both predecessors before exchanging the successors. For
	// adjacent nodes the exchange depends on the self link created here,
	// otherwise one of them drops off the chain.
	if prev1 != nil {
		prev1.next = e2
	} else {
		l.head = e2
	}
	if prev2 != nil {
		prev2.next = e1
	} else {
		l.head = e1
	}
	e1.next, e2.next = e2.next, e1.next

	// Relinking moves at most one of them to the rear, the tail has to
	// follow.
	if wasTail {
		if e1.next == nil {
			l.tail = e1
		} else if e2.next == nil {
			l.tail = e2
		}
	}
	return l.swapDone(SwapSwapped, v1, v2, scanned)
}

func (l *singlyLinkedList[T]) Equal(other SinglyLinkedList[T]) bool {
	rhs, ok := other.(*singlyLinkedList[T])
	if !ok {
		// avoid implementation mismatch
		return false
	}
	if l == rhs {
		return true
	}
	if l == nil || rhs == nil || l.size != rhs.size {
		return false
	}

	for e1, e2 := l.head, rhs.head; e1 != nil; e1, e2 = e1.next, e2.next {
		if e1.Value != e2.Value {
			return false
		}
	}
	return true
}

func (l *singlyLinkedList[T]) Clone() SinglyLinkedList[T] {
	if l == nil {
		return nil
	}

	// The clone shares the hasher and the logger, both are stateless for
	// the chain. It carries no stats, avoid double counting.
	cloned := &singlyLinkedList[T]{
		hasher: l.hasher,
		logger: l.logger,
	}
	for e := l.head; e != nil; e = e.next {
		n := newNode(e.Value, nil)
		if cloned.tail == nil {
			cloned.head, cloned.tail = n, n
		} else {
			cloned.tail.next = n
			cloned.tail = n
		}
		cloned.size++
	}
	return cloned
}

// Hash folds the element digests into one order sensitive value, the
// rotation keeps permutations of the same elements apart.
func (l *singlyLinkedList[T]) Hash() uint64 {
	if l == nil {
		return 0
	}

	var h uint32
	for e := l.head; e != nil; e = e.next {
		h ^= uint32(l.hasher.digest(e.Value))
		h = bits.RotateLeft32(h, 5)
	}
	return uint64(h)
}

// String renders the chain from front to back as "(v1, v2, v3)". An
// empty list renders as "()".
func (l *singlyLinkedList[T]) String() string {
	if l == nil {
		return "()"
	}

	var sb strings.Builder
	sb.WriteByte('(')
	for e := l.head; e != nil; e = e.next {
		if e != l.head {
			sb.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&sb, "%v", e.Value)
	}
	sb.WriteByte(')')
	return sb.String()
}

// checkChain audits the structural invariants, all violations are
// combined into the returned error.
func (l *singlyLinkedList[T]) checkChain() error {
	if l == nil {
		return nil
	}

	var err error
	if l.size == 0 {
		if l.head != nil || l.tail != nil {
			err = multierr.Append(err, fmt.Errorf("size 0 with head (%p) or tail (%p) set", l.head, l.tail))
		}
		return err
	}
	if l.head == nil {
		err = multierr.Append(err, fmt.Errorf("size %d with nil head", l.size))
	}
	if l.tail == nil {
		err = multierr.Append(err, fmt.Errorf("size %d with nil tail", l.size))
	}
	if err != nil {
		return err
	}
	if l.tail.next != nil {
		err = multierr.Append(err, fmt.Errorf("tail (%v) links to a successor", l.tail.Value))
	}

	var reachable int64
	e := l.head
	for ; e != nil && reachable <= l.size; e = e.next {
		reachable++
		if e == l.tail {
			break
		}
	}
	switch {
	case e == nil:
		err = multierr.Append(err, fmt.Errorf("tail unreachable from head, chain ends after %d nodes", reachable))
	case e != l.tail:
		err = multierr.Append(err, fmt.Errorf("chain does not terminate at tail after %d nodes", reachable))
	case reachable != l.size:
		err = multierr.Append(err, fmt.Errorf("size %d but %d reachable nodes", l.size, reachable))
	}
	return err
}

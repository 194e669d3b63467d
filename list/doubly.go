package list

import (
	"iter"
	"time"

	"github.com/harrybrwn/linear/array"
	"github.com/harrybrwn/linear/structure"
)

// Number is the set of types a Doubly list can hold. Values are
// priorities, lower values are served first.
type Number = array.Number

type doublyNode[T Number] struct {
	value      T
	prev, next *doublyNode[T]
}

// Doubly is a doubly linked list kept in ascending order by
// InsertOrdered. PushFront and PushBack skip the ordering, and callers
// using them are responsible for the order of the list.
type Doubly[T Number] struct {
	head, tail *doublyNode[T]
	clock      structure.Clock
	// time of the last refresh
	refreshed time.Time
}

var _ structure.Structure[float64] = (*Doubly[float64])(nil)

func NewDoubly[T Number]() *Doubly[T] {
	return NewDoublyClock[T](structure.SystemClock)
}

// NewDoublyClock creates a list that measures elapsed time with c.
func NewDoublyClock[T Number](c structure.Clock) *Doubly[T] {
	return &Doubly[T]{clock: c, refreshed: c.Now()}
}

func (l *Doubly[T]) Len() int {
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

func (l *Doubly[T]) Empty() bool { return l.head == nil }
func (l *Doubly[T]) Full() bool  { return false }

// Load resets the list and inserts every value in priority order. Any
// order the values already had is discarded.
func (l *Doubly[T]) Load(values []T) error {
	l.head, l.tail = nil, nil
	for _, v := range values {
		l.InsertOrdered(v)
	}
	return nil
}

// InsertOrdered inserts v before the first value that is not less than
// v. Equal values are placed ahead of the ones already in the list.
func (l *Doubly[T]) InsertOrdered(v T) {
	cur := l.head
	for cur != nil && cur.value < v {
		cur = cur.next
	}
	if cur == nil {
		l.pushBack(v)
		return
	}
	l.insertBefore(cur, v)
}

func (l *Doubly[T]) PushFront(v T) error {
	if l.head == nil {
		l.pushBack(v)
		return nil
	}
	l.insertBefore(l.head, v)
	return nil
}

func (l *Doubly[T]) PushBack(v T) error {
	l.pushBack(v)
	return nil
}

func (l *Doubly[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, structure.ErrEmpty
	}
	return l.unlink(l.head), nil
}

func (l *Doubly[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, structure.ErrEmpty
	}
	return l.unlink(l.tail), nil
}

func (l *Doubly[T]) PeekFront(consume bool) (T, error) {
	if l.head == nil {
		var zero T
		return zero, structure.ErrEmpty
	}
	if consume {
		return l.unlink(l.head), nil
	}
	return l.head.value, nil
}

// PeekHighestPriority is the same as PeekFront. The head is always the
// lowest value in an ordered list.
func (l *Doubly[T]) PeekHighestPriority(consume bool) (T, error) {
	return l.PeekFront(consume)
}

func (l *Doubly[T]) PeekBack(consume bool) (T, error) {
	if l.tail == nil {
		var zero T
		return zero, structure.ErrEmpty
	}
	if consume {
		return l.unlink(l.tail), nil
	}
	return l.tail.value, nil
}

func (l *Doubly[T]) QueryAt(position int, consume bool) (T, error) {
	n, err := l.nodeAt(position)
	if err != nil {
		var zero T
		return zero, err
	}
	if consume {
		return l.unlink(n), nil
	}
	return n.value, nil
}

func (l *Doubly[T]) RemoveAt(position int) (T, error) {
	var zero T
	if position < 0 {
		return zero, structure.Position(structure.ErrInvalidPosition, position)
	}
	n, err := l.nodeAt(position)
	if err != nil {
		return zero, err
	}
	return l.unlink(n), nil
}

// SwapAdjacent exchanges the nodes at position and position+1 by
// relinking them.
func (l *Doubly[T]) SwapAdjacent(position int) error {
	if position < 0 || position >= l.Len()-1 {
		return structure.Position(structure.ErrOutOfRange, position)
	}
	a := l.head
	for range position {
		a = a.next
	}
	l.swap(a)
	return nil
}

// swap exchanges a with the node that follows it.
func (l *Doubly[T]) swap(a *doublyNode[T]) {
	var (
		b     = a.next
		prev  = a.prev
		after = b.next
	)
	if prev != nil {
		prev.next = b
	} else {
		l.head = b
	}
	b.prev = prev
	a.next = after
	b.next = a
	a.prev = b
	if after != nil {
		after.prev = a
	} else {
		l.tail = a
	}
}

// Sort orders the list in ascending order with bubble sort and returns
// the number of swaps it made.
func (l *Doubly[T]) Sort() int {
	swaps := 0
	n := l.Len()
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		cur := l.head
		for j := 0; j < n-pass-1; j++ {
			if cur.value > cur.next.value {
				// cur moves forward one position so it stays the left
				// side of the next comparison
				l.swap(cur)
				swapped = true
				swaps++
			} else {
				cur = cur.next
			}
		}
		if !swapped {
			break
		}
	}
	return swaps
}

// Elapse subtracts minutes from every value. Values are allowed to go
// negative, a negative value is overdue.
func (l *Doubly[T]) Elapse(minutes T) {
	for cur := l.head; cur != nil; cur = cur.next {
		cur.value -= minutes
	}
}

// RefreshWaitTimes applies the whole minutes that passed since the last
// refresh using Elapse.
func (l *Doubly[T]) RefreshWaitTimes() {
	if l.clock == nil {
		l.clock = structure.SystemClock
		l.refreshed = l.clock.Now()
		return
	}
	now := l.clock.Now()
	minutes := T(now.Sub(l.refreshed).Minutes())
	if minutes <= 0 {
		return
	}
	l.Elapse(minutes)
	l.refreshed = l.refreshed.Add(time.Duration(float64(minutes) * float64(time.Minute)))
}

func (l *Doubly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Backward iterates from the back of the list to the front.
func (l *Doubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.tail; cur != nil; cur = cur.prev {
			if !yield(cur.value) {
				return
			}
		}
	}
}

func (l *Doubly[T]) pushBack(v T) {
	n := &doublyNode[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
}

func (l *Doubly[T]) insertBefore(mark *doublyNode[T], v T) {
	n := &doublyNode[T]{value: v, prev: mark.prev, next: mark}
	if mark.prev == nil {
		l.head = n
	} else {
		mark.prev.next = n
	}
	mark.prev = n
}

func (l *Doubly[T]) unlink(n *doublyNode[T]) T {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	return n.value
}

func (l *Doubly[T]) nodeAt(position int) (*doublyNode[T], error) {
	if position < 0 || position >= l.Len() {
		return nil, structure.Position(structure.ErrOutOfRange, position)
	}
	return l.mustNodeAt(position), nil
}

func (l *Doubly[T]) mustNodeAt(position int) *doublyNode[T] {
	cur := l.head
	for range position {
		cur = cur.next
	}
	return cur
}

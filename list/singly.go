// Package list implements singly, doubly and circular linked lists that
// satisfy [structure.Structure].
package list

import (
	"iter"
	"time"

	"github.com/harrybrwn/linear/structure"
)

type singlyNode[T any] struct {
	value T
	wait  time.Duration
	next  *singlyNode[T]
}

// Singly is a forward only linked list. Only the head is tracked so
// length and positional operations walk the chain. The zero value is an
// empty list.
type Singly[T any] struct {
	head *singlyNode[T]
}

var _ structure.Structure[int] = (*Singly[int])(nil)

func NewSingly[T any]() *Singly[T] { return &Singly[T]{} }

func (l *Singly[T]) Len() int {
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

func (l *Singly[T]) Empty() bool { return l.head == nil }
func (l *Singly[T]) Full() bool  { return false }

// Load resets the list and pushes every value onto the front, so the
// list ends up in reverse order of values.
func (l *Singly[T]) Load(values []T) error {
	l.head = nil
	for _, v := range values {
		l.head = &singlyNode[T]{value: v, next: l.head}
	}
	l.RefreshWaitTimes()
	return nil
}

func (l *Singly[T]) PushFront(v T) error {
	l.head = &singlyNode[T]{value: v, next: l.head}
	l.RefreshWaitTimes()
	return nil
}

func (l *Singly[T]) PushBack(v T) error {
	n := &singlyNode[T]{value: v}
	if l.head == nil {
		l.head = n
	} else {
		cur := l.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = n
	}
	l.RefreshWaitTimes()
	return nil
}

func (l *Singly[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, structure.ErrEmpty
	}
	v := l.head.value
	l.head = l.head.next
	l.RefreshWaitTimes()
	return v, nil
}

func (l *Singly[T]) PeekFront(consume bool) (T, error) {
	if l.head == nil {
		var zero T
		return zero, structure.ErrEmpty
	}
	if consume {
		return l.PopFront()
	}
	return l.head.value, nil
}

// QueryAt returns the value at position. If consume is true the value is
// removed from the list.
func (l *Singly[T]) QueryAt(position int, consume bool) (T, error) {
	n, err := l.nodeAt(position)
	if err != nil {
		var zero T
		return zero, err
	}
	if consume {
		return l.RemoveAt(position)
	}
	return n.value, nil
}

// RemoveAt unlinks the node at position and returns its value.
func (l *Singly[T]) RemoveAt(position int) (T, error) {
	var zero T
	if position < 0 {
		return zero, structure.Position(structure.ErrInvalidPosition, position)
	}
	if position == 0 {
		if l.head == nil {
			return zero, structure.Position(structure.ErrOutOfRange, position)
		}
		return l.PopFront()
	}
	var (
		prev *singlyNode[T]
		cur  = l.head
	)
	for i := 0; cur != nil && i < position; i++ {
		prev = cur
		cur = cur.next
	}
	if cur == nil {
		return zero, structure.Position(structure.ErrOutOfRange, position)
	}
	prev.next = cur.next
	l.RefreshWaitTimes()
	return cur.value, nil
}

// WaitAt returns the wait time computed for the value at position by the
// last refresh.
func (l *Singly[T]) WaitAt(position int) (time.Duration, error) {
	n, err := l.nodeAt(position)
	if err != nil {
		return 0, err
	}
	return n.wait, nil
}

// RefreshWaitTimes assumes values are served strictly in list order.
// Each value waits for the sum of the service times of the values ahead
// of it.
func (l *Singly[T]) RefreshWaitTimes() {
	var wait time.Duration
	for cur := l.head; cur != nil; cur = cur.next {
		cur.wait = wait
		wait += structure.ServiceTime(cur.value)
	}
}

func (l *Singly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

func (l *Singly[T]) nodeAt(position int) (*singlyNode[T], error) {
	if position < 0 || position >= l.Len() {
		return nil, structure.Position(structure.ErrOutOfRange, position)
	}
	cur := l.head
	for range position {
		cur = cur.next
	}
	return cur, nil
}

package list

import (
	"cmp"
	"iter"
	"time"

	"github.com/pkg/errors"

	"github.com/harrybrwn/linear/array"
	"github.com/harrybrwn/linear/structure"
)

// entry is the payload of a ring node. Swapping and sorting move entries
// between nodes so a deadline always follows its value.
type entry[T any] struct {
	value     T
	deadline  time.Time
	remaining float64
}

type ringNode[T any] struct {
	entry[T]
	next *ringNode[T]
}

// Circular is a singly linked ring with a single entry node and an
// optional capacity. Positions are counted from the entry node and a
// position is out of range when walking to it comes back around to the
// entry node. Use NewCircular or NewCircularFunc to create one.
type Circular[T any] struct {
	head     *ringNode[T]
	size     int
	capacity int
	compare  func(a, b T) int
	clock    structure.Clock
}

var _ structure.Structure[string] = (*Circular[string])(nil)

// NewCircular creates a ring of ordered values. A capacity of zero or
// less means the ring is unbounded.
func NewCircular[T cmp.Ordered](capacity int) *Circular[T] {
	return NewCircularFunc(capacity, cmp.Compare[T])
}

// NewCircularFunc creates a ring that orders values with compare.
func NewCircularFunc[T any](capacity int, compare func(a, b T) int) *Circular[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Circular[T]{
		capacity: capacity,
		compare:  compare,
		clock:    structure.SystemClock,
	}
}

// SetClock changes the clock used to compute remaining minutes.
func (c *Circular[T]) SetClock(clock structure.Clock) { c.clock = clock }

// Capacity returns the maximum size of the ring or zero if unbounded.
func (c *Circular[T]) Capacity() int { return c.capacity }

func (c *Circular[T]) Len() int    { return c.size }
func (c *Circular[T]) Empty() bool { return c.size == 0 }

func (c *Circular[T]) Full() bool {
	return c.capacity > 0 && c.size >= c.capacity
}

// Load resets the ring and appends every value in order.
func (c *Circular[T]) Load(values []T) error {
	if c.capacity > 0 && len(values) > c.capacity {
		return errors.Wrapf(structure.ErrFull, "%d values exceed capacity %d", len(values), c.capacity)
	}
	c.head, c.size = nil, 0
	for _, v := range values {
		c.pushBack(v)
	}
	c.RefreshWaitTimes()
	return nil
}

func (c *Circular[T]) PushFront(v T) error {
	if c.Full() {
		return c.errFull()
	}
	// the new node sits just before the old entry, moving entry onto it
	// turns the append into a prepend
	c.head = c.pushBack(v)
	c.RefreshWaitTimes()
	return nil
}

func (c *Circular[T]) PushBack(v T) error {
	if c.Full() {
		return c.errFull()
	}
	c.pushBack(v)
	c.RefreshWaitTimes()
	return nil
}

// InsertAt places value at position. Position zero becomes the new entry
// node. Other positions are reached by walking from the entry node, on an
// unbounded ring the walk wraps around.
func (c *Circular[T]) InsertAt(value T, position int) error {
	if c.Full() {
		return c.errFull()
	}
	if position < 0 || (c.capacity > 0 && position >= c.capacity) {
		return structure.Position(structure.ErrOutOfRange, position)
	}
	if position == 0 {
		return c.PushFront(value)
	}
	if c.head == nil {
		return structure.Position(structure.ErrOutOfRange, position)
	}
	cur := c.head
	for i := 0; i < position-1; i++ {
		cur = cur.next
	}
	cur.next = &ringNode[T]{entry: entry[T]{value: value}, next: cur.next}
	c.size++
	c.RefreshWaitTimes()
	return nil
}

func (c *Circular[T]) PopFront() (T, error) {
	if c.head == nil {
		var zero T
		return zero, structure.ErrEmpty
	}
	return c.remove(c.last(), c.head), nil
}

func (c *Circular[T]) PeekFront(consume bool) (T, error) {
	if c.head == nil {
		var zero T
		return zero, structure.ErrEmpty
	}
	if consume {
		return c.PopFront()
	}
	return c.head.value, nil
}

// QueryAt returns the value at position, removing it if consume is true.
func (c *Circular[T]) QueryAt(position int, consume bool) (T, error) {
	n, err := c.nodeAt(position)
	if err != nil {
		var zero T
		return zero, err
	}
	if consume {
		return c.RemoveAt(position)
	}
	return n.value, nil
}

// RemoveAt unlinks the node at position and returns its value.
func (c *Circular[T]) RemoveAt(position int) (T, error) {
	var zero T
	if err := c.check(position); err != nil {
		return zero, err
	}
	var (
		prev *ringNode[T]
		cur  = c.head
	)
	for range position {
		prev = cur
		cur = cur.next
		if cur == c.head {
			return zero, structure.Position(structure.ErrOutOfRange, position)
		}
	}
	if prev == nil {
		// removing the entry node, its predecessor is found by going all
		// the way around the ring
		prev = c.last()
	}
	return c.remove(prev, cur), nil
}

// SwapValues exchanges the values stored at p1 and p2 without changing
// any links.
func (c *Circular[T]) SwapValues(p1, p2 int) error {
	a, err := c.nodeAt(p1)
	if err != nil {
		return errors.Wrap(err, "first position")
	}
	b, err := c.nodeAt(p2)
	if err != nil {
		return errors.Wrap(err, "second position")
	}
	a.entry, b.entry = b.entry, a.entry
	return nil
}

// Sort orders the ring in ascending order and returns the number of
// exchanges it made. The nodes are collected into a slice, their values
// bubble sorted, and the slice is linked back into a ring.
func (c *Circular[T]) Sort() int {
	if c.head == nil {
		return 0
	}
	nodes := make([]*ringNode[T], 0, c.size)
	cur := c.head
	for {
		nodes = append(nodes, cur)
		cur = cur.next
		if cur == c.head {
			break
		}
	}
	swaps := array.BubbleSortSwap(
		len(nodes),
		func(i int) bool { return c.compare(nodes[i].value, nodes[i+1].value) > 0 },
		func(i int) { nodes[i].entry, nodes[i+1].entry = nodes[i+1].entry, nodes[i].entry },
	)
	c.head = nodes[0]
	for i := 0; i < len(nodes)-1; i++ {
		nodes[i].next = nodes[i+1]
	}
	nodes[len(nodes)-1].next = c.head
	return swaps
}

// SetDeadline attaches a service deadline to the value at position.
func (c *Circular[T]) SetDeadline(position int, deadline time.Time) error {
	n, err := c.nodeAt(position)
	if err != nil {
		return err
	}
	n.deadline = deadline
	n.remaining = structure.RemainingMinutes(deadline, c.now())
	return nil
}

// RemainingAt returns the minutes left until the deadline of the value at
// position as of the last refresh.
func (c *Circular[T]) RemainingAt(position int) (float64, error) {
	n, err := c.nodeAt(position)
	if err != nil {
		return 0, err
	}
	return n.remaining, nil
}

// RefreshWaitTimes recomputes the remaining minutes of every node that
// has a deadline. Remaining minutes never go below zero.
func (c *Circular[T]) RefreshWaitTimes() {
	if c.head == nil {
		return
	}
	now := c.now()
	cur := c.head
	for range c.size {
		if !cur.deadline.IsZero() {
			cur.remaining = structure.RemainingMinutes(cur.deadline, now)
		}
		cur = cur.next
	}
}

func (c *Circular[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c.head == nil {
			return
		}
		cur := c.head
		for {
			if !yield(cur.value) {
				return
			}
			cur = cur.next
			if cur == c.head {
				return
			}
		}
	}
}

// pushBack links a new node between the last node and the entry node.
func (c *Circular[T]) pushBack(v T) *ringNode[T] {
	n := &ringNode[T]{entry: entry[T]{value: v}}
	if c.head == nil {
		n.next = n
		c.head = n
	} else {
		last := c.last()
		n.next = c.head
		last.next = n
	}
	c.size++
	return n
}

// last finds the node that links back to the entry node.
func (c *Circular[T]) last() *ringNode[T] {
	cur := c.head
	for cur.next != c.head {
		cur = cur.next
	}
	return cur
}

func (c *Circular[T]) remove(prev, n *ringNode[T]) T {
	if n.next == n {
		c.head = nil
	} else {
		prev.next = n.next
		if n == c.head {
			c.head = n.next
		}
	}
	n.next = nil
	c.size--
	c.RefreshWaitTimes()
	return n.value
}

func (c *Circular[T]) check(position int) error {
	if c.head == nil {
		return structure.ErrEmpty
	}
	if position < 0 {
		return structure.Position(structure.ErrInvalidPosition, position)
	}
	return nil
}

func (c *Circular[T]) nodeAt(position int) (*ringNode[T], error) {
	if err := c.check(position); err != nil {
		return nil, err
	}
	cur := c.head
	for range position {
		cur = cur.next
		if cur == c.head {
			return nil, structure.Position(structure.ErrOutOfRange, position)
		}
	}
	return cur, nil
}

func (c *Circular[T]) errFull() error {
	return errors.Wrapf(structure.ErrFull, "capacity %d", c.capacity)
}

func (c *Circular[T]) now() time.Time {
	if c.clock == nil {
		return time.Now()
	}
	return c.clock.Now()
}

package list

import (
	"slices"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/pkg/errors"

	"github.com/harrybrwn/linear/structure"
)

type order struct {
	name    string
	minutes int
}

func (o order) ServiceTime() time.Duration { return time.Duration(o.minutes) * time.Minute }

func TestSingly(t *testing.T) {
	is := is.New(t)
	l := NewSingly[int]()
	is.True(l.Empty())
	is.True(!l.Full())
	is.Equal(l.Len(), 0)
	for _, v := range []int{10, 20, 30} {
		is.NoErr(l.PushFront(v))
	}
	is.Equal(l.Len(), 3)
	is.Equal(slices.Collect(l.All()), []int{30, 20, 10})

	v, err := l.PopFront()
	is.NoErr(err)
	is.Equal(v, 30)
	v, err = l.QueryAt(1, false)
	is.NoErr(err)
	is.Equal(v, 10)
	v, err = l.QueryAt(0, true)
	is.NoErr(err)
	is.Equal(v, 20)
	is.Equal(l.Len(), 1)
	is.NoErr(l.PushBack(40))
	is.Equal(slices.Collect(l.All()), []int{10, 40})
}

func TestSinglyEmpty(t *testing.T) {
	is := is.New(t)
	var l Singly[string]
	_, err := l.PopFront()
	is.True(errors.Is(err, structure.ErrEmpty))
	_, err = l.PeekFront(false)
	is.True(errors.Is(err, structure.ErrEmpty))
	_, err = l.PeekFront(true)
	is.True(errors.Is(err, structure.ErrEmpty))
	_, err = l.RemoveAt(0)
	is.True(errors.Is(err, structure.ErrOutOfRange))
	is.NoErr(l.PushBack("a"))
	s, err := l.PeekFront(false)
	is.NoErr(err)
	is.Equal(s, "a")
	is.Equal(l.Len(), 1)
	s, err = l.PeekFront(true)
	is.NoErr(err)
	is.Equal(s, "a")
	is.True(l.Empty())
}

func TestSinglyPositions(t *testing.T) {
	is := is.New(t)
	l := NewSingly[int]()
	is.NoErr(l.Load([]int{1, 2, 3}))

	_, err := l.QueryAt(5, false)
	is.True(errors.Is(err, structure.ErrOutOfRange))
	_, err = l.QueryAt(3, true)
	is.True(errors.Is(err, structure.ErrOutOfRange))
	_, err = l.QueryAt(-1, false)
	is.True(errors.Is(err, structure.ErrOutOfRange))
	_, err = l.RemoveAt(-1)
	is.True(errors.Is(err, structure.ErrInvalidPosition))
	_, err = l.RemoveAt(3)
	is.True(errors.Is(err, structure.ErrOutOfRange))
	// failed operations leave the list untouched
	is.Equal(slices.Collect(l.All()), []int{3, 2, 1})

	v, err := l.RemoveAt(1)
	is.NoErr(err)
	is.Equal(v, 2)
	v, err = l.RemoveAt(1)
	is.NoErr(err)
	is.Equal(v, 1)
	is.Equal(slices.Collect(l.All()), []int{3})
}

func TestSinglyLoadRoundTrip(t *testing.T) {
	is := is.New(t)
	values := []int{1, 2, 3, 4, 5}
	l := NewSingly[int]()
	is.NoErr(l.PushBack(100))
	is.NoErr(l.Load(values))
	is.Equal(l.Len(), len(values))
	drained := make([]int, 0, len(values))
	for !l.Empty() {
		v, err := l.PopFront()
		is.NoErr(err)
		drained = append(drained, v)
	}
	rev := slices.Clone(values)
	slices.Reverse(rev)
	is.Equal(drained, rev)

	is.NoErr(l.Load(values))
	drained = drained[:0]
	for !l.Empty() {
		v, err := l.QueryAt(0, true)
		is.NoErr(err)
		drained = append(drained, v)
	}
	is.Equal(drained, rev)
}

func TestSinglyWaitTimes(t *testing.T) {
	is := is.New(t)
	l := NewSingly[order]()
	is.NoErr(l.PushBack(order{"a", 5}))
	is.NoErr(l.PushBack(order{"b", 3}))
	is.NoErr(l.PushBack(order{"c", 7}))
	for i, want := range []time.Duration{0, 5 * time.Minute, 8 * time.Minute} {
		w, err := l.WaitAt(i)
		is.NoErr(err)
		is.Equal(w, want)
	}
	_, err := l.PopFront()
	is.NoErr(err)
	for i, want := range []time.Duration{0, 3 * time.Minute} {
		w, err := l.WaitAt(i)
		is.NoErr(err)
		is.Equal(w, want)
	}
	_, err = l.WaitAt(2)
	is.True(errors.Is(err, structure.ErrOutOfRange))

	// values without a service time do not add to the wait
	ints := NewSingly[int]()
	is.NoErr(ints.Load([]int{1, 2}))
	w, err := ints.WaitAt(1)
	is.NoErr(err)
	is.Equal(w, time.Duration(0))
}

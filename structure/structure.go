// Package structure defines the contract shared by every linear data
// structure in this module along with the errors they report.
package structure

import (
	"iter"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned when an operation needs at least one element.
	ErrEmpty = errors.New("structure is empty")
	// ErrFull is returned when a bounded structure is at capacity.
	ErrFull = errors.New("structure is full")
	// ErrInvalidPosition is returned for negative positions.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrOutOfRange is returned for positions past the end of a structure.
	ErrOutOfRange = errors.New("position out of range")
)

// Structure is a linear collection of values. Every variant decides its
// own insertion policy for Load and its own meaning for RefreshWaitTimes.
type Structure[T any] interface {
	Len() int
	Empty() bool
	// Full is always false for unbounded structures.
	Full() bool
	// Load resets the structure then inserts every value using the
	// variant's canonical insertion policy.
	Load(values []T) error
	PushFront(v T) error
	PushBack(v T) error
	PopFront() (T, error)
	// PeekFront returns the first value. If consume is true the value is
	// also removed.
	PeekFront(consume bool) (T, error)
	// RefreshWaitTimes recomputes any time based estimates.
	RefreshWaitTimes()
	// All iterates over copies of the values from front to back.
	All() iter.Seq[T]
}

// ServiceTimer is implemented by values that know how long they take to
// be served.
type ServiceTimer interface {
	ServiceTime() time.Duration
}

// ServiceTime returns the service time of v or zero if v does not
// implement ServiceTimer.
func ServiceTime(v any) time.Duration {
	if st, ok := v.(ServiceTimer); ok {
		return st.ServiceTime()
	}
	return 0
}

// Position wraps err with the offending position.
func Position(err error, position int) error {
	return errors.Wrapf(err, "position %d", position)
}

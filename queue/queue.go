// Package queue implements a first in first out service queue that keeps
// an estimate of how long every pending request has left to wait.
package queue

import (
	"io"
	"iter"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harrybrwn/linear/array"
	"github.com/harrybrwn/linear/structure"
)

// Simple is an array backed service queue. Every change to the queue
// recomputes the remaining minutes of all pending requests from their
// deadlines.
type Simple struct {
	requests []Request
	average  float64
	clock    structure.Clock
	logger   *slog.Logger
}

var _ structure.Structure[Request] = (*Simple)(nil)

type Option func(*Simple)

func WithClock(c structure.Clock) Option    { return func(q *Simple) { q.clock = c } }
func WithLogger(logger *slog.Logger) Option { return func(q *Simple) { q.logger = logger } }

// New creates a queue where serving one request takes
// averageServiceMinutes on average.
func New(averageServiceMinutes float64, opts ...Option) *Simple {
	q := Simple{
		requests: make([]Request, 0),
		average:  averageServiceMinutes,
		clock:    structure.SystemClock,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(&q)
	}
	return &q
}

// AverageServiceMinutes returns the configured average service time.
func (q *Simple) AverageServiceMinutes() float64 { return q.average }

func (q *Simple) Len() int    { return len(q.requests) }
func (q *Simple) Empty() bool { return len(q.requests) == 0 }
func (q *Simple) Full() bool  { return false }

// Enroll adds a request for requesterID to the back of the queue. The
// first request in an empty queue waits the average service time, later
// ones wait the mean of what everyone ahead of them has left as of now.
func (q *Simple) Enroll(requesterID string) Request {
	var (
		now       = q.clock.Now()
		remaining = q.average
	)
	if len(q.requests) > 0 {
		q.RefreshWaitTimes()
		remaining = array.Mean(q.requests, func(r Request) float64 { return r.RemainingMinutes })
	}
	q.requests = append(q.requests, Request{
		Ticket:                uuid.New(),
		RequesterID:           requesterID,
		AverageServiceMinutes: q.average,
		RemainingMinutes:      remaining,
		EnrolledAt:            now,
		Deadline:              now.Add(minutes(remaining)),
	})
	q.RefreshWaitTimes()
	r := q.requests[len(q.requests)-1]
	q.logger.Debug("request enrolled", slog.Any("request", &r), slog.Int("pending", len(q.requests)))
	return r
}

// Withdraw removes the first pending request for requesterID. It returns
// false if there was none.
func (q *Simple) Withdraw(requesterID string) bool {
	i := q.index(requesterID)
	if i < 0 {
		return false
	}
	r := q.requests[i]
	q.requests = array.Remove(q.requests, i)
	q.RefreshWaitTimes()
	q.logger.Debug("request withdrawn", slog.Any("request", &r), slog.Int("pending", len(q.requests)))
	return true
}

// ServeNext removes the request at the front of the queue and returns its
// requester. The bool is false when the queue is empty.
func (q *Simple) ServeNext() (string, bool) {
	defer q.RefreshWaitTimes()
	if len(q.requests) == 0 {
		return "", false
	}
	r := q.requests[0]
	q.requests = array.Remove(q.requests, 0)
	q.logger.Debug("request served", slog.Any("request", &r), slog.Int("pending", len(q.requests)))
	return r.RequesterID, true
}

// Position returns how many requests are ahead of the first request for
// requesterID.
func (q *Simple) Position(requesterID string) (int, bool) {
	i := q.index(requesterID)
	return i, i >= 0
}

// Pending returns a copy of every pending request in the order they will
// be served.
func (q *Simple) Pending() []Request {
	res := make([]Request, len(q.requests))
	copy(res, q.requests)
	return res
}

// RefreshWaitTimes recomputes the remaining minutes of every pending
// request from its deadline. Deadlines are never changed.
func (q *Simple) RefreshWaitTimes() {
	now := q.clock.Now()
	for i := range q.requests {
		q.requests[i].RemainingMinutes = structure.RemainingMinutes(q.requests[i].Deadline, now)
	}
}

// Load replaces the queue with requests, in order.
func (q *Simple) Load(requests []Request) error {
	q.requests = append(make([]Request, 0, len(requests)), requests...)
	q.RefreshWaitTimes()
	return nil
}

func (q *Simple) PushFront(r Request) error {
	q.requests = array.Insert(q.requests, r, 0)
	q.RefreshWaitTimes()
	return nil
}

func (q *Simple) PushBack(r Request) error {
	q.requests = append(q.requests, r)
	q.RefreshWaitTimes()
	return nil
}

func (q *Simple) PopFront() (Request, error) {
	if len(q.requests) == 0 {
		return Request{}, structure.ErrEmpty
	}
	r := q.requests[0]
	q.requests = array.Remove(q.requests, 0)
	q.RefreshWaitTimes()
	return r, nil
}

func (q *Simple) PeekFront(consume bool) (Request, error) {
	if len(q.requests) == 0 {
		return Request{}, structure.ErrEmpty
	}
	if consume {
		return q.PopFront()
	}
	return q.requests[0], nil
}

func (q *Simple) All() iter.Seq[Request] {
	return array.Iter(q.Pending())
}

func (q *Simple) index(requesterID string) int {
	return array.IndexFunc(q.requests, func(r *Request) bool {
		return r.RequesterID == requesterID
	})
}

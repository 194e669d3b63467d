package queue

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Request is a pending request waiting to be served.
type Request struct {
	Ticket      uuid.UUID `json:"ticket"`
	RequesterID string    `json:"requesterId"`
	// AverageServiceMinutes is the configured average time it takes to
	// serve one request.
	AverageServiceMinutes float64 `json:"averageServiceMinutes"`
	// RemainingMinutes is the estimated number of minutes until the
	// request is served. It is never negative.
	RemainingMinutes float64   `json:"remainingMinutes"`
	EnrolledAt       time.Time `json:"enrolledAt"`
	// Deadline is when the request is expected to be served. It does not
	// change once the request is enrolled.
	Deadline time.Time `json:"deadline"`
}

func (r *Request) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ticket", r.Ticket.String()),
		slog.String("requester", r.RequesterID),
		slog.Float64("remaining_minutes", r.RemainingMinutes),
		slog.Time("deadline", r.Deadline),
	)
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}

package main

import (
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/harrybrwn/linear/array"
	"github.com/harrybrwn/linear/internal/xiter"
	"github.com/harrybrwn/linear/list"
	"github.com/harrybrwn/linear/queue"
)

func newQueueCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "queue [requester...]",
		Short: "Enroll requesters in a service queue, serve one and withdraw another",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueue(ctx, args)
		},
	}
}

func newCircularCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "circular",
		Short: "Insert, consume, swap and sort pairs in a circular list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCircular(ctx)
		},
	}
}

func newDoublyCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "doubly [priority...]",
		Short: "Run priority operations on a doubly linked list",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			return runDoubly(ctx, values)
		},
	}
}

func newSinglyCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "singly [value...]",
		Short: "Push, pop and query a singly linked list",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			return runSingly(ctx, values)
		},
	}
}

func newAllCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(ctx)
		},
	}
}

func runAll(ctx *Context) error {
	for _, run := range []func() error{
		func() error { return runQueue(ctx, nil) },
		func() error { return runCircular(ctx) },
		func() error { return runDoubly(ctx, nil) },
		func() error { return runSingly(ctx, nil) },
	} {
		if err := run(); err != nil {
			return err
		}
	}
	return nil
}

func runQueue(ctx *Context, requesters []string) error {
	if len(requesters) == 0 {
		requesters = []string{"user1", "user2", "user3"}
	}
	q := queue.New(
		float64(ctx.conf.AverageServiceMinutes),
		queue.WithClock(ctx.clock),
		queue.WithLogger(ctx.logger),
	)
	for _, r := range requesters {
		q.Enroll(r)
	}
	ctx.printf("queue: %v\n", requesterIDs(q))
	if served, ok := q.ServeNext(); ok {
		ctx.printf("served: %s\n", served)
	}
	ctx.printf("queue after serving: %v\n", requesterIDs(q))
	if len(requesters) > 1 && q.Withdraw(requesters[1]) {
		ctx.printf("withdrew: %s\n", requesters[1])
	}
	ctx.printf("queue after withdrawal: %v\n", requesterIDs(q))
	for i, r := range xiter.Enumerate(q.All()) {
		ctx.printf("  %d. %s waits %.1f minutes (ticket %s)\n", i, r.RequesterID, r.RemainingMinutes, r.Ticket)
	}
	return ctx.emit("queue", q.Pending())
}

type pair [2]int

func comparePairs(a, b pair) int {
	if a[0] != b[0] {
		return a[0] - b[0]
	}
	return a[1] - b[1]
}

func runCircular(ctx *Context) error {
	ring := list.NewCircularFunc(ctx.conf.RingCapacity, comparePairs)
	for i, p := range []pair{{1, 2}, {3, 4}, {5, 6}} {
		if err := ring.InsertAt(p, i); err != nil {
			return errors.Wrap(err, "failed to insert into circular list")
		}
	}
	ctx.printf("circular length: %d\n", ring.Len())
	removed, err := ring.QueryAt(1, true)
	if err != nil {
		return errors.Wrap(err, "failed to consume position 1")
	}
	ctx.printf("consumed: %v\n", removed)
	if err = ring.SwapValues(0, 1); err != nil {
		return errors.Wrap(err, "failed to swap positions")
	}
	ctx.printf("after swap: %s\n", xiter.Join(ring.All(), " "))
	ring.Sort()
	ctx.printf("after sort: %s\n", xiter.Join(ring.All(), " "))
	return ctx.emit("circular", slices.Collect(ring.All()))
}

func runDoubly(ctx *Context, priorities []int) error {
	if len(priorities) == 0 {
		priorities = []int{10, 30, 20, 40}
	}
	l := list.NewDoublyClock[int](ctx.clock)
	for _, p := range priorities {
		l.InsertOrdered(p)
	}
	ctx.printf("doubly: %s\n", xiter.Join(l.All(), " "))
	if top, err := l.PeekHighestPriority(true); err == nil {
		ctx.printf("highest priority: %d\n", top)
	}
	ctx.printf("length: %d\n", l.Len())
	_, _ = l.PopFront()
	if last, err := l.PeekBack(true); err == nil {
		ctx.printf("last: %d\n", last)
	}
	_ = l.PushFront(5)
	_ = l.PushBack(50)
	swaps := l.Sort()
	ctx.printf("sorted with %d swaps\n", swaps)
	for i, v := range xiter.Enumerate(l.All()) {
		ctx.printf("  position %d: %d\n", i, v)
	}
	return ctx.emit("doubly", slices.Collect(l.All()))
}

func runSingly(ctx *Context, values []int) error {
	if len(values) == 0 {
		values = []int{10, 20, 30}
	}
	l := list.NewSingly[int]()
	for _, v := range values {
		if err := l.PushFront(v); err != nil {
			return err
		}
	}
	ctx.printf("singly: %s (length %d)\n", xiter.Join(l.All(), " "), l.Len())
	if v, err := l.PopFront(); err == nil {
		ctx.printf("removed: %d\n", v)
	}
	if v, err := l.QueryAt(1, false); err == nil {
		ctx.printf("position 1: %d\n", v)
	}
	if v, err := l.QueryAt(0, true); err == nil {
		ctx.printf("consumed position 0: %d\n", v)
	}
	return ctx.emit("singly", slices.Collect(l.All()))
}

func requesterIDs(q *queue.Simple) []string {
	return array.Map(q.Pending(), func(r queue.Request) string { return r.RequesterID })
}

func parseInts(args []string) ([]int, error) {
	res := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer %q", a)
		}
		res = append(res, n)
	}
	return res, nil
}

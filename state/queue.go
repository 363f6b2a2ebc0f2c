package state

import (
	"sync"

	"github.com/gogpu/ui/internal/logx"
)

type queueState uint8

const (
	queueOpen queueState = iota
	queueShuttingDown
	queueClosed
)

// Queue is an unbounded multi-producer signal queue with a single consumer.
//
// Producers never block. The consumer either polls Drain or waits on Wake,
// which holds at most one pending notification.
type Queue struct {
	mu      sync.Mutex
	pending []Signal
	state   queueState
	wake    chan struct{}
}

// NewQueue returns an open queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Sender returns a handle producers use to enqueue signals.
func (q *Queue) Sender() Sender {
	return Sender{q: q}
}

func (q *Queue) send(sig Signal) error {
	q.mu.Lock()
	switch q.state {
	case queueClosed:
		q.mu.Unlock()
		return ErrReceiverGone
	case queueShuttingDown:
		q.mu.Unlock()
		logx.L().Debug("state: signal dropped during shutdown", "signal", sig.String())
		return nil
	}
	q.pending = append(q.pending, sig)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return nil
}

// Drain removes and returns every pending signal in send order.
// It returns nil when nothing is pending.
func (q *Queue) Drain() []Signal {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending signals.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Wake returns a channel that receives after a send into an empty
// notification slot.
func (q *Queue) Wake() <-chan struct{} {
	return q.wake
}

// Shutdown makes later sends succeed without enqueueing anything.
// Pending signals stay drainable.
func (q *Queue) Shutdown() {
	q.mu.Lock()
	if q.state == queueOpen {
		q.state = queueShuttingDown
	}
	q.mu.Unlock()
}

// Close drops pending signals and makes later sends fail with
// ErrReceiverGone. A queue that is shutting down stays silent instead.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.state == queueOpen {
		q.state = queueClosed
	}
	q.pending = nil
	q.mu.Unlock()
}

// Sender enqueues signals on a Queue. It is a small value and may be copied
// freely. The zero Sender has no receiver.
type Sender struct {
	q *Queue
}

// Send enqueues sig.
func (s Sender) Send(sig Signal) error {
	if s.q == nil {
		return ErrReceiverGone
	}
	return s.q.send(sig)
}

// Redraw enqueues a redraw request.
func (s Sender) Redraw() error {
	return s.Send(Redraw())
}

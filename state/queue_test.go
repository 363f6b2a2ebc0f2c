package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue()
	s := q.Sender()
	sigs := []Signal{Redraw(), SharedUpdated(3), SharedUpdated(1)}
	for _, sig := range sigs {
		if err := s.Send(sig); err != nil {
			t.Fatalf("Send(%v) = %v", sig, err)
		}
	}
	if diff := cmp.Diff(sigs, q.Drain()); diff != "" {
		t.Errorf("Drain() mismatch (-want +got):\n%s", diff)
	}
	if got := q.Drain(); got != nil {
		t.Errorf("second Drain() = %v, want nil", got)
	}
}

func TestQueueWake(t *testing.T) {
	q := NewQueue()
	_ = q.Sender().Redraw()
	_ = q.Sender().Redraw()
	select {
	case <-q.Wake():
	default:
		t.Fatal("Wake() not signalled after send")
	}
	select {
	case <-q.Wake():
		t.Fatal("Wake() holds more than one notification")
	default:
	}
}

func TestQueueClosedRejects(t *testing.T) {
	q := NewQueue()
	_ = q.Sender().Redraw()
	q.Close()
	if err := q.Sender().Redraw(); !errors.Is(err, ErrReceiverGone) {
		t.Errorf("Send() after Close = %v, want ErrReceiverGone", err)
	}
	if n := q.Len(); n != 0 {
		t.Errorf("Len() after Close = %d, want 0", n)
	}
}

func TestQueueShutdownDrops(t *testing.T) {
	q := NewQueue()
	_ = q.Sender().Redraw()
	q.Shutdown()
	if err := q.Sender().Redraw(); err != nil {
		t.Errorf("Send() during shutdown = %v, want nil", err)
	}
	q.Close()
	if err := q.Sender().Redraw(); err != nil {
		t.Errorf("Send() after shutdown and close = %v, want nil", err)
	}
}

func TestZeroSender(t *testing.T) {
	var s Sender
	if err := s.Redraw(); !errors.Is(err, ErrReceiverGone) {
		t.Errorf("zero Sender.Redraw() = %v, want ErrReceiverGone", err)
	}
}

func TestQueueConcurrentSenders(t *testing.T) {
	q := NewQueue()
	const producers, each = 8, 100
	var wg sync.WaitGroup
	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := q.Sender()
			for range each {
				_ = s.Redraw()
			}
		}()
	}
	wg.Wait()
	if got := len(q.Drain()); got != producers*each {
		t.Errorf("len(Drain()) = %d, want %d", got, producers*each)
	}
}

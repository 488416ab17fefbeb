package sim

import "fmt"

// RoundRobin serves ready processes in strict circular order, at most Quantum ticks per
// dispatch. A process that does not finish within its slice goes back to the tail of the
// ready queue; it is never re-sorted.
type RoundRobin struct {
	Quantum int64
	queue   ReadyQueue
}

// NewRoundRobin creates a RoundRobin policy. quantum must be positive.
func NewRoundRobin(quantum int64) (*RoundRobin, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: round robin quantum must be positive, got %d", ErrInvalidInput, quantum)
	}
	return &RoundRobin{Quantum: quantum}, nil
}

func (rr *RoundRobin) Name() string { return PolicyRoundRobin }

// Reset drops any queued processes left over from a previous run.
func (rr *RoundRobin) Reset() {
	rr.queue.Clear()
}

// Enqueue appends p to the tail of the ready queue.
func (rr *RoundRobin) Enqueue(p *Process) {
	rr.queue.Enqueue(p)
}

// Select dequeues the head of the ready queue. The ready set is not consulted:
// queue order, not any process attribute, decides who runs.
func (rr *RoundRobin) Select(_ []*Process, _ int64) Decision {
	p := rr.queue.Dequeue()
	if p == nil {
		return Decision{}
	}
	return Decision{Process: p, Duration: min(p.RemainingTime, rr.Quantum), Preemptible: true}
}

// QueueString renders the current ready queue, for debug logging.
func (rr *RoundRobin) QueueString() string {
	return rr.queue.String()
}

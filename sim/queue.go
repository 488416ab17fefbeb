// Implements the ReadyQueue, the FIFO discipline behind Round Robin.
// Processes are appended on arrival and re-appended after a partial quantum.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue represents a FIFO queue of ready processes.
// Unlike the comparison-based policies, order here is insertion order, never re-sorted.
type ReadyQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: p must not be nil")
	}
	rq.queue = append(rq.queue, p)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(fmt.Sprintf("P%d", p.ID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return p
}

// Items returns the queue contents for iteration.
// Callers MUST NOT append to or reslice the returned slice.
func (rq *ReadyQueue) Items() []*Process {
	return rq.queue
}

// Clear empties the queue.
func (rq *ReadyQueue) Clear() {
	rq.queue = nil
}

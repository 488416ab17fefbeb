package sim

import "container/heap"

type queuedEvent struct {
	event Event
	seq   int64
}

// EventQueue implements heap.Interface with deterministic ordering:
// timestamp → event type → insertion sequence.
type EventQueue struct {
	events  []queuedEvent
	nextSeq int64
}

// Len implements heap.Interface
func (eq *EventQueue) Len() int { return len(eq.events) }

// Less implements heap.Interface
func (eq *EventQueue) Less(i, j int) bool {
	ei, ej := eq.events[i], eq.events[j]
	if ei.event.Timestamp() != ej.event.Timestamp() {
		return ei.event.Timestamp() < ej.event.Timestamp()
	}
	if ei.event.Type() != ej.event.Type() {
		return ei.event.Type() < ej.event.Type()
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (eq *EventQueue) Swap(i, j int) { eq.events[i], eq.events[j] = eq.events[j], eq.events[i] }

// Push implements heap.Interface
func (eq *EventQueue) Push(x any) {
	eq.events = append(eq.events, x.(queuedEvent))
}

// Pop implements heap.Interface
func (eq *EventQueue) Pop() any {
	old := eq.events
	n := len(old)
	item := old[n-1]
	eq.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the queue.
func (eq *EventQueue) Schedule(ev Event) {
	heap.Push(eq, queuedEvent{event: ev, seq: eq.nextSeq})
	eq.nextSeq++
}

// PopNext removes and returns the next event, or nil when the queue is empty.
func (eq *EventQueue) PopNext() Event {
	if eq.Len() == 0 {
		return nil
	}
	return heap.Pop(eq).(queuedEvent).event
}

// Clear drops every pending event.
func (eq *EventQueue) Clear() {
	eq.events = nil
	eq.nextSeq = 0
}

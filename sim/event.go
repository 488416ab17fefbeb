package sim

import "github.com/sirupsen/logrus"

// EventType orders events that share a timestamp: lower values execute first.
type EventType int

const (
	// EventArrival makes a process ready. Arrivals run first so a dispatch at the
	// same tick sees every process arriving at that tick.
	EventArrival EventType = iota
	// EventSliceEnd applies a finished slice; a preempted process is re-queued
	// after same-tick arrivals.
	EventSliceEnd
	// EventDispatch asks the policy for the next decision.
	EventDispatch
)

// Event defines the interface for all simulation events.
// Each event must have a Timestamp (in ticks), a Type used for same-tick ordering,
// and an Execute method that advances simulation state when invoked.
type Event interface {
	Timestamp() int64
	Type() EventType
	Execute(*Simulator)
}

// ArrivalEvent represents a process becoming eligible to run.
type ArrivalEvent struct {
	time    int64    // Arrival tick
	Process *Process // The arriving process
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() int64 {
	return e.time
}

func (e *ArrivalEvent) Type() EventType { return EventArrival }

// Execute marks the process ready and triggers a dispatch if the CPU is idle.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Arrival: P%d at %d ticks", e.Process.ID, e.time)
	sim.markReady(e.Process)
	sim.requestDispatch(e.time)
}

// DispatchEvent represents a decision point: the CPU is free and at least one process is ready.
type DispatchEvent struct {
	time int64 // Scheduled execution time (in ticks)
}

// Timestamp returns the scheduled time of the DispatchEvent.
func (e *DispatchEvent) Timestamp() int64 {
	return e.time
}

func (e *DispatchEvent) Type() EventType { return EventDispatch }

// Execute the DispatchEvent
func (e *DispatchEvent) Execute(sim *Simulator) {
	sim.dispatch(e.time)
}

// SliceEndEvent represents the end of a granted slice.
type SliceEndEvent struct {
	time     int64 // Slice end tick
	start    int64 // Slice start tick
	Process  *Process
	Duration int64
}

// Timestamp returns the scheduled time of the SliceEndEvent.
func (e *SliceEndEvent) Timestamp() int64 {
	return e.time
}

func (e *SliceEndEvent) Type() EventType { return EventSliceEnd }

// Execute applies the slice to the running process.
func (e *SliceEndEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< SliceEnd: P%d ran [%d, %d)", e.Process.ID, e.start, e.time)
	sim.applySlice(e)
	sim.requestDispatch(e.time)
}

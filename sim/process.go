// Defines the Process struct that models one simulated process.
// Tracks arrival, burst, remaining work and the completion metrics committed by the Simulator.

package sim

import (
	"fmt"
	"math"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateUnarrived ProcessState = "unarrived"
	StateReady     ProcessState = "ready"
	StateRunning   ProcessState = "running"
	StateFinished  ProcessState = "finished"
)

// Process models a single process's lifecycle in the simulation.
// Each process has:
// - an arrival time and a CPU burst supplied by the input
// - remaining work, decremented by the Simulator as slices are applied
// - completion metrics, committed exactly once when remaining work reaches 0
type Process struct {
	ID int // 1..n, assigned in input order

	ArrivalTime int64 // Tick at which the process becomes eligible to run
	BurstTime   int64 // Total CPU time required
	Priority    int64 // Lower value = higher priority. Read only by the priority policies.

	State         ProcessState // unarrived, ready, running, finished
	RemainingTime int64        // CPU time still owed, in [0, BurstTime]

	StartTime      int64 // Tick of the first dispatch (-1 until dispatched)
	CompletionTime int64 // Tick at which RemainingTime reached 0
	TurnaroundTime int64 // CompletionTime - ArrivalTime
	WaitingTime    int64 // TurnaroundTime - BurstTime
	ResponseTime   int64 // StartTime - ArrivalTime
	Dispatches     int   // Number of slices granted
}

// NewProcess returns a process in the unarrived state with its full burst outstanding.
func NewProcess(id int, arrival, burst, priority int64) *Process {
	p := &Process{
		ID:          id,
		ArrivalTime: arrival,
		BurstTime:   burst,
		Priority:    priority,
	}
	p.reset()
	return p
}

// reset restores the runtime fields so a process set can be replayed.
func (p *Process) reset() {
	p.State = StateUnarrived
	p.RemainingTime = p.BurstTime
	p.StartTime = -1
	p.CompletionTime = 0
	p.TurnaroundTime = 0
	p.WaitingTime = 0
	p.ResponseTime = 0
	p.Dispatches = 0
}

// Finished reports whether the process has completed.
func (p *Process) Finished() bool {
	return p.State == StateFinished
}

// Validate checks the input fields of a single process.
func (p *Process) Validate() error {
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: process %d: arrival time must be non-negative, got %d", ErrInvalidInput, p.ID, p.ArrivalTime)
	}
	if p.BurstTime <= 0 {
		return fmt.Errorf("%w: process %d: burst time must be positive, got %d", ErrInvalidInput, p.ID, p.BurstTime)
	}
	return nil
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, State: %s, Remaining: %d, ArrivalTime: %d)", p.ID, p.State, p.RemainingTime, p.ArrivalTime)
}

// NewProcesses builds a process set from parallel arrival/burst slices, assigning IDs 1..n
// in input order. priorities may be nil.
func NewProcesses(arrivals, bursts, priorities []int64) ([]*Process, error) {
	if len(arrivals) != len(bursts) {
		return nil, fmt.Errorf("%w: %d arrival times for %d burst times", ErrInvalidInput, len(arrivals), len(bursts))
	}
	if priorities != nil && len(priorities) != len(bursts) {
		return nil, fmt.Errorf("%w: %d priorities for %d burst times", ErrInvalidInput, len(priorities), len(bursts))
	}
	procs := make([]*Process, len(bursts))
	for i := range bursts {
		var prio int64
		if priorities != nil {
			prio = priorities[i]
		}
		procs[i] = NewProcess(i+1, arrivals[i], bursts[i], prio)
	}
	return procs, nil
}

// ValidateProcesses checks a whole process set before simulation starts.
func ValidateProcesses(procs []*Process) error {
	if len(procs) == 0 {
		return fmt.Errorf("%w: no processes supplied", ErrEmptyInput)
	}
	seen := make(map[int]bool, len(procs))
	var totalBurst, latestArrival int64
	for i, p := range procs {
		if p == nil {
			return fmt.Errorf("%w: process at index %d is nil", ErrInvalidInput, i)
		}
		if p.ID <= 0 {
			return fmt.Errorf("%w: process id must be positive, got %d", ErrInvalidInput, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = true
		if err := p.Validate(); err != nil {
			return err
		}
		if totalBurst > math.MaxInt64-p.BurstTime {
			return fmt.Errorf("%w: total burst time exceeds %d ticks", ErrInvalidInput, int64(math.MaxInt64))
		}
		totalBurst += p.BurstTime
		latestArrival = max(latestArrival, p.ArrivalTime)
	}
	// The clock never passes the latest arrival plus all outstanding work.
	if latestArrival > math.MaxInt64-totalBurst {
		return fmt.Errorf("%w: latest arrival %d plus total burst %d exceeds %d ticks",
			ErrInvalidInput, latestArrival, totalBurst, int64(math.MaxInt64))
	}
	return nil
}

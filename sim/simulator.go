// sim/simulator.go
package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim/trace"
)

// Simulator is the core object that holds simulation time, process state, and the event loop.
// It exclusively owns the Process records for the duration of Run.
type Simulator struct {
	Clock int64
	// Processes in input order. Records are mutated in place.
	Processes []*Process
	Policy    Policy
	// EventQueue has all pending arrival, dispatch and slice-end events
	EventQueue *EventQueue
	// Timeline records every applied slice and idle gap of the last run
	Timeline *trace.Timeline

	byID            []*Process // Processes sorted by ID; the ready set is built from it
	running         *Process
	dispatchPending bool
	finished        int
	dispatches      int
	maxDispatches   int
	lastBusyEnd     int64
	err             error
}

// NewSimulator validates the process set and policy and returns a Simulator ready to Run.
func NewSimulator(processes []*Process, policy Policy) (*Simulator, error) {
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, fmt.Errorf("%w: policy must not be nil", ErrInvalidInput)
	}
	if rr, ok := policy.(*RoundRobin); ok && rr.Quantum <= 0 {
		return nil, fmt.Errorf("%w: round robin quantum must be positive, got %d", ErrInvalidInput, rr.Quantum)
	}

	byID := make([]*Process, len(processes))
	copy(byID, processes)
	sort.SliceStable(byID, func(i, j int) bool { return byID[i].ID < byID[j].ID })

	return &Simulator{
		Processes:  processes,
		Policy:     policy,
		EventQueue: &EventQueue{},
		Timeline:   trace.NewTimeline(),
		byID:       byID,
	}, nil
}

// Run validates the input, simulates every process to completion under policy, and
// returns the same records with their completion fields populated.
func Run(processes []*Process, policy Policy) ([]*Process, error) {
	s, err := NewSimulator(processes, policy)
	if err != nil {
		return nil, err
	}
	if err := s.Run(); err != nil {
		return nil, err
	}
	return processes, nil
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Schedule(ev)
}

// Run drives the event loop until every process has finished.
// Runtime fields of every process are reset first, so the same Simulator (or the same
// process records) can be run repeatedly with identical results.
func (sim *Simulator) Run() error {
	sim.reset()
	logrus.Infof("Starting %s simulation with %d processes", sim.Policy.Name(), len(sim.Processes))

	arrivals := make([]*Process, len(sim.byID))
	copy(arrivals, sim.byID)
	sort.SliceStable(arrivals, func(i, j int) bool { return arrivals[i].ArrivalTime < arrivals[j].ArrivalTime })
	for _, p := range arrivals {
		sim.Schedule(&ArrivalEvent{time: p.ArrivalTime, Process: p})
	}

	for sim.EventQueue.Len() > 0 {
		// get the next event to be simulated
		ev := sim.EventQueue.PopNext()
		// advance the clock
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[tick %07d] Executing %T", sim.Clock, ev)
		// process the event
		ev.Execute(sim)
		if sim.err != nil {
			return sim.err
		}
	}

	if sim.finished != len(sim.Processes) {
		return fmt.Errorf("%w: event queue drained at tick %d with %d of %d processes finished",
			ErrUnreachableState, sim.Clock, sim.finished, len(sim.Processes))
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
	return nil
}

func (sim *Simulator) reset() {
	sim.Clock = 0
	sim.EventQueue.Clear()
	sim.Timeline = trace.NewTimeline()
	sim.running = nil
	sim.dispatchPending = false
	sim.finished = 0
	sim.dispatches = 0
	sim.lastBusyEnd = 0
	sim.err = nil

	// Every dispatch grants at least one tick, so total burst bounds the dispatch count.
	sim.maxDispatches = len(sim.Processes)
	for _, p := range sim.Processes {
		p.reset()
		sim.maxDispatches = addSaturating(sim.maxDispatches, p.BurstTime)
	}
	if qp, ok := sim.Policy.(QueuePolicy); ok {
		qp.Reset()
	}
}

// addSaturating returns a+b for non-negative b, clamped to math.MaxInt.
func addSaturating(a int, b int64) int {
	if b >= int64(math.MaxInt-a) {
		return math.MaxInt
	}
	return a + int(b)
}

// fail records the first error and stops the event loop.
func (sim *Simulator) fail(err error) {
	if sim.err == nil {
		sim.err = err
	}
}

// ReadySet returns every arrived, unfinished, non-running process ordered by ID.
func (sim *Simulator) ReadySet() []*Process {
	ready := make([]*Process, 0, len(sim.byID))
	for _, p := range sim.byID {
		if p.State == StateReady {
			ready = append(ready, p)
		}
	}
	return ready
}

// Finished returns the number of processes that have completed.
func (sim *Simulator) Finished() int {
	return sim.finished
}

func (sim *Simulator) markReady(p *Process) {
	p.State = StateReady
	if qp, ok := sim.Policy.(QueuePolicy); ok {
		qp.Enqueue(p)
	}
}

// requestDispatch schedules a decision point at now, unless the CPU is busy,
// one is already pending, or nothing is ready.
func (sim *Simulator) requestDispatch(now int64) {
	if sim.running != nil || sim.dispatchPending || sim.finished == len(sim.Processes) {
		return
	}
	if len(sim.ReadySet()) == 0 {
		// CPU idles until the next ArrivalEvent requests a dispatch.
		return
	}
	sim.dispatchPending = true
	sim.Schedule(&DispatchEvent{time: now})
}

func (sim *Simulator) dispatch(now int64) {
	sim.dispatchPending = false
	if sim.running != nil {
		sim.fail(fmt.Errorf("%w: dispatch at tick %d while P%d is running", ErrUnreachableState, now, sim.running.ID))
		return
	}
	ready := sim.ReadySet()
	if len(ready) == 0 {
		return
	}

	sim.dispatches++
	if sim.dispatches > sim.maxDispatches {
		sim.fail(fmt.Errorf("%w: %d dispatches exceed the bound of %d", ErrUnreachableState, sim.dispatches, sim.maxDispatches))
		return
	}

	d := sim.Policy.Select(ready, now)
	if err := sim.checkDecision(d, now); err != nil {
		sim.fail(err)
		return
	}

	p := d.Process
	sim.Timeline.RecordIdle(trace.IdleRecord{Start: sim.lastBusyEnd, End: now})
	p.State = StateRunning
	if p.StartTime < 0 {
		p.StartTime = now
		p.ResponseTime = now - p.ArrivalTime
	}
	p.Dispatches++
	sim.running = p
	logrus.Debugf("[tick %07d] Dispatch P%d for %d ticks (remaining %d, preemptible=%v)", now, p.ID, d.Duration, p.RemainingTime, d.Preemptible)
	if rr, ok := sim.Policy.(*RoundRobin); ok {
		logrus.Debugf("[tick %07d] Ready queue: %s", now, rr.QueueString())
	}

	sim.Schedule(&SliceEndEvent{time: now + d.Duration, start: now, Process: p, Duration: d.Duration})
}

// checkDecision rejects decisions no correct policy can produce.
func (sim *Simulator) checkDecision(d Decision, now int64) error {
	if d.Process == nil {
		return fmt.Errorf("%w: policy %s selected no process at tick %d with ready processes", ErrUnreachableState, sim.Policy.Name(), now)
	}
	p := d.Process
	if p.State != StateReady || p.ArrivalTime > now {
		return fmt.Errorf("%w: policy %s selected P%d in state %s at tick %d", ErrUnreachableState, sim.Policy.Name(), p.ID, p.State, now)
	}
	if d.Duration <= 0 || d.Duration > p.RemainingTime {
		return fmt.Errorf("%w: policy %s granted P%d %d ticks with %d remaining", ErrUnreachableState, sim.Policy.Name(), p.ID, d.Duration, p.RemainingTime)
	}
	return nil
}

func (sim *Simulator) applySlice(e *SliceEndEvent) {
	p := e.Process
	if sim.running != p {
		sim.fail(fmt.Errorf("%w: slice end for P%d which is not running", ErrUnreachableState, p.ID))
		return
	}
	sim.running = nil
	sim.lastBusyEnd = e.time
	p.RemainingTime -= e.Duration

	completed := p.RemainingTime == 0
	sim.Timeline.RecordSlice(trace.SliceRecord{ProcessID: p.ID, Start: e.start, End: e.time, Completed: completed})
	if completed {
		sim.complete(p, e.time)
		return
	}
	sim.markReady(p)
}

// complete commits the completion fields exactly once.
func (sim *Simulator) complete(p *Process, now int64) {
	p.CompletionTime = now
	p.TurnaroundTime = now - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.State = StateFinished
	sim.finished++
	if p.WaitingTime < 0 {
		sim.fail(fmt.Errorf("%w: P%d finished at tick %d before it could have run %d ticks from arrival %d",
			ErrUnreachableState, p.ID, now, p.BurstTime, p.ArrivalTime))
		return
	}
	logrus.Infof("Finished process: ID: %d at time: %d", p.ID, now)
}

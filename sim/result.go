package sim

import (
	"github.com/inference-sim/schedsim/sim/trace"
)

// Result bundles everything one simulation run produces.
type Result struct {
	Report   *Report
	Timeline *trace.Timeline
	Summary  *trace.TimelineSummary
}

// Simulate builds the named policy, runs processes through a fresh Simulator and
// reports the outcome. The process records are reset and mutated in place.
func Simulate(processes []*Process, policyName string, quantum int64) (*Result, error) {
	policy, err := NewPolicy(policyName, quantum)
	if err != nil {
		return nil, err
	}
	s, err := NewSimulator(processes, policy)
	if err != nil {
		return nil, err
	}
	if err := s.Run(); err != nil {
		return nil, err
	}
	report, err := NewReport(processes)
	if err != nil {
		return nil, err
	}
	report.Policy = policy.Name()
	if rr, ok := policy.(*RoundRobin); ok {
		report.Quantum = rr.Quantum
	}
	return &Result{
		Report:   report,
		Timeline: s.Timeline,
		Summary:  trace.Summarize(s.Timeline),
	}, nil
}

// CloneProcesses returns fresh records with the same input fields, in the same order.
func CloneProcesses(processes []*Process) []*Process {
	clones := make([]*Process, len(processes))
	for i, p := range processes {
		clones[i] = NewProcess(p.ID, p.ArrivalTime, p.BurstTime, p.Priority)
	}
	return clones
}

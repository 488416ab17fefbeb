package sim

import (
	"fmt"
	"strings"
)

// Policy names accepted by NewPolicy and the CLI --policy flag.
const (
	PolicyFCFS               = "fcfs"
	PolicySJF                = "sjf"
	PolicySRTF               = "srtf"
	PolicyPriority           = "priority"
	PolicyPriorityPreemptive = "priority-preemptive"
	PolicyRoundRobin         = "rr"
)

// AllPolicies lists every policy in canonical report order.
var AllPolicies = []string{
	PolicyFCFS, PolicySJF, PolicySRTF, PolicyPriority, PolicyPriorityPreemptive, PolicyRoundRobin,
}

// validPolicies is the set of recognized policy names. Empty string defaults to fcfs.
var validPolicies = map[string]bool{
	"":                       true,
	PolicyFCFS:               true,
	PolicySJF:                true,
	PolicySRTF:               true,
	PolicyPriority:           true,
	PolicyPriorityPreemptive: true,
	PolicyRoundRobin:         true,
}

// IsValidPolicy returns true if name is a recognized policy name.
func IsValidPolicy(name string) bool {
	return validPolicies[name]
}

// UsesPriority reports whether the named policy reads Process.Priority.
func UsesPriority(name string) bool {
	return name == PolicyPriority || name == PolicyPriorityPreemptive
}

// Decision is a policy's answer at a dispatch point: run Process for Duration ticks.
// Preemptible marks decisions the policy will revisit before the process completes.
type Decision struct {
	Process     *Process
	Duration    int64
	Preemptible bool
}

// Policy selects which ready process runs next and for how long.
// ready holds every arrived, unfinished process ordered by ID. Implementations
// MUST NOT modify the processes; the Simulator commits every state change.
type Policy interface {
	Name() string
	Select(ready []*Process, clock int64) Decision
}

// QueuePolicy is a Policy that keeps its own ready-queue discipline.
// The Simulator calls Enqueue when a process arrives and again when a partially
// served process returns to the ready state, and Reset before every run.
type QueuePolicy interface {
	Policy
	Reset()
	Enqueue(p *Process)
}

// selectBest returns the ready process with the smallest key, lowest ID on ties.
// Returns nil for an empty ready set.
func selectBest(ready []*Process, key func(*Process) int64) *Process {
	var best *Process
	for _, p := range ready {
		if best == nil {
			best = p
			continue
		}
		kp, kb := key(p), key(best)
		if kp < kb || (kp == kb && p.ID < best.ID) {
			best = p
		}
	}
	return best
}

// runToCompletion grants the chosen process all of its remaining work.
func runToCompletion(p *Process) Decision {
	if p == nil {
		return Decision{}
	}
	return Decision{Process: p, Duration: p.RemainingTime}
}

// runOneTick grants the chosen process a single tick; the choice is re-evaluated after it.
func runOneTick(p *Process) Decision {
	if p == nil {
		return Decision{}
	}
	return Decision{Process: p, Duration: 1, Preemptible: true}
}

// FCFSPolicy runs the earliest arrival to completion, ties by ID.
type FCFSPolicy struct{}

func (f *FCFSPolicy) Name() string { return PolicyFCFS }

func (f *FCFSPolicy) Select(ready []*Process, _ int64) Decision {
	return runToCompletion(selectBest(ready, func(p *Process) int64 { return p.ArrivalTime }))
}

// SJFPolicy runs the ready process with the smallest burst to completion, ties by ID.
// Warning: SJF can starve long processes under sustained arrivals.
type SJFPolicy struct{}

func (s *SJFPolicy) Name() string { return PolicySJF }

func (s *SJFPolicy) Select(ready []*Process, _ int64) Decision {
	return runToCompletion(selectBest(ready, func(p *Process) int64 { return p.BurstTime }))
}

// SRTFPolicy runs the ready process with the least remaining work for one tick, ties by ID.
type SRTFPolicy struct{}

func (s *SRTFPolicy) Name() string { return PolicySRTF }

func (s *SRTFPolicy) Select(ready []*Process, _ int64) Decision {
	return runOneTick(selectBest(ready, func(p *Process) int64 { return p.RemainingTime }))
}

// PriorityPolicy runs the ready process with the smallest priority value to completion, ties by ID.
type PriorityPolicy struct{}

func (pp *PriorityPolicy) Name() string { return PolicyPriority }

func (pp *PriorityPolicy) Select(ready []*Process, _ int64) Decision {
	return runToCompletion(selectBest(ready, func(p *Process) int64 { return p.Priority }))
}

// PreemptivePriorityPolicy runs the ready process with the smallest priority value for one
// tick, ties by ID.
type PreemptivePriorityPolicy struct{}

func (pp *PreemptivePriorityPolicy) Name() string { return PolicyPriorityPreemptive }

func (pp *PreemptivePriorityPolicy) Select(ready []*Process, _ int64) Decision {
	return runOneTick(selectBest(ready, func(p *Process) int64 { return p.Priority }))
}

// NewPolicy creates a Policy by name. quantum is read only by "rr".
// Empty name defaults to FCFSPolicy (for CLI flag default compatibility).
func NewPolicy(name string, quantum int64) (Policy, error) {
	if !IsValidPolicy(name) {
		return nil, fmt.Errorf("%w: unknown policy %q; valid: %s", ErrInvalidInput, name, strings.Join(AllPolicies, ", "))
	}
	switch name {
	case "", PolicyFCFS:
		return &FCFSPolicy{}, nil
	case PolicySJF:
		return &SJFPolicy{}, nil
	case PolicySRTF:
		return &SRTFPolicy{}, nil
	case PolicyPriority:
		return &PriorityPolicy{}, nil
	case PolicyPriorityPreemptive:
		return &PreemptivePriorityPolicy{}, nil
	case PolicyRoundRobin:
		return NewRoundRobin(quantum)
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}

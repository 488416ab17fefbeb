package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyAt(procs ...*Process) []*Process {
	for _, p := range procs {
		p.State = StateReady
	}
	return procs
}

func TestNewPolicy_ValidNames(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
	}{
		{"", PolicyFCFS},
		{PolicyFCFS, PolicyFCFS},
		{PolicySJF, PolicySJF},
		{PolicySRTF, PolicySRTF},
		{PolicyPriority, PolicyPriority},
		{PolicyPriorityPreemptive, PolicyPriorityPreemptive},
		{PolicyRoundRobin, PolicyRoundRobin},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			policy, err := NewPolicy(tt.name, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, policy.Name())
		})
	}
}

func TestNewPolicy_InvalidInput(t *testing.T) {
	_, err := NewPolicy("lottery", 2)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown policy: error = %v, want ErrInvalidInput", err)
	}
	_, err = NewPolicy(PolicyRoundRobin, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero quantum: error = %v, want ErrInvalidInput", err)
	}
}

func TestPolicies_Select_KeyAndDuration(t *testing.T) {
	// GIVEN P1 (arrival 0, burst 6, prio 3, remaining 2), P2 (arrival 1, burst 3, prio 1),
	// P3 (arrival 2, burst 4, prio 2)
	build := func() []*Process {
		p1 := NewProcess(1, 0, 6, 3)
		p1.RemainingTime = 2
		return readyAt(p1, NewProcess(2, 1, 3, 1), NewProcess(3, 2, 4, 2))
	}
	tests := []struct {
		policy      Policy
		wantID      int
		wantDur     int64
		preemptible bool
	}{
		{&FCFSPolicy{}, 1, 2, false},
		{&SJFPolicy{}, 2, 3, false},
		{&SRTFPolicy{}, 1, 1, true},
		{&PriorityPolicy{}, 2, 3, false},
		{&PreemptivePriorityPolicy{}, 2, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.policy.Name(), func(t *testing.T) {
			// WHEN the policy selects
			d := tt.policy.Select(build(), 2)

			// THEN it picks by its key and grants its slice length
			require.NotNil(t, d.Process)
			assert.Equal(t, tt.wantID, d.Process.ID)
			assert.Equal(t, tt.wantDur, d.Duration)
			assert.Equal(t, tt.preemptible, d.Preemptible)
		})
	}
}

func TestPolicies_Select_EmptyReadySet_NoDecision(t *testing.T) {
	for _, p := range []Policy{&FCFSPolicy{}, &SJFPolicy{}, &SRTFPolicy{}, &PriorityPolicy{}, &PreemptivePriorityPolicy{}} {
		d := p.Select(nil, 0)
		assert.Nil(t, d.Process, p.Name())
	}
}

func TestSelectBest_TieBreaksOnLowestID(t *testing.T) {
	// GIVEN equal keys presented in descending ID order
	ready := readyAt(NewProcess(3, 0, 5, 0), NewProcess(1, 0, 5, 0), NewProcess(2, 0, 5, 0))

	// WHEN selected by burst
	got := selectBest(ready, func(p *Process) int64 { return p.BurstTime })

	// THEN the lowest ID wins
	assert.Equal(t, 1, got.ID)
}

func TestRoundRobin_Select_FIFOAndQuantum(t *testing.T) {
	// GIVEN a round robin with quantum 3 and queue [P2, P1]
	rr, err := NewRoundRobin(3)
	require.NoError(t, err)
	p1 := NewProcess(1, 0, 10, 0)
	p2 := NewProcess(2, 0, 2, 0)
	rr.Enqueue(p2)
	rr.Enqueue(p1)
	assert.Equal(t, "[P2 P1]", rr.QueueString())

	// WHEN selecting twice
	first := rr.Select(nil, 0)
	second := rr.Select(nil, 0)

	// THEN queue order decides and the slice is min(remaining, quantum)
	assert.Equal(t, Decision{Process: p2, Duration: 2, Preemptible: true}, first)
	assert.Equal(t, Decision{Process: p1, Duration: 3, Preemptible: true}, second)
	assert.Nil(t, rr.Select(nil, 0).Process)
}

func TestRoundRobin_Reset_DropsQueue(t *testing.T) {
	rr, err := NewRoundRobin(1)
	require.NoError(t, err)
	rr.Enqueue(NewProcess(1, 0, 1, 0))

	rr.Reset()

	assert.Equal(t, "[]", rr.QueueString())
}

func TestIsValidPolicy_And_UsesPriority(t *testing.T) {
	for _, name := range AllPolicies {
		assert.True(t, IsValidPolicy(name), name)
	}
	assert.False(t, IsValidPolicy("lottery"))
	assert.True(t, UsesPriority(PolicyPriority))
	assert.True(t, UsesPriority(PolicyPriorityPreemptive))
	assert.False(t, UsesPriority(PolicyRoundRobin))
}

func TestNewProcesses(t *testing.T) {
	procs, err := NewProcesses([]int64{0, 2}, []int64{5, 3}, nil)
	require.NoError(t, err)
	require.Len(t, procs, 2)
	assert.Equal(t, 2, procs[1].ID)
	assert.Equal(t, int64(3), procs[1].RemainingTime)
	assert.Equal(t, int64(-1), procs[1].StartTime)
	assert.Equal(t, StateUnarrived, procs[1].State)

	_, err = NewProcesses([]int64{0}, []int64{5, 3}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewProcesses([]int64{0, 1}, []int64{5, 3}, []int64{1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

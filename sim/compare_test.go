package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareAll_OneEntryPerPolicy_SortedByWaiting(t *testing.T) {
	// GIVEN the SRTF example set
	procs := mustProcesses(t, []int64{0, 8, 2}, []int64{1, 4, 1}, []int64{2, 9, 3}, []int64{3, 5, 2})

	// WHEN compared across all policies
	cmp, err := CompareAll(procs, 2)
	require.NoError(t, err)

	// THEN every policy appears once, ordered by average waiting time
	require.Len(t, cmp.Entries, len(AllPolicies))
	for i := 1; i < len(cmp.Entries); i++ {
		assert.LessOrEqual(t, cmp.Entries[i-1].AverageWaitingTime, cmp.Entries[i].AverageWaitingTime)
	}
	// SRTF is optimal for average waiting time
	assert.Equal(t, PolicySRTF, cmp.Entries[0].Policy)
	assert.InDelta(t, 6.5, cmp.Entries[0].AverageWaitingTime, 1e-9)

	// AND the input records were not mutated
	for _, p := range procs {
		assert.Equal(t, StateUnarrived, p.State)
	}
}

func TestCompareAll_InvalidInput(t *testing.T) {
	_, err := CompareAll(nil, 2)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = CompareAll(mustProcesses(t, []int64{0, 3}), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComparison_Print(t *testing.T) {
	cmp, err := CompareAll(mustProcesses(t, []int64{0, 3}, []int64{1, 2}), 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	cmp.Print(&buf)

	assert.Contains(t, buf.String(), "=== Policy Comparison ===")
	assert.Contains(t, buf.String(), "rr (quantum=1)")
	assert.Contains(t, buf.String(), "Avg Waiting")
}

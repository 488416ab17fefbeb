// Package testutil provides shared test infrastructure for the scheduling simulator.
// It holds assertion helpers used across the sim/ and cmd/ test packages and does
// not import sim, so sim's own tests can use it.
package testutil

import (
	"math"
	"testing"
)

// Outcome is the completion record of one simulated process.
type Outcome struct {
	ID         int
	Arrival    int64
	Burst      int64
	Start      int64
	Completion int64
	Turnaround int64
	Waiting    int64
	Response   int64
}

// AssertOutcomeInvariants checks the relations every finished process must satisfy
// regardless of policy:
//
//	turnaround = completion - arrival
//	waiting    = turnaround - burst >= 0
//	arrival <= start, completion >= start + burst
//	0 <= response <= waiting
func AssertOutcomeInvariants(t *testing.T, outcomes []Outcome) {
	t.Helper()
	for _, o := range outcomes {
		if o.Turnaround != o.Completion-o.Arrival {
			t.Errorf("P%d: turnaround %d != completion %d - arrival %d", o.ID, o.Turnaround, o.Completion, o.Arrival)
		}
		if o.Waiting != o.Turnaround-o.Burst {
			t.Errorf("P%d: waiting %d != turnaround %d - burst %d", o.ID, o.Waiting, o.Turnaround, o.Burst)
		}
		if o.Waiting < 0 {
			t.Errorf("P%d: negative waiting time %d", o.ID, o.Waiting)
		}
		if o.Start < o.Arrival {
			t.Errorf("P%d: started at %d before arrival %d", o.ID, o.Start, o.Arrival)
		}
		if o.Completion < o.Start+o.Burst {
			t.Errorf("P%d: completed at %d, earlier than start %d + burst %d", o.ID, o.Completion, o.Start, o.Burst)
		}
		if o.Response < 0 || o.Response > o.Waiting {
			t.Errorf("P%d: response %d outside [0, waiting %d]", o.ID, o.Response, o.Waiting)
		}
	}
}

// AssertNoOverlap checks that no two busy intervals [start, end) overlap: the CPU
// runs at most one process at any tick.
func AssertNoOverlap(t *testing.T, intervals [][2]int64) {
	t.Helper()
	for i := 1; i < len(intervals); i++ {
		if intervals[i][0] < intervals[i-1][1] {
			t.Errorf("interval %d [%d,%d) overlaps previous [%d,%d)", i,
				intervals[i][0], intervals[i][1], intervals[i-1][0], intervals[i-1][1])
		}
	}
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

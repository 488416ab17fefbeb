package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_NilTimeline_ZeroValues(t *testing.T) {
	// GIVEN no timeline
	// WHEN summarized
	summary := Summarize(nil)

	// THEN all counts are zero
	if summary.Dispatches != 0 || summary.ContextSwitches != 0 {
		t.Errorf("expected zero dispatches and switches, got %d and %d", summary.Dispatches, summary.ContextSwitches)
	}
	if summary.Utilization != 0 {
		t.Errorf("expected zero utilization, got %f", summary.Utilization)
	}
}

func TestSummarize_EmptyTimeline_ZeroValues(t *testing.T) {
	summary := Summarize(NewTimeline())

	assert.Equal(t, &TimelineSummary{}, summary)
}

func TestSummarize_PopulatedTimeline_CorrectCounts(t *testing.T) {
	// GIVEN P1 for two unit slices, an idle gap, then P2 and P1 again
	tl := NewTimeline()
	tl.RecordIdle(IdleRecord{Start: 0, End: 1})
	tl.RecordSlice(SliceRecord{ProcessID: 1, Start: 1, End: 2})
	tl.RecordSlice(SliceRecord{ProcessID: 1, Start: 2, End: 3})
	tl.RecordSlice(SliceRecord{ProcessID: 2, Start: 3, End: 5, Completed: true})
	tl.RecordSlice(SliceRecord{ProcessID: 1, Start: 5, End: 6, Completed: true})
	tl.RecordIdle(IdleRecord{Start: 6, End: 8})
	tl.RecordSlice(SliceRecord{ProcessID: 3, Start: 8, End: 10, Completed: true})

	// WHEN summarized
	summary := Summarize(tl)

	// THEN counts reflect slices, switches (1→2, 2→1, 1→3) and idle ticks
	assert.Equal(t, 5, summary.Dispatches)
	assert.Equal(t, 3, summary.ContextSwitches)
	assert.Equal(t, int64(7), summary.BusyTime)
	assert.Equal(t, int64(3), summary.IdleTime)
	assert.Equal(t, int64(10), summary.Makespan)
	assert.InDelta(t, 0.7, summary.Utilization, 1e-9)
}

func TestPrintGantt_RendersBarsAxisAndSummary(t *testing.T) {
	// GIVEN a two-process timeline with a leading idle gap
	tl := NewTimeline()
	tl.RecordIdle(IdleRecord{Start: 0, End: 2})
	tl.RecordSlice(SliceRecord{ProcessID: 1, Start: 2, End: 5, Completed: true})
	tl.RecordSlice(SliceRecord{ProcessID: 2, Start: 5, End: 6, Completed: true})

	// WHEN printed
	var buf bytes.Buffer
	PrintGantt(&buf, tl)

	// THEN the chart has a bar row, an axis row and a summary line
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Gantt schedule", lines[0])
	assert.Equal(t, "|  idle  |   P1   |   P2   |", lines[1])
	assert.Equal(t, "0        2        5        6", lines[2])
	assert.Equal(t, "Dispatches: 2  Context switches: 1  Idle: 2  Utilization: 66.67%", lines[3])
}

func TestPrintGantt_EmptyTimeline(t *testing.T) {
	var buf bytes.Buffer
	PrintGantt(&buf, NewTimeline())

	assert.Equal(t, "Gantt schedule\n(empty)\n", buf.String())
}

func TestPrintGanttBars_UsesGivenSummary(t *testing.T) {
	// GIVEN one merged bar standing for three one-tick slices
	bars := []GanttBar{{ProcessID: 1, Start: 0, End: 3}}
	summary := &TimelineSummary{Dispatches: 3, BusyTime: 3, Makespan: 3, Utilization: 1}

	// WHEN printed with and without a summary
	var with, without bytes.Buffer
	PrintGanttBars(&with, bars, summary)
	PrintGanttBars(&without, bars, nil)

	// THEN the summary line reports the given dispatch count, and is omitted when nil
	assert.Contains(t, with.String(), "Dispatches: 3  Context switches: 0  Idle: 0  Utilization: 100.00%")
	assert.Equal(t, "Gantt schedule\n|   P1   |\n0        3\n", without.String())
}

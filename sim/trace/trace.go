package trace

import "sort"

// Timeline collects dispatch and idle records during a simulation run.
type Timeline struct {
	Slices []SliceRecord
	Idle   []IdleRecord
}

// NewTimeline creates a Timeline ready for recording.
func NewTimeline() *Timeline {
	return &Timeline{
		Slices: make([]SliceRecord, 0),
		Idle:   make([]IdleRecord, 0),
	}
}

// RecordSlice appends a dispatch record.
func (t *Timeline) RecordSlice(record SliceRecord) {
	t.Slices = append(t.Slices, record)
}

// RecordIdle appends an idle record. Empty intervals are ignored.
func (t *Timeline) RecordIdle(record IdleRecord) {
	if record.End <= record.Start {
		return
	}
	t.Idle = append(t.Idle, record)
}

// GrantedTime returns the total CPU time granted to each process ID.
func (t *Timeline) GrantedTime() map[int]int64 {
	granted := make(map[int]int64)
	for _, s := range t.Slices {
		granted[s.ProcessID] += s.Duration()
	}
	return granted
}

// DispatchOrder returns the process IDs of every slice, in dispatch order.
func (t *Timeline) DispatchOrder() []int {
	order := make([]int, len(t.Slices))
	for i, s := range t.Slices {
		order[i] = s.ProcessID
	}
	return order
}

// GanttBars merges back-to-back slices of the same process and interleaves idle gaps,
// ordered by start time.
func (t *Timeline) GanttBars() []GanttBar {
	bars := make([]GanttBar, 0, len(t.Slices)+len(t.Idle))
	for _, s := range t.Slices {
		if n := len(bars); n > 0 && bars[n-1].ProcessID == s.ProcessID && bars[n-1].End == s.Start {
			bars[n-1].End = s.End
			continue
		}
		bars = append(bars, GanttBar{ProcessID: s.ProcessID, Start: s.Start, End: s.End})
	}
	for _, idle := range t.Idle {
		bars = append(bars, GanttBar{ProcessID: IdleProcessID, Start: idle.Start, End: idle.End})
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Start < bars[j].Start
	})
	return bars
}

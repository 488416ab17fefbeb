// Package trace records the CPU dispatch timeline of a scheduling simulation.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// SliceRecord captures one applied dispatch: ProcessID held the CPU over [Start, End).
type SliceRecord struct {
	ProcessID int
	Start     int64
	End       int64
	Completed bool // the slice drove the process's remaining time to 0
}

// Duration returns the number of ticks the slice granted.
func (r SliceRecord) Duration() int64 {
	return r.End - r.Start
}

// IdleRecord captures an interval over [Start, End) during which no process was ready.
type IdleRecord struct {
	Start int64
	End   int64
}

// IdleProcessID marks idle bars in GanttBars output.
const IdleProcessID = 0

// GanttBar is one bar of a Gantt chart: consecutive slices of the same process merged.
// ProcessID is IdleProcessID for idle gaps.
type GanttBar struct {
	ProcessID int   `json:"process_id"`
	Start     int64 `json:"start"`
	End       int64 `json:"end"`
}

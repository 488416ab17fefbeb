package trace

// TimelineSummary aggregates statistics from a Timeline.
type TimelineSummary struct {
	Dispatches      int     `json:"dispatches"`       // number of slices granted
	ContextSwitches int     `json:"context_switches"` // CPU handed from one process to a different one
	BusyTime        int64   `json:"busy_time"`        // ticks spent running a process
	IdleTime        int64   `json:"idle_time"`        // ticks with no ready process, from tick 0 to the last slice
	Makespan        int64   `json:"makespan"`         // end of the last slice
	Utilization     float64 `json:"utilization"`      // BusyTime / Makespan
}

// Summarize computes aggregate statistics from a Timeline.
// Safe for nil or empty timelines (returns zero-value fields).
func Summarize(t *Timeline) *TimelineSummary {
	summary := &TimelineSummary{}
	if t == nil {
		return summary
	}

	summary.Dispatches = len(t.Slices)
	prev := IdleProcessID
	for _, s := range t.Slices {
		summary.BusyTime += s.Duration()
		if s.End > summary.Makespan {
			summary.Makespan = s.End
		}
		// Idle gaps between two slices of the same process are not a switch.
		if prev != IdleProcessID && prev != s.ProcessID {
			summary.ContextSwitches++
		}
		prev = s.ProcessID
	}
	for _, idle := range t.Idle {
		summary.IdleTime += idle.End - idle.Start
	}
	if summary.Makespan > 0 {
		summary.Utilization = float64(summary.BusyTime) / float64(summary.Makespan)
	}
	return summary
}

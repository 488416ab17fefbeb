package trace

import (
	"fmt"
	"io"
	"strings"
)

const ganttCellWidth = 8

// PrintGantt writes an ASCII Gantt chart of the timeline followed by the summary line.
//
//	|   P1   |   P2   |  idle  |   P1   |
//	0       3       5       7       9
func PrintGantt(w io.Writer, t *Timeline) {
	PrintGanttBars(w, t.GanttBars(), Summarize(t))
}

// PrintGanttBars renders already merged bars. The summary line is omitted when s is nil.
func PrintGanttBars(w io.Writer, bars []GanttBar, s *TimelineSummary) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(bars) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}

	var top, axis strings.Builder
	top.WriteString("|")
	for _, b := range bars {
		label := "idle"
		if b.ProcessID != IdleProcessID {
			label = fmt.Sprintf("P%d", b.ProcessID)
		}
		left := (ganttCellWidth - len(label)) / 2
		right := ganttCellWidth - len(label) - left
		top.WriteString(strings.Repeat(" ", max(left, 0)) + label + strings.Repeat(" ", max(right, 0)) + "|")

		start := fmt.Sprint(b.Start)
		axis.WriteString(start + strings.Repeat(" ", max(ganttCellWidth+1-len(start), 1)))
	}
	axis.WriteString(fmt.Sprint(bars[len(bars)-1].End))

	_, _ = fmt.Fprintln(w, top.String())
	_, _ = fmt.Fprintln(w, axis.String())

	if s == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Dispatches: %d  Context switches: %d  Idle: %d  Utilization: %.2f%%\n",
		s.Dispatches, s.ContextSwitches, s.IdleTime, s.Utilization*100)
}

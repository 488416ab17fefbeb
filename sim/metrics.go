// Computes per-process and aggregate scheduling metrics from terminal process records:
// completion, turnaround, waiting and response time, and their averages.

package sim

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// ProcessRow is one line of the result table.
type ProcessRow struct {
	ID             int   `json:"id"`
	ArrivalTime    int64 `json:"arrival_time"`
	BurstTime      int64 `json:"burst_time"`
	Priority       int64 `json:"priority"`
	CompletionTime int64 `json:"completion_time"`
	TurnaroundTime int64 `json:"turnaround_time"`
	WaitingTime    int64 `json:"waiting_time"`
	ResponseTime   int64 `json:"response_time"`
	Dispatches     int   `json:"dispatches"` // slices granted to the process
}

// Report aggregates the outcome of one simulation run for final reporting.
type Report struct {
	Policy                string       `json:"policy"`
	Quantum               int64        `json:"quantum,omitempty"`
	Rows                  []ProcessRow `json:"rows"`
	AverageWaitingTime    float64      `json:"average_waiting_time"`
	AverageTurnaroundTime float64      `json:"average_turnaround_time"`
	AverageResponseTime   float64      `json:"average_response_time"`
	WaitingTimeStdDev     float64      `json:"waiting_time_stddev"`
	Makespan              int64        `json:"makespan"`   // latest completion time
	Throughput            float64      `json:"throughput"` // processes per tick over the makespan
}

// NewReport builds a Report from finished process records. Rows are ordered by ID.
// Fails with ErrEmptyInput for an empty set and ErrInvalidInput if any process is unfinished.
func NewReport(processes []*Process) (*Report, error) {
	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: no processes to report", ErrEmptyInput)
	}

	r := &Report{Rows: make([]ProcessRow, 0, len(processes))}
	waiting := make([]float64, 0, len(processes))
	turnaround := make([]float64, 0, len(processes))
	response := make([]float64, 0, len(processes))
	for _, p := range processes {
		if p == nil || !p.Finished() {
			return nil, fmt.Errorf("%w: report requires finished processes, got %v", ErrInvalidInput, p)
		}
		r.Rows = append(r.Rows, ProcessRow{
			ID:             p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			CompletionTime: p.CompletionTime,
			TurnaroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
			ResponseTime:   p.ResponseTime,
			Dispatches:     p.Dispatches,
		})
		waiting = append(waiting, float64(p.WaitingTime))
		turnaround = append(turnaround, float64(p.TurnaroundTime))
		response = append(response, float64(p.ResponseTime))
		r.Makespan = max(r.Makespan, p.CompletionTime)
	}
	sort.Slice(r.Rows, func(i, j int) bool { return r.Rows[i].ID < r.Rows[j].ID })

	r.AverageWaitingTime, r.WaitingTimeStdDev = meanStdDev(waiting)
	r.AverageTurnaroundTime = mean(turnaround)
	r.AverageResponseTime = mean(response)
	if r.Makespan > 0 {
		r.Throughput = float64(len(processes)) / float64(r.Makespan)
	}
	return r, nil
}

// Print writes the result table followed by the averages.
// The priority column is shown only when showPriority is set.
func (r *Report) Print(w io.Writer, showPriority bool) {
	header := []string{"PID", "Arrival", "Burst"}
	if showPriority {
		header = append(header, "Priority")
	}
	header = append(header, "Completion", "Turnaround", "Waiting")

	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		line := []string{fmt.Sprintf("P%d", row.ID), fmt.Sprint(row.ArrivalTime), fmt.Sprint(row.BurstTime)}
		if showPriority {
			line = append(line, fmt.Sprint(row.Priority))
		}
		line = append(line, fmt.Sprint(row.CompletionTime), fmt.Sprint(row.TurnaroundTime), fmt.Sprint(row.WaitingTime))
		rows = append(rows, line)
	}

	_, _ = fmt.Fprintf(w, "=== %s ===\n", r.title())
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()

	_, _ = fmt.Fprintf(w, "Average Waiting Time     : %.2f\n", r.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Turn-Around Time : %.2f\n", r.AverageTurnaroundTime)
	_, _ = fmt.Fprintf(w, "Average Response Time    : %.2f\n", r.AverageResponseTime)
	_, _ = fmt.Fprintf(w, "Throughput               : %.4f processes/tick\n", r.Throughput)
}

func (r *Report) title() string {
	if r.Policy == PolicyRoundRobin && r.Quantum > 0 {
		return fmt.Sprintf("%s (quantum=%d)", r.Policy, r.Quantum)
	}
	if r.Policy == "" {
		return "Simulation Metrics"
	}
	return r.Policy
}

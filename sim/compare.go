package sim

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// ComparisonEntry summarizes one policy's run over a shared process set.
type ComparisonEntry struct {
	Policy                string  `json:"policy"`
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	ContextSwitches       int     `json:"context_switches"`
	Makespan              int64   `json:"makespan"`
}

// Comparison holds one entry per policy, ordered by average waiting time then policy name.
type Comparison struct {
	Entries []ComparisonEntry `json:"entries"`
}

// CompareAll runs every policy over independent copies of processes.
// quantum is used by round robin only. The input records are not mutated.
func CompareAll(processes []*Process, quantum int64) (*Comparison, error) {
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}
	cmp := &Comparison{Entries: make([]ComparisonEntry, 0, len(AllPolicies))}
	for _, name := range AllPolicies {
		res, err := Simulate(CloneProcesses(processes), name, quantum)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", name, err)
		}
		cmp.Entries = append(cmp.Entries, ComparisonEntry{
			Policy:                res.Report.title(),
			AverageWaitingTime:    res.Report.AverageWaitingTime,
			AverageTurnaroundTime: res.Report.AverageTurnaroundTime,
			AverageResponseTime:   res.Report.AverageResponseTime,
			ContextSwitches:       res.Summary.ContextSwitches,
			Makespan:              res.Report.Makespan,
		})
	}
	sort.SliceStable(cmp.Entries, func(i, j int) bool {
		if cmp.Entries[i].AverageWaitingTime != cmp.Entries[j].AverageWaitingTime {
			return cmp.Entries[i].AverageWaitingTime < cmp.Entries[j].AverageWaitingTime
		}
		return cmp.Entries[i].Policy < cmp.Entries[j].Policy
	})
	return cmp, nil
}

// Print writes the comparison as a table.
func (c *Comparison) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "=== Policy Comparison ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Waiting", "Avg Turnaround", "Avg Response", "Switches", "Makespan"})
	table.SetAutoFormatHeaders(false)
	for _, e := range c.Entries {
		table.Append([]string{
			e.Policy,
			fmt.Sprintf("%.2f", e.AverageWaitingTime),
			fmt.Sprintf("%.2f", e.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", e.AverageResponseTime),
			fmt.Sprint(e.ContextSwitches),
			fmt.Sprint(e.Makespan),
		})
	}
	table.Render()
}

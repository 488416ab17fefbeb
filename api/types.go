package api

import (
	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/trace"
)

// ProcessInput is one process of a simulate request. IDs are assigned in list order.
type ProcessInput struct {
	Arrival  int64 `json:"arrival"`
	Burst    int64 `json:"burst"`
	Priority int64 `json:"priority,omitempty"`
}

// SimulateRequest is the body of POST /simulate.
type SimulateRequest struct {
	Policy    string         `json:"policy"`
	Quantum   int64          `json:"quantum,omitempty"`
	Processes []ProcessInput `json:"processes"`
}

// SimulateResponse carries the report fields at the top level plus the timeline.
type SimulateResponse struct {
	sim.Report
	Summary *trace.TimelineSummary `json:"summary"`
	Gantt   []trace.GanttBar       `json:"gantt"`
}

// PoliciesResponse is the body of GET /policies.
type PoliciesResponse struct {
	Policies []string `json:"policies"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToProcesses builds fresh process records from the request body.
func (r *SimulateRequest) ToProcesses() []*sim.Process {
	procs := make([]*sim.Process, len(r.Processes))
	for i, p := range r.Processes {
		procs[i] = sim.NewProcess(i+1, p.Arrival, p.Burst, p.Priority)
	}
	return procs
}

// NewSimulateRequest captures a process set as a request body.
func NewSimulateRequest(policy string, quantum int64, procs []*sim.Process) *SimulateRequest {
	req := &SimulateRequest{Policy: policy, Quantum: quantum, Processes: make([]ProcessInput, len(procs))}
	for i, p := range procs {
		req.Processes[i] = ProcessInput{Arrival: p.ArrivalTime, Burst: p.BurstTime, Priority: p.Priority}
	}
	return req
}

// Package sim provides the discrete-time CPU scheduling simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (unarrived → ready → running → finished) and its records
//   - event.go: Event types that drive the simulation (Arrival, Dispatch, SliceEnd)
//   - simulator.go: The event loop, dispatch decisions and slice accounting
//
// # Architecture
//
// One engine serves every scheduling discipline. The engine owns time, arrivals,
// completion bookkeeping and idle gaps; a Policy only answers "which ready process
// runs next, and for how long". Sub-packages:
//   - sim/trace/: Execution timeline, Gantt rendering and summary statistics
//   - sim/workload/: Process set loading (YAML, CSV, interactive) and synthetic generation
//
// # Key Interfaces
//
//   - Policy: select a ready process and grant it a slice (policy.go)
//   - QueuePolicy: policies that keep their own FIFO ready queue (round_robin.go)
//
// Metrics (metrics.go) are derived from finished process records only.
package sim

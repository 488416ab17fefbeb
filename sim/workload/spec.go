package workload

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/schedsim/sim"
)

// WorkloadSpec is the top-level process-set configuration.
// Loaded from YAML via LoadWorkloadSpec(path). Exactly one of Processes or Generator
// supplies the process set.
//
//	policy: rr
//	quantum: 2
//	processes:
//	  - {arrival: 0, burst: 5}
//	  - {arrival: 1, burst: 3, priority: 2}
type WorkloadSpec struct {
	Version   string         `yaml:"version,omitempty"`
	Policy    string         `yaml:"policy,omitempty"`
	Quantum   int64          `yaml:"quantum,omitempty"` // 0 = not set
	Processes []ProcessSpec  `yaml:"processes,omitempty"`
	Generator *GeneratorSpec `yaml:"generator,omitempty"`
}

// ProcessSpec defines one process. IDs are assigned in list order.
type ProcessSpec struct {
	Arrival  int64 `yaml:"arrival"`
	Burst    int64 `yaml:"burst"`
	Priority int64 `yaml:"priority,omitempty"`
}

// GeneratorSpec configures synthetic process-set generation.
type GeneratorSpec struct {
	Seed           int64       `yaml:"seed"`
	Count          int         `yaml:"count"`
	Arrival        ArrivalSpec `yaml:"arrival"`
	Burst          DistSpec    `yaml:"burst"`
	PriorityLevels int64       `yaml:"priority_levels,omitempty"` // priorities drawn from [1, levels]; 0 = all zero
}

// ArrivalSpec configures the inter-arrival process.
type ArrivalSpec struct {
	Process string   `yaml:"process"`
	Rate    float64  `yaml:"rate"` // arrivals per tick
	CV      *float64 `yaml:"cv,omitempty"`
}

// DistSpec parameterizes a burst length distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Valid value registries.
var (
	validArrivalProcesses = map[string]bool{
		"": true, "poisson": true, "gamma": true, "constant": true,
	}
	validDistTypes = map[string]bool{
		"uniform": true, "gaussian": true, "exponential": true, "constant": true,
	}
)

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	return ParseWorkloadSpec(data)
}

// ParseWorkloadSpec parses YAML bytes with strict field checking.
func ParseWorkloadSpec(data []byte) (*WorkloadSpec, error) {
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// LoadFile loads a process set from path, choosing the format by extension:
// .csv for CSV rows, .yaml/.yml for a WorkloadSpec.
func LoadFile(path string) (*WorkloadSpec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening process file: %w", err)
		}
		defer func() { _ = f.Close() }()
		procs, err := LoadCSV(f)
		if err != nil {
			return nil, err
		}
		return SpecFromProcesses(procs), nil
	case ".yaml", ".yml":
		return LoadWorkloadSpec(path)
	default:
		return nil, fmt.Errorf("unsupported process file extension %q; use .csv, .yaml or .yml", filepath.Ext(path))
	}
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if !sim.IsValidPolicy(s.Policy) {
		return fmt.Errorf("%w: unknown policy %q", sim.ErrInvalidInput, s.Policy)
	}
	if s.Quantum < 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", sim.ErrInvalidInput, s.Quantum)
	}
	if len(s.Processes) == 0 && s.Generator == nil {
		return fmt.Errorf("%w: at least one process or a generator is required", sim.ErrEmptyInput)
	}
	if len(s.Processes) > 0 && s.Generator != nil {
		return fmt.Errorf("%w: processes and generator are mutually exclusive", sim.ErrInvalidInput)
	}
	for i := range s.Processes {
		if err := validateProcess(&s.Processes[i], i); err != nil {
			return err
		}
	}
	if s.Generator != nil {
		return s.Generator.Validate()
	}
	return nil
}

func validateProcess(p *ProcessSpec, idx int) error {
	prefix := fmt.Sprintf("processes[%d]", idx)
	if p.Arrival < 0 {
		return fmt.Errorf("%w: %s: arrival must be non-negative, got %d", sim.ErrInvalidInput, prefix, p.Arrival)
	}
	if p.Burst <= 0 {
		return fmt.Errorf("%w: %s: burst must be positive, got %d", sim.ErrInvalidInput, prefix, p.Burst)
	}
	return nil
}

// Validate checks generator parameters.
func (g *GeneratorSpec) Validate() error {
	if g.Count <= 0 {
		return fmt.Errorf("%w: generator.count must be positive, got %d", sim.ErrInvalidInput, g.Count)
	}
	if !validArrivalProcesses[g.Arrival.Process] {
		return fmt.Errorf("%w: generator.arrival: unknown process %q; valid: poisson, gamma, constant", sim.ErrInvalidInput, g.Arrival.Process)
	}
	if err := validateFinitePositive("generator.arrival.rate", g.Arrival.Rate); err != nil {
		return err
	}
	if g.Arrival.CV != nil {
		if err := validateFinitePositive("generator.arrival.cv", *g.Arrival.CV); err != nil {
			return err
		}
	}
	if !validDistTypes[g.Burst.Type] {
		return fmt.Errorf("%w: generator.burst: unknown distribution type %q; valid: uniform, gaussian, exponential, constant", sim.ErrInvalidInput, g.Burst.Type)
	}
	for name, val := range g.Burst.Params {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%w: generator.burst.params.%s must be a finite number, got %f", sim.ErrInvalidInput, name, val)
		}
	}
	if _, err := NewBurstSampler(g.Burst); err != nil {
		return fmt.Errorf("%w: generator.burst: %v", sim.ErrInvalidInput, err)
	}
	if g.PriorityLevels < 0 {
		return fmt.Errorf("%w: generator.priority_levels must be non-negative, got %d", sim.ErrInvalidInput, g.PriorityLevels)
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %f", sim.ErrInvalidInput, name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %f", sim.ErrInvalidInput, name, val)
	}
	return nil
}

// ToProcesses validates the spec and builds fresh process records, generating them
// when the spec carries a generator.
func (s *WorkloadSpec) ToProcesses() ([]*sim.Process, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Generator != nil {
		return Generate(s.Generator)
	}
	procs := make([]*sim.Process, len(s.Processes))
	for i, p := range s.Processes {
		procs[i] = sim.NewProcess(i+1, p.Arrival, p.Burst, p.Priority)
	}
	return procs, nil
}

// SpecFromProcesses captures a process set as an explicit WorkloadSpec.
func SpecFromProcesses(procs []*sim.Process) *WorkloadSpec {
	spec := &WorkloadSpec{Version: "1", Processes: make([]ProcessSpec, len(procs))}
	for i, p := range procs {
		spec.Processes[i] = ProcessSpec{Arrival: p.ArrivalTime, Burst: p.BurstTime, Priority: p.Priority}
	}
	return spec
}

// WriteSpec encodes spec as YAML to w.
func WriteSpec(w io.Writer, spec *WorkloadSpec) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(spec); err != nil {
		return fmt.Errorf("encoding workload spec: %w", err)
	}
	return encoder.Close()
}

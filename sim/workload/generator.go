package workload

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim"
)

// Generate creates a synthetic process set from a GeneratorSpec.
// Deterministic given the same spec and seed. The first process arrives at tick 0
// and IDs are assigned 1..Count in arrival order.
func Generate(spec *GeneratorSpec) ([]*sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	arrivalRNG := rng.ForSubsystem(sim.SubsystemArrival)
	burstRNG := rng.ForSubsystem(sim.SubsystemBurst)
	priorityRNG := rng.ForSubsystem(sim.SubsystemPriority)

	arrivalSampler := NewArrivalSampler(spec.Arrival)
	burstSampler, err := NewBurstSampler(spec.Burst)
	if err != nil {
		return nil, fmt.Errorf("burst distribution: %w", err)
	}

	procs := make([]*sim.Process, 0, spec.Count)
	var clock int64
	for i := 0; i < spec.Count; i++ {
		if i > 0 {
			gap := arrivalSampler.SampleGap(arrivalRNG)
			if gap > math.MaxInt64-clock {
				return nil, fmt.Errorf("%w: generator: arrival of process %d exceeds %d ticks", sim.ErrInvalidInput, i+1, int64(math.MaxInt64))
			}
			clock += gap
		}
		burst := burstSampler.Sample(burstRNG)
		var priority int64
		if spec.PriorityLevels > 0 {
			priority = 1 + priorityRNG.Int63n(spec.PriorityLevels)
		}
		procs = append(procs, sim.NewProcess(i+1, clock, burst, priority))
	}
	if err := sim.ValidateProcesses(procs); err != nil {
		return nil, fmt.Errorf("generator produced an unusable process set: %w", err)
	}
	logrus.Debugf("Generated %d processes with %s", len(procs), rng)
	return procs, nil
}

package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/schedsim/sim"
)

func testGeneratorSpec() *GeneratorSpec {
	return &GeneratorSpec{
		Seed:           42,
		Count:          50,
		Arrival:        ArrivalSpec{Process: "poisson", Rate: 0.2},
		Burst:          DistSpec{Type: "uniform", Params: map[string]float64{"min": 1, "max": 10}},
		PriorityLevels: 4,
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	// GIVEN the same spec and seed
	// WHEN generated twice
	a, err := Generate(testGeneratorSpec())
	require.NoError(t, err)
	b, err := Generate(testGeneratorSpec())
	require.NoError(t, err)

	// THEN the process sets are identical
	require.Len(t, a, 50)
	for i := range a {
		assert.Equal(t, a[i].ArrivalTime, b[i].ArrivalTime)
		assert.Equal(t, a[i].BurstTime, b[i].BurstTime)
		assert.Equal(t, a[i].Priority, b[i].Priority)
	}
}

func TestGenerate_WellFormedProcesses(t *testing.T) {
	procs, err := Generate(testGeneratorSpec())
	require.NoError(t, err)

	assert.Equal(t, int64(0), procs[0].ArrivalTime)
	for i, p := range procs {
		assert.Equal(t, i+1, p.ID)
		assert.NoError(t, p.Validate())
		assert.GreaterOrEqual(t, p.Priority, int64(1))
		assert.LessOrEqual(t, p.Priority, int64(4))
		if i > 0 {
			assert.GreaterOrEqual(t, p.ArrivalTime, procs[i-1].ArrivalTime)
		}
	}
	assert.NoError(t, sim.ValidateProcesses(procs))
}

func TestGenerate_BurstChangeKeepsArrivals(t *testing.T) {
	// GIVEN two specs differing only in burst distribution
	base := testGeneratorSpec()
	other := testGeneratorSpec()
	other.Burst = DistSpec{Type: "exponential", Params: map[string]float64{"mean": 30}}

	a, err := Generate(base)
	require.NoError(t, err)
	b, err := Generate(other)
	require.NoError(t, err)

	// THEN arrival times are unaffected
	for i := range a {
		assert.Equal(t, a[i].ArrivalTime, b[i].ArrivalTime)
	}
}

func TestGenerate_NoPriorityLevels_AllZero(t *testing.T) {
	spec := testGeneratorSpec()
	spec.PriorityLevels = 0

	procs, err := Generate(spec)
	require.NoError(t, err)

	for _, p := range procs {
		assert.Zero(t, p.Priority)
	}
}

func TestGenerate_InvalidSpec(t *testing.T) {
	spec := testGeneratorSpec()
	spec.Count = 0

	_, err := Generate(spec)

	assert.ErrorIs(t, err, sim.ErrInvalidInput)
}

func TestGenerate_ArrivalsPastLastTick_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		// second arrival lands on the last tick, leaving no room for its burst
		{"arrival plus burst overflows", 2},
		// third arrival would wrap the clock
		{"clock overflows", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN constant arrivals with a gap far beyond the tick range
			spec := testGeneratorSpec()
			spec.Count = tt.count
			spec.Arrival = ArrivalSpec{Process: "constant", Rate: 1e-30}

			// WHEN generated
			procs, err := Generate(spec)

			// THEN the generator reports invalid input instead of returning negative arrivals
			assert.ErrorIs(t, err, sim.ErrInvalidInput)
			assert.Nil(t, procs)
		})
	}
}

func TestWorkloadSpec_GeneratorToProcesses(t *testing.T) {
	data := []byte(`
generator:
  seed: 7
  count: 5
  arrival: {process: constant, rate: 0.5}
  burst: {type: constant, params: {value: 3}}
`)
	spec, err := ParseWorkloadSpec(data)
	require.NoError(t, err)

	procs, err := spec.ToProcesses()
	require.NoError(t, err)

	require.Len(t, procs, 5)
	for i, p := range procs {
		assert.Equal(t, int64(2*i), p.ArrivalTime)
		assert.Equal(t, int64(3), p.BurstTime)
	}
}

package workload

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaussianSampler_MeanMatchesParam(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s, err := NewBurstSampler(DistSpec{
		Type:   "gaussian",
		Params: map[string]float64{"mean": 50, "std_dev": 10, "min": 1, "max": 200},
	})
	require.NoError(t, err)
	n := 10000
	var sum int64
	for i := 0; i < n; i++ {
		sum += s.Sample(rng)
	}
	mean := float64(sum) / float64(n)
	if math.Abs(mean-50)/50 > 0.05 {
		t.Errorf("gaussian mean = %.1f, want ≈ 50 (within 5%%)", mean)
	}
}

func TestGaussianSampler_ClampedToRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s, err := NewBurstSampler(DistSpec{
		Type:   "gaussian",
		Params: map[string]float64{"mean": 20, "std_dev": 100, "min": 5, "max": 30},
	})
	require.NoError(t, err)
	for i := 0; i < 10000; i++ {
		if v := s.Sample(rng); v < 5 || v > 30 {
			t.Fatalf("sample %d outside [5, 30]", v)
		}
	}
}

func TestUniformSampler_InclusiveRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s, err := NewBurstSampler(DistSpec{Type: "uniform", Params: map[string]float64{"min": 2, "max": 4}})
	require.NoError(t, err)

	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		v := s.Sample(rng)
		if v < 2 || v > 4 {
			t.Fatalf("sample %d outside [2, 4]", v)
		}
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestBurstSamplers_AlwaysPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	specs := []DistSpec{
		{Type: "exponential", Params: map[string]float64{"mean": 0.2}},
		{Type: "constant", Params: map[string]float64{"value": 0}},
		{Type: "uniform", Params: map[string]float64{"min": 0, "max": 1}},
	}
	for _, spec := range specs {
		s, err := NewBurstSampler(spec)
		require.NoError(t, err)
		for i := 0; i < 1000; i++ {
			if v := s.Sample(rng); v < 1 {
				t.Fatalf("%s: sample %d < 1", spec.Type, v)
			}
		}
	}
}

func TestNewBurstSampler_Errors(t *testing.T) {
	_, err := NewBurstSampler(DistSpec{Type: "uniform", Params: map[string]float64{"min": 1}})
	assert.Error(t, err, "missing max")
	_, err = NewBurstSampler(DistSpec{Type: "zipf"})
	assert.Error(t, err, "unknown type")
}

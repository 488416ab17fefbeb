package workload

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ArrivalSampler generates inter-arrival gaps between consecutive processes.
type ArrivalSampler interface {
	// SampleGap returns the next inter-arrival gap in ticks. Always >= 0:
	// several processes may arrive at the same tick.
	SampleGap(rng *rand.Rand) int64
}

// roundTicks rounds x to whole ticks, clamped to [0, math.MaxInt64].
func roundTicks(x float64) int64 {
	r := math.Round(x)
	switch {
	case math.IsNaN(r) || r <= 0:
		return 0
	case r >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(r)
}

// PoissonSampler generates exponentially-distributed gaps (CV=1).
type PoissonSampler struct {
	rate float64 // arrivals per tick
}

func (s *PoissonSampler) SampleGap(rng *rand.Rand) int64 {
	return roundTicks(rng.ExpFloat64() / s.rate)
}

// GammaSampler generates Gamma-distributed gaps. CV > 1 produces bursty arrivals.
// Implemented using Marsaglia-Tsang's method for shape >= 1,
// with transformation for shape < 1.
type GammaSampler struct {
	shape float64 // 1/CV² (alpha parameter)
	scale float64 // CV²/rate in ticks (beta parameter)
}

func (s *GammaSampler) SampleGap(rng *rand.Rand) int64 {
	return roundTicks(gammaRand(rng, s.shape, s.scale))
}

// gammaRand samples from Gamma(shape, scale) using Marsaglia-Tsang's method.
// For shape >= 1: direct method.
// For shape < 1: Gamma(shape) = Gamma(shape+1) * U^(1/shape).
func gammaRand(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1.0 {
		u := rng.Float64()
		return gammaRand(rng, shape+1.0, scale) * math.Pow(u, 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)

	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()

		// Squeeze test
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// ConstantArrivalSampler spaces arrivals evenly at 1/rate ticks.
type ConstantArrivalSampler struct {
	gap int64
}

func (s *ConstantArrivalSampler) SampleGap(_ *rand.Rand) int64 {
	return s.gap
}

// NewArrivalSampler creates an ArrivalSampler from an ArrivalSpec.
// Falls back to Poisson for an empty process name.
func NewArrivalSampler(spec ArrivalSpec) ArrivalSampler {
	switch spec.Process {
	case "constant":
		return &ConstantArrivalSampler{gap: roundTicks(1.0 / spec.Rate)}
	case "gamma":
		cv := 1.0
		if spec.CV != nil {
			cv = *spec.CV
		}
		shape := 1.0 / (cv * cv)
		return &GammaSampler{shape: shape, scale: cv * cv / spec.Rate}
	case "", "poisson":
		return &PoissonSampler{rate: spec.Rate}
	default:
		logrus.Warnf("unknown arrival process %q, falling back to poisson", spec.Process)
		return &PoissonSampler{rate: spec.Rate}
	}
}

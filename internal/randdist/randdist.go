package randdist

import (
	crand "crypto/rand"
	"encoding/binary"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/vk/fsloadgo/internal/vars"
)

// Dist selects the distribution kind of a Generator.
type Dist int

const (
	DistUninitialized Dist = iota
	DistUniform
	DistGamma
	DistTabular
)

// String returns the parameter-rendering label for the distribution kind.
func (d Dist) String() string {
	switch d {
	case DistUniform:
		return "uniform"
	case DistGamma:
		return "gamma"
	case DistTabular:
		return "tabular"
	default:
		return "uninitialized"
	}
}

// Source selects where a Generator draws randomness from. The zero value
// is system entropy; profiles opt in to the reproducible seeded stream.
type Source int

const (
	SourceEntropy Source = iota // urandom
	SourcePseudo                // seeded, reproducible (historically rand48)
)

// String returns the parameter-rendering label for the randomness source.
func (s Source) String() string {
	if s == SourcePseudo {
		return "rand48"
	}
	return "urandom"
}

// TableEntry is one row of a tabular distribution: a value range and its
// selection weight. Weights are relative; they need not sum to anything in
// particular.
type TableEntry struct {
	Min    float64
	Max    float64
	Weight float64
}

// Generator is a configurable random-distribution sampler implementing
// vars.Generator. It is owned by exactly one random variable; locals
// assigned from that variable alias it rather than copying it.
type Generator struct {
	dist   Dist
	source Source

	seed  *vars.AttrValue
	min   *vars.AttrValue
	mean  *vars.AttrValue
	gamma *vars.AttrValue
	round *vars.AttrValue

	table []TableEntry

	mu  sync.Mutex
	rng *rand.Rand // seeded lazily on first sample when SourcePseudo
}

// New allocates an unconfigured Generator. Suitable as the generator
// factory a vars.Registry is wired with.
func New() *Generator {
	return &Generator{}
}

// SetDist selects the distribution kind.
func (g *Generator) SetDist(d Dist) { g.dist = d }

// SetSource selects the randomness source.
func (g *Generator) SetSource(s Source) { g.source = s }

// SetSeed binds the seed parameter descriptor. The seed is read once, at
// the first sample, so a `set` issued before the run still takes effect.
func (g *Generator) SetSeed(a *vars.AttrValue) { g.seed = a }

// SetMin binds the lower-bound parameter descriptor.
func (g *Generator) SetMin(a *vars.AttrValue) { g.min = a }

// SetMean binds the mean parameter descriptor.
func (g *Generator) SetMean(a *vars.AttrValue) { g.mean = a }

// SetGamma binds the shape parameter descriptor. By workload-profile
// convention the value is the shape multiplied by 1000, so gamma = 1500
// means a shape of 1.5.
func (g *Generator) SetGamma(a *vars.AttrValue) { g.gamma = a }

// SetRound binds the rounding-granule parameter descriptor. A non-zero
// granule quantizes every sample to its nearest multiple.
func (g *Generator) SetRound(a *vars.AttrValue) { g.round = a }

// SetTable installs the probability table for a tabular distribution.
func (g *Generator) SetTable(t []TableEntry) { g.table = t }

// Dist reports the configured distribution kind.
func (g *Generator) Dist() Dist { return g.dist }

// DistName implements vars.Generator.
func (g *Generator) DistName() string { return g.dist.String() }

// SourceName implements vars.Generator.
func (g *Generator) SourceName() string { return g.source.String() }

// Param implements vars.Generator.
func (g *Generator) Param(p vars.RandParam) *vars.AttrValue {
	switch p {
	case vars.ParamSeed:
		return g.seed
	case vars.ParamMin:
		return g.min
	case vars.ParamMean:
		return g.mean
	case vars.ParamGamma:
		return g.gamma
	case vars.ParamRound:
		return g.round
	default:
		return nil
	}
}

// Sample draws one value from the distribution, applying the rounding
// granule. Parameter descriptors are resolved at call time, so samples
// track the current variable state.
func (g *Generator) Sample() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	var val float64
	switch g.dist {
	case DistUniform:
		val = g.sampleUniform()
	case DistGamma:
		val = g.sampleGamma()
	case DistTabular:
		val = g.sampleTabular()
	default:
		slog.Error("sample from uninitialized random distribution")
		return 0.0
	}

	if granule := g.round.GetDouble(); granule > 0 {
		val = math.Floor(val/granule+0.5) * granule
	}
	return val
}

// sampleUniform draws uniformly from [min, 2*mean-min], the symmetric
// interval around the mean.
func (g *Generator) sampleUniform() float64 {
	lo := g.min.GetDouble()
	mean := g.mean.GetDouble()
	if mean <= lo {
		return lo
	}
	return lo + g.u01()*2*(mean-lo)
}

// sampleGamma draws min + Gamma(shape, scale) where the scale is derived
// from the configured mean: scale = (mean - min) / shape.
func (g *Generator) sampleGamma() float64 {
	lo := g.min.GetDouble()
	mean := g.mean.GetDouble()
	shape := g.gamma.GetDouble() / 1000.0
	if shape <= 0 || mean <= lo {
		return lo
	}
	scale := (mean - lo) / shape
	return lo + g.gammaVariate(shape)*scale
}

// sampleTabular selects a table row by weight, then draws uniformly within
// the row's value range.
func (g *Generator) sampleTabular() float64 {
	var total float64
	for _, e := range g.table {
		total += e.Weight
	}
	if total <= 0 {
		slog.Error("tabular distribution has no weighted entries")
		return 0.0
	}

	pick := g.u01() * total
	for _, e := range g.table {
		pick -= e.Weight
		if pick <= 0 {
			return e.Min + g.u01()*(e.Max-e.Min)
		}
	}
	last := g.table[len(g.table)-1]
	return last.Min + g.u01()*(last.Max-last.Min)
}

// gammaVariate implements the Marsaglia-Tsang method for Gamma(shape, 1).
// Shapes below one are boosted and corrected with the standard power
// transform.
func (g *Generator) gammaVariate(shape float64) float64 {
	if shape < 1 {
		u := g.u01()
		for u == 0 {
			u = g.u01()
		}
		return g.gammaVariate(shape+1) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		x := g.normal()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := g.u01()
		if u == 0 {
			continue
		}
		if math.Log(u) < 0.5*x*x+d-d*v+d*math.Log(v) {
			return d * v
		}
	}
}

// normal draws a standard normal deviate via Box-Muller, which works for
// both randomness sources.
func (g *Generator) normal() float64 {
	u1 := g.u01()
	for u1 == 0 {
		u1 = g.u01()
	}
	u2 := g.u01()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// u01 draws a uniform deviate in [0, 1) from the configured source.
func (g *Generator) u01() float64 {
	if g.source == SourcePseudo {
		if g.rng == nil {
			seed := g.seed.GetInt()
			g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		}
		return g.rng.Float64()
	}

	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// Entropy reads only fail on broken platforms; degrade rather
		// than stall the workload.
		slog.Error("system entropy read failed", "error", err)
		return 0.5
	}
	return float64(binary.LittleEndian.Uint64(buf[:])>>11) / (1 << 53)
}

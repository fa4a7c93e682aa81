package vars

// Generator is the capability surface of a random-distribution object as
// seen by the binding core. Concrete samplers live in internal/randdist;
// this package only needs to sample them and render their parameters.
//
// Sample may advance internal generator state and must be safe to call
// from concurrent worker contexts.
type Generator interface {
	Sample() float64
	// DistName reports the distribution kind as a short label:
	// "uniform", "gamma", "tabular", or "uninitialized".
	DistName() string
	// SourceName reports the randomness source: "rand48" for the seeded
	// pseudo-random generator, "urandom" for system entropy.
	SourceName() string
	// Param returns the attribute descriptor backing one of the
	// distribution's numeric parameters, or nil when unset. Parameters are
	// themselves AttrValues, so a distribution parameter may be a literal,
	// a variable reference, or another distribution.
	Param(p RandParam) *AttrValue
}

// RandParam names one renderable parameter of a random variable.
type RandParam int

const (
	ParamType RandParam = iota
	ParamSrc
	ParamSeed
	ParamMin
	ParamMean
	ParamGamma
	ParamRound
)

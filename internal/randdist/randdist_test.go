package randdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fsloadgo/internal/arena"
	"github.com/vk/fsloadgo/internal/vars"
)

func intAttr(t *testing.T, v uint64) *vars.AttrValue {
	t.Helper()
	a := vars.NewInt(arena.New(0), v)
	require.NotNil(t, a)
	return a
}

func seededUniform(t *testing.T, lo, mean uint64) *Generator {
	t.Helper()
	g := New()
	g.SetDist(DistUniform)
	g.SetSource(SourcePseudo)
	g.SetSeed(intAttr(t, 42))
	g.SetMin(intAttr(t, lo))
	g.SetMean(intAttr(t, mean))
	return g
}

func TestUniformBounds(t *testing.T) {
	g := seededUniform(t, 1024, 8192)

	for i := 0; i < 1000; i++ {
		v := g.Sample()
		assert.GreaterOrEqual(t, v, 1024.0)
		assert.Less(t, v, float64(2*8192-1024), "interval is symmetric around the mean")
	}
}

func TestSeededStreamIsReproducible(t *testing.T) {
	a := seededUniform(t, 0, 100)
	b := seededUniform(t, 0, 100)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Sample(), b.Sample())
	}
}

func TestRoundQuantizes(t *testing.T) {
	g := seededUniform(t, 0, 10000)
	g.SetRound(intAttr(t, 512))

	for i := 0; i < 200; i++ {
		v := g.Sample()
		rem := int64(v) % 512
		assert.Zero(t, rem, "samples snap to the granule")
	}
}

func TestUniformDegenerateMean(t *testing.T) {
	g := seededUniform(t, 100, 100)
	assert.Equal(t, 100.0, g.Sample(), "mean at or below min collapses to min")
}

func TestGammaAboveMin(t *testing.T) {
	g := New()
	g.SetDist(DistGamma)
	g.SetSource(SourcePseudo)
	g.SetSeed(intAttr(t, 7))
	g.SetMin(intAttr(t, 4096))
	g.SetMean(intAttr(t, 16384))
	g.SetGamma(intAttr(t, 1500)) // shape 1.5

	for i := 0; i < 500; i++ {
		assert.GreaterOrEqual(t, g.Sample(), 4096.0)
	}
}

func TestGammaZeroShapeCollapses(t *testing.T) {
	g := New()
	g.SetDist(DistGamma)
	g.SetMin(intAttr(t, 10))
	g.SetMean(intAttr(t, 100))
	// No gamma parameter bound: shape reads as zero.
	assert.Equal(t, 10.0, g.Sample())
}

func TestTabularStaysWithinRows(t *testing.T) {
	g := New()
	g.SetDist(DistTabular)
	g.SetSource(SourcePseudo)
	g.SetSeed(intAttr(t, 11))
	g.SetTable([]TableEntry{
		{Min: 0, Max: 1024, Weight: 10},
		{Min: 1024, Max: 8192, Weight: 80},
		{Min: 8192, Max: 65536, Weight: 10},
	})

	for i := 0; i < 500; i++ {
		v := g.Sample()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 65536.0)
	}
}

func TestTabularEmptyTable(t *testing.T) {
	g := New()
	g.SetDist(DistTabular)
	assert.Equal(t, 0.0, g.Sample())
}

func TestUninitializedSamplesZero(t *testing.T) {
	assert.Equal(t, 0.0, New().Sample())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "uniform", DistUniform.String())
	assert.Equal(t, "gamma", DistGamma.String())
	assert.Equal(t, "tabular", DistTabular.String())
	assert.Equal(t, "uninitialized", DistUninitialized.String())

	assert.Equal(t, "urandom", SourceEntropy.String())
	assert.Equal(t, "rand48", SourcePseudo.String())
}

func TestParamAccess(t *testing.T) {
	g := New()
	mean := intAttr(t, 8192)
	g.SetMean(mean)

	assert.Same(t, mean, g.Param(vars.ParamMean))
	assert.Nil(t, g.Param(vars.ParamMin))
	assert.Nil(t, g.Param(vars.ParamType), "type is not a value parameter")
}

// Parameters are descriptors, not snapshots: rebinding the variable behind
// one changes subsequent samples.
func TestDelayedParameterResolution(t *testing.T) {
	a := arena.New(0)
	r := vars.New(vars.Config{Arena: a, Shutdown: func(int) {}})

	require.NoError(t, r.AssignInt("$mean", 100))

	g := New()
	g.SetDist(DistUniform)
	g.SetSource(SourcePseudo)
	g.SetSeed(intAttr(t, 3))
	g.SetMin(intAttr(t, 0))
	g.SetMean(r.RefAttr("$mean"))

	assert.Less(t, g.Sample(), 200.0)

	require.NoError(t, r.AssignInt("$mean", 1))
	for i := 0; i < 50; i++ {
		assert.Less(t, g.Sample(), 2.0)
	}
}

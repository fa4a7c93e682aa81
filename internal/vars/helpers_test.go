package vars

import (
	"strconv"

	"github.com/vk/fsloadgo/internal/arena"
)

// fakeGenerator is a deterministic vars.Generator for accessor and
// rendering tests: every sample returns the same value and bumps a
// counter so tests can observe the read's side effect.
type fakeGenerator struct {
	value   float64
	dist    string
	source  string
	params  map[RandParam]*AttrValue
	samples int
}

func (g *fakeGenerator) Sample() float64 {
	g.samples++
	return g.value
}

func (g *fakeGenerator) DistName() string   { return g.dist }
func (g *fakeGenerator) SourceName() string { return g.source }

func (g *fakeGenerator) Param(p RandParam) *AttrValue {
	return g.params[p]
}

// testRegistry builds a Registry with an unbounded arena, a recording
// shutdown hook, and a generator factory producing fakes.
func testRegistry() (*Registry, *int) {
	shutdowns := 0
	r := New(Config{
		Arena: arena.New(0),
		NewGenerator: func() Generator {
			return &fakeGenerator{dist: "uniform", source: "urandom"}
		},
		Shutdown: func(code int) { shutdowns++ },
	})
	return r, &shutdowns
}

// fmtUint keeps expected decimal strings readable at call sites.
func fmtUint(u uint64) string { return strconv.FormatUint(u, 10) }

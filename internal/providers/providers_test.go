package providers

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fsloadgo/internal/arena"
	"github.com/vk/fsloadgo/internal/vars"
)

func TestStatsCounters(t *testing.T) {
	s := NewStats()

	_, ok := s.Get("ops")
	assert.False(t, ok, "counters do not exist until touched")

	s.Add("ops", 10)
	s.Add("ops", 5)
	val, ok := s.Get("ops")
	require.True(t, ok)
	assert.Equal(t, uint64(15), val)

	s.Set("ops", 3)
	val, _ = s.Get("ops")
	assert.Equal(t, uint64(3), val)
}

func TestStatsConcurrentAdd(t *testing.T) {
	s := NewStats()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.Add("ops", 1)
			}
		}()
	}
	wg.Wait()

	val, ok := s.Get("ops")
	require.True(t, ok)
	assert.Equal(t, uint64(16000), val)
}

func TestEventGenRate(t *testing.T) {
	e := NewEventGen(100)
	assert.Equal(t, uint64(100), e.Rate())

	e.SetRate(250)
	assert.Equal(t, uint64(250), e.Rate())
}

// newVar gives provider funcs a blank special variable to populate, the
// way the registry hands them one during special resolution.
func newVar(t *testing.T) *vars.Variable {
	t.Helper()
	a := arena.New(0)
	r := vars.New(vars.Config{Arena: a, Shutdown: func(int) {}})
	v := r.Allocate("probe", vars.KindSpecial)
	require.NotNil(t, v)
	return v
}

func TestStatsVar(t *testing.T) {
	s := NewSet("workload.hcl")
	s.Stats.Set("iops", 4321)

	v := newVar(t)
	require.NotNil(t, s.statsVar(v, "iops"))
	assert.Equal(t, uint64(4321), v.Int())

	assert.Nil(t, s.statsVar(newVar(t), "absent"))
}

func TestEventRateVar(t *testing.T) {
	s := NewSet("workload.hcl")
	s.EventGen.SetRate(500)

	v := newVar(t)
	require.NotNil(t, s.eventRateVar(v))
	assert.Equal(t, uint64(500), v.Int())
}

func TestDateVar(t *testing.T) {
	s := NewSet("workload.hcl")
	s.now = func() time.Time {
		return time.Date(2026, 8, 25, 13, 45, 9, 0, time.UTC)
	}

	v := newVar(t)
	require.NotNil(t, s.dateVar(v))
	assert.Equal(t, "20260825134509", v.Str())
}

func TestScriptVar(t *testing.T) {
	s := NewSet("fileserver.hcl")

	v := newVar(t)
	require.NotNil(t, s.scriptVar(v))
	assert.Equal(t, "fileserver.hcl", v.Str())

	assert.Nil(t, NewSet("").scriptVar(newVar(t)), "unnamed script resolves to nothing")
}

func TestWireDispatch(t *testing.T) {
	s := NewSet("fileserver.hcl")
	s.Stats.Set("bytes", 1<<20)
	s.EventGen.SetRate(42)

	r := vars.New(vars.Config{
		Arena:     arena.New(0),
		Providers: s.Wire(),
		Shutdown:  func(int) {},
	})

	bytes := r.FindSpecial("{stats.bytes}")
	require.NotNil(t, bytes)
	assert.Equal(t, uint64(1<<20), bytes.Int())

	rate := r.FindSpecial("{eventrate}")
	require.NotNil(t, rate)
	assert.Equal(t, uint64(42), rate.Int())

	script := r.FindSpecial("{script}")
	require.NotNil(t, script)
	assert.Equal(t, "fileserver.hcl", script.Str())

	host := r.FindSpecial("{hostname}")
	require.NotNil(t, host)
	assert.NotEmpty(t, host.Str())
}

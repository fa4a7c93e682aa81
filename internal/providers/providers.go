package providers

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/vk/fsloadgo/internal/vars"
)

// dateLayout renders `{date}` values: compact wall-clock timestamps that
// sort lexically, useful for naming result directories.
const dateLayout = "20060102150405"

// EventGen holds the event generator's configured rate, readable through
// the `{eventrate}` special variable and adjustable while workers run.
type EventGen struct {
	rate atomic.Uint64
}

// NewEventGen returns an event-rate holder with the given initial rate.
func NewEventGen(rate uint64) *EventGen {
	e := &EventGen{}
	e.rate.Store(rate)
	return e
}

// SetRate updates the configured events-per-second rate.
func (e *EventGen) SetRate(rate uint64) { e.rate.Store(rate) }

// Rate reports the configured events-per-second rate.
func (e *EventGen) Rate() uint64 { return e.rate.Load() }

// Set bundles the provider functions a vars.Registry is wired with, plus
// the mutable engine state behind them.
type Set struct {
	Stats    *Stats
	EventGen *EventGen

	// ScriptName identifies the loaded workload script for `{script}`.
	ScriptName string

	// now is swappable for tests.
	now func() time.Time
}

// NewSet builds the default provider set for an engine instance.
func NewSet(scriptName string) *Set {
	return &Set{
		Stats:      NewStats(),
		EventGen:   NewEventGen(0),
		ScriptName: scriptName,
		now:        time.Now,
	}
}

// Wire exposes the set as the vars.Providers contract.
func (s *Set) Wire() vars.Providers {
	return vars.Providers{
		Stats:     s.statsVar,
		EventRate: s.eventRateVar,
		Date:      s.dateVar,
		Script:    s.scriptVar,
		Host:      s.hostVar,
		LookupEnv: os.LookupEnv,
	}
}

// statsVar resolves `{stats.<key>}` to the counter's current value,
// snapshotted into the special variable's integer slot.
func (s *Set) statsVar(v *vars.Variable, key string) *vars.Variable {
	val, ok := s.Stats.Get(key)
	if !ok {
		return nil
	}
	v.SetInt(val)
	return v
}

func (s *Set) eventRateVar(v *vars.Variable) *vars.Variable {
	v.SetInt(s.EventGen.Rate())
	return v
}

func (s *Set) dateVar(v *vars.Variable) *vars.Variable {
	v.SetString(s.now().Format(dateLayout))
	return v
}

func (s *Set) scriptVar(v *vars.Variable) *vars.Variable {
	if s.ScriptName == "" {
		return nil
	}
	v.SetString(s.ScriptName)
	return v
}

func (s *Set) hostVar(v *vars.Variable) *vars.Variable {
	host, err := os.Hostname()
	if err != nil {
		return nil
	}
	v.SetString(host)
	return v
}

package vars

import (
	"log/slog"
	"os"
	"strings"

	"github.com/vk/fsloadgo/internal/arena"
)

// Providers bundles the external lookup functions consulted for special
// names, keyed by the stripped identifier. Each provider either populates
// the supplied Variable and returns it, or returns nil for "absent". The
// zero value is usable: unresolved specials simply fail with a logged
// error.
type Providers struct {
	// Stats resolves `{stats.<key>}`; key is the remainder after the prefix.
	Stats func(v *Variable, key string) *Variable
	// EventRate resolves `{eventrate}`.
	EventRate func(v *Variable) *Variable
	// Date resolves `{date}`.
	Date func(v *Variable) *Variable
	// Script resolves `{script}`.
	Script func(v *Variable) *Variable
	// Host resolves `{hostname}`.
	Host func(v *Variable) *Variable
	// LookupEnv resolves `(NAME)` environment specials. Defaults to
	// os.LookupEnv.
	LookupEnv func(name string) (string, bool)
}

// Config carries the collaborators a Registry needs. Zero-value fields get
// working defaults from New.
type Config struct {
	Arena     *arena.Arena
	Providers Providers

	// NewGenerator allocates a fresh random-distribution object for
	// DefineRandVar. Required before any `random` definition is processed.
	NewGenerator func() Generator

	// Shutdown is the process-fatal escalation hook, invoked only when
	// RefAttr cannot bind an attribute because allocation failed. Defaults
	// to os.Exit.
	Shutdown func(code int)
}

// Registry owns the three variable scope lists and every binding entry
// point the configuration-language interpreter uses. One Registry exists
// per engine instance; it is built once at startup and holds its scope
// structure for the lifetime of the run.
type Registry struct {
	arena        *arena.Arena
	providers    Providers
	newGenerator func() Generator
	shutdown     func(code int)

	global   []*Variable // Normal + Random, insertion order
	locals   []*Variable // Local, newest first (push-down stack)
	specials []*Variable // Special, insertion order, lazily populated
}

// New builds a Registry from cfg, applying defaults for absent
// collaborators.
func New(cfg Config) *Registry {
	if cfg.Arena == nil {
		cfg.Arena = arena.New(0)
	}
	if cfg.Providers.LookupEnv == nil {
		cfg.Providers.LookupEnv = os.LookupEnv
	}
	if cfg.Shutdown == nil {
		cfg.Shutdown = os.Exit
	}
	return &Registry{
		arena:        cfg.Arena,
		providers:    cfg.Providers,
		newGenerator: cfg.NewGenerator,
		shutdown:     cfg.Shutdown,
	}
}

// Arena exposes the backing store so collaborators can charge their own
// allocations against the same budget.
func (r *Registry) Arena() *arena.Arena { return r.arena }

// Globals returns the global scope list in insertion order.
func (r *Registry) Globals() []*Variable { return r.global }

// Locals returns the current local stack, newest first. Component
// instantiation captures this snapshot as the prototype scope for
// PropagatePrototypeDefaults.
func (r *Registry) Locals() []*Variable { return r.locals }

// Specials returns the special scope list in insertion order.
func (r *Registry) Specials() []*Variable { return r.specials }

// Allocate creates a Variable of the given kind, interns its name, and
// links it into the owning scope list. Local allocation always pushes to
// the head of the stack, independent of same-named outer locals: nested
// instantiation shadows, it never replaces. Returns nil on arena
// exhaustion.
func (r *Registry) Allocate(name string, kind Kind) *Variable {
	if err := r.arena.Reserve(); err != nil {
		slog.Error("out of memory for variables", "name", name, "error", err)
		return nil
	}

	interned, err := r.arena.InternString(name)
	if err != nil {
		slog.Error("out of memory for strings", "name", name, "error", err)
		return nil
	}

	v := &Variable{name: interned, kind: kind}

	switch kind {
	case KindNormal, KindRandom:
		r.global = append(r.global, v)
	case KindSpecial:
		r.specials = append(r.specials, v)
	case KindLocal:
		r.locals = append([]*Variable{v}, r.locals...)
	default:
		slog.Error("illegal variable kind", "name", name, "kind", int(kind))
		return nil
	}

	return v
}

// Find searches the local stack first, then the global list, and returns
// the first exact-name match or nil. Locals shadow globals.
func (r *Registry) Find(name string) *Variable {
	for _, v := range r.locals {
		if v.name == name {
			return v
		}
	}
	for _, v := range r.global {
		if v.name == name {
			return v
		}
	}
	return nil
}

// FindInScope searches a single scope list, typically a prototype's
// captured local scope rather than the ambient search order.
func FindInScope(name string, list []*Variable) *Variable {
	for _, v := range list {
		if v.name == name {
			return v
		}
	}
	return nil
}

// FindOrAllocate returns the named variable from the ambient search
// order, allocating a fresh Normal variable when absent. Used where a
// reference must always succeed, such as binding a not-yet-declared name
// at its first `set`.
func (r *Registry) FindOrAllocate(name string) *Variable {
	if v := r.Find(name); v != nil {
		return v
	}
	return r.Allocate(name, KindNormal)
}

// stripSigil removes the configuration language's leading scope sigil.
func stripSigil(name string) string {
	return strings.TrimPrefix(name, "$")
}

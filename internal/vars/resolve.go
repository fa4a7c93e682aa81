package vars

import "log/slog"

// RefAttr is the primary binding entry point used when compiling a
// workload attribute. Resolution order: local/global, then special, then -
// only if still absent - implicit allocation of a fresh Normal variable.
// Referencing an undeclared name therefore creates it, but with no payload
// set yet no descriptor can point at a storage slot: the reference itself
// still comes back nil (logged) until a `set` gives the variable a type.
//
// If even allocation fails the engine cannot safely run with an unbindable
// attribute: the failure is logged and the fatal shutdown hook fires. This
// is the single fatal path in the binding core; every other failure
// degrades to a logged error plus a sentinel.
func (r *Registry) RefAttr(name string) *AttrValue {
	name = stripSigil(name)

	v := r.Find(name)
	if v == nil {
		v = r.FindSpecial(name)
	}
	if v == nil {
		v = r.Allocate(name, KindNormal)
	}

	if v == nil {
		slog.Error("invalid variable", "name", "$"+name)
		r.shutdown(1)
		return nil
	}

	return FromVariable(r.arena, v)
}

// FindRandVar locates an existing random variable to attach distribution
// behavior to. It never creates one: the name must already be defined,
// Random-kind, and carry a generator, otherwise the lookup is logged and
// nil is returned.
func (r *Registry) FindRandVar(name string) *Variable {
	name = stripSigil(name)

	v := r.Find(name)
	if v == nil {
		slog.Error("failed to locate random variable", "name", "$"+name)
		return nil
	}

	if v.kind != KindRandom || !v.HasRand() {
		slog.Error("found variable is not random", "name", "$"+name)
		return nil
	}

	return v
}

// DefineRandVar creates a random variable: the name must not exist
// anywhere in the ambient search order (redeclaration is rejected, not
// overwritten). A fresh generator is allocated from the configured factory
// and bound to the new variable.
func (r *Registry) DefineRandVar(name string) *Variable {
	name = stripSigil(name)

	if r.Find(name) != nil {
		slog.Error("variable name already in use", "name", "$"+name)
		return nil
	}

	v := r.Allocate(name, KindRandom)
	if v == nil {
		slog.Error("failed to alloc random variable", "name", "$"+name)
		return nil
	}

	if r.newGenerator == nil {
		slog.Error("no random distribution factory configured", "name", "$"+name)
		return nil
	}
	if err := r.arena.Reserve(); err != nil {
		slog.Error("failed to alloc random distribution object",
			"name", "$"+name, "error", err)
		return nil
	}

	v.SetRand(r.newGenerator())
	return v
}

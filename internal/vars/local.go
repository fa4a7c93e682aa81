package vars

import "log/slog"

// AllocLocal allocates a Local variable, stripping an optional leading
// sigil first. Locals always push to the head of the stack; a same-named
// outer local stays put underneath and becomes visible again when the
// inner component's scope is conceptually popped.
func (r *Registry) AllocLocal(name string) *Variable {
	return r.Allocate(stripSigil(name), KindLocal)
}

// AssignLocalFromVar allocates a new Local named name and copies the
// populated payload of the existing variable srcName into it. The source
// must already exist in the ambient search order. Generator payloads are
// copied by reference: the new local aliases the same distribution object.
func (r *Registry) AssignLocalFromVar(name, srcName string) *Variable {
	srcName = stripSigil(srcName)

	src := r.Find(srcName)
	if src == nil {
		slog.Error("cannot find source variable", "name", srcName)
		return nil
	}

	dst := r.AllocLocal(name)
	if dst == nil {
		slog.Error("cannot assign variable", "name", name)
		return nil
	}

	switch {
	case src.HasBool():
		dst.SetBool(src.boolVal)
	case src.HasInt():
		dst.SetInt(src.intVal)
	case src.HasString():
		s, err := r.arena.InternString(src.strVal)
		if err != nil {
			slog.Error("cannot assign variable", "name", name, "error", err)
			return nil
		}
		dst.SetString(s)
	case src.HasDouble():
		dst.SetDouble(src.dblVal)
	case src.HasRand():
		dst.SetRand(src.gen)
	}

	return dst
}

// AssignLocalBool allocates a Local and stores a boolean payload.
func (r *Registry) AssignLocalBool(name string, val bool) *Variable {
	v := r.AllocLocal(name)
	if v == nil {
		slog.Error("cannot assign variable", "name", name)
		return nil
	}
	v.SetBool(val)
	return v
}

// AssignLocalInt allocates a Local and stores an integer payload.
func (r *Registry) AssignLocalInt(name string, val uint64) *Variable {
	v := r.AllocLocal(name)
	if v == nil {
		slog.Error("cannot assign variable", "name", name)
		return nil
	}
	v.SetInt(val)
	return v
}

// AssignLocalDouble allocates a Local and stores a double payload.
func (r *Registry) AssignLocalDouble(name string, val float64) *Variable {
	v := r.AllocLocal(name)
	if v == nil {
		slog.Error("cannot assign variable", "name", name)
		return nil
	}
	v.SetDouble(val)
	return v
}

// AssignLocalString allocates a Local, interns the string, and stores it.
func (r *Registry) AssignLocalString(name string, val string) *Variable {
	v := r.AllocLocal(name)
	if v == nil {
		slog.Error("cannot assign variable", "name", name)
		return nil
	}

	s, err := r.arena.InternString(val)
	if err != nil {
		slog.Error("cannot assign variable", "name", name, "error", err)
		return nil
	}
	v.SetString(s)
	return v
}

// PropagatePrototypeDefaults copies a default value onto newLocal from the
// same-named variable in a prototype's captured local scope. It only fires
// when newLocal has no payload set yet: a per-instance override assigned
// before instantiation always wins over the template default.
func (r *Registry) PropagatePrototypeDefaults(newLocal *Variable, protoLocals []*Variable) {
	proto := FindInScope(newLocal.name, protoLocals)
	if proto == nil {
		return
	}

	if !newLocal.HasValue() {
		_ = r.CopyValue(newLocal, proto)
	}
}

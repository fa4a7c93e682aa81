package vars

import "log/slog"

// AssignBool resolves name (allocating it if absent) and stores a boolean
// payload. Random-kind targets reject direct scalar assignment.
func (r *Registry) AssignBool(name string, val bool) error {
	v, err := r.assignTarget(name)
	if err != nil {
		return err
	}
	v.SetBool(val)
	return nil
}

// AssignInt resolves name (allocating it if absent) and stores an integer
// payload.
func (r *Registry) AssignInt(name string, val uint64) error {
	v, err := r.assignTarget(name)
	if err != nil {
		return err
	}
	v.SetInt(val)
	slog.Debug("assign integer", "name", name, "value", val)
	return nil
}

// AssignDouble resolves name (allocating it if absent) and stores a double
// payload.
func (r *Registry) AssignDouble(name string, val float64) error {
	v, err := r.assignTarget(name)
	if err != nil {
		return err
	}
	v.SetDouble(val)
	return nil
}

// AssignString resolves name (allocating it if absent), interns the string
// in the arena, and stores it.
func (r *Registry) AssignString(name string, val string) error {
	v, err := r.assignTarget(name)
	if err != nil {
		return err
	}

	s, err := r.arena.InternString(val)
	if err != nil {
		slog.Error("cannot assign variable", "name", name, "error", err)
		return err
	}
	v.SetString(s)
	return nil
}

// assignTarget implements the shared resolve-or-allocate plus
// Random-rejection step of every assignment operation.
func (r *Registry) assignTarget(name string) (*Variable, error) {
	v := r.FindOrAllocate(stripSigil(name))
	if v == nil {
		slog.Error("cannot assign variable", "name", name)
		return nil, ErrAllocation
	}

	if v.kind == KindRandom {
		slog.Error("cannot assign scalar to random variable", "name", name)
		return nil, ErrWrongKind
	}

	return v, nil
}

// CopyValue copies every populated payload kind from src onto dst. String
// payloads are re-interned so dst owns an arena-lifetime copy. Fails only
// on arena exhaustion.
func (r *Registry) CopyValue(dst, src *Variable) error {
	var mask payloadMask

	if src.HasBool() {
		dst.boolVal = src.boolVal
		mask |= setBool
	}
	if src.HasInt() {
		dst.intVal = src.intVal
		mask |= setInt
	}
	if src.HasDouble() {
		dst.dblVal = src.dblVal
		mask |= setDouble
	}
	if src.HasString() {
		s, err := r.arena.InternString(src.strVal)
		if err != nil {
			slog.Error("cannot assign string for variable",
				"name", dst.name, "error", err)
			return err
		}
		dst.strVal = s
		mask |= setString
	}

	if mask != 0 {
		dst.mask = mask
	}
	return nil
}

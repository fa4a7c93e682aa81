package vars

import "strconv"

// renderVariable converts a variable's current payload to its string
// representation for diagnostics and templated output. Rendering is
// type-specific and locale-free: integers are exact decimal, booleans are
// "true"/"false", random variables render as a human label of their
// distribution kind.
func renderVariable(v *Variable) string {
	if v.kind == KindRandom {
		if v.gen == nil {
			return "uninitialized random var"
		}
		switch v.gen.DistName() {
		case "uniform":
			return "uniform random var"
		case "gamma":
			return "gamma random var"
		case "tabular":
			return "tabular random var"
		default:
			return "uninitialized random var"
		}
	}

	if v.HasString() && v.strVal != "" {
		return v.strVal
	}

	if v.HasBool() {
		if v.boolVal {
			return "true"
		}
		return "false"
	}

	if v.HasInt() {
		return strconv.FormatUint(v.intVal, 10)
	}

	if v.HasDouble() {
		return strconv.FormatFloat(v.dblVal, 'g', -1, 64)
	}

	return "No default"
}

// VarToString resolves a sigil-prefixed name through the ambient search
// order (local, global, then special) and renders the result. An entirely
// absent name renders as "No default".
func (r *Registry) VarToString(name string) string {
	name = stripSigil(name)

	v := r.Find(name)
	if v == nil {
		v = r.FindSpecial(name)
	}
	if v == nil {
		return "No default"
	}

	return renderVariable(v)
}

// RandVarToString renders a single distribution parameter of the named
// random variable: the type or source label, or the decimal integer value
// of seed/min/mean/gamma/round read through the parameter's attribute
// descriptor. Non-random names fall back to VarToString.
func (r *Registry) RandVarToString(name string, param RandParam) string {
	v := r.Find(stripSigil(name))
	if v == nil {
		return r.VarToString(name)
	}

	if v.kind != KindRandom || !v.HasRand() {
		return r.VarToString(name)
	}

	switch param {
	case ParamType:
		switch v.gen.DistName() {
		case "uniform", "gamma", "tabular":
			return v.gen.DistName()
		default:
			return "uninitialized"
		}

	case ParamSrc:
		return v.gen.SourceName()

	case ParamSeed, ParamMin, ParamMean, ParamGamma, ParamRound:
		return strconv.FormatUint(v.gen.Param(param).GetInt(), 10)

	default:
		return ""
	}
}

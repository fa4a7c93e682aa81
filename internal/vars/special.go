package vars

import (
	"log/slog"
	"strings"
)

// Reserved identifiers dispatched to the internal-variable providers.
// StatsPrefix is a prefix match; the remainder selects the named
// statistic. The rest are exact matches.
const (
	StatsPrefix  = "stats."
	EventRateVar = "eventrate"
	DateVar      = "date"
	ScriptVar    = "script"
	HostVar      = "hostname"
)

// FindSpecial resolves a name with reserved special syntax: `{identifier}`
// for internal variables, `(identifier)` for process-environment
// variables. The name arrives with its scope sigil already stripped but
// the brackets intact; the bracketed string is the variable's identity on
// the special list.
//
// Resolution is snapshot-once: if a populated special of that name already
// exists it is reused without consulting the provider again. Only the
// first encounter of a given name string dispatches.
func (r *Registry) FindSpecial(name string) *Variable {
	var v *Variable
	for _, s := range r.specials {
		if s.name == name {
			v = s
			break
		}
	}

	if v != nil && v.HasValue() {
		return v
	}

	if v == nil {
		v = r.Allocate(name, KindSpecial)
		if v == nil {
			return nil
		}
	}

	switch {
	case strings.HasPrefix(name, "{"):
		rtn := r.findInternal(v)
		if rtn == nil {
			slog.Error("cannot find internal variable", "name", v.name)
		}
		return rtn

	case strings.HasPrefix(name, "("):
		rtn := r.findEnvironment(v)
		if rtn == nil {
			slog.Error("cannot find environment variable", "name", v.name)
		}
		return rtn
	}

	// No recognized dynamic form.
	return nil
}

// findInternal dispatches a `{identifier}` name to the first matching
// provider. The identifier is matched after stripping the braces.
func (r *Registry) findInternal(v *Variable) *Variable {
	name, ok := strings.CutSuffix(strings.TrimPrefix(v.name, "{"), "}")
	if !ok {
		return nil
	}

	if key, found := strings.CutPrefix(name, StatsPrefix); found {
		if r.providers.Stats == nil {
			return nil
		}
		return r.providers.Stats(v, key)
	}

	switch name {
	case EventRateVar:
		if r.providers.EventRate != nil {
			return r.providers.EventRate(v)
		}
	case DateVar:
		if r.providers.Date != nil {
			return r.providers.Date(v)
		}
	case ScriptVar:
		if r.providers.Script != nil {
			return r.providers.Script(v)
		}
	case HostVar:
		if r.providers.Host != nil {
			return r.providers.Host(v)
		}
	}

	return nil
}

// findEnvironment resolves a `(identifier)` name against the process
// environment, snapshotting the value into the variable's string slot.
func (r *Registry) findEnvironment(v *Variable) *Variable {
	name, ok := strings.CutSuffix(strings.TrimPrefix(v.name, "("), ")")
	if !ok {
		return nil
	}

	val, found := r.providers.LookupEnv(name)
	if !found {
		return nil
	}

	s, err := r.arena.InternString(val)
	if err != nil {
		slog.Error("cannot intern environment value", "name", v.name, "error", err)
		return nil
	}
	v.SetString(s)
	return v
}

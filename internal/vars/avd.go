package vars

import (
	"log/slog"

	"fortio.org/safecast"

	"github.com/vk/fsloadgo/internal/arena"
)

// AVDKind discriminates the payload of an AttrValue.
type AVDKind int

const (
	Uninitialized AVDKind = iota
	LiteralBool
	LiteralInt
	LiteralDouble
	LiteralString
	VarBoolRef
	VarIntRef
	VarDoubleRef
	VarStringRef
	GeneratorRef
)

// String returns the descriptive label used in type-contract violation logs.
func (k AVDKind) String() string {
	switch k {
	case Uninitialized:
		return "uninitialized"
	case LiteralBool:
		return "boolean value"
	case LiteralInt:
		return "integer value"
	case LiteralDouble:
		return "double float value"
	case LiteralString:
		return "string"
	case VarBoolRef:
		return "reference to variable boolean"
	case VarIntRef:
		return "reference to variable integer"
	case VarDoubleRef:
		return "reference to variable double"
	case VarStringRef:
		return "reference to variable string"
	case GeneratorRef:
		return "reference to random distribution"
	default:
		return "illegal avd type"
	}
}

// AttrValue is a delayed-binding value descriptor. Literal kinds own their
// value; reference kinds alias a Variable's live storage slot or a
// Generator. Reference reads always observe the variable's current
// payload, which is the point: `set` commands issued after parsing are
// visible to every subsequent attribute read.
//
// Reads are pure except for GeneratorRef, where each read samples the
// distribution and may return a different value.
type AttrValue struct {
	kind AVDKind

	boolVal bool
	intVal  uint64
	dblVal  float64
	strVal  string

	ref *Variable
	gen Generator
}

// Kind reports the descriptor's payload discriminator.
func (a *AttrValue) Kind() AVDKind {
	if a == nil {
		return Uninitialized
	}
	return a.kind
}

// GetInt resolves the descriptor as an integer. Absent descriptors and
// unset variable slots yield 0. Generator reads sample the distribution
// and truncate. Any other kind is a type-contract violation: logged, 0.
func (a *AttrValue) GetInt() uint64 {
	if a == nil {
		return 0
	}

	switch a.kind {
	case LiteralInt:
		return a.intVal

	case VarIntRef:
		if a.ref != nil {
			return a.ref.intVal
		}
		return 0

	case GeneratorRef:
		if a.gen != nil {
			n, err := safecast.Conv[uint64](int64(a.gen.Sample()))
			if err != nil {
				return 0
			}
			return n
		}
		return 0

	default:
		slog.Error("attempt to get integer from wrong attribute kind",
			"kind", a.kind.String())
		return 0
	}
}

// GetDouble resolves the descriptor as a double. Integer kinds widen.
func (a *AttrValue) GetDouble() float64 {
	if a == nil {
		return 0.0
	}

	switch a.kind {
	case LiteralInt:
		return float64(a.intVal)

	case LiteralDouble:
		return a.dblVal

	case VarIntRef:
		if a.ref != nil {
			return float64(a.ref.intVal)
		}
		return 0.0

	case VarDoubleRef:
		if a.ref != nil {
			return a.ref.dblVal
		}
		return 0.0

	case GeneratorRef:
		if a.gen != nil {
			return a.gen.Sample()
		}
		return 0.0

	default:
		slog.Error("attempt to get floating point from wrong attribute kind",
			"kind", a.kind.String())
		return 0.0
	}
}

// GetBool resolves the descriptor as a boolean. Integer kinds coerce:
// non-zero means true.
func (a *AttrValue) GetBool() bool {
	if a == nil {
		return false
	}

	switch a.kind {
	case LiteralBool:
		return a.boolVal

	case VarBoolRef:
		if a.ref != nil {
			return a.ref.boolVal
		}
		return false

	case LiteralInt:
		return a.intVal != 0

	case VarIntRef:
		return a.ref != nil && a.ref.intVal != 0

	default:
		slog.Error("attempt to get boolean from wrong attribute kind",
			"kind", a.kind.String())
		return false
	}
}

// GetString resolves the descriptor as a string. Non-string kinds are a
// type-contract violation: logged, empty string.
func (a *AttrValue) GetString() string {
	if a == nil {
		return ""
	}

	switch a.kind {
	case LiteralString:
		return a.strVal

	case VarStringRef:
		if a.ref != nil {
			return a.ref.strVal
		}
		return ""

	default:
		slog.Error("attempt to get string from wrong attribute kind",
			"kind", a.kind.String())
		return ""
	}
}

// NewBool allocates a literal boolean descriptor from the arena. Returns
// nil when the arena is exhausted.
func NewBool(a *arena.Arena, val bool) *AttrValue {
	avd := allocAVD(a)
	if avd == nil {
		return nil
	}
	avd.kind = LiteralBool
	avd.boolVal = val
	return avd
}

// NewInt allocates a literal integer descriptor from the arena.
func NewInt(a *arena.Arena, val uint64) *AttrValue {
	avd := allocAVD(a)
	if avd == nil {
		return nil
	}
	avd.kind = LiteralInt
	avd.intVal = val
	return avd
}

// NewDouble allocates a literal double descriptor from the arena.
func NewDouble(a *arena.Arena, val float64) *AttrValue {
	avd := allocAVD(a)
	if avd == nil {
		return nil
	}
	avd.kind = LiteralDouble
	avd.dblVal = val
	return avd
}

// NewString allocates a literal string descriptor, interning the string in
// the arena alongside it.
func NewString(a *arena.Arena, val string) *AttrValue {
	avd := allocAVD(a)
	if avd == nil {
		return nil
	}
	s, err := a.InternString(val)
	if err != nil {
		slog.Error("string interning failed", "error", err)
		return nil
	}
	avd.kind = LiteralString
	avd.strVal = s
	return avd
}

// FromVariable allocates a reference descriptor bound to v's currently
// populated storage slot: a slot reference for scalar payloads, a
// generator reference for random variables. Returns nil when v is nil or
// has no recognized storage kind yet (a variable that has been referenced
// but never set).
func FromVariable(a *arena.Arena, v *Variable) *AttrValue {
	if v == nil {
		return nil
	}

	avd := allocAVD(a)
	if avd == nil {
		return nil
	}

	switch v.mask {
	case setBool:
		avd.kind = VarBoolRef
		avd.ref = v

	case setInt:
		avd.kind = VarIntRef
		avd.ref = v

	case setDouble:
		avd.kind = VarDoubleRef
		avd.ref = v

	case setString:
		avd.kind = VarStringRef
		avd.ref = v

	case setRand:
		avd.kind = GeneratorRef
		avd.gen = v.gen

	default:
		slog.Error("illegal variable storage kind", "name", v.name)
		return nil
	}

	return avd
}

func allocAVD(a *arena.Arena) *AttrValue {
	if err := a.Reserve(); err != nil {
		slog.Error("attribute descriptor allocation failed", "error", err)
		return nil
	}
	return &AttrValue{}
}

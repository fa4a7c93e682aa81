package vars

// Kind determines which scope list owns a Variable and whether direct
// assignment is permitted.
type Kind int

const (
	KindNormal Kind = iota
	KindLocal
	KindSpecial
	KindRandom
)

// String returns the lower-case kind label used in log messages.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindLocal:
		return "local"
	case KindSpecial:
		return "special"
	case KindRandom:
		return "random"
	default:
		return "illegal"
	}
}

// payloadMask records which payload slot of a Variable is populated. A
// variable fresh off the allocator has no bit set; assignment sets exactly
// one. CopyValue iterates all set bits so values copied from older
// multi-bit snapshots survive intact.
type payloadMask uint8

const (
	setBool payloadMask = 1 << iota
	setInt
	setDouble
	setString
	setRand
)

// Variable is a named, typed, mutable storage cell. It is allocated once
// from the shared arena and lives until arena teardown; there is no
// deallocation path.
type Variable struct {
	name string
	kind Kind
	mask payloadMask

	boolVal bool
	intVal  uint64
	dblVal  float64
	strVal  string
	gen     Generator
}

func (v *Variable) Name() string { return v.name }
func (v *Variable) Kind() Kind   { return v.kind }

// HasValue reports whether any payload slot is populated.
func (v *Variable) HasValue() bool { return v.mask != 0 }

func (v *Variable) HasBool() bool   { return v.mask&setBool != 0 }
func (v *Variable) HasInt() bool    { return v.mask&setInt != 0 }
func (v *Variable) HasDouble() bool { return v.mask&setDouble != 0 }
func (v *Variable) HasString() bool { return v.mask&setString != 0 }
func (v *Variable) HasRand() bool   { return v.mask&setRand != 0 }

func (v *Variable) Bool() bool      { return v.boolVal }
func (v *Variable) Int() uint64     { return v.intVal }
func (v *Variable) Double() float64 { return v.dblVal }
func (v *Variable) Str() string     { return v.strVal }
func (v *Variable) Gen() Generator  { return v.gen }

// SetBool stores a boolean payload, displacing any previous payload kind.
func (v *Variable) SetBool(b bool) {
	v.boolVal = b
	v.mask = setBool
}

// SetInt stores an integer payload, displacing any previous payload kind.
func (v *Variable) SetInt(i uint64) {
	v.intVal = i
	v.mask = setInt
}

// SetDouble stores a double payload, displacing any previous payload kind.
func (v *Variable) SetDouble(d float64) {
	v.dblVal = d
	v.mask = setDouble
}

// SetString stores a string payload, displacing any previous payload kind.
// The caller is responsible for interning the string in the arena first.
func (v *Variable) SetString(s string) {
	v.strVal = s
	v.mask = setString
}

// SetRand attaches a generator, displacing any previous payload kind. The
// generator is shared, never duplicated: locals assigned from a random
// variable alias the same sampler.
func (v *Variable) SetRand(g Generator) {
	v.gen = g
	v.mask = setRand
}

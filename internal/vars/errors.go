package vars

import "errors"

// Error taxonomy of the binding core. Callers of routine lookups are not
// required to branch on these: every failure except the fatal RefAttr
// allocation path is also logged and converted to a benign sentinel value
// at the call site.
var (
	// ErrNotFound: name absent in every searched scope.
	ErrNotFound = errors.New("vars: variable not found")
	// ErrAlreadyDefined: redeclaring an existing random variable.
	ErrAlreadyDefined = errors.New("vars: variable name already in use")
	// ErrWrongKind: scalar assignment to a random variable, or
	// declare-random on a non-random variable.
	ErrWrongKind = errors.New("vars: wrong variable kind for operation")
	// ErrAllocation: the shared arena is exhausted.
	ErrAllocation = errors.New("vars: allocation failed")
	// ErrUnresolvedSpecial: no provider matched, or the environment
	// variable is absent.
	ErrUnresolvedSpecial = errors.New("vars: unresolved special variable")
)

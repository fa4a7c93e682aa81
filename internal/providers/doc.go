// Package providers implements the external value sources consulted when
// a workload profile references a special name.
//
// Special names with `{identifier}` syntax resolve against engine state:
// named statistics counters, the event generator's configured rate, the
// wall-clock date, the loaded script's identity, and the host name.
// `(identifier)` names resolve against the process environment. The
// binding core (internal/vars) owns the dispatch and memoization; this
// package only supplies the lookup functions it is wired with.
package providers

// Package vars implements the typed attribute-value and variable-binding
// system at the heart of the workload engine.
//
// # Why delayed binding?
//
// A workload profile is loaded long before it runs, and `set` commands may
// change variable values in between. Attribute values therefore do not
// capture a value at parse time; they capture a reference. An AttrValue is
// that reference: a literal, a pointer to a Variable's live storage slot,
// or a pointer to a random-distribution generator that is re-sampled on
// every read. The execution engine reads attributes exclusively through
// the AttrValue accessors, so it always observes the current state.
//
// # Scopes
//
// Variables live in one of three scope lists owned by a Registry:
//
//   - the global list (Normal and Random variables, insertion order),
//   - the local stack (Local variables, newest first - each component
//     instantiation pushes fresh locals without destroying outer ones),
//   - the special list (lazily resolved `{internal}` and `(environment)`
//     names, cached after first resolution).
//
// Lookup searches locals before globals, giving locals shadowing
// precedence. Special names are only consulted when both miss.
//
// # Phases
//
// All structural mutation (allocating variables, linking scope lists,
// creating generators) happens during the single-actor configuration
// phase. Once workers start reading, list structure is immutable; only
// variable payloads and generator sampling state still change. The
// package takes no locks of its own - that phase separation is the
// surrounding engine's contract.
package vars

// Package arena models the shared value store that backs every variable,
// attribute descriptor, generator, and interned string in the engine.
//
// # Why an arena?
//
// The workload engine shares its variable table between the configuration
// phase and many concurrent worker contexts. Everything placed in the
// table lives until the run tears down; nothing is ever freed. The arena
// makes that lifetime explicit and enforces a single allocation budget, so
// a runaway profile fails with ErrExhausted instead of growing without
// bound.
//
// The arena does not hand out raw memory. Go's allocator owns the bytes;
// the arena only accounts for them, which is all the binding core needs to
// honor its "allocation may fail" contracts.
package arena

// Package profile loads HCL workload profiles and drives them through the
// binding entry points of internal/vars.
//
// A profile contains three block kinds:
//
//   - `set { name = value }` blocks assign typed values to variables,
//     exactly like interactive `set` commands;
//   - `random "name" { ... }` blocks define random variables and bind
//     their distribution parameters;
//   - `workload "name" { ... }` blocks bind workload attributes into
//     attribute descriptors for the execution engine to read later.
//
// Attribute expressions that reference a variable - either a `"$name"`
// string or a bare traversal - compile to variable references, so their
// values resolve at read time, not load time. Everything else binds as a
// literal descriptor.
package profile

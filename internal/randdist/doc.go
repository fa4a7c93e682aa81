// Package randdist implements the random-distribution objects that back
// random variables in workload profiles.
//
// A Generator carries a distribution kind (uniform, gamma, or tabular), a
// randomness source (a seeded pseudo-random stream or system entropy), and
// a set of parameters. The parameters are attribute descriptors, not plain
// numbers: a distribution's mean can be a literal, a reference to a
// variable that a later `set` command changes, or another distribution.
// Parameter values are read through the descriptor on every initialization
// and sample, which is what makes recursive and late-bound configuration
// work without special cases.
//
// Sampling is safe for concurrent worker contexts; each generator guards
// its pseudo-random stream with a mutex.
package randdist

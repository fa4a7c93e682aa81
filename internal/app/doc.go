// Package app wires the engine's collaborators together: the shared
// arena, the variable registry with its special-name providers and
// generator factory, and the HCL profile loader. It owns the application
// lifecycle for the CLI: configure, load, report.
package app

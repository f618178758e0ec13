// Package config holds process-wide flags and constants shared by the typer,
// the closure lifter and their ambient tooling, centralizing a handful of
// global switches instead of threading them through every call.
package config

// IsTestMode normalizes fresh type-variable names to "t?" in String() output
// so golden-file and table-driven tests stay deterministic across runs.
var IsTestMode = false

// IsTraceMode gates verbose tracing of unification steps to stderr. Off by
// default; the demo CLI turns it on when invoked as `lambdadoge -trace`.
var IsTraceMode = false

// PreludeFileExt is the extension required of a prelude document path passed
// to prelude.LoadFile.
const PreludeFileExt = ".prelude.yaml"

// Package plan defines the faceting job produced by cut-script evaluation
// and consumed by tessellation.
//
// A Plan is a cube of stock plus an ordered list of planar cuts. Each cut
// removes everything on the side its normal points to. Plans are plain
// values: evaluation produces a new Plan every time, and nothing mutates a
// Plan after it has been handed to a kernel.
//
// Plans round-trip through YAML (see Load and Save) and JSON, and Random
// builds seeded, reproducible plans of random corner shavings.
package plan

// Package field holds the numerical core: dense multi-channel grids, the
// stream-function velocity synthesizer, separable Gaussian smoothing, and
// semi-Lagrangian advection.
//
// All operations are total: boundary indices are clamped, blur with a
// non-positive sigma is the identity, and advection traces are confined to
// the grid, so no input produces NaN, Inf, or an out-of-range access.
//
// Nothing in this package is safe for concurrent use; the simulation
// driver owns every buffer for the duration of a step.
package field

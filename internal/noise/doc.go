// Package noise implements the coherent-noise primitives every noise module
// is built on: lattice gradient noise, integer value noise, and the
// interpolation curves used to smooth between lattice points.
//
// All functions are pure. They are safe to call from any number of
// goroutines and return identical results for identical inputs.
package noise

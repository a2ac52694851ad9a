// Package module provides the noise modules that are chained together to
// produce coherent noise.
//
// A Module maps a point in 3-D space to a single value. Generators produce
// values from nothing but their parameters; modifiers, combiners, selectors
// and transformers derive their value from one or more source modules.
//
// Modules are immutable once constructed, so a single graph can be sampled
// from many goroutines at once. Constructors validate their parameters and
// return errors wrapping ErrInvalidParam or ErrMissingSource.
package module

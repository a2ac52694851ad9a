// Package config defines the format-agnostic model of a noise graph
// definition, along with the interfaces (Loader, Converter) for loading and
// interpreting it.
//
// The config.Model is the single source of truth for the builder and the
// render targets. Concrete implementations of the interfaces, such as for
// HCL, live in separate packages.
package config

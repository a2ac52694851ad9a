// Package registry provides the central "glue" for the module system.
//
// The Registry maps the type label of a `module "<type>" "<name>"` block to
// the Go code that builds it: a constructor for the input struct (with its
// defaults filled in) and a build function that turns the decoded input into
// a module.Module.
//
// During application startup, the registry is populated and then validated
// so that every input struct can actually be decoded from configuration.
package registry

package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/noisegrid/internal/module"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, translates it into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Resolver returns the built module registered under a module ID.
type Resolver func(id string) (module.Module, bool)

// Converter binds raw configuration to Go values.
type Converter interface {
	// EvalContext builds the evaluation context for expressions, applying
	// overrides on top of variable defaults. Overriding an undeclared
	// variable or leaving a variable without a value is an error.
	EvalContext(ctx context.Context, model *Model, overrides map[string]string) (*hcl.EvalContext, error)

	// References returns the module IDs an expression refers to.
	References(expr hcl.Expression) []string

	// DecodeBody decodes a set of arguments into a tagged Go struct.
	// Fields of type module.Module or []module.Module are filled through
	// resolve; all other fields are evaluated in evalCtx. Fields whose
	// argument is absent keep their current value. block is the range of
	// the enclosing block, reported when a required argument is missing.
	DecodeBody(
		ctx context.Context,
		target any,
		args map[string]hcl.Expression,
		block hcl.Range,
		evalCtx *hcl.EvalContext,
		resolve Resolver,
	) error
}

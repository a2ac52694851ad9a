// Package combiner registers the module types that merge the outputs of
// several source modules.
package combiner

import (
	"fmt"

	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/specialistvlad/noisegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// SourcesInput defines the arguments for `module "add"`, `"max"`, `"min"`
// and `"multiply"`. Two or more sources are folded left to right.
type SourcesInput struct {
	Sources []module.Module `noise:"sources,required"`
}

// PowerInput defines the arguments for `module "power"`.
type PowerInput struct {
	Base     module.Module `noise:"base,required"`
	Exponent module.Module `noise:"exponent,required"`
}

type pairFunc func(a, b module.Module) (*module.Combiner, error)

// fold chains a pairwise combiner across all sources.
func fold(kind string, sources []module.Module, pair pairFunc) (module.Module, error) {
	if len(sources) < 2 {
		return nil, fmt.Errorf("%s: at least 2 sources required, got %d: %w", kind, len(sources), module.ErrInvalidParam)
	}
	acc, err := pair(sources[0], sources[1])
	if err != nil {
		return nil, err
	}
	for _, src := range sources[2:] {
		if acc, err = pair(acc, src); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func folding(kind, description string, pair pairFunc) *registry.RegisteredModule {
	return registry.Typed(description,
		func() SourcesInput { return SourcesInput{} },
		func(in *SourcesInput) (module.Module, error) { return fold(kind, in.Sources, pair) },
	)
}

// Register registers every combiner type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("add", folding("add", "Sum of the sources.", module.NewAdd))
	r.RegisterModule("max", folding("max", "Largest of the sources.", module.NewMax))
	r.RegisterModule("min", folding("min", "Smallest of the sources.", module.NewMin))
	r.RegisterModule("multiply", folding("multiply", "Product of the sources.", module.NewMultiply))

	r.RegisterModule("power", registry.Typed("Base raised to the power of exponent.",
		func() PowerInput { return PowerInput{} },
		func(in *PowerInput) (module.Module, error) { return module.NewPower(in.Base, in.Exponent) },
	))
}

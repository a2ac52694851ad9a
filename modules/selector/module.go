// Package selector registers the module types that choose between two
// sources based on a control module.
package selector

import (
	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/specialistvlad/noisegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// BlendInput defines the arguments for `module "blend"`.
type BlendInput struct {
	A       module.Module `noise:"a,required"`
	B       module.Module `noise:"b,required"`
	Control module.Module `noise:"control,required"`
}

// SelectInput defines the arguments for `module "select"`.
type SelectInput struct {
	A           module.Module `noise:"a,required"`
	B           module.Module `noise:"b,required"`
	Control     module.Module `noise:"control,required"`
	Lower       float64       `noise:"lower"`
	Upper       float64       `noise:"upper"`
	EdgeFalloff float64       `noise:"edge_falloff"`
}

// Register registers every selector type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("blend", registry.Typed("Weighted blend of a and b, weighted by control.",
		func() BlendInput { return BlendInput{} },
		func(in *BlendInput) (module.Module, error) { return module.NewBlend(in.A, in.B, in.Control) },
	))

	r.RegisterModule("select", registry.Typed("Outputs b where control lies in [lower, upper], a elsewhere.",
		func() SelectInput {
			p := module.DefaultSelectParams()
			return SelectInput{Lower: p.Lower, Upper: p.Upper, EdgeFalloff: p.EdgeFalloff}
		},
		func(in *SelectInput) (module.Module, error) {
			return module.NewSelect(in.A, in.B, in.Control, module.SelectParams{
				Lower:       in.Lower,
				Upper:       in.Upper,
				EdgeFalloff: in.EdgeFalloff,
			})
		},
	))
}

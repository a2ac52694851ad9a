// Package transformer registers the module types that move, scale, rotate
// or distort the input coordinates before sampling a source.
package transformer

import (
	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/specialistvlad/noisegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// AxesInput defines the arguments for `module "scale_point"`,
// `"translate_point"` and `"rotate_point"`. Rotation angles are in degrees.
type AxesInput struct {
	Source module.Module `noise:"source,required"`
	X      float64       `noise:"x"`
	Y      float64       `noise:"y"`
	Z      float64       `noise:"z"`
}

// DisplaceInput defines the arguments for `module "displace"`.
type DisplaceInput struct {
	Source module.Module `noise:"source,required"`
	X      module.Module `noise:"x,required"`
	Y      module.Module `noise:"y,required"`
	Z      module.Module `noise:"z,required"`
}

// TurbulenceInput defines the arguments for `module "turbulence"`.
type TurbulenceInput struct {
	Source    module.Module `noise:"source,required"`
	Power     float64       `noise:"power"`
	Frequency float64       `noise:"frequency"`
	Roughness int           `noise:"roughness"`
	Seed      int32         `noise:"seed"`
}

// Register registers every transformer type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("scale_point", registry.Typed("Scales the input coordinates per axis.",
		func() AxesInput { return AxesInput{X: 1, Y: 1, Z: 1} },
		func(in *AxesInput) (module.Module, error) { return module.NewScalePoint(in.Source, in.X, in.Y, in.Z) },
	))

	r.RegisterModule("translate_point", registry.Typed("Moves the input coordinates.",
		func() AxesInput { return AxesInput{} },
		func(in *AxesInput) (module.Module, error) {
			return module.NewTranslatePoint(in.Source, in.X, in.Y, in.Z)
		},
	))

	r.RegisterModule("rotate_point", registry.Typed("Rotates the input coordinates around the origin.",
		func() AxesInput { return AxesInput{} },
		func(in *AxesInput) (module.Module, error) { return module.NewRotatePoint(in.Source, in.X, in.Y, in.Z) },
	))

	r.RegisterModule("displace", registry.Typed("Offsets each input coordinate by the value of a module.",
		func() DisplaceInput { return DisplaceInput{} },
		func(in *DisplaceInput) (module.Module, error) { return module.NewDisplace(in.Source, in.X, in.Y, in.Z) },
	))

	r.RegisterModule("turbulence", registry.Typed("Randomly distorts the input coordinates.",
		func() TurbulenceInput {
			p := module.DefaultTurbulenceParams()
			return TurbulenceInput{Power: p.Power, Frequency: p.Frequency, Roughness: p.Roughness, Seed: p.Seed}
		},
		func(in *TurbulenceInput) (module.Module, error) {
			return module.NewTurbulence(in.Source, module.TurbulenceParams{
				Power:     in.Power,
				Frequency: in.Frequency,
				Roughness: in.Roughness,
				Seed:      in.Seed,
			})
		},
	))
}

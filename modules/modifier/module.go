// Package modifier registers the module types that reshape the output of a
// single source module.
package modifier

import (
	"fmt"

	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/specialistvlad/noisegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// SourceInput defines the arguments for `module "abs"` and `module "invert"`.
type SourceInput struct {
	Source module.Module `noise:"source,required"`
}

// ClampInput defines the arguments for `module "clamp"`.
type ClampInput struct {
	Source module.Module `noise:"source,required"`
	Lower  float64       `noise:"lower"`
	Upper  float64       `noise:"upper"`
}

// ExponentInput defines the arguments for `module "exponent"`.
type ExponentInput struct {
	Source   module.Module `noise:"source,required"`
	Exponent float64       `noise:"exponent"`
}

// ScaleBiasInput defines the arguments for `module "scale_bias"`.
type ScaleBiasInput struct {
	Source module.Module `noise:"source,required"`
	Scale  float64       `noise:"scale"`
	Bias   float64       `noise:"bias"`
}

// CurveInput defines the arguments for `module "curve"`.
type CurveInput struct {
	Source module.Module       `noise:"source,required"`
	Points []module.CurvePoint `noise:"points,required"`
}

// TerraceInput defines the arguments for `module "terrace"`. Exactly one of
// Points and Steps must be given; Steps spreads that many terraces evenly
// across [-1, 1].
type TerraceInput struct {
	Source module.Module `noise:"source,required"`
	Points []float64     `noise:"points"`
	Steps  int           `noise:"steps"`
	Invert bool          `noise:"invert"`
}

func (in *TerraceInput) points() ([]float64, error) {
	switch {
	case len(in.Points) > 0 && in.Steps > 0:
		return nil, fmt.Errorf("terrace: points and steps are mutually exclusive: %w", module.ErrInvalidParam)
	case len(in.Points) > 0:
		return in.Points, nil
	case in.Steps > 0:
		return module.MakeTerracePoints(in.Steps)
	default:
		return nil, fmt.Errorf("terrace: one of points or steps is required: %w", module.ErrInvalidParam)
	}
}

// Register registers every modifier type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("abs", registry.Typed("Absolute value of the source.",
		func() SourceInput { return SourceInput{} },
		func(in *SourceInput) (module.Module, error) { return module.NewAbs(in.Source) },
	))

	r.RegisterModule("clamp", registry.Typed("Clamps the source to [lower, upper].",
		func() ClampInput { return ClampInput{Lower: -1, Upper: 1} },
		func(in *ClampInput) (module.Module, error) { return module.NewClamp(in.Source, in.Lower, in.Upper) },
	))

	r.RegisterModule("exponent", registry.Typed("Raises the source, mapped to [0, 1], to a power.",
		func() ExponentInput { return ExponentInput{Exponent: 1} },
		func(in *ExponentInput) (module.Module, error) { return module.NewExponent(in.Source, in.Exponent) },
	))

	r.RegisterModule("invert", registry.Typed("Negates the source.",
		func() SourceInput { return SourceInput{} },
		func(in *SourceInput) (module.Module, error) { return module.NewInvert(in.Source) },
	))

	r.RegisterModule("scale_bias", registry.Typed("Multiplies the source by scale and adds bias.",
		func() ScaleBiasInput { return ScaleBiasInput{Scale: 1} },
		func(in *ScaleBiasInput) (module.Module, error) {
			return module.NewScaleBias(in.Source, in.Scale, in.Bias)
		},
	))

	r.RegisterModule("curve", registry.Typed("Remaps the source through a cubic curve of control points.",
		func() CurveInput { return CurveInput{} },
		func(in *CurveInput) (module.Module, error) { return module.NewCurve(in.Source, in.Points) },
	))

	r.RegisterModule("terrace", registry.Typed("Maps the source onto terrace-like steps.",
		func() TerraceInput { return TerraceInput{} },
		func(in *TerraceInput) (module.Module, error) {
			points, err := in.points()
			if err != nil {
				return nil, err
			}
			return module.NewTerrace(in.Source, points, in.Invert)
		},
	))
}

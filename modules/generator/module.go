// Package generator registers the module types that produce values from
// coordinates alone: constants, fractal noise, cells and regular patterns.
package generator

import (
	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/specialistvlad/noisegrid/internal/noise"
	"github.com/specialistvlad/noisegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// ConstInput defines the arguments for `module "const"`.
type ConstInput struct {
	Value float64 `noise:"value"`
}

// FractalInput defines the arguments for `module "perlin"` and
// `module "billow"`.
type FractalInput struct {
	Frequency   float64 `noise:"frequency"`
	Lacunarity  float64 `noise:"lacunarity"`
	Persistence float64 `noise:"persistence"`
	Octaves     int     `noise:"octaves"`
	Quality     string  `noise:"quality"`
	Seed        int32   `noise:"seed"`
}

// RidgedInput defines the arguments for `module "ridged_multi"`. Ridged
// multifractal noise derives its octave weights from the spectral exponent,
// so it takes no persistence.
type RidgedInput struct {
	Frequency  float64 `noise:"frequency"`
	Lacunarity float64 `noise:"lacunarity"`
	Octaves    int     `noise:"octaves"`
	Quality    string  `noise:"quality"`
	Seed       int32   `noise:"seed"`
}

// VoronoiInput defines the arguments for `module "voronoi"`.
type VoronoiInput struct {
	Displacement   float64 `noise:"displacement"`
	Frequency      float64 `noise:"frequency"`
	Seed           int32   `noise:"seed"`
	EnableDistance bool    `noise:"enable_distance"`
}

// FrequencyInput defines the arguments for `module "cylinders"` and
// `module "spheres"`.
type FrequencyInput struct {
	Frequency float64 `noise:"frequency"`
}

// CheckerboardInput is empty: a checkerboard has no parameters.
type CheckerboardInput struct{}

func defaultFractal() FractalInput {
	p := module.DefaultFractalParams()
	return FractalInput{
		Frequency:   p.Frequency,
		Lacunarity:  p.Lacunarity,
		Persistence: p.Persistence,
		Octaves:     p.Octaves,
		Quality:     p.Quality.String(),
		Seed:        p.Seed,
	}
}

func (in *FractalInput) params() (module.FractalParams, error) {
	q, err := noise.ParseQuality(in.Quality)
	if err != nil {
		return module.FractalParams{}, err
	}
	return module.FractalParams{
		Frequency:   in.Frequency,
		Lacunarity:  in.Lacunarity,
		Persistence: in.Persistence,
		Octaves:     in.Octaves,
		Quality:     q,
		Seed:        in.Seed,
	}, nil
}

// Register registers every generator type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("const", registry.Typed("Outputs the same value everywhere.",
		func() ConstInput { return ConstInput{} },
		func(in *ConstInput) (module.Module, error) { return module.NewConst(in.Value), nil },
	))

	r.RegisterModule("perlin", registry.Typed("Fractal sum of gradient noise octaves.",
		defaultFractal,
		func(in *FractalInput) (module.Module, error) {
			p, err := in.params()
			if err != nil {
				return nil, err
			}
			return module.NewPerlin(p)
		},
	))

	r.RegisterModule("billow", registry.Typed("Perlin noise with folded octaves, for clouds and rocks.",
		defaultFractal,
		func(in *FractalInput) (module.Module, error) {
			p, err := in.params()
			if err != nil {
				return nil, err
			}
			return module.NewBillow(p)
		},
	))

	r.RegisterModule("ridged_multi", registry.Typed("Ridged multifractal noise, for mountain ranges.",
		func() RidgedInput {
			d := defaultFractal()
			return RidgedInput{Frequency: d.Frequency, Lacunarity: d.Lacunarity, Octaves: d.Octaves, Quality: d.Quality, Seed: d.Seed}
		},
		func(in *RidgedInput) (module.Module, error) {
			fi := FractalInput{Frequency: in.Frequency, Lacunarity: in.Lacunarity, Octaves: in.Octaves, Quality: in.Quality, Seed: in.Seed}
			p, err := fi.params()
			if err != nil {
				return nil, err
			}
			return module.NewRidgedMulti(p)
		},
	))

	r.RegisterModule("voronoi", registry.Typed("Cells around pseudo-random seed points.",
		func() VoronoiInput {
			p := module.DefaultVoronoiParams()
			return VoronoiInput{Displacement: p.Displacement, Frequency: p.Frequency, Seed: p.Seed, EnableDistance: p.EnableDistance}
		},
		func(in *VoronoiInput) (module.Module, error) {
			return module.NewVoronoi(module.VoronoiParams{
				Displacement:   in.Displacement,
				Frequency:      in.Frequency,
				Seed:           in.Seed,
				EnableDistance: in.EnableDistance,
			})
		},
	))

	r.RegisterModule("checkerboard", registry.Typed("Alternating unit cubes of -1 and 1.",
		func() CheckerboardInput { return CheckerboardInput{} },
		func(*CheckerboardInput) (module.Module, error) { return module.NewCheckerboard(), nil },
	))

	r.RegisterModule("cylinders", registry.Typed("Concentric cylinders around the y axis.",
		func() FrequencyInput { return FrequencyInput{Frequency: 1} },
		func(in *FrequencyInput) (module.Module, error) { return module.NewCylinders(in.Frequency) },
	))

	r.RegisterModule("spheres", registry.Typed("Concentric spheres around the origin.",
		func() FrequencyInput { return FrequencyInput{Frequency: 1} },
		func(in *FrequencyInput) (module.Module, error) { return module.NewSpheres(in.Frequency) },
	))
}

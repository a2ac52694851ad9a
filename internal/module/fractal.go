package module

import (
	"math"

	"github.com/specialistvlad/noisegrid/internal/noise"
)

// MaxOctaves is the largest octave count a fractal generator accepts.
const MaxOctaves = 30

// FractalParams configures the octave-summing generators.
type FractalParams struct {
	Frequency   float64
	Lacunarity  float64
	Persistence float64 // ignored by RidgedMulti
	Octaves     int
	Quality     noise.Quality
	Seed        int32
}

// DefaultFractalParams returns the parameters every fractal generator starts
// from.
func DefaultFractalParams() FractalParams {
	return FractalParams{
		Frequency:   1.0,
		Lacunarity:  2.0,
		Persistence: 0.5,
		Octaves:     6,
		Quality:     noise.Standard,
		Seed:        0,
	}
}

func (p FractalParams) validate(kind string) error {
	if p.Octaves < 1 || p.Octaves > MaxOctaves {
		return invalidParam(kind, "octaves must be in [1, %d], got %d", MaxOctaves, p.Octaves)
	}
	if p.Frequency <= 0 {
		return invalidParam(kind, "frequency must be positive, got %g", p.Frequency)
	}
	if p.Lacunarity <= 0 {
		return invalidParam(kind, "lacunarity must be positive, got %g", p.Lacunarity)
	}
	return nil
}

// Perlin is the classic fractal sum of gradient noise octaves.
type Perlin struct {
	p FractalParams
}

// NewPerlin validates p and returns a Perlin generator.
func NewPerlin(p FractalParams) (*Perlin, error) {
	if err := p.validate("perlin"); err != nil {
		return nil, err
	}
	return &Perlin{p: p}, nil
}

// Params returns the generator's parameters.
func (m *Perlin) Params() FractalParams { return m.p }

func (m *Perlin) Value(x, y, z float64) float64 {
	value := 0.0
	curPersistence := 1.0

	x *= m.p.Frequency
	y *= m.p.Frequency
	z *= m.p.Frequency

	for octave := 0; octave < m.p.Octaves; octave++ {
		seed := m.p.Seed + int32(octave)
		signal := noise.GradientCoherentNoise3D(
			noise.MakeInt32Range(x), noise.MakeInt32Range(y), noise.MakeInt32Range(z),
			seed, m.p.Quality)
		value += signal * curPersistence

		x *= m.p.Lacunarity
		y *= m.p.Lacunarity
		z *= m.p.Lacunarity
		curPersistence *= m.p.Persistence
	}
	return value
}

// Billow sums octaves of folded gradient noise, giving billowy,
// cloud-like output.
type Billow struct {
	p FractalParams
}

// NewBillow validates p and returns a Billow generator.
func NewBillow(p FractalParams) (*Billow, error) {
	if err := p.validate("billow"); err != nil {
		return nil, err
	}
	return &Billow{p: p}, nil
}

// Params returns the generator's parameters.
func (m *Billow) Params() FractalParams { return m.p }

func (m *Billow) Value(x, y, z float64) float64 {
	value := 0.0
	curPersistence := 1.0

	x *= m.p.Frequency
	y *= m.p.Frequency
	z *= m.p.Frequency

	for octave := 0; octave < m.p.Octaves; octave++ {
		seed := m.p.Seed + int32(octave)
		signal := noise.GradientCoherentNoise3D(
			noise.MakeInt32Range(x), noise.MakeInt32Range(y), noise.MakeInt32Range(z),
			seed, m.p.Quality)
		signal = 2.0*math.Abs(signal) - 1.0
		value += signal * curPersistence

		x *= m.p.Lacunarity
		y *= m.p.Lacunarity
		z *= m.p.Lacunarity
		curPersistence *= m.p.Persistence
	}
	return value + 0.5
}

// RidgedMulti is a ridged multifractal generator, suited to mountain ranges.
type RidgedMulti struct {
	p               FractalParams
	spectralWeights [MaxOctaves]float64
}

// NewRidgedMulti validates p and returns a RidgedMulti generator.
// p.Persistence is not used.
func NewRidgedMulti(p FractalParams) (*RidgedMulti, error) {
	if err := p.validate("ridged_multi"); err != nil {
		return nil, err
	}
	m := &RidgedMulti{p: p}

	// Weights fall off as frequency^-h with h fixed at 1.
	const h = 1.0
	frequency := 1.0
	for i := range m.spectralWeights {
		m.spectralWeights[i] = math.Pow(frequency, -h)
		frequency *= p.Lacunarity
	}
	return m, nil
}

// Params returns the generator's parameters.
func (m *RidgedMulti) Params() FractalParams { return m.p }

func (m *RidgedMulti) Value(x, y, z float64) float64 {
	const (
		offset = 1.0
		gain   = 2.0
	)

	x *= m.p.Frequency
	y *= m.p.Frequency
	z *= m.p.Frequency

	value := 0.0
	weight := 1.0
	for octave := 0; octave < m.p.Octaves; octave++ {
		seed := (m.p.Seed + int32(octave)) & 0x7fffffff
		signal := noise.GradientCoherentNoise3D(
			noise.MakeInt32Range(x), noise.MakeInt32Range(y), noise.MakeInt32Range(z),
			seed, m.p.Quality)

		signal = offset - math.Abs(signal)
		signal *= signal
		// Successive octaves are weighted by the previous signal so that
		// detail gathers along the ridges.
		signal *= weight

		weight = signal * gain
		if weight > 1.0 {
			weight = 1.0
		}
		if weight < 0.0 {
			weight = 0.0
		}

		value += signal * m.spectralWeights[octave]

		x *= m.p.Lacunarity
		y *= m.p.Lacunarity
		z *= m.p.Lacunarity
	}
	return value*1.25 - 1.0
}

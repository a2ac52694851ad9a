package module

import "github.com/specialistvlad/noisegrid/internal/noise"

// TurbulenceParams configures a Turbulence module.
type TurbulenceParams struct {
	Power     float64
	Frequency float64
	Roughness int
	Seed      int32
}

// DefaultTurbulenceParams returns the default turbulence parameters.
func DefaultTurbulenceParams() TurbulenceParams {
	return TurbulenceParams{Power: 1.0, Frequency: 1.0, Roughness: 3}
}

// Turbulence randomly displaces input coordinates with three Perlin
// distortion modules before sampling its source.
type Turbulence struct {
	source              Module
	power               float64
	xDist, yDist, zDist *Perlin
	params              TurbulenceParams
}

// NewTurbulence wraps source. Roughness is the octave count of the
// distortion modules.
func NewTurbulence(source Module, p TurbulenceParams) (*Turbulence, error) {
	if err := requireSources("turbulence", source); err != nil {
		return nil, err
	}
	distortion := func(seed int32) (*Perlin, error) {
		fp := DefaultFractalParams()
		fp.Frequency = p.Frequency
		fp.Octaves = p.Roughness
		fp.Seed = seed
		fp.Quality = noise.Standard
		return NewPerlin(fp)
	}

	t := &Turbulence{source: source, power: p.Power, params: p}
	var err error
	if t.xDist, err = distortion(p.Seed); err != nil {
		return nil, invalidParam("turbulence", "x distortion: %v", err)
	}
	if t.yDist, err = distortion(p.Seed + 1); err != nil {
		return nil, invalidParam("turbulence", "y distortion: %v", err)
	}
	if t.zDist, err = distortion(p.Seed + 2); err != nil {
		return nil, invalidParam("turbulence", "z distortion: %v", err)
	}
	return t, nil
}

// Params returns the turbulence parameters.
func (m *Turbulence) Params() TurbulenceParams { return m.params }

func (m *Turbulence) Value(x, y, z float64) float64 {
	// Each distortion module samples at an offset so the three displacement
	// fields are not correlated.
	x0 := x + 12414.0/65536.0
	y0 := y + 65124.0/65536.0
	z0 := z + 31337.0/65536.0
	x1 := x + 26519.0/65536.0
	y1 := y + 18128.0/65536.0
	z1 := z + 60493.0/65536.0
	x2 := x + 53820.0/65536.0
	y2 := y + 11213.0/65536.0
	z2 := z + 44845.0/65536.0

	xd := x + m.xDist.Value(x0, y0, z0)*m.power
	yd := y + m.yDist.Value(x1, y1, z1)*m.power
	zd := z + m.zDist.Value(x2, y2, z2)*m.power

	return m.source.Value(xd, yd, zd)
}

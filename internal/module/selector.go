package module

import "github.com/specialistvlad/noisegrid/internal/noise"

// Blend interpolates between two sources, weighted by a control module.
// A control value of -1 selects a, 1 selects b.
type Blend struct {
	a, b, control Module
}

// NewBlend returns a blend of a and b driven by control.
func NewBlend(a, b, control Module) (*Blend, error) {
	if err := requireSources("blend", a, b, control); err != nil {
		return nil, err
	}
	return &Blend{a: a, b: b, control: control}, nil
}

func (m *Blend) Value(x, y, z float64) float64 {
	v0 := m.a.Value(x, y, z)
	v1 := m.b.Value(x, y, z)
	alpha := (m.control.Value(x, y, z) + 1.0) / 2.0
	return noise.LinearInterp(v0, v1, alpha)
}

// SelectParams configures a Select module.
type SelectParams struct {
	Lower       float64
	Upper       float64
	EdgeFalloff float64
}

// DefaultSelectParams returns the default selection range [-1, 1] with hard
// edges.
func DefaultSelectParams() SelectParams {
	return SelectParams{Lower: -1.0, Upper: 1.0}
}

// Select outputs b where the control value lies inside [Lower, Upper] and a
// elsewhere. A positive EdgeFalloff blends the two sources smoothly across
// each bound.
type Select struct {
	a, b, control Module
	p             SelectParams
}

// NewSelect validates p and returns the selector. EdgeFalloff is clamped to
// half the width of the selection range.
func NewSelect(a, b, control Module, p SelectParams) (*Select, error) {
	if err := requireSources("select", a, b, control); err != nil {
		return nil, err
	}
	if p.Lower >= p.Upper {
		return nil, invalidParam("select", "lower bound %g must be below upper bound %g", p.Lower, p.Upper)
	}
	if p.EdgeFalloff < 0 {
		return nil, invalidParam("select", "edge falloff must not be negative, got %g", p.EdgeFalloff)
	}
	half := (p.Upper - p.Lower) / 2.0
	if p.EdgeFalloff > half {
		p.EdgeFalloff = half
	}
	return &Select{a: a, b: b, control: control, p: p}, nil
}

// Params returns the effective parameters, with EdgeFalloff already clamped.
func (m *Select) Params() SelectParams { return m.p }

func (m *Select) Value(x, y, z float64) float64 {
	cv := m.control.Value(x, y, z)
	lower, upper, edge := m.p.Lower, m.p.Upper, m.p.EdgeFalloff

	if edge <= 0.0 {
		if cv < lower || cv > upper {
			return m.a.Value(x, y, z)
		}
		return m.b.Value(x, y, z)
	}

	switch {
	case cv < lower-edge:
		return m.a.Value(x, y, z)
	case cv < lower+edge:
		lowerCurve := lower - edge
		upperCurve := lower + edge
		alpha := noise.SCurve3((cv - lowerCurve) / (upperCurve - lowerCurve))
		return noise.LinearInterp(m.a.Value(x, y, z), m.b.Value(x, y, z), alpha)
	case cv < upper-edge:
		return m.b.Value(x, y, z)
	case cv < upper+edge:
		lowerCurve := upper - edge
		upperCurve := upper + edge
		alpha := noise.SCurve3((cv - lowerCurve) / (upperCurve - lowerCurve))
		return noise.LinearInterp(m.b.Value(x, y, z), m.a.Value(x, y, z), alpha)
	default:
		return m.a.Value(x, y, z)
	}
}

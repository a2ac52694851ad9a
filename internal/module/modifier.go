package module

import "math"

// Abs outputs the absolute value of its source.
type Abs struct {
	source Module
}

// NewAbs wraps source.
func NewAbs(source Module) (*Abs, error) {
	if err := requireSources("abs", source); err != nil {
		return nil, err
	}
	return &Abs{source: source}, nil
}

func (m *Abs) Value(x, y, z float64) float64 {
	return math.Abs(m.source.Value(x, y, z))
}

// Clamp restricts its source to [lower, upper].
type Clamp struct {
	source       Module
	lower, upper float64
}

// NewClamp wraps source. lower must not exceed upper.
func NewClamp(source Module, lower, upper float64) (*Clamp, error) {
	if err := requireSources("clamp", source); err != nil {
		return nil, err
	}
	if lower > upper {
		return nil, invalidParam("clamp", "lower bound %g exceeds upper bound %g", lower, upper)
	}
	return &Clamp{source: source, lower: lower, upper: upper}, nil
}

func (m *Clamp) Value(x, y, z float64) float64 {
	v := m.source.Value(x, y, z)
	if v < m.lower {
		return m.lower
	}
	if v > m.upper {
		return m.upper
	}
	return v
}

// Exponent maps its source from [-1, 1] to [0, 1], raises it to exponent
// and maps the result back to [-1, 1].
type Exponent struct {
	source   Module
	exponent float64
}

// NewExponent wraps source.
func NewExponent(source Module, exponent float64) (*Exponent, error) {
	if err := requireSources("exponent", source); err != nil {
		return nil, err
	}
	return &Exponent{source: source, exponent: exponent}, nil
}

func (m *Exponent) Value(x, y, z float64) float64 {
	v := m.source.Value(x, y, z)
	return math.Pow(math.Abs((v+1.0)/2.0), m.exponent)*2.0 - 1.0
}

// Invert negates its source.
type Invert struct {
	source Module
}

// NewInvert wraps source.
func NewInvert(source Module) (*Invert, error) {
	if err := requireSources("invert", source); err != nil {
		return nil, err
	}
	return &Invert{source: source}, nil
}

func (m *Invert) Value(x, y, z float64) float64 {
	return -m.source.Value(x, y, z)
}

// ScaleBias outputs source*scale + bias.
type ScaleBias struct {
	source      Module
	scale, bias float64
}

// NewScaleBias wraps source.
func NewScaleBias(source Module, scale, bias float64) (*ScaleBias, error) {
	if err := requireSources("scale_bias", source); err != nil {
		return nil, err
	}
	return &ScaleBias{source: source, scale: scale, bias: bias}, nil
}

func (m *ScaleBias) Value(x, y, z float64) float64 {
	return m.source.Value(x, y, z)*m.scale + m.bias
}

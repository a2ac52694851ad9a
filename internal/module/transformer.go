package module

import "math"

// ScalePoint scales the input coordinates before sampling its source.
type ScalePoint struct {
	source  Module
	x, y, z float64
}

// NewScalePoint wraps source.
func NewScalePoint(source Module, x, y, z float64) (*ScalePoint, error) {
	if err := requireSources("scale_point", source); err != nil {
		return nil, err
	}
	return &ScalePoint{source: source, x: x, y: y, z: z}, nil
}

func (m *ScalePoint) Value(x, y, z float64) float64 {
	return m.source.Value(x*m.x, y*m.y, z*m.z)
}

// TranslatePoint offsets the input coordinates before sampling its source.
type TranslatePoint struct {
	source  Module
	x, y, z float64
}

// NewTranslatePoint wraps source.
func NewTranslatePoint(source Module, x, y, z float64) (*TranslatePoint, error) {
	if err := requireSources("translate_point", source); err != nil {
		return nil, err
	}
	return &TranslatePoint{source: source, x: x, y: y, z: z}, nil
}

func (m *TranslatePoint) Value(x, y, z float64) float64 {
	return m.source.Value(x+m.x, y+m.y, z+m.z)
}

// RotatePoint rotates the input coordinates around the origin before
// sampling its source.
type RotatePoint struct {
	source Module

	x1, y1, z1 float64
	x2, y2, z2 float64
	x3, y3, z3 float64
}

// NewRotatePoint wraps source. Angles are in degrees around the x, y and z
// axes.
func NewRotatePoint(source Module, xAngle, yAngle, zAngle float64) (*RotatePoint, error) {
	if err := requireSources("rotate_point", source); err != nil {
		return nil, err
	}
	xCos, xSin := math.Cos(radians(xAngle)), math.Sin(radians(xAngle))
	yCos, ySin := math.Cos(radians(yAngle)), math.Sin(radians(yAngle))
	zCos, zSin := math.Cos(radians(zAngle)), math.Sin(radians(zAngle))

	return &RotatePoint{
		source: source,
		x1:     ySin*xSin*zSin + yCos*zCos,
		y1:     xCos * zSin,
		z1:     ySin*zCos - yCos*xSin*zSin,
		x2:     ySin*xSin*zCos - yCos*zSin,
		y2:     xCos * zCos,
		z2:     -yCos*xSin*zCos - ySin*zSin,
		x3:     -ySin * xCos,
		y3:     xSin,
		z3:     yCos * xCos,
	}, nil
}

func (m *RotatePoint) Value(x, y, z float64) float64 {
	nx := m.x1*x + m.y1*y + m.z1*z
	ny := m.x2*x + m.y2*y + m.z2*z
	nz := m.x3*x + m.y3*y + m.z3*z
	return m.source.Value(nx, ny, nz)
}

// Displace offsets each input coordinate by the output of a displacement
// module before sampling its source.
type Displace struct {
	source     Module
	dx, dy, dz Module
}

// NewDisplace wraps source with the three displacement modules.
func NewDisplace(source, dx, dy, dz Module) (*Displace, error) {
	if err := requireSources("displace", source, dx, dy, dz); err != nil {
		return nil, err
	}
	return &Displace{source: source, dx: dx, dy: dy, dz: dz}, nil
}

func (m *Displace) Value(x, y, z float64) float64 {
	return m.source.Value(
		x+m.dx.Value(x, y, z),
		y+m.dy.Value(x, y, z),
		z+m.dz.Value(x, y, z))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

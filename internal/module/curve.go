package module

import (
	"sort"

	"github.com/specialistvlad/noisegrid/internal/noise"
)

// CurvePoint maps a source value to an output value.
type CurvePoint struct {
	Input  float64 `cty:"input"`
	Output float64 `cty:"output"`
}

// Curve remaps its source through a cubic spline defined by control points.
type Curve struct {
	source Module
	points []CurvePoint
}

// NewCurve wraps source. At least four control points with distinct inputs
// are required; they are sorted by input.
func NewCurve(source Module, points []CurvePoint) (*Curve, error) {
	if err := requireSources("curve", source); err != nil {
		return nil, err
	}
	if len(points) < 4 {
		return nil, invalidParam("curve", "at least 4 control points required, got %d", len(points))
	}
	sorted := make([]CurvePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Input < sorted[j].Input })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Input == sorted[i-1].Input {
			return nil, invalidParam("curve", "duplicate control point input %g", sorted[i].Input)
		}
	}
	return &Curve{source: source, points: sorted}, nil
}

// Points returns a copy of the sorted control points.
func (m *Curve) Points() []CurvePoint {
	out := make([]CurvePoint, len(m.points))
	copy(out, m.points)
	return out
}

func (m *Curve) Value(x, y, z float64) float64 {
	v := m.source.Value(x, y, z)
	last := len(m.points) - 1

	indexPos := 0
	for ; indexPos <= last; indexPos++ {
		if v < m.points[indexPos].Input {
			break
		}
	}

	index0 := noise.ClampInt(indexPos-2, 0, last)
	index1 := noise.ClampInt(indexPos-1, 0, last)
	index2 := noise.ClampInt(indexPos, 0, last)
	index3 := noise.ClampInt(indexPos+1, 0, last)

	// Outside the curve's range the nearest endpoint's output is used.
	if index1 == index2 {
		return m.points[index1].Output
	}

	input0 := m.points[index1].Input
	input1 := m.points[index2].Input
	alpha := (v - input0) / (input1 - input0)

	return noise.CubicInterp(
		m.points[index0].Output,
		m.points[index1].Output,
		m.points[index2].Output,
		m.points[index3].Output,
		alpha)
}

// Terrace maps its source onto terrace-like steps.
type Terrace struct {
	source Module
	points []float64
	invert bool
}

// NewTerrace wraps source. At least two distinct control points are
// required; they are sorted ascending. invert flips the curve between each
// pair of points.
func NewTerrace(source Module, points []float64, invert bool) (*Terrace, error) {
	if err := requireSources("terrace", source); err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, invalidParam("terrace", "at least 2 control points required, got %d", len(points))
	}
	sorted := make([]float64, len(points))
	copy(sorted, points)
	sort.Float64s(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, invalidParam("terrace", "duplicate control point %g", sorted[i])
		}
	}
	return &Terrace{source: source, points: sorted, invert: invert}, nil
}

// MakeTerracePoints returns count points spaced evenly across [-1, 1].
func MakeTerracePoints(count int) ([]float64, error) {
	if count < 2 {
		return nil, invalidParam("terrace", "at least 2 terraces required, got %d", count)
	}
	step := 2.0 / float64(count-1)
	points := make([]float64, count)
	for i := range points {
		points[i] = -1.0 + float64(i)*step
	}
	return points, nil
}

func (m *Terrace) Value(x, y, z float64) float64 {
	v := m.source.Value(x, y, z)
	last := len(m.points) - 1

	indexPos := 0
	for ; indexPos <= last; indexPos++ {
		if v < m.points[indexPos] {
			break
		}
	}

	index0 := noise.ClampInt(indexPos-1, 0, last)
	index1 := noise.ClampInt(indexPos, 0, last)
	if index0 == index1 {
		return m.points[index1]
	}

	value0 := m.points[index0]
	value1 := m.points[index1]
	alpha := (v - value0) / (value1 - value0)
	if m.invert {
		alpha = 1.0 - alpha
		value0, value1 = value1, value0
	}
	alpha *= alpha

	return noise.LinearInterp(value0, value1, alpha)
}

package model

import "github.com/specialistvlad/noisegrid/internal/module"

// Point is a position in 3-D space.
type Point struct {
	X, Y, Z float64
}

// Line is the segment between Start and End.
type Line struct {
	base
	start, end Point
	attenuate  bool
}

// NewLine returns a segment from (0,0,0) to (1,1,1) sampling m.
// Attenuation is enabled.
func NewLine(m module.Module) *Line {
	return &Line{
		base:      newBase(m),
		end:       Point{1, 1, 1},
		attenuate: true,
	}
}

// SetStart moves the start of the segment.
func (l *Line) SetStart(p Point) { l.start = p }

// SetEnd moves the end of the segment.
func (l *Line) SetEnd(p Point) { l.end = p }

// SetAttenuate toggles attenuation. When enabled the output fades to 0 at
// both ends of the segment.
func (l *Line) SetAttenuate(on bool) { l.attenuate = on }

// Value returns the module's output at position p along the segment, where
// 0 is the start and 1 the end.
func (l *Line) Value(p float64) float64 {
	x := (l.end.X-l.start.X)*p + l.start.X
	y := (l.end.Y-l.start.Y)*p + l.start.Y
	z := (l.end.Z-l.start.Z)*p + l.start.Z
	v := l.source.Value(x, y, z)
	if l.attenuate {
		return p * (1.0 - p) * 4 * v
	}
	return v
}

package render

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidGradient is returned when gradient points cannot be used.
var ErrInvalidGradient = errors.New("invalid gradient")

// GradientPoint assigns a colour to a noise value.
type GradientPoint struct {
	Position float64
	Color    color.RGBA
}

// Gradient maps noise values to colours by interpolating between sorted
// points. It needs at least two points to produce colours.
type Gradient struct {
	points []GradientPoint
}

// NewGradient builds a gradient from points in any order. Positions must be
// unique and at least two points are required.
func NewGradient(points ...GradientPoint) (*Gradient, error) {
	g := &Gradient{}
	for _, p := range points {
		if err := g.AddPoint(p.Position, p.Color); err != nil {
			return nil, err
		}
	}
	if len(g.points) < 2 {
		return nil, fmt.Errorf("%w: at least 2 points required, got %d", ErrInvalidGradient, len(g.points))
	}
	return g, nil
}

// AddPoint inserts a point, keeping the points sorted by position.
func (g *Gradient) AddPoint(position float64, c color.RGBA) error {
	i := sort.Search(len(g.points), func(i int) bool { return g.points[i].Position >= position })
	if i < len(g.points) && g.points[i].Position == position {
		return fmt.Errorf("%w: duplicate position %g", ErrInvalidGradient, position)
	}
	g.points = append(g.points, GradientPoint{})
	copy(g.points[i+1:], g.points[i:])
	g.points[i] = GradientPoint{Position: position, Color: c}
	return nil
}

// Points returns a copy of the sorted gradient points.
func (g *Gradient) Points() []GradientPoint {
	out := make([]GradientPoint, len(g.points))
	copy(out, g.points)
	return out
}

// Color returns the colour for value v. Values beyond the end points take
// the end point colours.
func (g *Gradient) Color(v float64) color.RGBA {
	last := len(g.points) - 1
	indexPos := 0
	for ; indexPos <= last; indexPos++ {
		if v < g.points[indexPos].Position {
			break
		}
	}
	index0 := clampInt(indexPos-1, 0, last)
	index1 := clampInt(indexPos, 0, last)
	if index0 == index1 {
		return g.points[index1].Color
	}
	p0, p1 := g.points[index0], g.points[index1]
	alpha := (v - p0.Position) / (p1.Position - p0.Position)
	return lerpColor(p0.Color, p1.Color, alpha)
}

// Grayscale returns a gradient from black at -1 to white at 1.
func Grayscale() *Gradient {
	return &Gradient{points: []GradientPoint{
		{-1.0, color.RGBA{0, 0, 0, 255}},
		{1.0, color.RGBA{255, 255, 255, 255}},
	}}
}

// Terrain returns a gradient running from deep water through beaches,
// grass and rock up to snow.
func Terrain() *Gradient {
	return &Gradient{points: []GradientPoint{
		{-1.00, color.RGBA{0, 0, 128, 255}},
		{-0.20, color.RGBA{32, 64, 128, 255}},
		{-0.04, color.RGBA{64, 96, 192, 255}},
		{-0.02, color.RGBA{192, 192, 128, 255}},
		{0.00, color.RGBA{0, 192, 0, 255}},
		{0.25, color.RGBA{192, 192, 0, 255}},
		{0.50, color.RGBA{160, 96, 64, 255}},
		{0.75, color.RGBA{128, 255, 255, 255}},
		{1.00, color.RGBA{255, 255, 255, 255}},
	}}
}

// Preset returns a named built-in gradient.
func Preset(name string) (*Gradient, error) {
	switch strings.ToLower(name) {
	case "", "grayscale", "greyscale":
		return Grayscale(), nil
	case "terrain":
		return Terrain(), nil
	default:
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidGradient, name)
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: expected #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func lerpColor(c0, c1 color.RGBA, alpha float64) color.RGBA {
	ch := func(a, b uint8) uint8 {
		return uint8(float64(b)*alpha + float64(a)*(1.0-alpha))
	}
	return color.RGBA{ch(c0.R, c1.R), ch(c0.G, c1.G), ch(c0.B, c1.B), ch(c0.A, c1.A)}
}

func clampInt(v, lower, upper int) int {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

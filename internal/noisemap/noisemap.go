package noisemap

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParam is returned for non-positive map dimensions and inverted
// builder bounds.
var ErrInvalidParam = errors.New("invalid parameter")

// MaxValues is the largest number of values a map may hold (2 GiB of
// float64 storage).
const MaxValues = 1 << 28

// CheckSize reports whether a width x height map can be allocated.
func CheckSize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("noise map size %dx%d: %w", width, height, ErrInvalidParam)
	}
	if width > MaxValues/height {
		return fmt.Errorf("noise map size %dx%d exceeds %d values: %w", width, height, MaxValues, ErrInvalidParam)
	}
	return nil
}

// NoiseMap is a width x height grid of float64 values stored row-major.
// Positions outside the grid read as the border value.
type NoiseMap struct {
	width, height int
	values        []float64
	borderValue   float64
}

// New allocates a map of the given size with every value set to 0.
func New(width, height int) (*NoiseMap, error) {
	m := &NoiseMap{}
	if err := m.SetSize(width, height); err != nil {
		return nil, err
	}
	return m, nil
}

// SetSize resizes the map. All stored values are reset to 0.
func (m *NoiseMap) SetSize(width, height int) error {
	if err := CheckSize(width, height); err != nil {
		return err
	}
	m.width = width
	m.height = height
	m.values = make([]float64, width*height)
	return nil
}

// Width returns the number of columns.
func (m *NoiseMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *NoiseMap) Height() int { return m.height }

// BorderValue returns the value reported for positions outside the map.
func (m *NoiseMap) BorderValue() float64 { return m.borderValue }

// SetBorderValue sets the value reported for positions outside the map.
func (m *NoiseMap) SetBorderValue(v float64) { m.borderValue = v }

// Value returns the value at (x, y), or the border value when the position
// is outside the map.
func (m *NoiseMap) Value(x, y int) float64 {
	if !m.contains(x, y) {
		return m.borderValue
	}
	return m.values[y*m.width+x]
}

// SetValue stores v at (x, y). Positions outside the map are ignored.
func (m *NoiseMap) SetValue(x, y int, v float64) {
	if !m.contains(x, y) {
		return
	}
	m.values[y*m.width+x] = v
}

// Row returns row y as a slice aliasing the map's storage, or nil when y is
// out of range. Builders write through it.
func (m *NoiseMap) Row(y int) []float64 {
	if y < 0 || y >= m.height {
		return nil
	}
	return m.values[y*m.width : (y+1)*m.width]
}

// Values returns the map's storage in row-major order.
func (m *NoiseMap) Values() []float64 { return m.values }

// Clear sets every value in the map to v.
func (m *NoiseMap) Clear(v float64) {
	for i := range m.values {
		m.values[i] = v
	}
}

// MinMax returns the smallest and largest values stored in the map.
func (m *NoiseMap) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range m.values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func (m *NoiseMap) contains(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

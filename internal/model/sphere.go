package model

import (
	"math"

	"github.com/specialistvlad/noisegrid/internal/module"
)

// Sphere is the surface of a sphere with radius 1 centred on the origin.
// It is the model to use for seamless spherical textures and whole-planet
// height maps.
type Sphere struct {
	base
}

// NewSphere returns a sphere sampling m. A nil m samples a constant zero.
func NewSphere(m module.Module) *Sphere {
	return &Sphere{base: newBase(m)}
}

// Value returns the module's output at the given latitude and longitude,
// both in degrees. Negative latitudes lie in the southern hemisphere,
// negative longitudes in the western hemisphere.
func (s *Sphere) Value(lat, lon float64) float64 {
	x, y, z := LatLonToXYZ(lat, lon)
	return s.source.Value(x, y, z)
}

// LatLonToXYZ converts a latitude and longitude in degrees to a point on the
// unit sphere.
func LatLonToXYZ(lat, lon float64) (x, y, z float64) {
	r := math.Cos(radians(lat))
	x = r * math.Cos(radians(lon))
	y = math.Sin(radians(lat))
	z = r * math.Sin(radians(lon))
	return x, y, z
}

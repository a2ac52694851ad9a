package module

import (
	"math"

	"github.com/specialistvlad/noisegrid/internal/noise"
)

// Const outputs the same value everywhere.
type Const struct {
	value float64
}

// NewConst returns a module that always outputs value.
func NewConst(value float64) *Const {
	return &Const{value: value}
}

func (c *Const) Value(_, _, _ float64) float64 { return c.value }

// Checkerboard outputs a 3-D grid of unit cubes alternating between -1 and 1.
type Checkerboard struct{}

// NewCheckerboard returns a checkerboard generator.
func NewCheckerboard() *Checkerboard { return &Checkerboard{} }

func (Checkerboard) Value(x, y, z float64) float64 {
	ix := int64(math.Floor(noise.MakeInt32Range(x)))
	iy := int64(math.Floor(noise.MakeInt32Range(y)))
	iz := int64(math.Floor(noise.MakeInt32Range(z)))
	if (ix&1)^(iy&1)^(iz&1) != 0 {
		return -1.0
	}
	return 1.0
}

// Cylinders outputs concentric cylinders around the y axis. Values are 1 on
// each cylinder surface and -1 halfway between neighbouring surfaces.
type Cylinders struct {
	frequency float64
}

// NewCylinders returns a cylinders generator. frequency controls how many
// cylinder surfaces fit in a unit length.
func NewCylinders(frequency float64) (*Cylinders, error) {
	if frequency <= 0 {
		return nil, invalidParam("cylinders", "frequency must be positive, got %g", frequency)
	}
	return &Cylinders{frequency: frequency}, nil
}

func (c *Cylinders) Value(x, _, z float64) float64 {
	x *= c.frequency
	z *= c.frequency
	return nearestShell(math.Sqrt(x*x + z*z))
}

// Spheres outputs concentric spheres around the origin.
type Spheres struct {
	frequency float64
}

// NewSpheres returns a spheres generator.
func NewSpheres(frequency float64) (*Spheres, error) {
	if frequency <= 0 {
		return nil, invalidParam("spheres", "frequency must be positive, got %g", frequency)
	}
	return &Spheres{frequency: frequency}, nil
}

func (s *Spheres) Value(x, y, z float64) float64 {
	x *= s.frequency
	y *= s.frequency
	z *= s.frequency
	return nearestShell(math.Sqrt(x*x + y*y + z*z))
}

// nearestShell maps a distance from the centre to [-1, 1] based on the
// distance to the closest integer shell.
func nearestShell(dist float64) float64 {
	fromSmaller := dist - math.Floor(dist)
	fromLarger := 1.0 - fromSmaller
	nearest := math.Min(fromSmaller, fromLarger)
	return 1.0 - nearest*4.0
}

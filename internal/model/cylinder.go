package model

import (
	"math"

	"github.com/specialistvlad/noisegrid/internal/module"
)

// Cylinder is the surface of a cylinder with radius 1 whose axis is the y
// axis.
type Cylinder struct {
	base
}

// NewCylinder returns a cylinder sampling m.
func NewCylinder(m module.Module) *Cylinder {
	return &Cylinder{base: newBase(m)}
}

// Value returns the module's output at the given angle around the axis, in
// degrees, and height along it.
func (c *Cylinder) Value(angle, height float64) float64 {
	x := math.Cos(radians(angle))
	z := math.Sin(radians(angle))
	return c.source.Value(x, height, z)
}

package model

import "github.com/specialistvlad/noisegrid/internal/module"

// Plane is the infinite x-z plane at y = 0.
type Plane struct {
	base
}

// NewPlane returns a plane sampling m.
func NewPlane(m module.Module) *Plane {
	return &Plane{base: newBase(m)}
}

// Value returns the module's output at (x, 0, z).
func (p *Plane) Value(x, z float64) float64 {
	return p.source.Value(x, 0, z)
}

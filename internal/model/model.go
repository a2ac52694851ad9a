package model

import (
	"math"

	"github.com/specialistvlad/noisegrid/internal/module"
)

// base holds the module shared by every model type.
type base struct {
	source module.Module
}

func newBase(m module.Module) base {
	if m == nil {
		m = module.NewConst(0)
	}
	return base{source: m}
}

// Module returns the module used to generate output values.
func (b *base) Module() module.Module { return b.source }

// SetModule replaces the module used to generate output values. A nil
// module is replaced by a constant zero module.
func (b *base) SetModule(m module.Module) {
	if m == nil {
		m = module.NewConst(0)
	}
	b.source = m
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

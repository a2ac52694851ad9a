package module

import "math"

// Combiner applies a binary operation to the outputs of two sources.
type Combiner struct {
	kind string
	a, b Module
	op   func(a, b float64) float64
}

func newCombiner(kind string, a, b Module, op func(a, b float64) float64) (*Combiner, error) {
	if err := requireSources(kind, a, b); err != nil {
		return nil, err
	}
	return &Combiner{kind: kind, a: a, b: b, op: op}, nil
}

// Kind returns the operation name, e.g. "add".
func (c *Combiner) Kind() string { return c.kind }

func (c *Combiner) Value(x, y, z float64) float64 {
	return c.op(c.a.Value(x, y, z), c.b.Value(x, y, z))
}

// NewAdd outputs a + b.
func NewAdd(a, b Module) (*Combiner, error) {
	return newCombiner("add", a, b, func(a, b float64) float64 { return a + b })
}

// NewMultiply outputs a * b.
func NewMultiply(a, b Module) (*Combiner, error) {
	return newCombiner("multiply", a, b, func(a, b float64) float64 { return a * b })
}

// NewMax outputs the larger of a and b.
func NewMax(a, b Module) (*Combiner, error) {
	return newCombiner("max", a, b, math.Max)
}

// NewMin outputs the smaller of a and b.
func NewMin(a, b Module) (*Combiner, error) {
	return newCombiner("min", a, b, math.Min)
}

// NewPower outputs a raised to b.
func NewPower(a, b Module) (*Combiner, error) {
	return newCombiner("power", a, b, math.Pow)
}

package noise

import (
	"fmt"
	"strings"
)

// Quality selects the interpolation curve used by coherent noise.
type Quality int

const (
	// Fast interpolates linearly. Cheapest, with visible creases at lattice
	// boundaries.
	Fast Quality = iota
	// Standard uses a cubic s-curve.
	Standard
	// Best uses a quintic s-curve, which also smooths the second derivative.
	Best
)

// String returns the configuration name of the quality level.
func (q Quality) String() string {
	switch q {
	case Fast:
		return "fast"
	case Standard:
		return "standard"
	case Best:
		return "best"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// ParseQuality converts "fast", "standard" or "best" into a Quality.
// Matching is case-insensitive.
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast":
		return Fast, nil
	case "standard", "std":
		return Standard, nil
	case "best":
		return Best, nil
	default:
		return Standard, fmt.Errorf("unknown noise quality %q: must be 'fast', 'standard' or 'best'", s)
	}
}

// curve applies the quality's interpolation curve to a.
func (q Quality) curve(a float64) float64 {
	switch q {
	case Fast:
		return a
	case Best:
		return SCurve5(a)
	default:
		return SCurve3(a)
	}
}

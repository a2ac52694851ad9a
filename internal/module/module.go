package module

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParam is returned when a parameter is outside its valid range.
	ErrInvalidParam = errors.New("invalid parameter")
	// ErrMissingSource is returned when a required source module is nil.
	ErrMissingSource = errors.New("missing source module")
)

// Module is a node in a noise graph.
type Module interface {
	// Value returns the module's output at (x, y, z).
	Value(x, y, z float64) float64
}

// requireSources returns an error naming the first nil source.
func requireSources(kind string, sources ...Module) error {
	for i, src := range sources {
		if src == nil {
			return fmt.Errorf("%s: source %d: %w", kind, i, ErrMissingSource)
		}
	}
	return nil
}

// invalidParam builds an ErrInvalidParam error for the given module kind.
func invalidParam(kind, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", kind, fmt.Sprintf(format, args...), ErrInvalidParam)
}

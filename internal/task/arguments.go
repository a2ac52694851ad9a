package task

import (
	"github.com/specialistvlad/noisegrid/internal/module"
)

// Model names accepted by the `model` argument.
const (
	ModelPlane    = "plane"
	ModelSphere   = "sphere"
	ModelCylinder = "cylinder"
)

// Arguments holds the decoded arguments of a render block.
type Arguments struct {
	Source module.Module `noise:"source,required"`
	Model  string        `noise:"model"`
	Width  int           `noise:"width"`
	Height int           `noise:"height"`
	// Bounds is [lowerX, upperX, lowerZ, upperZ] for a plane,
	// [south, north, west, east] for a sphere and
	// [lowerAngle, upperAngle, lowerHeight, upperHeight] for a cylinder.
	Bounds      []float64    `noise:"bounds"`
	Seamless    bool         `noise:"seamless"`
	Output      string       `noise:"output,required"`
	Format      string       `noise:"format"`
	Gradient    string       `noise:"gradient"`
	ColorPoints []ColorPoint `noise:"color_points"`
	Wrap        bool         `noise:"wrap"`
	BorderValue float64      `noise:"border_value"`
}

// ColorPoint is one entry of a custom gradient.
type ColorPoint struct {
	Position float64 `cty:"position"`
	Color    string  `cty:"color"`
}

// LightArguments holds the decoded arguments of a light block. A light block
// that is present enables lighting unless it sets enabled = false.
type LightArguments struct {
	Enabled    bool    `noise:"enabled"`
	Azimuth    float64 `noise:"azimuth"`
	Elevation  float64 `noise:"elevation"`
	Contrast   float64 `noise:"contrast"`
	Brightness float64 `noise:"brightness"`
	Intensity  float64 `noise:"intensity"`
	Color      string  `noise:"color"`
}

// DefaultArguments returns the values a render block starts from.
func DefaultArguments() Arguments {
	return Arguments{
		Model:    ModelPlane,
		Width:    256,
		Height:   256,
		Gradient: "grayscale",
	}
}

// DefaultBounds returns the bounds used when a render block gives none.
func DefaultBounds(model string) []float64 {
	switch model {
	case ModelSphere:
		return []float64{-90, 90, -180, 180}
	case ModelCylinder:
		return []float64{-180, 180, -1, 1}
	default:
		return []float64{-1, 1, -1, 1}
	}
}

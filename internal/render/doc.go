// Package render turns noise maps into images by mapping values through a
// colour gradient, optionally shading the result with a directional light.
package render

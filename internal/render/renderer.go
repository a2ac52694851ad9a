package render

import (
	"image"
	"image/color"
	"math"

	"github.com/specialistvlad/noisegrid/internal/noisemap"
)

// Light describes the directional light used to shade a rendered map.
type Light struct {
	Enabled bool
	// Azimuth is the compass direction the light comes from, in degrees.
	Azimuth float64
	// Elevation is the angle above the horizon, in degrees.
	Elevation  float64
	Contrast   float64
	Brightness float64
	Intensity  float64
	Color      color.RGBA
}

// DefaultLight returns a disabled white light from the north-east at 45°.
func DefaultLight() Light {
	return Light{
		Azimuth:    45.0,
		Elevation:  45.0,
		Contrast:   1.0,
		Brightness: 1.0,
		Intensity:  1.0,
		Color:      color.RGBA{255, 255, 255, 255},
	}
}

// ImageRenderer maps noise values to colours.
type ImageRenderer struct {
	Gradient *Gradient
	Light    Light
	// Wrap makes the lighting treat opposite edges as neighbours, for maps
	// built seamless.
	Wrap bool
}

// NewImageRenderer returns a renderer with a grayscale gradient and no
// lighting.
func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{Gradient: Grayscale(), Light: DefaultLight()}
}

// Render converts src into an RGBA image with the same dimensions.
func (r *ImageRenderer) Render(src *noisemap.NoiseMap) *image.RGBA {
	w, h := src.Width(), src.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	gradient := r.Gradient
	if gradient == nil {
		gradient = Grayscale()
	}

	var lc lightCoefficients
	if r.Light.Enabled {
		lc = newLightCoefficients(r.Light)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := src.Value(x, y)
			c := gradient.Color(center)
			if r.Light.Enabled {
				left, right := r.neighbour(x, w, -1), r.neighbour(x, w, 1)
				down, up := r.neighbour(y, h, -1), r.neighbour(y, h, 1)
				intensity := lc.intensity(
					src.Value(left, y), src.Value(right, y),
					src.Value(x, down), src.Value(x, up),
				) * r.Light.Brightness
				c = shade(c, r.Light, intensity)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// neighbour returns the index next to i in direction dir, wrapping around or
// sticking to the edge.
func (r *ImageRenderer) neighbour(i, size, dir int) int {
	n := i + dir
	if n >= 0 && n < size {
		return n
	}
	if r.Wrap {
		return (n + size) % size
	}
	return i
}

type lightCoefficients struct {
	ix, iy, io float64
}

func newLightCoefficients(l Light) lightCoefficients {
	const iMax = 1.0
	rad := math.Pi / 180.0
	cosAz, sinAz := math.Cos(l.Azimuth*rad), math.Sin(l.Azimuth*rad)
	cosEl, sinEl := math.Cos(l.Elevation*rad), math.Sin(l.Elevation*rad)

	io := iMax * math.Sqrt2 * sinEl / 2.0
	return lightCoefficients{
		io: io,
		ix: (iMax - io) * l.Contrast * math.Sqrt2 * cosEl * cosAz,
		iy: (iMax - io) * l.Contrast * math.Sqrt2 * cosEl * sinAz,
	}
}

// intensity computes the light reaching a point from the slope implied by
// its neighbours. The result is never negative.
func (lc lightCoefficients) intensity(left, right, down, up float64) float64 {
	i := lc.ix*(left-right) + lc.iy*(down-up) + lc.io
	if i < 0 {
		return 0
	}
	return i
}

func shade(c color.RGBA, l Light, intensity float64) color.RGBA {
	ch := func(v, lightCh uint8) uint8 {
		f := float64(v) / 255.0 * intensity * l.Intensity * float64(lightCh) / 255.0
		return uint8(math.Round(math.Min(math.Max(f, 0), 1) * 255.0))
	}
	return color.RGBA{ch(c.R, l.Color.R), ch(c.G, l.Color.G), ch(c.B, l.Color.B), c.A}
}

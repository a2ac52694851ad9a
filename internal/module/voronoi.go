package module

import (
	"math"

	"github.com/specialistvlad/noisegrid/internal/noise"
)

// VoronoiParams configures a Voronoi generator.
type VoronoiParams struct {
	Displacement   float64
	Frequency      float64
	Seed           int32
	EnableDistance bool
}

// DefaultVoronoiParams returns the default Voronoi parameters.
func DefaultVoronoiParams() VoronoiParams {
	return VoronoiParams{Displacement: 1.0, Frequency: 1.0}
}

// Voronoi divides space into cells around pseudo-random seed points. Every
// point in a cell outputs the same value unless EnableDistance adds the
// distance to the seed point.
type Voronoi struct {
	p VoronoiParams
}

// NewVoronoi validates p and returns a Voronoi generator.
func NewVoronoi(p VoronoiParams) (*Voronoi, error) {
	if p.Frequency <= 0 {
		return nil, invalidParam("voronoi", "frequency must be positive, got %g", p.Frequency)
	}
	return &Voronoi{p: p}, nil
}

// Params returns the generator's parameters.
func (v *Voronoi) Params() VoronoiParams { return v.p }

func (v *Voronoi) Value(x, y, z float64) float64 {
	// Folding keeps the lattice cube and its neighbours inside int32.
	x = noise.MakeInt32Range(x * v.p.Frequency)
	y = noise.MakeInt32Range(y * v.p.Frequency)
	z = noise.MakeInt32Range(z * v.p.Frequency)

	xInt := int64(lattice(x))
	yInt := int64(lattice(y))
	zInt := int64(lattice(z))

	minDist := float64(math.MaxInt32)
	var xCandidate, yCandidate, zCandidate float64

	// The seed point closest to (x, y, z) lies in this cube or one of its
	// neighbours two cells out.
	for zCur := zInt - 2; zCur <= zInt+2; zCur++ {
		for yCur := yInt - 2; yCur <= yInt+2; yCur++ {
			for xCur := xInt - 2; xCur <= xInt+2; xCur++ {
				ix, iy, iz := int32(xCur), int32(yCur), int32(zCur)
				xPos := float64(xCur) + noise.ValueNoise3D(ix, iy, iz, v.p.Seed)
				yPos := float64(yCur) + noise.ValueNoise3D(ix, iy, iz, v.p.Seed+1)
				zPos := float64(zCur) + noise.ValueNoise3D(ix, iy, iz, v.p.Seed+2)
				xDist := xPos - x
				yDist := yPos - y
				zDist := zPos - z
				dist := xDist*xDist + yDist*yDist + zDist*zDist

				if dist < minDist {
					minDist = dist
					xCandidate = xPos
					yCandidate = yPos
					zCandidate = zPos
				}
			}
		}
	}

	value := 0.0
	if v.p.EnableDistance {
		xDist := xCandidate - x
		yDist := yCandidate - y
		zDist := zCandidate - z
		value = math.Sqrt(xDist*xDist+yDist*yDist+zDist*zDist)*math.Sqrt(3) - 1.0
	}

	return value + v.p.Displacement*noise.ValueNoise3D(
		int32(math.Floor(xCandidate)),
		int32(math.Floor(yCandidate)),
		int32(math.Floor(zCandidate)),
		0)
}

func lattice(v float64) int32 {
	if v > 0.0 {
		return int32(v)
	}
	return int32(v) - 1
}

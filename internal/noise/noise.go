package noise

import "math"

// Hash multipliers for the lattice coordinates and seed. They must stay
// fixed: every generated texture depends on them.
const (
	xNoiseGen     int32 = 1619
	yNoiseGen     int32 = 31337
	zNoiseGen     int32 = 6971
	seedNoiseGen  int32 = 1013
	shiftNoiseGen       = 8
)

// int32Bound is 2^30. Coordinates beyond it are folded back by MakeInt32Range.
const int32Bound = 1073741824.0

// GradientCoherentNoise3D returns gradient noise at (x, y, z), roughly in
// [-1, 1]. The result is 0 on every integer lattice point.
func GradientCoherentNoise3D(x, y, z float64, seed int32, q Quality) float64 {
	x0 := lattice(x)
	x1 := x0 + 1
	y0 := lattice(y)
	y1 := y0 + 1
	z0 := lattice(z)
	z1 := z0 + 1

	xs := q.curve(x - float64(x0))
	ys := q.curve(y - float64(y0))
	zs := q.curve(z - float64(z0))

	n0 := GradientNoise3D(x, y, z, x0, y0, z0, seed)
	n1 := GradientNoise3D(x, y, z, x1, y0, z0, seed)
	ix0 := LinearInterp(n0, n1, xs)
	n0 = GradientNoise3D(x, y, z, x0, y1, z0, seed)
	n1 = GradientNoise3D(x, y, z, x1, y1, z0, seed)
	ix1 := LinearInterp(n0, n1, xs)
	iy0 := LinearInterp(ix0, ix1, ys)

	n0 = GradientNoise3D(x, y, z, x0, y0, z1, seed)
	n1 = GradientNoise3D(x, y, z, x1, y0, z1, seed)
	ix0 = LinearInterp(n0, n1, xs)
	n0 = GradientNoise3D(x, y, z, x0, y1, z1, seed)
	n1 = GradientNoise3D(x, y, z, x1, y1, z1, seed)
	ix1 = LinearInterp(n0, n1, xs)
	iy1 := LinearInterp(ix0, ix1, ys)

	return LinearInterp(iy0, iy1, zs)
}

// GradientNoise3D returns the contribution of the lattice point (ix, iy, iz)
// to the point (fx, fy, fz). The lattice point's gradient vector is chosen
// by hashing its coordinates with the seed.
func GradientNoise3D(fx, fy, fz float64, ix, iy, iz, seed int32) float64 {
	vectorIndex := xNoiseGen*ix + yNoiseGen*iy + zNoiseGen*iz + seedNoiseGen*seed
	vectorIndex ^= vectorIndex >> shiftNoiseGen
	vectorIndex &= 0xff

	slot := int(vectorIndex) << 2
	xvGradient := randomVectors[slot]
	yvGradient := randomVectors[slot+1]
	zvGradient := randomVectors[slot+2]

	xvPoint := fx - float64(ix)
	yvPoint := fy - float64(iy)
	zvPoint := fz - float64(iz)

	return (xvGradient*xvPoint + yvGradient*yvPoint + zvGradient*zvPoint) * 2.12
}

// IntValueNoise3D returns an integer noise value in [0, 2^31-1] for the
// lattice point (x, y, z).
func IntValueNoise3D(x, y, z, seed int32) int32 {
	n := (xNoiseGen*x + yNoiseGen*y + zNoiseGen*z + seedNoiseGen*seed) & 0x7fffffff
	n = (n >> 13) ^ n
	return (n*(n*n*60493+19990303) + 1376312589) & 0x7fffffff
}

// ValueNoise3D returns IntValueNoise3D scaled into [-1, 1].
func ValueNoise3D(x, y, z, seed int32) float64 {
	return 1.0 - float64(IntValueNoise3D(x, y, z, seed))/int32Bound
}

// MakeInt32Range folds n into (-2^30, 2^30) so that it can be converted to a
// 32-bit lattice coordinate without overflow. Values already inside the
// range are returned unchanged.
func MakeInt32Range(n float64) float64 {
	switch {
	case n >= int32Bound:
		return 2.0*math.Mod(n, int32Bound) - int32Bound
	case n <= -int32Bound:
		return 2.0*math.Mod(n, int32Bound) + int32Bound
	default:
		return n
	}
}

// lattice returns the integer lattice coordinate at or below v.
func lattice(v float64) int32 {
	if v > 0.0 {
		return int32(v)
	}
	return int32(v) - 1
}

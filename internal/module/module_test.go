package module

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePoints walks a fixed set of non-lattice points.
func samplePoints(n int) [][3]float64 {
	pts := make([][3]float64, n)
	for i := range pts {
		f := float64(i)
		pts[i] = [3]float64{f*0.137 - 3.1, f*0.071 + 0.3, f*-0.213 + 1.7}
	}
	return pts
}

func TestConst(t *testing.T) {
	c := NewConst(0.75)
	assert.Equal(t, 0.75, c.Value(1, 2, 3))
	assert.Equal(t, 0.75, c.Value(-100, 0, 1e9))
}

func TestCheckerboard(t *testing.T) {
	c := NewCheckerboard()
	assert.Equal(t, 1.0, c.Value(0.5, 0.5, 0.5))
	assert.Equal(t, -1.0, c.Value(1.5, 0.5, 0.5))
	assert.Equal(t, 1.0, c.Value(1.5, 1.5, 0.5))
	assert.Equal(t, -1.0, c.Value(-0.5, 0.5, 0.5))
}

func TestCylindersAndSpheres(t *testing.T) {
	cyl, err := NewCylinders(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cyl.Value(1, 42, 0), 1e-12, "on the unit cylinder surface")
	assert.InDelta(t, -1.0, cyl.Value(1.5, 0, 0), 1e-12, "halfway between surfaces")

	sph, err := NewSpheres(2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sph.Value(0, 0.5, 0), 1e-12)

	_, err = NewSpheres(0)
	assert.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewCylinders(-1)
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestFractalParamsValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(p *FractalParams)
	}{
		{"zero octaves", func(p *FractalParams) { p.Octaves = 0 }},
		{"too many octaves", func(p *FractalParams) { p.Octaves = MaxOctaves + 1 }},
		{"zero frequency", func(p *FractalParams) { p.Frequency = 0 }},
		{"negative lacunarity", func(p *FractalParams) { p.Lacunarity = -2 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultFractalParams()
			tc.mutate(&p)
			_, err := NewPerlin(p)
			assert.ErrorIs(t, err, ErrInvalidParam)
			_, err = NewBillow(p)
			assert.ErrorIs(t, err, ErrInvalidParam)
			_, err = NewRidgedMulti(p)
			assert.ErrorIs(t, err, ErrInvalidParam)
		})
	}
}

func TestPerlin(t *testing.T) {
	p := DefaultFractalParams()
	p.Seed = 99
	perlin, err := NewPerlin(p)
	require.NoError(t, err)
	assert.Equal(t, p, perlin.Params())

	// The sum of a geometric series of octaves bounds the output.
	bound := 2.12 * math.Sqrt(3) * 2.0
	distinct := map[float64]struct{}{}
	for _, pt := range samplePoints(500) {
		v := perlin.Value(pt[0], pt[1], pt[2])
		require.Less(t, math.Abs(v), bound)
		require.Equal(t, v, perlin.Value(pt[0], pt[1], pt[2]), "perlin must be deterministic")
		distinct[v] = struct{}{}
	}
	assert.Greater(t, len(distinct), 400, "perlin output should vary across space")

	p.Seed = 100
	other, err := NewPerlin(p)
	require.NoError(t, err)
	assert.NotEqual(t, perlin.Value(0.3, 0.7, 0.1), other.Value(0.3, 0.7, 0.1))
}

func TestBillowIsShiftedFoldedNoise(t *testing.T) {
	p := DefaultFractalParams()
	p.Octaves = 1
	billow, err := NewBillow(p)
	require.NoError(t, err)
	perlin, err := NewPerlin(p)
	require.NoError(t, err)

	for _, pt := range samplePoints(50) {
		want := 2.0*math.Abs(perlin.Value(pt[0], pt[1], pt[2])) - 1.0 + 0.5
		assert.InDelta(t, want, billow.Value(pt[0], pt[1], pt[2]), 1e-12)
	}
}

func TestRidgedMulti(t *testing.T) {
	ridged, err := NewRidgedMulti(DefaultFractalParams())
	require.NoError(t, err)
	assert.Equal(t, 1.0, ridged.spectralWeights[0])
	assert.Equal(t, 0.5, ridged.spectralWeights[1])

	for _, pt := range samplePoints(300) {
		v := ridged.Value(pt[0], pt[1], pt[2])
		require.False(t, math.IsNaN(v))
		require.GreaterOrEqual(t, v, -1.0)
	}
}

func TestVoronoi(t *testing.T) {
	v, err := NewVoronoi(DefaultVoronoiParams())
	require.NoError(t, err)

	// Points very close together almost always fall in the same cell.
	a := v.Value(0.2, 0.2, 0.2)
	b := v.Value(0.2000001, 0.2, 0.2)
	assert.Equal(t, a, b)

	for _, pt := range samplePoints(100) {
		val := v.Value(pt[0], pt[1], pt[2])
		require.GreaterOrEqual(t, val, -1.0)
		require.LessOrEqual(t, val, 1.0)
	}

	params := DefaultVoronoiParams()
	params.EnableDistance = true
	params.Displacement = 0
	withDist, err := NewVoronoi(params)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, withDist.Value(0.2, 0.2, 0.2), -1.0)

	params.Frequency = 0
	_, err = NewVoronoi(params)
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestVoronoi_LargeCoordinates(t *testing.T) {
	v, err := NewVoronoi(DefaultVoronoiParams())
	require.NoError(t, err)

	points := [][3]float64{
		{0.5, 0.5, math.MaxInt32 - 2.5},
		{math.MaxInt32 - 1.5, 0.5, 0.5},
		{0.5, math.MinInt32 + 0.5, 0.5},
		{1e12, -1e12, 3e15},
	}
	done := make(chan []float64, 1)
	go func() {
		vals := make([]float64, 0, len(points))
		for _, pt := range points {
			vals = append(vals, v.Value(pt[0], pt[1], pt[2]))
		}
		done <- vals
	}()

	select {
	case vals := <-done:
		for _, val := range vals {
			require.False(t, math.IsNaN(val))
			require.GreaterOrEqual(t, val, -1.0)
			require.LessOrEqual(t, val, 1.0)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Voronoi.Value did not return for coordinates near the int32 limits")
	}
}

func TestModifiers(t *testing.T) {
	src := NewConst(-0.5)

	abs, err := NewAbs(src)
	require.NoError(t, err)
	assert.Equal(t, 0.5, abs.Value(0, 0, 0))

	inv, err := NewInvert(src)
	require.NoError(t, err)
	assert.Equal(t, 0.5, inv.Value(0, 0, 0))

	sb, err := NewScaleBias(src, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sb.Value(0, 0, 0))

	clamp, err := NewClamp(NewConst(3), -1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, clamp.Value(0, 0, 0))
	clamp, err = NewClamp(NewConst(-3), -1, 1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, clamp.Value(0, 0, 0))
	_, err = NewClamp(src, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidParam)

	exp, err := NewExponent(NewConst(0), 2)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, exp.Value(0, 0, 0), 1e-12) // ((0+1)/2)^2*2-1
}

func TestMissingSources(t *testing.T) {
	c := NewConst(1)
	_, err := NewAbs(nil)
	assert.ErrorIs(t, err, ErrMissingSource)
	_, err = NewAdd(c, nil)
	assert.ErrorIs(t, err, ErrMissingSource)
	_, err = NewBlend(c, c, nil)
	assert.ErrorIs(t, err, ErrMissingSource)
	_, err = NewDisplace(c, c, nil, c)
	assert.ErrorContains(t, err, "source 2")
	_, err = NewTurbulence(nil, DefaultTurbulenceParams())
	assert.ErrorIs(t, err, ErrMissingSource)
}

func TestCombiners(t *testing.T) {
	a, b := NewConst(2), NewConst(3)
	testCases := []struct {
		name string
		ctor func(a, b Module) (*Combiner, error)
		want float64
	}{
		{"add", NewAdd, 5},
		{"multiply", NewMultiply, 6},
		{"max", NewMax, 3},
		{"min", NewMin, 2},
		{"power", NewPower, 8},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tc.ctor(a, b)
			require.NoError(t, err)
			assert.Equal(t, tc.name, m.Kind())
			assert.Equal(t, tc.want, m.Value(0, 0, 0))
		})
	}
}

func TestCurve(t *testing.T) {
	points := []CurvePoint{{1, 1}, {-1, -1}, {0, 0}, {0.5, 0.5}, {-0.5, -0.5}}
	curve, err := NewCurve(NewConst(0.25), points)
	require.NoError(t, err)
	assert.Equal(t, -1.0, curve.Points()[0].Input, "points must be sorted")
	// A straight-line curve reproduces its input.
	assert.InDelta(t, 0.25, curve.Value(0, 0, 0), 1e-12)

	above, err := NewCurve(NewConst(5), points)
	require.NoError(t, err)
	assert.Equal(t, 1.0, above.Value(0, 0, 0))

	_, err = NewCurve(NewConst(0), points[:3])
	assert.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewCurve(nil, points)
	assert.ErrorIs(t, err, ErrMissingSource)
	_, err = NewCurve(NewConst(0), []CurvePoint{{0, 0}, {0, 1}, {1, 1}, {2, 2}})
	assert.ErrorContains(t, err, "duplicate")
}

func TestTerrace(t *testing.T) {
	points, err := MakeTerracePoints(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, 1}, points)

	terrace, err := NewTerrace(NewConst(0.5), points, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, terrace.Value(0, 0, 0), 1e-12)

	inverted, err := NewTerrace(NewConst(0.5), points, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, inverted.Value(0, 0, 0), 1e-12)

	below, err := NewTerrace(NewConst(-3), points, false)
	require.NoError(t, err)
	assert.Equal(t, -1.0, below.Value(0, 0, 0))

	_, err = MakeTerracePoints(1)
	assert.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewTerrace(NewConst(0), []float64{0.5, 0.5}, false)
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestBlend(t *testing.T) {
	a, b := NewConst(-1), NewConst(1)
	for _, tc := range []struct{ ctrl, want float64 }{{-1, -1}, {0, 0}, {1, 1}} {
		blend, err := NewBlend(a, b, NewConst(tc.ctrl))
		require.NoError(t, err)
		assert.InDelta(t, tc.want, blend.Value(0, 0, 0), 1e-12)
	}
}

func TestSelect(t *testing.T) {
	a, b := NewConst(10), NewConst(20)

	t.Run("hard edges", func(t *testing.T) {
		p := SelectParams{Lower: 0, Upper: 0.5}
		for _, tc := range []struct{ ctrl, want float64 }{{-0.1, 10}, {0, 20}, {0.25, 20}, {0.5, 20}, {0.6, 10}} {
			sel, err := NewSelect(a, b, NewConst(tc.ctrl), p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sel.Value(0, 0, 0), "control %g", tc.ctrl)
		}
	})

	t.Run("falloff blends at the bound", func(t *testing.T) {
		p := SelectParams{Lower: 0, Upper: 1, EdgeFalloff: 0.1}
		sel, err := NewSelect(a, b, NewConst(0), p)
		require.NoError(t, err)
		assert.InDelta(t, 15.0, sel.Value(0, 0, 0), 1e-9)

		sel, err = NewSelect(a, b, NewConst(1), p)
		require.NoError(t, err)
		assert.InDelta(t, 15.0, sel.Value(0, 0, 0), 1e-9)

		sel, err = NewSelect(a, b, NewConst(0.5), p)
		require.NoError(t, err)
		assert.Equal(t, 20.0, sel.Value(0, 0, 0))
	})

	t.Run("falloff is clamped", func(t *testing.T) {
		sel, err := NewSelect(a, b, NewConst(0), SelectParams{Lower: 0, Upper: 1, EdgeFalloff: 5})
		require.NoError(t, err)
		assert.Equal(t, 0.5, sel.Params().EdgeFalloff)
	})

	t.Run("invalid bounds", func(t *testing.T) {
		_, err := NewSelect(a, b, NewConst(0), SelectParams{Lower: 1, Upper: 1})
		assert.ErrorIs(t, err, ErrInvalidParam)
	})
}

// probe records the last coordinates it was sampled at.
type probe struct{ x, y, z float64 }

func (p *probe) Value(x, y, z float64) float64 {
	p.x, p.y, p.z = x, y, z
	return 0
}

func TestTransformers(t *testing.T) {
	p := &probe{}

	scale, err := NewScalePoint(p, 2, 3, 4)
	require.NoError(t, err)
	scale.Value(1, 1, 1)
	assert.Equal(t, probe{2, 3, 4}, *p)

	translate, err := NewTranslatePoint(p, 1, -1, 0.5)
	require.NoError(t, err)
	translate.Value(1, 1, 1)
	assert.Equal(t, probe{2, 0, 1.5}, *p)

	rotate, err := NewRotatePoint(p, 0, 90, 0)
	require.NoError(t, err)
	rotate.Value(1, 0, 0)
	length := math.Sqrt(p.x*p.x + p.y*p.y + p.z*p.z)
	assert.InDelta(t, 1.0, length, 1e-12, "rotation preserves length")
	assert.InDelta(t, 0.0, p.x, 1e-12)

	identity, err := NewRotatePoint(p, 0, 0, 0)
	require.NoError(t, err)
	identity.Value(0.3, -0.2, 0.9)
	assert.InDelta(t, 0.3, p.x, 1e-12)
	assert.InDelta(t, -0.2, p.y, 1e-12)
	assert.InDelta(t, 0.9, p.z, 1e-12)

	displace, err := NewDisplace(p, NewConst(1), NewConst(2), NewConst(3))
	require.NoError(t, err)
	displace.Value(0, 0, 0)
	assert.Equal(t, probe{1, 2, 3}, *p)
}

func TestTurbulence(t *testing.T) {
	p := &probe{}
	params := DefaultTurbulenceParams()
	turb, err := NewTurbulence(p, params)
	require.NoError(t, err)
	assert.Equal(t, params, turb.Params())

	turb.Value(0.5, 0.5, 0.5)
	moved := math.Abs(p.x-0.5) + math.Abs(p.y-0.5) + math.Abs(p.z-0.5)
	assert.Greater(t, moved, 0.0, "turbulence should displace the input point")

	params.Power = 0
	still, err := NewTurbulence(p, params)
	require.NoError(t, err)
	still.Value(0.5, 0.5, 0.5)
	assert.Equal(t, probe{0.5, 0.5, 0.5}, *p)

	params.Roughness = 0
	_, err = NewTurbulence(p, params)
	assert.ErrorIs(t, err, ErrInvalidParam)
}

package noisemap

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/specialistvlad/noisegrid/internal/model"
	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Len(t, m.Values(), 12)

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-3, 5}, {1 << 32, 1 << 32}, {MaxValues + 1, 1}, {1 << 15, 1 << 14}} {
		_, err := New(size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidParam, "size %v", size)
	}
}

func TestSetSize_RejectsOversizedMaps(t *testing.T) {
	m, err := New(3, 2)
	require.NoError(t, err)

	err = m.SetSize(1<<32, 1<<32)
	require.ErrorIs(t, err, ErrInvalidParam)
	assert.Contains(t, err.Error(), "exceeds")

	// The map keeps its previous size and stays usable.
	assert.Equal(t, 3, m.Width())
	assert.Len(t, m.Values(), 6)
	m.SetValue(2, 1, 0.5)
	assert.Equal(t, 0.5, m.Value(2, 1))
	assert.Len(t, m.Row(1), 3)
}

func TestValueAndBorder(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	m.SetValue(1, 0, 0.5)
	assert.Equal(t, 0.5, m.Value(1, 0))
	assert.Equal(t, 0.0, m.Value(0, 1))

	m.SetBorderValue(-7)
	assert.Equal(t, -7.0, m.BorderValue())
	assert.Equal(t, -7.0, m.Value(-1, 0))
	assert.Equal(t, -7.0, m.Value(2, 0))
	assert.Equal(t, -7.0, m.Value(0, 2))

	// Out of range writes are ignored.
	m.SetValue(5, 5, 1)
	m.SetValue(-1, 0, 1)
	lo, hi := m.MinMax()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.5, hi)
}

func TestSetSizeResets(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)
	m.Clear(3)
	assert.Equal(t, 3.0, m.Value(1, 1))

	require.NoError(t, m.SetSize(3, 1))
	assert.Equal(t, 0.0, m.Value(2, 0))
	assert.Equal(t, 3, m.Width())
	assert.Nil(t, m.Row(1))
	assert.Len(t, m.Row(0), 3)

	assert.ErrorIs(t, m.SetSize(0, 0), ErrInvalidParam)
}

func TestPlaneBuilder(t *testing.T) {
	src, err := module.NewPerlin(module.DefaultFractalParams())
	require.NoError(t, err)

	dest, err := New(16, 8)
	require.NoError(t, err)

	var rows atomic.Int32
	b := &PlaneBuilder{LowerX: 2, UpperX: 6, LowerZ: 1, UpperZ: 5, Options: Options{Workers: 3, OnRow: func(int) { rows.Add(1) }}}
	require.NoError(t, b.Build(context.Background(), src, dest))
	assert.Equal(t, int32(8), rows.Load())

	plane := model.NewPlane(src)
	assert.Equal(t, plane.Value(2, 1), dest.Value(0, 0))
	assert.Equal(t, plane.Value(2+3*0.25, 1+5*0.5), dest.Value(3, 5))
}

func TestPlaneBuilder_Seamless(t *testing.T) {
	src, err := module.NewPerlin(module.DefaultFractalParams())
	require.NoError(t, err)

	dest, err := New(32, 32)
	require.NoError(t, err)
	b := &PlaneBuilder{LowerX: 0, UpperX: 4, LowerZ: 0, UpperZ: 4, Seamless: true}
	require.NoError(t, b.Build(context.Background(), src, dest))

	// Seamless maps wrap: the last column continues into the first, so the
	// jump between them is no larger than between ordinary neighbours.
	var maxStep, wrapStep float64
	for y := 0; y < dest.Height(); y++ {
		for x := 1; x < dest.Width(); x++ {
			maxStep = max(maxStep, abs(dest.Value(x, y)-dest.Value(x-1, y)))
		}
		wrapStep = max(wrapStep, abs(dest.Value(0, y)-dest.Value(dest.Width()-1, y)))
	}
	assert.LessOrEqual(t, wrapStep, 2*maxStep)
}

func TestSphereBuilder(t *testing.T) {
	dest, err := New(8, 4)
	require.NoError(t, err)
	b := &SphereBuilder{South: -90, North: 90, West: -180, East: 180}
	require.NoError(t, b.Build(context.Background(), module.NewConst(0.25), dest))
	lo, hi := dest.MinMax()
	assert.Equal(t, 0.25, lo)
	assert.Equal(t, 0.25, hi)
}

func TestCylinderBuilder(t *testing.T) {
	src, err := module.NewCylinders(1)
	require.NoError(t, err)
	dest, err := New(6, 3)
	require.NoError(t, err)
	b := &CylinderBuilder{LowerAngle: 0, UpperAngle: 360, LowerHeight: 0, UpperHeight: 1}
	require.NoError(t, b.Build(context.Background(), src, dest))
	// Every point on the unit cylinder lies on a shell of the generator.
	for _, v := range dest.Values() {
		assert.InDelta(t, 1.0, v, 1e-9)
	}
}

func TestBuilderBounds(t *testing.T) {
	dest, err := New(2, 2)
	require.NoError(t, err)
	src := module.NewConst(0)
	ctx := context.Background()

	builders := map[string]Builder{
		"plane":    &PlaneBuilder{LowerX: 1, UpperX: 1, LowerZ: 0, UpperZ: 1},
		"sphere":   &SphereBuilder{South: 10, North: -10, West: 0, East: 1},
		"cylinder": &CylinderBuilder{LowerAngle: 0, UpperAngle: 1, LowerHeight: 2, UpperHeight: 1},
	}
	for name, b := range builders {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, b.Build(ctx, src, dest), ErrInvalidParam)
		})
	}
}

func TestBuilderCancelled(t *testing.T) {
	dest, err := New(4, 64)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &PlaneBuilder{LowerX: 0, UpperX: 1, LowerZ: 0, UpperZ: 1}
	err = b.Build(ctx, module.NewConst(1), dest)
	assert.ErrorIs(t, err, context.Canceled)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

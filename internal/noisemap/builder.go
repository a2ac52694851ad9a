package noisemap

import (
	"context"
	"fmt"
	"runtime"

	"github.com/specialistvlad/noisegrid/internal/model"
	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/specialistvlad/noisegrid/internal/noise"
	"golang.org/x/sync/errgroup"
)

// Builder fills a noise map by sampling a module over a model surface.
type Builder interface {
	Build(ctx context.Context, source module.Module, dest *NoiseMap) error
}

// Options controls how a builder schedules its work.
type Options struct {
	// Workers bounds the number of rows built at once. Zero uses GOMAXPROCS.
	Workers int
	// OnRow is called once for every finished row. It may be called from
	// several goroutines concurrently.
	OnRow func(row int)
}

// rowFunc computes every value of row y into dst.
type rowFunc func(y int, dst []float64)

// buildRows runs fn for every row of dest on a bounded group of goroutines,
// stopping early when ctx is cancelled.
func buildRows(ctx context.Context, opts Options, dest *NoiseMap, fn rowFunc) error {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < dest.Height(); y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(y, dest.Row(y))
			if opts.OnRow != nil {
				opts.OnRow(y)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func checkBounds(kind string, pairs ...[2]float64) error {
	for _, p := range pairs {
		if p[0] >= p[1] {
			return fmt.Errorf("%s builder: lower bound %g must be below upper bound %g: %w", kind, p[0], p[1], ErrInvalidParam)
		}
	}
	return nil
}

// PlaneBuilder samples a rectangle of the x-z plane.
type PlaneBuilder struct {
	LowerX, UpperX float64
	LowerZ, UpperZ float64
	// Seamless blends the edges so that the map tiles without visible seams.
	Seamless bool
	Options
}

func (b *PlaneBuilder) Build(ctx context.Context, source module.Module, dest *NoiseMap) error {
	if err := checkBounds("plane", [2]float64{b.LowerX, b.UpperX}, [2]float64{b.LowerZ, b.UpperZ}); err != nil {
		return err
	}
	plane := model.NewPlane(source)

	xExtent := b.UpperX - b.LowerX
	zExtent := b.UpperZ - b.LowerZ
	xDelta := xExtent / float64(dest.Width())
	zDelta := zExtent / float64(dest.Height())

	return buildRows(ctx, b.Options, dest, func(y int, dst []float64) {
		zCur := b.LowerZ + float64(y)*zDelta
		for x := range dst {
			xCur := b.LowerX + float64(x)*xDelta
			if !b.Seamless {
				dst[x] = plane.Value(xCur, zCur)
				continue
			}
			sw := plane.Value(xCur, zCur)
			se := plane.Value(xCur+xExtent, zCur)
			nw := plane.Value(xCur, zCur+zExtent)
			ne := plane.Value(xCur+xExtent, zCur+zExtent)
			xBlend := 1.0 - (xCur-b.LowerX)/xExtent
			zBlend := 1.0 - (zCur-b.LowerZ)/zExtent
			z0 := noise.LinearInterp(sw, se, xBlend)
			z1 := noise.LinearInterp(nw, ne, xBlend)
			dst[x] = noise.LinearInterp(z0, z1, zBlend)
		}
	})
}

// SphereBuilder samples a latitude/longitude rectangle of the unit sphere.
// Bounds are in degrees.
type SphereBuilder struct {
	South, North float64
	West, East   float64
	Options
}

func (b *SphereBuilder) Build(ctx context.Context, source module.Module, dest *NoiseMap) error {
	if err := checkBounds("sphere", [2]float64{b.South, b.North}, [2]float64{b.West, b.East}); err != nil {
		return err
	}
	sphere := model.NewSphere(source)

	xDelta := (b.East - b.West) / float64(dest.Width())
	yDelta := (b.North - b.South) / float64(dest.Height())

	return buildRows(ctx, b.Options, dest, func(y int, dst []float64) {
		lat := b.South + float64(y)*yDelta
		for x := range dst {
			dst[x] = sphere.Value(lat, b.West+float64(x)*xDelta)
		}
	})
}

// CylinderBuilder samples a rectangle of the unit cylinder's surface.
// Angles are in degrees.
type CylinderBuilder struct {
	LowerAngle, UpperAngle   float64
	LowerHeight, UpperHeight float64
	Options
}

func (b *CylinderBuilder) Build(ctx context.Context, source module.Module, dest *NoiseMap) error {
	if err := checkBounds("cylinder",
		[2]float64{b.LowerAngle, b.UpperAngle},
		[2]float64{b.LowerHeight, b.UpperHeight}); err != nil {
		return err
	}
	cylinder := model.NewCylinder(source)

	xDelta := (b.UpperAngle - b.LowerAngle) / float64(dest.Width())
	yDelta := (b.UpperHeight - b.LowerHeight) / float64(dest.Height())

	return buildRows(ctx, b.Options, dest, func(y int, dst []float64) {
		height := b.LowerHeight + float64(y)*yDelta
		for x := range dst {
			dst[x] = cylinder.Value(b.LowerAngle+float64(x)*xDelta, height)
		}
	})
}

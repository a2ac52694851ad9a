package task

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/noisegrid/internal/config"
	"github.com/specialistvlad/noisegrid/internal/ctxlog"
	"github.com/specialistvlad/noisegrid/internal/export"
	"github.com/specialistvlad/noisegrid/internal/noisemap"
	"github.com/specialistvlad/noisegrid/internal/render"
)

// Task is a render block that is fully prepared for execution.
type Task struct {
	name     string
	args     Arguments
	format   export.Format
	builder  noisemap.Builder
	renderer *render.ImageRenderer

	// Options is handed to the noise map builder. The app sets it before
	// the task runs.
	Options noisemap.Options
}

// New decodes and validates a render block. resolve supplies the built
// modules that the block's source may reference.
func New(
	ctx context.Context,
	r *config.Render,
	conv config.Converter,
	evalCtx *hcl.EvalContext,
	resolve config.Resolver,
) (*Task, error) {
	logger := ctxlog.FromContext(ctx)

	args := DefaultArguments()
	if err := conv.DecodeBody(ctx, &args, r.Arguments, r.DefRange, evalCtx, resolve); err != nil {
		return nil, fmt.Errorf("render %q: %w", r.Name, err)
	}

	t := &Task{name: r.Name, args: args}
	var err error
	if t.format, err = export.ResolveFormat(args.Output, args.Format); err != nil {
		return nil, t.invalid(r, err)
	}
	if args.Width < 1 || args.Height < 1 {
		return nil, t.invalid(r, fmt.Errorf("size %dx%d: width and height must be at least 1", args.Width, args.Height))
	}
	if err := noisemap.CheckSize(args.Width, args.Height); err != nil {
		return nil, t.invalid(r, err)
	}
	if t.builder, err = newBuilder(args); err != nil {
		return nil, t.invalid(r, err)
	}

	if t.format == export.FormatPNG {
		if t.renderer, err = newRenderer(ctx, args, r, conv, evalCtx); err != nil {
			return nil, t.invalid(r, err)
		}
	} else if r.Light != nil || len(args.ColorPoints) > 0 {
		logger.Warn("Colour and light settings are ignored for raw noise map output.", "render", r.Name, "format", t.format)
	}

	logger.Debug("Render task prepared.", "render", r.Name, "model", args.Model, "width", args.Width, "height", args.Height, "format", t.format)
	return t, nil
}

func (t *Task) invalid(r *config.Render, err error) error {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid render configuration",
		Detail:   fmt.Sprintf("render %q: %s", r.Name, err),
		Subject:  r.DefRange.Ptr(),
	}
}

func newBuilder(args Arguments) (noisemap.Builder, error) {
	model := strings.ToLower(strings.TrimSpace(args.Model))
	bounds := args.Bounds
	if len(bounds) == 0 {
		bounds = DefaultBounds(model)
	}
	if len(bounds) != 4 {
		return nil, fmt.Errorf("bounds must have 4 values, got %d", len(bounds))
	}
	if args.Seamless && model != ModelPlane {
		return nil, fmt.Errorf("seamless is only supported for the %s model", ModelPlane)
	}

	switch model {
	case ModelPlane:
		return &noisemap.PlaneBuilder{
			LowerX: bounds[0], UpperX: bounds[1],
			LowerZ: bounds[2], UpperZ: bounds[3],
			Seamless: args.Seamless,
		}, nil
	case ModelSphere:
		return &noisemap.SphereBuilder{
			South: bounds[0], North: bounds[1],
			West: bounds[2], East: bounds[3],
		}, nil
	case ModelCylinder:
		return &noisemap.CylinderBuilder{
			LowerAngle: bounds[0], UpperAngle: bounds[1],
			LowerHeight: bounds[2], UpperHeight: bounds[3],
		}, nil
	default:
		return nil, fmt.Errorf("unknown model %q: must be '%s', '%s' or '%s'", args.Model, ModelPlane, ModelSphere, ModelCylinder)
	}
}

func newRenderer(ctx context.Context, args Arguments, r *config.Render, conv config.Converter, evalCtx *hcl.EvalContext) (*render.ImageRenderer, error) {
	renderer := render.NewImageRenderer()
	renderer.Wrap = args.Wrap

	if len(args.ColorPoints) > 0 {
		points := make([]render.GradientPoint, 0, len(args.ColorPoints))
		for _, cp := range args.ColorPoints {
			c, err := render.ParseHexColor(cp.Color)
			if err != nil {
				return nil, err
			}
			points = append(points, render.GradientPoint{Position: cp.Position, Color: c})
		}
		g, err := render.NewGradient(points...)
		if err != nil {
			return nil, err
		}
		renderer.Gradient = g
	} else {
		g, err := render.Preset(args.Gradient)
		if err != nil {
			return nil, err
		}
		renderer.Gradient = g
	}

	if r.Light == nil {
		return renderer, nil
	}
	def := render.DefaultLight()
	ls := LightArguments{
		Enabled:    true,
		Azimuth:    def.Azimuth,
		Elevation:  def.Elevation,
		Contrast:   def.Contrast,
		Brightness: def.Brightness,
		Intensity:  def.Intensity,
		Color:      "#ffffff",
	}
	if err := conv.DecodeBody(ctx, &ls, r.Light, r.DefRange, evalCtx, nil); err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}
	c, err := render.ParseHexColor(ls.Color)
	if err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}
	if ls.Contrast <= 0 {
		return nil, fmt.Errorf("light: contrast must be positive, got %g", ls.Contrast)
	}
	renderer.Light = render.Light{
		Enabled:    ls.Enabled,
		Azimuth:    ls.Azimuth,
		Elevation:  ls.Elevation,
		Contrast:   ls.Contrast,
		Brightness: ls.Brightness,
		Intensity:  ls.Intensity,
		Color:      c,
	}
	return renderer, nil
}

// Name returns the render block's name.
func (t *Task) Name() string { return t.name }

// Arguments returns the decoded render arguments.
func (t *Task) Arguments() Arguments { return t.args }

// Format returns the output format.
func (t *Task) Format() export.Format { return t.format }

// Rows returns the number of noise map rows the task builds.
func (t *Task) Rows() int { return t.args.Height }

// Run builds the noise map and writes the output file.
func (t *Task) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	nm, err := noisemap.New(t.args.Width, t.args.Height)
	if err != nil {
		return err
	}
	nm.SetBorderValue(t.args.BorderValue)

	switch b := t.builder.(type) {
	case *noisemap.PlaneBuilder:
		b.Options = t.Options
	case *noisemap.SphereBuilder:
		b.Options = t.Options
	case *noisemap.CylinderBuilder:
		b.Options = t.Options
	}
	if err := t.builder.Build(ctx, t.args.Source, nm); err != nil {
		return fmt.Errorf("failed to build noise map: %w", err)
	}
	lo, hi := nm.MinMax()
	logger.Debug("Noise map built.", "duration", time.Since(start), "min", lo, "max", hi)

	var write func(io.Writer) error
	switch t.format {
	case export.FormatNMap:
		write = func(w io.Writer) error { return export.WriteNoiseMap(w, nm) }
	default:
		img := t.renderer.Render(nm)
		write = func(w io.Writer) error { return export.WritePNG(w, img) }
	}
	if err := export.SaveFile(t.args.Output, write); err != nil {
		return fmt.Errorf("failed to write %s: %w", t.args.Output, err)
	}

	logger.Info("Render written.", "output", t.args.Output, "format", t.format, "duration", time.Since(start))
	return nil
}

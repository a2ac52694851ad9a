package hcl

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/noisegrid/internal/config"
	"github.com/specialistvlad/noisegrid/internal/ctxlog"
	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// TagName is the struct tag read by DecodeBody, e.g. `noise:"seed"` or
// `noise:"source,required"`.
const TagName = "noise"

var (
	moduleType      = reflect.TypeOf((*module.Module)(nil)).Elem()
	moduleSliceType = reflect.TypeOf([]module.Module(nil))
)

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Field describes one tagged field of an input struct.
type Field struct {
	Name     string
	GoName   string
	Type     reflect.Type
	Required bool
	index    int
}

// IsModule reports whether the field is filled with module references.
func (f Field) IsModule() bool {
	return f.Type == moduleType || f.Type == moduleSliceType
}

// Fields lists the tagged fields of a struct type, or of the struct a
// pointer type points to, in declaration order.
func Fields(t reflect.Type) ([]Field, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input must be a struct, got %s", t)
	}
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup(TagName)
		if !ok || !sf.IsExported() {
			continue
		}
		parts := strings.Split(tag, ",")
		f := Field{Name: parts[0], GoName: sf.Name, Type: sf.Type, index: i}
		if f.Name == "" {
			return nil, fmt.Errorf("field %s has an empty %s tag", sf.Name, TagName)
		}
		for _, opt := range parts[1:] {
			switch opt {
			case "required":
				f.Required = true
			default:
				return nil, fmt.Errorf("field %s: unknown tag option %q", sf.Name, opt)
			}
		}
		if !f.IsModule() {
			if _, err := gocty.ImpliedType(reflect.Zero(sf.Type).Interface()); err != nil {
				return nil, fmt.Errorf("field %s: unsupported type %s: %w", sf.Name, sf.Type, err)
			}
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// DecodeBody evaluates HCL expressions and populates the provided Go struct
// using reflection. Arguments without a matching field are rejected.
func (c *Converter) DecodeBody(
	ctx context.Context,
	target any,
	args map[string]hcl.Expression,
	block hcl.Range,
	evalCtx *hcl.EvalContext,
	resolve config.Resolver,
) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting HCL body decoding.", "target", fmt.Sprintf("%T", target))

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}
	structVal = structVal.Elem()

	fields, err := Fields(structVal.Type())
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.Name] = struct{}{}
	}
	var unknown []string
	for name := range args {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		expected := make([]string, 0, len(fields))
		for _, f := range fields {
			expected = append(expected, f.Name)
		}
		return &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported argument",
			Detail:   fmt.Sprintf("Unknown arguments %s; expected one of: %s.", strings.Join(unknown, ", "), strings.Join(expected, ", ")),
			Subject:  args[unknown[0]].Range().Ptr(),
		}
	}

	for _, f := range fields {
		fieldVal := structVal.Field(f.index)
		expr, provided := args[f.Name]
		if !provided {
			if f.Required {
				return &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Missing required argument",
					Detail:   fmt.Sprintf("The argument %q is required, but no definition was found.", f.Name),
					Subject:  block.Ptr(),
				}
			}
			continue
		}

		switch f.Type {
		case moduleType:
			m, diags := resolveOne(expr, resolve)
			if diags.HasErrors() {
				return diags
			}
			fieldVal.Set(reflect.ValueOf(&m).Elem())
		case moduleSliceType:
			ms, diags := resolveList(expr, resolve)
			if diags.HasErrors() {
				return diags
			}
			fieldVal.Set(reflect.ValueOf(ms))
		default:
			val, diags := expr.Value(evalCtx)
			if diags.HasErrors() {
				return diags
			}
			if err := c.decode(ctx, val, fieldVal.Addr().Interface()); err != nil {
				return &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid argument value",
					Detail:   fmt.Sprintf("Argument %q: %s.", f.Name, err),
					Subject:  expr.Range().Ptr(),
				}
			}
		}
	}
	logger.Debug("Finished HCL body decoding successfully.")
	return nil
}

func resolveOne(expr hcl.Expression, resolve config.Resolver) (module.Module, hcl.Diagnostics) {
	id, diags := moduleRef(expr)
	if diags.HasErrors() {
		return nil, diags
	}
	if resolve == nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Module references not allowed",
			Detail:   fmt.Sprintf("%s cannot be referenced here.", id),
			Subject:  expr.Range().Ptr(),
		}}
	}
	m, ok := resolve(id)
	if !ok {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Reference to undeclared module",
			Detail:   fmt.Sprintf("No module %s has been declared.", id),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return m, nil
}

func resolveList(expr hcl.Expression, resolve config.Resolver) ([]module.Module, hcl.Diagnostics) {
	items, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return nil, diags
	}
	out := make([]module.Module, 0, len(items))
	for _, item := range items {
		m, diags := resolveOne(item, resolve)
		if diags.HasErrors() {
			return nil, diags
		}
		out = append(out, m)
	}
	return out, nil
}

// decode handles the conversion and decoding of a cty.Value into a Go pointer.
func (c *Converter) decode(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}
	if val.IsNull() {
		return fmt.Errorf("value must not be null")
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", valPtr.Elem().Type().String(), "error", err)
		return gocty.FromCtyValue(val, goVal)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}

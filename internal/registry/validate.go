package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/specialistvlad/noisegrid/internal/ctxlog"
	"github.com/specialistvlad/noisegrid/internal/hcl"
)

// ValidateRegistry checks that every registered input struct can be decoded
// from configuration: NewInput must return a pointer to a struct whose
// exported fields are all tagged, with supported types and unique names.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, name := range r.Types() {
		input := r.modules[name].NewInput()
		t := reflect.TypeOf(input)
		if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
			errs = append(errs, fmt.Sprintf("module '%s': NewInput must return a pointer to a struct, got %T", name, input))
			continue
		}

		for i := 0; i < t.Elem().NumField(); i++ {
			sf := t.Elem().Field(i)
			if _, tagged := sf.Tag.Lookup(hcl.TagName); sf.IsExported() && !tagged {
				errs = append(errs, fmt.Sprintf("module '%s': field '%s' has no %s tag", name, sf.Name, hcl.TagName))
			}
		}

		fields, err := hcl.Fields(t)
		if err != nil {
			errs = append(errs, fmt.Sprintf("module '%s': %v", name, err))
			continue
		}
		if len(fields) == 0 {
			logger.Warn("Module type takes no arguments.", "type", name)
		}

		seen := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			if _, dup := seen[f.Name]; dup {
				errs = append(errs, fmt.Sprintf("module '%s': argument '%s' is declared twice", name, f.Name))
			}
			seen[f.Name] = struct{}{}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Argument describes one argument of a module type.
type Argument struct {
	Name     string
	Type     string
	Required bool
	Default  string
}

// Arguments describes the arguments of a registered module type in
// declaration order, with the default each one takes when omitted.
func (r *Registry) Arguments(name string) ([]Argument, error) {
	m, ok := r.modules[name]
	if !ok {
		return nil, fmt.Errorf("unknown module type '%s'", name)
	}
	input := reflect.ValueOf(m.NewInput())
	fields, err := hcl.Fields(input.Type())
	if err != nil {
		return nil, err
	}

	args := make([]Argument, 0, len(fields))
	for _, f := range fields {
		arg := Argument{Name: f.Name, Required: f.Required}
		if f.IsModule() {
			arg.Type = "module"
			if f.Type.Kind() == reflect.Slice {
				arg.Type = "list(module)"
			}
		} else {
			arg.Type = f.Type.String()
			if !f.Required {
				arg.Default = fmt.Sprintf("%v", input.Elem().FieldByName(f.GoName).Interface())
			}
		}
		args = append(args, arg)
	}
	return args, nil
}

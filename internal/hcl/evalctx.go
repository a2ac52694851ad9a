package hcl

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/noisegrid/internal/config"
	"github.com/specialistvlad/noisegrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// functions are the functions available to every expression.
var functions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"concat": stdlib.ConcatFunc,
	"floor":  stdlib.FloorFunc,
	"format": stdlib.FormatFunc,
	"lower":  stdlib.LowerFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"upper":  stdlib.UpperFunc,
}

// FunctionNames returns the names of the built-in functions, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EvalContext resolves every variable to its override or default and
// exposes them as var.<name>. Overrides arrive as strings and are converted
// to the type of the variable's default when it has one.
func (c *Converter) EvalContext(ctx context.Context, model *config.Model, overrides map[string]string) (*hcl.EvalContext, error) {
	logger := ctxlog.FromContext(ctx)

	var unknown []string
	for name := range overrides {
		if _, ok := model.Variables[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("values given for undeclared variables: %s", strings.Join(unknown, ", "))
	}

	vars := make(map[string]cty.Value, len(model.Variables))
	for name, v := range model.Variables {
		raw, overridden := overrides[name]
		switch {
		case overridden && v.Default != cty.NilVal:
			val, err := convert.Convert(cty.StringVal(raw), v.Default.Type())
			if err != nil {
				return nil, fmt.Errorf("variable %q: cannot use %q as %s: %w", name, raw, v.Default.Type().FriendlyName(), err)
			}
			vars[name] = val
		case overridden:
			vars[name] = cty.StringVal(raw)
		case v.Default != cty.NilVal:
			vars[name] = v.Default
		default:
			return nil, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing variable value",
				Detail:   fmt.Sprintf("Variable %q has no default and no value was given for it.", name),
				Subject:  v.DefRange.Ptr(),
			}
		}
		logger.Debug("Resolved variable.", "name", name, "overridden", overridden)
	}

	varObj := cty.EmptyObjectVal
	if len(vars) > 0 {
		varObj = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": varObj},
		Functions: functions,
	}, nil
}

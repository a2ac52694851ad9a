// This file translates decoded HCL blocks into the format-agnostic model
// defined in the config package.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/noisegrid/internal/config"
	"github.com/zclconf/go-cty/cty"
)

func (l *Loader) translateVariable(v *variableBlock) (*config.Variable, error) {
	variable := &config.Variable{
		Name:        v.Name,
		Description: v.Description,
		Default:     cty.NilVal,
		DefRange:    v.DeclRange,
	}
	if v.Default != nil {
		val, diags := v.Default.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid default for variable %q: %w", v.Name, diags)
		}
		if !val.IsNull() {
			variable.Default = val
		}
	}
	return variable, nil
}

func (l *Loader) translateModule(m *moduleBlock) (*config.Module, error) {
	args, err := extractBodyAttributes(m.Body)
	if err != nil {
		return nil, fmt.Errorf("in %s: %w", config.ModuleID(m.Type, m.Name), err)
	}
	return &config.Module{
		Type:      m.Type,
		Name:      m.Name,
		Arguments: args,
		DefRange:  m.DeclRange,
	}, nil
}

func (l *Loader) translateRender(r *renderBlock) (*config.Render, error) {
	args, err := extractBodyAttributes(r.Body)
	if err != nil {
		return nil, fmt.Errorf("in render %q: %w", r.Name, err)
	}
	render := &config.Render{
		Name:      r.Name,
		Arguments: args,
		DefRange:  r.DeclRange,
	}
	if r.Light != nil {
		light, err := extractBodyAttributes(r.Light.Body)
		if err != nil {
			return nil, fmt.Errorf("in render %q light block: %w", r.Name, err)
		}
		render.Light = light
	}
	return render, nil
}

// extractBodyAttributes converts a body that may only hold attributes into a
// map of expressions.
func extractBodyAttributes(body hcl.Body) (map[string]hcl.Expression, error) {
	exprs := make(map[string]hcl.Expression)
	if body == nil {
		return exprs, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	for name, attr := range attrs {
		exprs[name] = attr.Expr
	}
	return exprs, nil
}

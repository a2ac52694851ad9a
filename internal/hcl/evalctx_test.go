package hcl

import (
	"context"
	"testing"

	"github.com/specialistvlad/noisegrid/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func modelWith(vars ...*config.Variable) *config.Model {
	m := config.NewModel()
	for _, v := range vars {
		m.Variables[v.Name] = v
	}
	return m
}

func TestConverter_EvalContext(t *testing.T) {
	ctx := context.Background()
	conv := NewConverter()

	t.Run("defaults and typed overrides", func(t *testing.T) {
		model := modelWith(
			&config.Variable{Name: "seed", Default: cty.NumberIntVal(1)},
			&config.Variable{Name: "seamless", Default: cty.False},
			&config.Variable{Name: "output", Default: cty.NilVal},
			&config.Variable{Name: "name", Default: cty.StringVal("terrain")},
		)
		evalCtx, err := conv.EvalContext(ctx, model, map[string]string{
			"seed":     "99",
			"seamless": "true",
			"output":   "out.png",
		})
		require.NoError(t, err)

		vars := evalCtx.Variables["var"]
		assert.True(t, vars.GetAttr("seed").RawEquals(cty.NumberIntVal(99)))
		assert.True(t, vars.GetAttr("seamless").RawEquals(cty.True))
		assert.True(t, vars.GetAttr("output").RawEquals(cty.StringVal("out.png")))
		assert.True(t, vars.GetAttr("name").RawEquals(cty.StringVal("terrain")))
		assert.Contains(t, evalCtx.Functions, "format")
	})

	t.Run("no variables", func(t *testing.T) {
		evalCtx, err := conv.EvalContext(ctx, config.NewModel(), nil)
		require.NoError(t, err)
		assert.True(t, evalCtx.Variables["var"].RawEquals(cty.EmptyObjectVal))
	})

	t.Run("undeclared override", func(t *testing.T) {
		_, err := conv.EvalContext(ctx, config.NewModel(), map[string]string{"b": "1", "a": "2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "undeclared variables: a, b")
	})

	t.Run("missing value", func(t *testing.T) {
		model := modelWith(&config.Variable{Name: "output", Default: cty.NilVal})
		_, err := conv.EvalContext(ctx, model, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `Variable "output" has no default`)
	})

	t.Run("override of the wrong type", func(t *testing.T) {
		model := modelWith(&config.Variable{Name: "seed", Default: cty.NumberIntVal(1)})
		_, err := conv.EvalContext(ctx, model, map[string]string{"seed": "many"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `cannot use "many" as number`)
	})
}

func TestFunctionNames(t *testing.T) {
	names := FunctionNames()
	assert.Equal(t, []string{"abs", "ceil", "concat", "floor", "format", "lower", "max", "min", "upper"}, names)
}

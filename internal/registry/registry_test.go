package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constInput struct {
	Value float64 `noise:"value"`
}

type scaleInput struct {
	Source module.Module   `noise:"source,required"`
	Scale  float64         `noise:"scale"`
	Extra  []module.Module `noise:"extra"`
}

func constModule() *RegisteredModule {
	return Typed("Outputs a constant.",
		func() constInput { return constInput{Value: 0.5} },
		func(in *constInput) (module.Module, error) { return module.NewConst(in.Value), nil },
	)
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	r.RegisterModule("const", constModule())
	r.RegisterModule("abs", Typed("Absolute value.",
		func() scaleInput { return scaleInput{Scale: 1} },
		func(in *scaleInput) (module.Module, error) { return module.NewAbs(in.Source) },
	))

	assert.Equal(t, []string{"abs", "const"}, r.Types())

	reg, ok := r.Lookup("const")
	require.True(t, ok)
	assert.Equal(t, "Outputs a constant.", reg.Description)

	input := reg.NewInput()
	in, ok := input.(*constInput)
	require.True(t, ok)
	assert.Equal(t, 0.5, in.Value)

	in.Value = 3
	m, err := reg.Build(input)
	require.NoError(t, err)
	assert.Equal(t, 3.0, m.Value(1, 2, 3))

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_RegisterPanics(t *testing.T) {
	r := New()
	r.RegisterModule("const", constModule())

	assert.PanicsWithValue(t, "module type 'const' already registered", func() {
		r.RegisterModule("const", constModule())
	})
	assert.Panics(t, func() {
		r.RegisterModule("broken", &RegisteredModule{})
	})
}

func TestTyped_WrongInputType(t *testing.T) {
	_, err := constModule().Build(&scaleInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected *registry.constInput")
}

func TestRegistry_ValidateRegistry(t *testing.T) {
	t.Run("valid registry", func(t *testing.T) {
		r := New()
		r.RegisterModule("const", constModule())
		assert.NoError(t, r.ValidateRegistry(context.Background()))
	})

	t.Run("untagged exported field", func(t *testing.T) {
		type input struct {
			Value float64
		}
		r := New()
		r.RegisterModule("bad", Typed("", func() input { return input{} },
			func(*input) (module.Module, error) { return module.NewConst(0), nil }))
		err := r.ValidateRegistry(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "field 'Value' has no noise tag")
	})

	t.Run("duplicate argument names", func(t *testing.T) {
		type input struct {
			A float64 `noise:"x"`
			B float64 `noise:"x"`
		}
		r := New()
		r.RegisterModule("dup", Typed("", func() input { return input{} },
			func(*input) (module.Module, error) { return module.NewConst(0), nil }))
		err := r.ValidateRegistry(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "argument 'x' is declared twice")
	})

	t.Run("input is not a struct pointer", func(t *testing.T) {
		r := New()
		r.RegisterModule("num", &RegisteredModule{
			NewInput: func() any { return 42 },
			Build:    func(any) (module.Module, error) { return module.NewConst(0), nil },
		})
		err := r.ValidateRegistry(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must return a pointer to a struct")
	})
}

func TestRegistry_Arguments(t *testing.T) {
	r := New()
	r.RegisterModule("scale", Typed("", func() scaleInput { return scaleInput{Scale: 2} },
		func(in *scaleInput) (module.Module, error) { return in.Source, nil }))

	args, err := r.Arguments("scale")
	require.NoError(t, err)
	assert.Equal(t, []Argument{
		{Name: "source", Type: "module", Required: true},
		{Name: "scale", Type: "float64", Default: "2"},
		{Name: "extra", Type: "list(module)"},
	}, args)

	_, err = r.Arguments("missing")
	assert.Error(t, err)
}

package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vars.hcl", `
variable "seed" {
  description = "Base seed."
  default     = 7
}

variable "output" {}
`)
	writeFile(t, dir, "graph/modules.hcl", `
module "perlin" "base" {
  seed   = var.seed
  octave = 6
}

module "scale_bias" "flat" {
  source = module.perlin.base
  scale  = 0.5
}

render "terrain" {
  source = module.scale_bias.flat
  output = var.output

  light {
    enabled = true
  }
}
`)

	model, conv, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.NotNil(t, conv)

	require.Len(t, model.Variables, 2)
	assert.Equal(t, "Base seed.", model.Variables["seed"].Description)
	assert.True(t, model.Variables["seed"].Default.RawEquals(cty.NumberIntVal(7)))
	assert.Equal(t, cty.NilVal, model.Variables["output"].Default)

	require.Len(t, model.Modules, 2)
	assert.Equal(t, "module.perlin.base", model.Modules[0].ID())
	assert.Contains(t, model.Modules[0].Arguments, "seed")
	assert.Contains(t, model.Modules[0].Arguments, "octave")

	mod, ok := model.ModuleByID("module.scale_bias.flat")
	require.True(t, ok)
	assert.Equal(t, []string{"module.perlin.base"}, conv.References(mod.Arguments["source"]))

	require.Len(t, model.Renders, 1)
	r := model.Renders[0]
	assert.Equal(t, "terrain", r.Name)
	assert.Contains(t, r.Arguments, "output")
	require.NotNil(t, r.Light)
	assert.Contains(t, r.Light, "enabled")
}

func TestLoader_Load_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name: "duplicate module across files",
			files: map[string]string{
				"a.hcl": `module "const" "c" { value = 1 }`,
				"b.hcl": `module "const" "c" { value = 2 }`,
			},
			wantErr: "module.const.c was already declared",
		},
		{
			name: "duplicate variable",
			files: map[string]string{
				"a.hcl": "variable \"x\" {}\nvariable \"x\" {}",
			},
			wantErr: "var.x was already declared",
		},
		{
			name: "unknown block type",
			files: map[string]string{
				"a.hcl": `resource "x" "y" {}`,
			},
			wantErr: "failed to decode",
		},
		{
			name: "nested block in module",
			files: map[string]string{
				"a.hcl": `module "const" "c" { inner {} }`,
			},
			wantErr: "module.const.c",
		},
		{
			name: "syntax error",
			files: map[string]string{
				"a.hcl": `module "const" "c" {`,
			},
			wantErr: "failed to parse",
		},
		{
			name: "default referencing a variable",
			files: map[string]string{
				"a.hcl": "variable \"x\" { default = var.y }",
			},
			wantErr: `invalid default for variable "x"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writeFile(t, dir, name, content)
			}
			_, _, err := NewLoader().Load(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoader_Load_Paths(t *testing.T) {
	t.Run("single file and directory are merged without duplicates", func(t *testing.T) {
		dir := t.TempDir()
		file := writeFile(t, dir, "main.hcl", `module "const" "c" { value = 1 }`)

		model, _, err := NewLoader().Load(context.Background(), file, dir)
		require.NoError(t, err)
		assert.Len(t, model.Modules, 1)
	})

	t.Run("no hcl files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "notes.txt", "nothing")
		_, _, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no .hcl files found")
	})

	t.Run("missing path", func(t *testing.T) {
		_, _, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error accessing path")
	})
}

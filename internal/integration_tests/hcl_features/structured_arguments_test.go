package integration_tests

import (
	"testing"

	"github.com/specialistvlad/noisegrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: Object lists and number lists decode into module parameters.
func TestHCLFeatures_StructuredArguments(t *testing.T) {
	grid := `
module "const" "mid" {
  value = 0.3
}

module "curve" "flat" {
  source = module.const.mid
  points = [
    { input = -1, output = 0.5 },
    { input = -0.5, output = 0.5 },
    { input = 0.5, output = 0.5 },
    { input = 1, output = 0.5 },
  ]
}

module "terrace" "stepped" {
  source = module.const.mid
  steps  = 3
}

module "select" "pick" {
  a       = module.curve.flat
  b       = module.terrace.stepped
  control = module.const.mid
  lower   = 0
  upper   = 1
}

render "curve" {
  source = module.curve.flat
  width  = 2
  height = 2
  output = "{{dir}}/curve.nmap"
}

render "pick" {
  source = module.select.pick
  width  = 2
  height = 2
  output = "{{dir}}/pick.nmap"
}
`
	result := testutil.RunHCLGridTest(t, grid)

	require.NoError(t, result.Err)
	curve := testutil.ReadNoiseMap(t, result.Path("curve.nmap"))
	require.InDelta(t, 0.5, curve.Value(0, 0), 1e-9)

	// The control value lies inside [lower, upper], so b is selected. With
	// three terraces at -1, 0 and 1 the source 0.3 maps to 0 + 0.3² = 0.09.
	pick := testutil.ReadNoiseMap(t, result.Path("pick.nmap"))
	require.InDelta(t, 0.09, pick.Value(1, 0), 1e-9)
}

// Test for: A light block and a preset gradient shade a PNG render.
func TestHCLFeatures_LightBlock(t *testing.T) {
	grid := `
module "perlin" "base" {
  octaves = 4
}

render "lit" {
  source   = module.perlin.base
  width    = 16
  height   = 16
  gradient = "terrain"
  wrap     = true
  output   = "{{dir}}/lit.png"

  light {
    azimuth    = 30
    elevation  = 60
    brightness = 1.5
  }
}
`
	result := testutil.RunHCLGridTest(t, grid)

	require.NoError(t, result.Err)
	img := testutil.ReadPNG(t, result.Path("lit.png"))
	require.Equal(t, 16, img.Bounds().Dx())
}

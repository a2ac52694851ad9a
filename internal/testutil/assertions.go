package testutil

import (
	"image"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/specialistvlad/noisegrid/internal/export"
	"github.com/specialistvlad/noisegrid/internal/noisemap"
	"github.com/stretchr/testify/require"
)

// AssertRenderWritten checks both the log output and the file system to
// confirm that a render wrote output.
func AssertRenderWritten(t *testing.T, result *HarnessResult, output string) {
	t.Helper()

	require.FileExists(t, output)
	require.True(t,
		strings.Contains(result.LogOutput, "Render written.") && strings.Contains(result.LogOutput, output),
		"expected a 'Render written.' log line for %s", output,
	)
}

// ReadPNG decodes the image at path.
func ReadPNG(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

// ReadNoiseMap decodes the nmap file at path.
func ReadNoiseMap(t *testing.T, path string) *noisemap.NoiseMap {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	m, err := export.ReadNoiseMap(f)
	require.NoError(t, err)
	return m
}

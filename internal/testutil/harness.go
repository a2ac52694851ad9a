package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/noisegrid/internal/app"
	"github.com/specialistvlad/noisegrid/internal/registry"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	// Dir is the temporary root the grid files were written to. Render
	// outputs given as relative paths in tests should be joined onto it.
	Dir string
}

// Path joins elem onto the harness directory.
func (r *HarnessResult) Path(elem ...string) string {
	return filepath.Join(append([]string{r.Dir}, elem...)...)
}

// Options tweaks the app configuration used by the harness.
type Options struct {
	Vars        map[string]string
	WorkerCount int
	RowWorkers  int
	// Modules replaces the core module set when not empty.
	Modules []registry.Module
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, opts Options) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, opts)
}

// RunIntegrationTestWithContext writes files below a temporary directory,
// loads the "grid" subdirectory and runs it with ctx. Every occurrence of
// {{dir}} in the file contents is replaced by the temporary directory so
// that grids can name absolute output paths.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, opts Options) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	gridDir := filepath.Join(tmpDir, "grid")
	require.NoError(t, os.Mkdir(gridDir, 0755))

	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(expandDir(content, tmpDir)), 0644))
	}

	appConfig := &app.Config{
		GridPath:    gridDir,
		Vars:        opts.Vars,
		LogFormat:   "text",
		WorkerCount: opts.WorkerCount,
		RowWorkers:  opts.RowWorkers,
	}

	testApp, logBuffer, err := app.SetupAppTest(t, appConfig, opts.Modules...)
	result := &HarnessResult{App: testApp, Dir: tmpDir}
	if err != nil {
		result.Err = err
		result.LogOutput = logBuffer.String()
		return result
	}

	result.Err = testApp.Run(ctx)
	result.LogOutput = logBuffer.String()
	return result
}

// RunHCLGridTest runs a single grid file with the default options.
func RunHCLGridTest(t *testing.T, gridHCL string) *HarnessResult {
	t.Helper()
	return RunIntegrationTest(t, map[string]string{"grid/main.hcl": gridHCL}, Options{})
}

package integration_tests

import (
	"context"
	"testing"
	"time"

	"github.com/specialistvlad/noisegrid/internal/app"
	"github.com/specialistvlad/noisegrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: Cancelling the run stops slow renders and leaves no partial files.
func TestErrorHandling_CancelledRunStopsRenders(t *testing.T) {
	probe := &testutil.ProbeModule{}
	grid := `
module "probe" "slow" {
  delay = 5
}

render "a" {
  source = module.probe.slow
  width  = 64
  height = 64
  output = "{{dir}}/a.nmap"
}

render "b" {
  source = module.probe.slow
  width  = 64
  height = 64
  output = "{{dir}}/b.nmap"
}
`
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	result := testutil.RunIntegrationTestWithContext(ctx, t, map[string]string{"grid/main.hcl": grid}, testutil.Options{
		Modules:     append(app.CoreModules(), probe),
		WorkerCount: 1,
		RowWorkers:  1,
	})

	require.Error(t, result.Err)
	require.ErrorIs(t, result.Err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 5*time.Second)
	require.NoFileExists(t, result.Path("a.nmap"))
	require.NoFileExists(t, result.Path("b.nmap"))
	require.NotContains(t, result.LogOutput, "Execution finished.")
}

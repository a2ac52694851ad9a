package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/noisegrid/internal/app"
	"github.com/specialistvlad/noisegrid/internal/buildinfo"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("noisegrid", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
noisegrid - Render coherent noise graphs declared in HCL.

Usage:
  noisegrid [options] [GRID_PATH]

Arguments:
  GRID_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	gridFlag := flagSet.StringP("grid", "g", "", "Path to the grid file or directory.")
	varFlags := flagSet.StringArray("var", nil, "Set a variable, as name=value. May be repeated.")
	workersFlag := flagSet.Int("workers", 0, "Number of renders to run at once. 0 uses every CPU.")
	rowWorkersFlag := flagSet.Int("row-workers", 0, "Number of rows each render builds at once. 0 uses every CPU.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	progressFlag := flagSet.Bool("progress", false, "Show a progress bar while rendering.")
	listFlag := flagSet.Bool("list-modules", false, "List the available module types and exit.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintln(output, buildinfo.String())
		return nil, true, nil
	}

	path := *gridFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 || (*gridFlag != "" && flagSet.NArg() > 0) {
		return nil, false, usageError("too many arguments: %s", strings.Join(flagSet.Args(), " "))
	}
	slog.Debug("Grid path determined.", "path", path)

	if path == "" && !*listFlag {
		slog.Debug("No grid path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	vars, err := parseVars(*varFlags)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	config, err := app.NewConfig(app.Config{
		GridPath:        path,
		Vars:            vars,
		LogFormat:       strings.ToLower(*logFormatFlag),
		LogLevel:        strings.ToLower(*logLevelFlag),
		HealthcheckPort: *healthPortFlag,
		WorkerCount:     *workersFlag,
		RowWorkers:      *rowWorkersFlag,
		Progress:        *progressFlag,
		ListModules:     *listFlag,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parseVars splits name=value pairs. A later value for the same name wins.
func parseVars(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q: expected name=value", pair)
		}
		vars[name] = value
	}
	return vars, nil
}

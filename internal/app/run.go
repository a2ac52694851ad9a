package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/specialistvlad/noisegrid/internal/builder"
	"github.com/specialistvlad/noisegrid/internal/ctxlog"
	"github.com/specialistvlad/noisegrid/internal/executor"
	"github.com/specialistvlad/noisegrid/internal/noisemap"
	"github.com/specialistvlad/noisegrid/internal/task"
)

// Run executes the main application logic based on the configuration the
// app was created with.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	if a.appConfig.ListModules {
		return a.ListModules(a.outW)
	}

	if err := a.startHealthCheckServer(); err != nil {
		return err
	}
	defer func() {
		if cerr := a.closeHealthCheckServer(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	evalCtx, err := a.converter.EvalContext(ctx, a.model, a.appConfig.Vars)
	if err != nil {
		return fmt.Errorf("failed to evaluate variables: %w", err)
	}

	a.logger.Debug("Building module graph from config model...")
	graph, err := builder.Build(ctx, a.model, a.converter, evalCtx, a.registry)
	if err != nil {
		return fmt.Errorf("failed to build module graph: %w", err)
	}
	a.logger.Debug("Module graph built.", "module_count", len(graph.Modules))

	tasks := make([]*task.Task, 0, len(a.model.Renders))
	totalRows := 0
	for _, r := range a.model.Renders {
		t, err := task.New(ctx, r, a.converter, evalCtx, graph.Resolve)
		if err != nil {
			return err
		}
		tasks = append(tasks, t)
		totalRows += t.Rows()
	}
	if err := checkOutputs(tasks); err != nil {
		return err
	}

	if len(tasks) == 0 {
		a.logger.Warn("No render blocks found, nothing to do.")
		return nil
	}

	onRow := a.progress(totalRows)
	jobs := make([]executor.Job, len(tasks))
	for i, t := range tasks {
		t.Options = noisemap.Options{Workers: a.appConfig.RowWorkers, OnRow: onRow}
		jobs[i] = t
	}

	a.logger.Info("🚀 Starting renders...", "renders", len(jobs))
	exec := executor.New(a.appConfig.WorkerCount)
	results, err := exec.Run(ctx, jobs)
	for _, r := range results {
		a.logger.Debug("Render finished.", "render", r.Name, "id", r.ID.String(), "state", r.State.String(), "duration", r.Duration)
	}
	if err != nil {
		return err
	}
	a.logger.Info("🏁 Execution finished.")

	a.logger.Debug("App.Run method finished.")
	return nil
}

// checkOutputs rejects two renders writing the same file.
func checkOutputs(tasks []*task.Task) error {
	seen := make(map[string]string, len(tasks))
	var errs []error
	for _, t := range tasks {
		out := t.Arguments().Output
		if prev, ok := seen[out]; ok {
			errs = append(errs, fmt.Errorf("renders %q and %q both write %s", prev, t.Name(), out))
			continue
		}
		seen[out] = t.Name()
	}
	return errors.Join(errs...)
}

// progress returns a row callback that advances a progress bar, or nil when
// progress display is off.
func (a *App) progress(total int) func(int) {
	if !a.appConfig.Progress || total == 0 {
		return nil
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionSetWriter(a.outW),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return func(int) { _ = bar.Add(1) }
}

// Package executor runs independent jobs on a bounded worker pool. The first
// failure cancels every job that has not finished yet.
package executor

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/noisegrid/internal/ctxlog"
)

// Job is a unit of work for the executor.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// State is the outcome of a job.
type State int

const (
	Pending State = iota
	Done
	Failed
	Skipped
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result records how a single job ended.
type Result struct {
	ID       uuid.UUID
	Name     string
	State    State
	Err      error
	Duration time.Duration
}

// Executor runs jobs concurrently.
type Executor struct {
	numWorkers int
}

// New returns an executor with the given number of workers. A value below 1
// uses GOMAXPROCS.
func New(workers int) *Executor {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Executor{numWorkers: workers}
}

// Workers returns the size of the worker pool.
func (e *Executor) Workers() int { return e.numWorkers }

// Run executes every job and returns one result per job, in input order.
// If any job fails, the jobs still running are cancelled, the jobs not yet
// started are skipped, and the returned error names the failed jobs and
// wraps the first failure.
func (e *Executor) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)

	results := make([]Result, len(jobs))
	for i, j := range jobs {
		results[i] = Result{ID: uuid.New(), Name: j.Name()}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	readyChan := make(chan int, len(jobs))
	for i := range jobs {
		readyChan <- i
	}
	close(readyChan)

	workers := min(e.numWorkers, len(jobs))
	logger.Debug("Starting worker pool.", "workers", workers, "jobs", len(jobs))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(workerID int) {
			defer wg.Done()
			e.worker(runCtx, jobs, results, readyChan, cancel, workerID)
		}(w)
	}
	wg.Wait()
	logger.Debug("All jobs completed.")

	var failedJobs []string
	var rootCauseError error
	for _, r := range results {
		if r.State != Failed {
			continue
		}
		// A cancellation is a symptom of another failure, not a cause.
		if errors.Is(r.Err, context.Canceled) && ctx.Err() == nil {
			continue
		}
		failedJobs = append(failedJobs, r.Name)
		if rootCauseError == nil {
			rootCauseError = r.Err
		}
	}

	if rootCauseError != nil {
		return results, fmt.Errorf("execution failed for %s: %w", strings.Join(failedJobs, ", "), rootCauseError)
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// worker is the core processing loop for a single concurrent worker.
func (e *Executor) worker(ctx context.Context, jobs []Job, results []Result, readyChan <-chan int, cancel context.CancelFunc, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for i := range readyChan {
		res := &results[i]
		jobLogger := logger.With("workerID", workerID, "job", res.Name, "jobID", res.ID.String())

		if ctx.Err() != nil {
			jobLogger.Warn("Context canceled, skipping job.")
			res.State = Skipped
			res.Err = ctx.Err()
			continue
		}

		jobLogger.Debug("Worker picked up job.")
		start := time.Now()
		err := jobs[i].Run(ctxlog.WithLogger(ctx, jobLogger))
		res.Duration = time.Since(start)

		if err != nil {
			jobLogger.Error("Job failed.", "error", err, "duration", res.Duration)
			res.State = Failed
			res.Err = err
			cancel()
			continue
		}

		jobLogger.Debug("Job succeeded.", "duration", res.Duration)
		res.State = Done
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}

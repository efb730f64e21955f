package executor

import (
	"context"
	"iter"
	"log/slog"
	"os/signal"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// ConcurrentExecutor drives tasks through a bounded worker pool. At most
// Concurrency tasks are in flight at once; every index's output and record
// slot is owned exclusively by the worker that claims it, so completion order
// never affects where results land.
type ConcurrentExecutor[V, R any] struct {
	fn     TaskFunc[V, R]
	opts   Options[R]
	logger *slog.Logger
}

// NewConcurrent creates a concurrent executor for the given task function.
// Returns a configuration error when fn is nil, Concurrency is not positive,
// or MaxRetries is negative.
func NewConcurrent[V, R any](fn TaskFunc[V, R], opts Options[R]) (*ConcurrentExecutor[V, R], error) {
	if err := opts.validate(fn != nil, true); err != nil {
		return nil, err
	}
	return &ConcurrentExecutor[V, R]{
		fn:     fn,
		opts:   opts,
		logger: opts.logger(),
	}, nil
}

// Execute runs every input through the worker pool and returns the
// index-aligned result set. Ordinary task failures are contained in the
// records; Execute itself never fails. Cancellation via ctx is cooperative:
// tasks not yet started finalize as DID_NOT_RUN, tasks in flight finish.
func (e *ConcurrentExecutor[V, R]) Execute(ctx context.Context, inputs []V) ResultSet[R] {
	n := len(inputs)
	rs := newResultSet(n, e.opts.Fallback)
	if n == 0 {
		e.logger.Debug("no tasks to execute")
		return rs
	}

	workers := e.opts.Concurrency
	if workers > n {
		workers = n
	}

	e.logger.Info("starting task execution",
		"workers", workers,
		"tasks", n,
		"max_retries", e.opts.MaxRetries)

	startTime := time.Now()
	g := newGate(ctx)

	// Unbuffered so every handoff is a fresh dispatch decision: the gate
	// is re-checked by the dispatcher before each send and by the worker
	// before each invocation.
	taskCh := make(chan int)

	var completed atomic.Int32
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range taskCh {
				e.runOne(ctx, g, i, inputs[i], &rs)
				done := completed.Add(1)
				if e.opts.Progress != nil {
					e.opts.Progress(int(done), n)
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		if !g.open() {
			e.logger.Warn("stopping dispatch", "next_index", i, "reason", g.reason())
			break
		}
		taskCh <- i
	}
	close(taskCh)
	wg.Wait()

	summary := Summarize(rs.Records)
	e.logger.Info("task execution completed",
		"total", n,
		"completed", summary.Completed+summary.Retried,
		"failed", summary.Failed,
		"did_not_run", summary.DidNotRun,
		"duration", time.Since(startTime))

	return rs
}

// runOne claims one index: it re-checks the gate (a task handed over after
// the gate tripped stays DID_NOT_RUN), runs the attempt loop, writes the
// owned slots, and trips the gate on permanent failure under ExitOnError.
func (e *ConcurrentExecutor[V, R]) runOne(ctx context.Context, g *gate, i int, input V, rs *ResultSet[R]) {
	if !g.open() {
		return
	}

	out, rec := runAttempts(ctx, e.fn, input, e.opts.MaxRetries, e.opts.Fallback)
	rs.Outputs[i] = out
	rs.Records[i] = rec

	switch rec.Status {
	case StatusFailed:
		e.logger.Warn("task failed",
			"index", i,
			"attempts", rec.Attempts(),
			"error", rec.Errors[len(rec.Errors)-1],
			"duration", rec.Duration)
		if e.opts.ExitOnError {
			g.trip()
		}
	case StatusCompletedWithRetries:
		e.logger.Debug("task completed after retries",
			"index", i,
			"attempts", rec.Attempts(),
			"duration", rec.Duration)
	default:
		e.logger.Debug("task completed", "index", i, "duration", rec.Duration)
	}
}

// ExecuteSeq drains a finite, possibly side-effecting sequence and executes
// the collected inputs.
func (e *ConcurrentExecutor[V, R]) ExecuteSeq(ctx context.Context, inputs iter.Seq[V]) ResultSet[R] {
	return e.Execute(ctx, slices.Collect(inputs))
}

// Run is the blocking entry point for callers without a context of their
// own. When a TerminationSignal is configured, the signal is intercepted for
// the duration of the run and translated into cooperative cancellation; the
// prior disposition is restored before Run returns. When no signal is
// configured, ambient signal handling is left untouched. Signal registration
// in Go is goroutine-safe, so Run may be called from any goroutine.
func (e *ConcurrentExecutor[V, R]) Run(inputs []V) ResultSet[R] {
	ctx := context.Background()
	if e.opts.TerminationSignal != nil {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, e.opts.TerminationSignal)
		defer stop()
	}
	return e.Execute(ctx, inputs)
}

// Concurrency returns the configured concurrency limit.
func (e *ConcurrentExecutor[V, R]) Concurrency() int {
	return e.opts.Concurrency
}

package executor

import (
	"context"
	"iter"
	"log/slog"
	"os/signal"
	"slices"
	"time"
)

// SequentialExecutor processes tasks strictly one at a time. It is the safe
// fallback when overlapping tasks is undesirable (a shared non-threadsafe
// resource in the task function, debugging, Concurrency <= 1) and carries no
// worker-pool machinery at all. Retry, ExitOnError, and cancellation
// semantics are identical to the concurrent executor's.
type SequentialExecutor[V, R any] struct {
	fn     TaskFunc[V, R]
	opts   Options[R]
	logger *slog.Logger
}

// NewSequential creates a sequential executor for the given task function.
// The Concurrency option is ignored.
func NewSequential[V, R any](fn TaskFunc[V, R], opts Options[R]) (*SequentialExecutor[V, R], error) {
	if err := opts.validate(fn != nil, false); err != nil {
		return nil, err
	}
	return &SequentialExecutor[V, R]{
		fn:     fn,
		opts:   opts,
		logger: opts.logger(),
	}, nil
}

// Execute runs every input in order, one at a time, and returns the
// index-aligned result set. The cancellation gate is polled before each
// task; once it trips, every remaining task finalizes as DID_NOT_RUN with
// the fallback output and the task function is not invoked for it.
func (e *SequentialExecutor[V, R]) Execute(ctx context.Context, inputs []V) ResultSet[R] {
	n := len(inputs)
	rs := newResultSet(n, e.opts.Fallback)
	if n == 0 {
		e.logger.Debug("no tasks to execute")
		return rs
	}

	e.logger.Info("starting sequential execution",
		"tasks", n,
		"max_retries", e.opts.MaxRetries)

	startTime := time.Now()
	g := newGate(ctx)

	for i, input := range inputs {
		if !g.open() {
			e.logger.Warn("stopping dispatch", "next_index", i, "reason", g.reason())
			break
		}

		out, rec := runAttempts(ctx, e.fn, input, e.opts.MaxRetries, e.opts.Fallback)
		rs.Outputs[i] = out
		rs.Records[i] = rec

		if rec.Status == StatusFailed {
			e.logger.Warn("task failed",
				"index", i,
				"attempts", rec.Attempts(),
				"error", rec.Errors[len(rec.Errors)-1],
				"duration", rec.Duration)
			if e.opts.ExitOnError {
				g.trip()
			}
		} else {
			e.logger.Debug("task completed",
				"index", i,
				"status", rec.Status,
				"duration", rec.Duration)
		}

		if e.opts.Progress != nil {
			e.opts.Progress(i+1, n)
		}
	}

	summary := Summarize(rs.Records)
	e.logger.Info("sequential execution completed",
		"total", n,
		"completed", summary.Completed+summary.Retried,
		"failed", summary.Failed,
		"did_not_run", summary.DidNotRun,
		"duration", time.Since(startTime))

	return rs
}

// ExecuteSeq drains a finite, possibly side-effecting sequence and executes
// the collected inputs.
func (e *SequentialExecutor[V, R]) ExecuteSeq(ctx context.Context, inputs iter.Seq[V]) ResultSet[R] {
	return e.Execute(ctx, slices.Collect(inputs))
}

// Run is the blocking entry point; see ConcurrentExecutor.Run for the
// signal-interception contract.
func (e *SequentialExecutor[V, R]) Run(inputs []V) ResultSet[R] {
	ctx := context.Background()
	if e.opts.TerminationSignal != nil {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, e.opts.TerminationSignal)
		defer stop()
	}
	return e.Execute(ctx, inputs)
}

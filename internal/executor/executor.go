package executor

import (
	"context"
	"iter"
	"log/slog"
	"os"

	"github.com/Arize-ai/phoenix-sub007/internal/util"
)

// TaskFunc is the caller-supplied operation driven over each input. It must
// be safe to invoke concurrently for distinct inputs; the executor makes no
// guarantee about when two tasks run relative to each other, only about where
// their results land.
type TaskFunc[V, R any] func(ctx context.Context, input V) (R, error)

// Options configures an executor. Options are immutable once an executor is
// constructed.
type Options[R any] struct {
	// Concurrency is the maximum number of tasks in flight at once.
	// Required (> 0) for the concurrent executor; ignored by the
	// sequential executor.
	Concurrency int

	// MaxRetries is the per-task retry budget: each task gets up to
	// MaxRetries+1 attempts. Retries are immediate, with no backoff.
	MaxRetries int

	// ExitOnError stops dispatching new tasks once any task reaches
	// FAILED. Tasks already in flight still run to completion; tasks
	// never started finalize as DID_NOT_RUN with the fallback output.
	ExitOnError bool

	// Fallback is the output recorded for tasks that permanently fail
	// or never run.
	Fallback R

	// TerminationSignal, when non-nil, is intercepted for the duration
	// of a Run call and translated into cooperative cancellation. When
	// nil, no signal handling is installed at all.
	TerminationSignal os.Signal

	// Progress, when non-nil, is called after each task finalizes with
	// (completed, total) counts. It observes progress only and never
	// participates in control flow.
	Progress func(completed, total int)

	// Logger for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Executor drives a collection of independent inputs through a task function
// and returns an index-aligned ResultSet. Both implementations share the same
// retry, ExitOnError, and cancellation semantics; they differ only in whether
// tasks may overlap.
type Executor[V, R any] interface {
	// Execute runs every input under the given context. Ordinary task
	// failures are contained in the records; Execute itself never fails.
	Execute(ctx context.Context, inputs []V) ResultSet[R]

	// ExecuteSeq runs every input of a finite, possibly side-effecting
	// sequence. The sequence is drained before dispatch begins.
	ExecuteSeq(ctx context.Context, inputs iter.Seq[V]) ResultSet[R]

	// Run is the blocking entry point for callers without a context of
	// their own. When a TerminationSignal is configured, Run intercepts
	// it for the duration of the call and restores the prior disposition
	// afterward.
	Run(inputs []V) ResultSet[R]
}

// Mode selects which executor kind a caller wants.
type Mode string

const (
	// ModeAuto picks the concurrent executor when Concurrency > 1 and
	// the sequential executor otherwise.
	ModeAuto Mode = "auto"

	// ModeConcurrent always builds a concurrent executor.
	ModeConcurrent Mode = "concurrent"

	// ModeSequential always builds a sequential executor.
	ModeSequential Mode = "sequential"
)

// Select builds the executor matching the requested mode. Ambiguity is not
// guessed at: an unrecognized mode is a configuration error.
func Select[V, R any](fn TaskFunc[V, R], mode Mode, opts Options[R]) (Executor[V, R], error) {
	switch mode {
	case ModeSequential:
		return NewSequential(fn, opts)
	case ModeConcurrent:
		return NewConcurrent(fn, opts)
	case ModeAuto, "":
		if opts.Concurrency > 1 {
			return NewConcurrent(fn, opts)
		}
		return NewSequential(fn, opts)
	default:
		return nil, util.NewValidationError("mode", string(mode), "must be one of auto, concurrent, sequential")
	}
}

// validate checks the option combinations shared by both executor kinds.
// Configuration errors fail fast, before any task runs.
func (o Options[R]) validate(hasFn bool, needConcurrency bool) error {
	if !hasFn {
		return util.NewValidationError("fn", nil, "task function is required")
	}
	if needConcurrency && o.Concurrency <= 0 {
		return util.NewValidationError("concurrency", o.Concurrency, "must be greater than zero")
	}
	if o.MaxRetries < 0 {
		return util.NewValidationError("maxRetries", o.MaxRetries, "must not be negative")
	}
	return nil
}

// logger returns the configured logger or the process default.
func (o Options[R]) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

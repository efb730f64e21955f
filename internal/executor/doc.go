// Package executor provides the shared bounded-concurrency task executor
// used by bulk operations across the platform: running an evaluator or LLM
// call over thousands of dataset rows, replaying traces, exporting records.
//
// The package implements two executor kinds with identical semantics — a
// worker-pool ConcurrentExecutor and a strictly ordered SequentialExecutor —
// plus per-task retry budgets, deterministic output ordering, graceful
// degradation to a fallback value on permanent failure, and cooperative
// cancellation.
//
// # Key Guarantees
//
//   - Bounded concurrency (at most Concurrency tasks in flight)
//   - Outputs[i] and Records[i] always describe inputs[i], regardless of
//     completion order
//   - len(Outputs) == len(Records) == len(inputs), regardless of failure
//     or cancellation
//   - Up to MaxRetries+1 immediate attempts per task; every attempt error
//     is captured in the task's record
//   - Per-task failures never propagate out of Execute; callers inspect
//     the records to detect degraded results
//
// # Basic Usage
//
// Construct an executor for a task function and drive inputs through it:
//
//	exec, err := executor.NewConcurrent(classify, executor.Options[string]{
//	    Concurrency: 10,
//	    MaxRetries:  2,
//	    Fallback:    "NOT_PARSABLE",
//	})
//	if err != nil {
//	    return err
//	}
//
//	rs := exec.Execute(ctx, rows)
//	for i, rec := range rs.Records {
//	    if rec.Status == executor.StatusFailed {
//	        log.Printf("row %d failed after %d attempts", i, rec.Attempts())
//	    }
//	}
//
// # Statuses
//
// Each task ends in exactly one terminal status: COMPLETED (first-try
// success), COMPLETED_WITH_RETRIES, FAILED (budget exhausted, output is the
// fallback value), or DID_NOT_RUN (never started because a prior failure or
// cancellation stopped dispatch). The status strings are a stable contract.
//
// # Early Stop and Cancellation
//
// With ExitOnError set, the first FAILED task stops further dispatch; with
// Concurrency > 1 the stop is best-effort, since tasks already in flight
// run to completion. Cancellation through the Execute context behaves the
// same way: it is polled between dispatch decisions and never preempts
// running work. Run installs a handler for the configured TerminationSignal
// for the duration of the call, translating the signal into cancellation.
//
// # Progress Reporting
//
// An optional Progress callback observes completed-task counts:
//
//	opts.Progress = func(done, total int) {
//	    fmt.Printf("\r%d/%d", done, total)
//	}
//
// # Choosing an Executor
//
// Select builds the right kind from an explicit Mode; ModeAuto picks the
// concurrent executor whenever Concurrency > 1. Both kinds satisfy the
// Executor interface.
package executor

package executor

import (
	"time"
)

// ExecutionStatus is the terminal status of a single task.
// The values are a stable contract: calling code branches on them and
// serialized reports embed them verbatim.
type ExecutionStatus string

const (
	// StatusCompleted means the task succeeded on its first attempt.
	StatusCompleted ExecutionStatus = "COMPLETED"

	// StatusCompletedWithRetries means the task succeeded after one or
	// more failed attempts.
	StatusCompletedWithRetries ExecutionStatus = "COMPLETED_WITH_RETRIES"

	// StatusFailed means every attempt failed and the retry budget is
	// exhausted; the task's output is the configured fallback value.
	StatusFailed ExecutionStatus = "FAILED"

	// StatusDidNotRun means the task function was never invoked, either
	// because a prior failure stopped dispatch (ExitOnError) or because
	// the run was cancelled before the task started.
	StatusDidNotRun ExecutionStatus = "DID_NOT_RUN"
)

// Succeeded reports whether the status represents a successful outcome.
func (s ExecutionStatus) Succeeded() bool {
	return s == StatusCompleted || s == StatusCompletedWithRetries
}

// ExecutionRecord is the per-task outcome: terminal status, the error from
// each failed attempt (in attempt order), and how long the attempt loop took.
// A record is written exactly once, by the worker that owns the task's index,
// and never revisited afterward.
type ExecutionRecord struct {
	// Status is the terminal status of the task.
	Status ExecutionStatus

	// Errors holds one entry per failed attempt, in order. Empty for a
	// first-try success and for tasks that never ran.
	Errors []error

	// Duration covers the task's entire attempt loop, retries included.
	// Zero for tasks that never ran.
	Duration time.Duration
}

// Attempts returns how many times the task function was invoked for this task.
func (r ExecutionRecord) Attempts() int {
	switch r.Status {
	case StatusDidNotRun:
		return 0
	case StatusFailed:
		return len(r.Errors)
	default:
		return len(r.Errors) + 1
	}
}

// Seconds returns the task duration as float seconds.
func (r ExecutionRecord) Seconds() float64 {
	return r.Duration.Seconds()
}

// ResultSet holds the outputs and records of a run, index-aligned with the
// inputs: Outputs[i] and Records[i] always describe inputs[i], and
// len(Outputs) == len(Records) == len(inputs) regardless of failures or
// cancellation.
type ResultSet[R any] struct {
	Outputs []R
	Records []ExecutionRecord
}

// newResultSet builds a result set with every slot pre-finalized as
// DID_NOT_RUN with the fallback output. Workers overwrite the slots of the
// tasks they actually run; anything the run never reaches keeps its default.
func newResultSet[R any](n int, fallback R) ResultSet[R] {
	rs := ResultSet[R]{
		Outputs: make([]R, n),
		Records: make([]ExecutionRecord, n),
	}
	for i := range rs.Records {
		rs.Outputs[i] = fallback
		rs.Records[i] = ExecutionRecord{Status: StatusDidNotRun}
	}
	return rs
}

// Len returns the number of tasks in the result set.
func (rs ResultSet[R]) Len() int {
	return len(rs.Records)
}

// Statuses returns the per-task statuses in input order.
func (rs ResultSet[R]) Statuses() []ExecutionStatus {
	statuses := make([]ExecutionStatus, len(rs.Records))
	for i, r := range rs.Records {
		statuses[i] = r.Status
	}
	return statuses
}

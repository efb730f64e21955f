package executor

import (
	"context"
	"time"
)

// runAttempts drives one task through its attempt loop: up to maxRetries+1
// invocations, retrying immediately on failure. The loop does not poll for
// cancellation between attempts; retries belong to a task that has already
// been dispatched.
func runAttempts[V, R any](ctx context.Context, fn TaskFunc[V, R], input V, maxRetries int, fallback R) (R, ExecutionRecord) {
	start := time.Now()

	var errs []error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		out, err := fn(ctx, input)
		if err == nil {
			status := StatusCompleted
			if attempt > 0 {
				status = StatusCompletedWithRetries
			}
			return out, ExecutionRecord{
				Status:   status,
				Errors:   errs,
				Duration: time.Since(start),
			}
		}
		errs = append(errs, err)
	}

	return fallback, ExecutionRecord{
		Status:   StatusFailed,
		Errors:   errs,
		Duration: time.Since(start),
	}
}

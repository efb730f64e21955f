// Package runner ties a dataset, a target, and an executor together into a
// bulk run and produces an exportable report.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Arize-ai/phoenix-sub007/internal/dataset"
	"github.com/Arize-ai/phoenix-sub007/internal/executor"
	"github.com/Arize-ai/phoenix-sub007/internal/target"
	"github.com/Arize-ai/phoenix-sub007/internal/util"
)

// Job describes one bulk run: which rows to post, where, and how hard to
// push.
type Job struct {
	// Rows are the dataset examples to run.
	Rows []dataset.Row

	// Client is the target endpoint payloads are posted to.
	Client *target.Client

	// Mode selects the executor kind; empty means auto.
	Mode executor.Mode

	// Concurrency is the maximum number of rows in flight at once.
	Concurrency int

	// MaxRetries is the per-row retry budget.
	MaxRetries int

	// ExitOnError stops dispatching new rows after the first permanent
	// failure.
	ExitOnError bool

	// Progress, when non-nil, is called after each row finalizes.
	Progress func(completed, total int)

	// Logger for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Report is the outcome of one bulk run.
type Report struct {
	// RunID uniquely identifies the run.
	RunID string

	// Target is the name of the endpoint the run posted to.
	Target string

	// Started is when the run began.
	Started time.Time

	// Elapsed is the wall-clock duration of the whole run.
	Elapsed time.Duration

	// Results holds the raw response per row, index-aligned with the
	// input rows.
	Results executor.ResultSet[json.RawMessage]

	// Summary aggregates the per-row records.
	Summary executor.Summary
}

// RowResult is one line of an exported report.
type RowResult struct {
	RunID    string          `json:"run_id"`
	Target   string          `json:"target"`
	Index    int             `json:"index"`
	RowID    string          `json:"row_id,omitempty"`
	Status   string          `json:"status"`
	Attempts int             `json:"attempts"`
	Duration float64         `json:"duration_seconds"`
	Errors   []string        `json:"errors,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
}

// Run executes the job: each row is marshaled to JSON and posted to the
// target, with the executor providing bounded concurrency, retries, and
// cooperative cancellation. Row-level failures are contained in the report;
// Run itself fails only on configuration errors.
func (j *Job) Run(ctx context.Context) (*Report, error) {
	logger := j.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if j.Client == nil {
		return nil, util.NewValidationError("client", nil, "target client is required")
	}

	runID := uuid.NewString()
	logger = logger.With("run_id", runID, "target", j.Client.Name)

	task := func(ctx context.Context, row dataset.Row) (json.RawMessage, error) {
		payload, err := json.Marshal(row.Values)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal row %s: %w", row.ID, err)
		}
		return j.Client.Invoke(ctx, payload)
	}

	exec, err := executor.Select(task, j.Mode, executor.Options[json.RawMessage]{
		Concurrency: j.Concurrency,
		MaxRetries:  j.MaxRetries,
		ExitOnError: j.ExitOnError,
		Progress:    j.Progress,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("starting bulk run",
		"rows", len(j.Rows),
		"concurrency", j.Concurrency,
		"max_retries", j.MaxRetries,
		"exit_on_error", j.ExitOnError)

	started := time.Now()
	results := exec.Execute(ctx, j.Rows)
	elapsed := time.Since(started)

	summary := executor.Summarize(results.Records)
	logger.Info("bulk run finished",
		"elapsed", elapsed.Round(time.Millisecond),
		"summary", summary.String())

	return &Report{
		RunID:   runID,
		Target:  j.Client.Name,
		Started: started,
		Elapsed: elapsed,
		Results: results,
		Summary: summary,
	}, nil
}

// RowResults flattens the report into one exportable record per row. The
// rows argument supplies the per-row IDs and must be the same slice the job
// ran over.
func (r *Report) RowResults(rows []dataset.Row) []RowResult {
	out := make([]RowResult, 0, r.Results.Len())
	for i, rec := range r.Results.Records {
		rr := RowResult{
			RunID:    r.RunID,
			Target:   r.Target,
			Index:    i,
			Status:   string(rec.Status),
			Attempts: rec.Attempts(),
			Duration: rec.Seconds(),
		}
		if i < len(rows) {
			rr.RowID = rows[i].ID
		}
		for _, err := range rec.Errors {
			rr.Errors = append(rr.Errors, err.Error())
		}
		if rec.Status.Succeeded() {
			rr.Response = r.Results.Outputs[i]
		}
		out = append(out, rr)
	}
	return out
}

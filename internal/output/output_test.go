package output

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/Arize-ai/phoenix-sub007/internal/dataset"
	"github.com/Arize-ai/phoenix-sub007/internal/executor"
	"github.com/Arize-ai/phoenix-sub007/internal/runner"
)

// sampleReport builds a report covering every terminal status.
func sampleReport() (*runner.Report, []dataset.Row) {
	records := []executor.ExecutionRecord{
		{Status: executor.StatusCompleted, Duration: 120 * time.Millisecond},
		{
			Status:   executor.StatusCompletedWithRetries,
			Errors:   []error{errors.New("attempt 1: 503")},
			Duration: 250 * time.Millisecond,
		},
		{
			Status:   executor.StatusFailed,
			Errors:   []error{errors.New("attempt 1: 400"), errors.New("attempt 2: 400")},
			Duration: 90 * time.Millisecond,
		},
		{Status: executor.StatusDidNotRun},
	}

	outputs := []json.RawMessage{
		json.RawMessage(`{"score":0.9}`),
		json.RawMessage(`{"score":0.7}`),
		nil,
		nil,
	}

	rows := []dataset.Row{
		{ID: "row-a", Values: map[string]any{"input": "a"}},
		{ID: "row-b", Values: map[string]any{"input": "b"}},
		{ID: "row-c", Values: map[string]any{"input": "c"}},
		{ID: "row-d", Values: map[string]any{"input": "d"}},
	}

	return &runner.Report{
		RunID:   "run-123",
		Target:  "staging",
		Started: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Elapsed: 460 * time.Millisecond,
		Results: executor.ResultSet[json.RawMessage]{Outputs: outputs, Records: records},
		Summary: executor.Summarize(records),
	}, rows
}

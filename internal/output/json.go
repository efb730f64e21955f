package output

import (
	"encoding/json"
	"io"

	"github.com/Arize-ai/phoenix-sub007/internal/dataset"
	"github.com/Arize-ai/phoenix-sub007/internal/runner"
	"github.com/Arize-ai/phoenix-sub007/internal/target"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// Format outputs a single data item as JSON
func (f *JSONFormatter) Format(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// FormatReport outputs a run report as a single JSON document
func (f *JSONFormatter) FormatReport(w io.Writer, report *runner.Report, rows []dataset.Row) error {
	doc := map[string]interface{}{
		"run_id":  report.RunID,
		"target":  report.Target,
		"started": report.Started,
		"elapsed": report.Elapsed.String(),
		"summary": map[string]interface{}{
			"total":       report.Summary.Total,
			"completed":   report.Summary.Completed,
			"retried":     report.Summary.Retried,
			"failed":      report.Summary.Failed,
			"did_not_run": report.Summary.DidNotRun,
		},
		"results": report.RowResults(rows),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// FormatHealth outputs target health check results as JSON
func (f *JSONFormatter) FormatHealth(w io.Writer, statuses []target.HealthStatus) error {
	output := make([]map[string]interface{}, len(statuses))

	for i, status := range statuses {
		item := map[string]interface{}{
			"target":  status.TargetName,
			"healthy": status.Healthy,
		}
		if status.Healthy {
			item["status_code"] = status.StatusCode
		} else if status.Error != nil {
			item["error"] = status.Error.Error()
		}
		output[i] = item
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

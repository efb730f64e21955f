package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Arize-ai/phoenix-sub007/internal/dataset"
	"github.com/Arize-ai/phoenix-sub007/internal/runner"
	"github.com/Arize-ai/phoenix-sub007/internal/target"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	options *Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(opts *Options) *YAMLFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &YAMLFormatter{
		options: opts,
	}
}

// Format outputs a single data item as YAML
func (f *YAMLFormatter) Format(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(data)
}

// FormatReport outputs a run report as a single YAML document
func (f *YAMLFormatter) FormatReport(w io.Writer, report *runner.Report, rows []dataset.Row) error {
	results := make([]map[string]interface{}, 0, report.Results.Len())
	for _, rr := range report.RowResults(rows) {
		item := map[string]interface{}{
			"index":    rr.Index,
			"status":   rr.Status,
			"attempts": rr.Attempts,
			"duration": rr.Duration,
		}
		if rr.RowID != "" {
			item["row_id"] = rr.RowID
		}
		if len(rr.Errors) > 0 {
			item["errors"] = rr.Errors
		}
		if rr.Response != nil {
			item["response"] = string(rr.Response)
		}
		results = append(results, item)
	}

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
		"results": results,
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(doc)
}

// FormatHealth outputs target health check results as YAML
func (f *YAMLFormatter) FormatHealth(w io.Writer, statuses []target.HealthStatus) error {
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

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(output)
}

package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/Arize-ai/phoenix-sub007/internal/dataset"
	"github.com/Arize-ai/phoenix-sub007/internal/executor"
	"github.com/Arize-ai/phoenix-sub007/internal/runner"
	"github.com/Arize-ai/phoenix-sub007/internal/target"
)

// TableFormatter formats output as a table
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// Format outputs a single data item as a table
func (f *TableFormatter) Format(w io.Writer, data interface{}) error {
	table := f.createTable(w)

	switch v := data.(type) {
	case map[string]interface{}:
		return f.formatMap(table, v)
	case []map[string]interface{}:
		return f.formatMapSlice(table, v)
	case string:
		fmt.Fprintln(w, v)
		return nil
	default:
		// Fallback to simple string representation
		fmt.Fprintln(w, v)
		return nil
	}
}

// FormatReport outputs a run report as a per-row table with a summary footer
func (f *TableFormatter) FormatReport(w io.Writer, report *runner.Report, rows []dataset.Row) error {
	if report.Results.Len() == 0 {
		fmt.Fprintln(w, "No results")
		return nil
	}

	colors := NewColorScheme(w, f.options.NoColor)

	table := f.createTable(w)

	headers := []string{"INDEX", "ID", "STATUS", "ATTEMPTS", "DURATION"}
	if f.options.Wide {
		headers = append(headers, "ERROR")
	}
	f.setHeaders(table, headers, colors)

	for i, rec := range report.Results.Records {
		rowID := ""
		if i < len(rows) {
			rowID = rows[i].ID
		}

		status := string(rec.Status)
		if !colors.Disabled {
			status = colors.StatusColor(rec.Status)(status)
		}

		duration := rec.Duration.Round(time.Millisecond).String()
		if rec.Status == executor.StatusDidNotRun {
			duration = "-"
		} else if !colors.Disabled {
			duration = colors.Duration(duration)
		}

		row := []string{
			fmt.Sprintf("%d", i),
			rowID,
			status,
			fmt.Sprintf("%d", rec.Attempts()),
			duration,
		}

		if f.options.Wide {
			errStr := ""
			if len(rec.Errors) > 0 {
				errStr = truncate(rec.Errors[len(rec.Errors)-1].Error(), 50)
			}
			row = append(row, errStr)
		}

		table.Append(row)
	}

	table.Render()

	f.printSummary(w, report, colors)

	return nil
}

// FormatHealth outputs target health check results as a table
func (f *TableFormatter) FormatHealth(w io.Writer, statuses []target.HealthStatus) error {
	if len(statuses) == 0 {
		fmt.Fprintln(w, "No targets")
		return nil
	}

	colors := NewColorScheme(w, f.options.NoColor)

	table := f.createTable(w)
	f.setHeaders(table, []string{"TARGET", "HEALTHY", "DETAIL"}, colors)

	for _, status := range statuses {
		name := status.TargetName
		if !colors.Disabled {
			name = colors.TargetName(name)
		}

		healthy := "Yes"
		detail := fmt.Sprintf("HTTP %d", status.StatusCode)
		if !status.Healthy {
			healthy = "No"
			detail = ""
			if status.Error != nil {
				detail = truncate(status.Error.Error(), 60)
			}
		}
		if !colors.Disabled {
			if status.Healthy {
				healthy = colors.Success(healthy)
			} else {
				healthy = colors.Error(healthy)
			}
		}

		table.Append([]string{name, healthy, detail})
	}

	table.Render()
	return nil
}

// setHeaders applies headers unless disabled, coloring them when possible
func (f *TableFormatter) setHeaders(table *tablewriter.Table, headers []string, colors *ColorScheme) {
	if f.options.NoHeaders {
		return
	}
	if colors.Disabled {
		table.SetHeader(headers)
		return
	}
	colored := make([]string, len(headers))
	for i, h := range headers {
		colored[i] = colors.Header(h)
	}
	table.SetHeader(colored)
}

// formatMap formats a map as a two-column table (key-value pairs)
func (f *TableFormatter) formatMap(table *tablewriter.Table, data map[string]interface{}) error {
	if !f.options.NoHeaders {
		table.SetHeader([]string{"KEY", "VALUE"})
	}

	for k, v := range data {
		table.Append([]string{k, fmt.Sprintf("%v", v)})
	}

	table.Render()
	return nil
}

// formatMapSlice formats a slice of maps as a table
func (f *TableFormatter) formatMapSlice(table *tablewriter.Table, data []map[string]interface{}) error {
	if len(data) == 0 {
		return nil
	}

	// Extract headers from the first map
	var headers []string
	for k := range data[0] {
		headers = append(headers, strings.ToUpper(k))
	}

	if !f.options.NoHeaders {
		table.SetHeader(headers)
	}

	for _, item := range data {
		var row []string
		for _, h := range headers {
			key := strings.ToLower(h)
			row = append(row, fmt.Sprintf("%v", item[key]))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// createTable creates a new table with borderless, tab-padded configuration
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	// borderless, tab-padded configuration
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return table
}

// printSummary prints the run summary footer
func (f *TableFormatter) printSummary(w io.Writer, report *runner.Report, colors *ColorScheme) {
	s := report.Summary

	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Run %s against %s in %s\n",
		report.RunID, report.Target, report.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "Summary: ")

	completedText := fmt.Sprintf("%d completed", s.Completed)
	if !colors.Disabled {
		completedText = colors.Success(completedText)
	}

	retriedText := fmt.Sprintf("%d retried", s.Retried)
	if !colors.Disabled && s.Retried > 0 {
		retriedText = colors.Warning(retriedText)
	}

	failedText := fmt.Sprintf("%d failed", s.Failed)
	if !colors.Disabled && s.Failed > 0 {
		failedText = colors.Error(failedText)
	}

	skippedText := fmt.Sprintf("%d did not run", s.DidNotRun)
	if !colors.Disabled && s.DidNotRun > 0 {
		skippedText = colors.Muted(skippedText)
	}

	fmt.Fprintf(w, "%s, %s, %s, %s\n", completedText, retriedText, failedText, skippedText)

	if s.Total > s.DidNotRun {
		latency := fmt.Sprintf("Latency: avg=%s p50=%s p95=%s p99=%s max=%s",
			s.AvgDuration.Round(time.Millisecond),
			s.P50.Round(time.Millisecond),
			s.P95.Round(time.Millisecond),
			s.P99.Round(time.Millisecond),
			s.MaxDuration.Round(time.Millisecond))
		if !colors.Disabled {
			latency = colors.Duration(latency)
		}
		fmt.Fprintln(w, latency)
	}
}

// truncate shortens a string to at most n characters
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// Package output provides formatters for displaying bulk run results.
//
// The package supports multiple output formats (table, JSON, YAML) and
// provides a unified interface for rendering run reports and target health
// listings.
//
// # Features
//
//   - Multiple output formats: table, JSON, and YAML
//   - Color support with automatic TTY detection
//   - Configurable options (no-color, no-headers, wide mode)
//   - Per-row status rendering with a summary footer
//
// # Basic Usage
//
//	// Create a table formatter
//	formatter := output.NewFormatter(output.FormatTable)
//
//	// Format single data item
//	data := map[string]interface{}{"key": "value"}
//	formatter.Format(os.Stdout, data)
//
//	// Format a run report
//	formatter.FormatReport(os.Stdout, report, rows)
//
// # Options
//
// Formatters can be configured with functional options:
//
//	formatter := output.NewFormatter(
//	    output.FormatTable,
//	    output.WithNoColor(true),
//	    output.WithWide(true),
//	)
//
// # Formatters
//
// Table Formatter:
//   - Borderless tables with tab-separated columns
//   - Per-row status coloring and a summary footer with latency percentiles
//   - Wide mode adds an ERROR column with the last attempt's error
//
// JSON Formatter:
//   - Clean, indented JSON output
//   - Suitable for scripting and automation
//
// YAML Formatter:
//   - Human-readable YAML output
//   - Proper indentation and formatting
//
// # Color Support
//
// Colors are automatically enabled for TTY outputs and can be disabled with:
//   - WithNoColor(true) option
//   - Non-TTY output (pipes, redirects)
//
// Color scheme:
//   - Target names: Cyan, Bold
//   - COMPLETED: Green
//   - COMPLETED_WITH_RETRIES: Yellow
//   - FAILED: Red, Bold
//   - DID_NOT_RUN: Faint
//   - Headers: White, Bold
//   - Durations: Blue
package output

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arize-ai/phoenix-sub007/internal/util"
)

// newExportCmd creates the export command
func newExportCmd() *cobra.Command {
	var (
		datasetFile string
		outFile     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run a dataset and export the report as JSON lines",
		Long: `Run every row of a dataset against a target endpoint and write the
per-row results as JSON lines, one record per row in input order.

The exported file carries the run ID, per-row status, attempt count,
duration, errors, and the raw response for successful rows.`,
		Example: `  # Run and export to a file
  pxbulk export -f examples.jsonl -O results.jsonl

  # Export to stdout
  pxbulk export -f examples.jsonl -O -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, datasetFile, outFile)
		},
	}

	cmd.Flags().StringVarP(&datasetFile, "file", "f", "", "dataset file (.jsonl, .ndjson or .csv)")
	cmd.Flags().StringVarP(&outFile, "out", "O", "", "output file ('-' for stdout)")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("out")

	return cmd
}

func runExport(cmd *cobra.Command, datasetFile, outFile string) error {
	report, rows, err := executeRun(cmd, datasetFile)
	if err != nil {
		return fmt.Errorf("%s", util.FriendlyError(err))
	}

	out := os.Stdout
	if outFile != "-" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := report.WriteJSONL(out, rows); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if outFile != "-" {
		fmt.Fprintf(os.Stderr, "Wrote %d results to %s (%s)\n",
			report.Results.Len(), outFile, report.Summary.String())
	}

	if report.Summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d rows failed",
			util.ErrRunAborted, report.Summary.Failed, report.Summary.Total)
	}

	return nil
}

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Arize-ai/phoenix-sub007/internal/config"
	"github.com/Arize-ai/phoenix-sub007/internal/dataset"
	"github.com/Arize-ai/phoenix-sub007/internal/executor"
	"github.com/Arize-ai/phoenix-sub007/internal/output"
	"github.com/Arize-ai/phoenix-sub007/internal/runner"
	"github.com/Arize-ai/phoenix-sub007/internal/target"
	"github.com/Arize-ai/phoenix-sub007/internal/util"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var datasetFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a dataset against a target endpoint",
		Long: `Run every row of a dataset against a target endpoint.

Rows are posted as JSON with bounded concurrency and per-row retries.
The report is printed in the selected output format; the command exits
non-zero when any row ends in FAILED.`,
		Example: `  # Run a JSONL dataset against the default target
  pxbulk run -f examples.jsonl

  # Run against a named target with 10 rows in flight
  pxbulk run -f examples.jsonl --target staging -c 10

  # Retry transient failures, stop on the first permanent one
  pxbulk run -f examples.jsonl --max-retries 2 --exit-on-error

  # Strictly ordered, one row at a time
  pxbulk run -f examples.csv --sequential`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, datasetFile)
		},
	}

	cmd.Flags().StringVarP(&datasetFile, "file", "f", "", "dataset file (.jsonl, .ndjson or .csv)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runRun(cmd *cobra.Command, datasetFile string) error {
	report, rows, err := executeRun(cmd, datasetFile)
	if err != nil {
		return fmt.Errorf("%s", util.FriendlyError(err))
	}

	formatter := output.NewFormatter(
		output.Format(viper.GetString("output")),
		output.WithNoColor(viper.GetBool("no-color")),
		output.WithWide(viper.GetBool("verbose")),
	)
	if err := formatter.FormatReport(os.Stdout, report, rows); err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if report.Summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d rows failed",
			util.ErrRunAborted, report.Summary.Failed, report.Summary.Total)
	}

	return nil
}

// executeRun loads the dataset, resolves the target, and runs the job. It is
// shared by the run and export commands.
func executeRun(cmd *cobra.Command, datasetFile string) (*runner.Report, []dataset.Row, error) {
	logger := slog.Default()

	rows, err := dataset.Read(datasetFile)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, util.NewValidationError("file", datasetFile, "dataset is empty")
	}
	logger.Debug("loaded dataset", "file", datasetFile, "rows", len(rows))

	cfgManager := config.NewManager(cfgFile)
	if _, err := cfgManager.Load(); err != nil {
		return nil, nil, err
	}

	targets := target.NewManager(cfgManager, viper.GetDuration("timeout"), logger)
	client, err := targets.Resolve(viper.GetString("target"))
	if err != nil {
		return nil, nil, err
	}

	mode := executor.ModeAuto
	if viper.GetBool("sequential") {
		mode = executor.ModeSequential
	}

	job := &runner.Job{
		Rows:        rows,
		Client:      client,
		Mode:        mode,
		Concurrency: viper.GetInt("concurrency"),
		MaxRetries:  viper.GetInt("max-retries"),
		ExitOnError: viper.GetBool("exit-on-error"),
		Logger:      logger,
		Progress: func(completed, total int) {
			logger.Debug("progress", "completed", completed, "total", total)
		},
	}

	report, err := job.Run(cmd.Context())
	if err != nil {
		return nil, nil, err
	}

	return report, rows, nil
}

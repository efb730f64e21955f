package target

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Arize-ai/phoenix-sub007/internal/config"
	"github.com/Arize-ai/phoenix-sub007/internal/output"
	"github.com/Arize-ai/phoenix-sub007/internal/target"
)

// newPingCmd creates the target ping command
func newPingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping [NAME]",
		Short: "Health check targets",
		Long: `Health check endpoint targets.

With a name, pings that single target; without one, pings every enabled
target concurrently. A target counts as healthy when it answers at all,
regardless of status code; only transport failures mark it unhealthy.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runPing(cmd, name)
		},
	}

	return cmd
}

func runPing(cmd *cobra.Command, name string) error {
	logger := slog.Default()

	cfgPath, _ := cmd.Flags().GetString("config")
	manager := config.NewManager(cfgPath)
	if _, err := manager.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	targets := target.NewManager(manager, viper.GetDuration("timeout"), logger)
	defer targets.Close()

	var statuses []target.HealthStatus
	if name != "" {
		client, err := targets.Resolve(name)
		if err != nil {
			return err
		}
		statuses = []target.HealthStatus{client.Ping(cmd.Context())}
	} else {
		statuses = targets.PingAll(cmd.Context())
	}

	formatter := output.NewFormatter(
		output.Format(viper.GetString("output")),
		output.WithNoColor(viper.GetBool("no-color")),
	)
	if err := formatter.FormatHealth(os.Stdout, statuses); err != nil {
		return err
	}

	for _, status := range statuses {
		if !status.Healthy {
			return fmt.Errorf("%d of %d targets unhealthy", countUnhealthy(statuses), len(statuses))
		}
	}
	return nil
}

func countUnhealthy(statuses []target.HealthStatus) int {
	n := 0
	for _, s := range statuses {
		if !s.Healthy {
			n++
		}
	}
	return n
}

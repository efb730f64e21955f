package target

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arize-ai/phoenix-sub007/internal/config"
	"github.com/Arize-ai/phoenix-sub007/internal/util"
)

// newRemoveCmd creates the target remove command
func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a target from the pxbulk configuration",
		Long: `Remove an endpoint target from the pxbulk configuration.

If the removed target was the default, the default is cleared and must
be set again with 'pxbulk target add --default'.`,
		Aliases: []string{"rm", "delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0])
		},
	}

	return cmd
}

func runRemove(cmd *cobra.Command, name string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	manager := config.NewManager(cfgPath)
	cfg, err := manager.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, exists := cfg.Targets[name]; !exists {
		return fmt.Errorf("%w: %q", util.ErrTargetNotFound, name)
	}

	manager.RemoveTargetConfig(name)
	if cfg.DefaultTarget == name {
		manager.SetDefaultTarget("")
		fmt.Fprintf(os.Stderr, "Removed target was the default; no default target is set now\n")
	}

	if err := manager.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Removed target %q\n", name)
	return nil
}

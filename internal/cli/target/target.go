// Package target provides the target management subcommands.
package target

import (
	"github.com/spf13/cobra"
)

// NewTargetCmd creates the target management command
func NewTargetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage endpoint targets",
		Long: `Manage endpoint targets in the pxbulk configuration.

This command provides subcommands for listing, adding, removing,
and health checking the endpoints bulk runs post to.`,
	}

	// Add subcommands
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newPingCmd())

	return cmd
}

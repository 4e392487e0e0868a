package states

import (
	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/config"
)

func New(root *config.Root) *cobra.Command {
	cfg := &config.States{Root: root}

	cmd := &cobra.Command{
		Use:   "states",
		Short: "Inspect project states",
	}

	// Subcommands
	cmd.AddCommand(
		newList(cfg),
	)

	return cmd
}

package labels

import (
	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/config"
)

func New(root *config.Root) *cobra.Command {
	cfg := &config.Labels{Root: root}

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Inspect project labels",
	}

	// Subcommands
	cmd.AddCommand(
		newList(cfg),
	)

	return cmd
}

package projects

import (
	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/config"
)

func New(root *config.Root) *cobra.Command {
	cfg := &config.Projects{Root: root}

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect workspace projects",
	}

	// Subcommands
	cmd.AddCommand(
		newList(cfg),
	)

	return cmd
}

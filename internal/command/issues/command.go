package issues

import (
	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/config"
)

func New(root *config.Root) *cobra.Command {
	cfg := &config.Issues{Root: root}

	cmd := &cobra.Command{
		Use:   "issues",
		Short: "Inspect and create issues",
	}

	// Subcommands
	cmd.AddCommand(
		newList(cfg),
		newGet(cfg),
		newCreate(cfg),
	)

	return cmd
}

package members

import (
	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/config"
)

func New(root *config.Root) *cobra.Command {
	cfg := &config.Members{Root: root}

	cmd := &cobra.Command{
		Use:   "members",
		Short: "Inspect project members",
	}

	// Subcommands
	cmd.AddCommand(
		newList(cfg),
	)

	return cmd
}

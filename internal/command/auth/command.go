package auth

import (
	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/config"
)

func New(root *config.Root) *cobra.Command {
	cfg := &config.Auth{Root: root}

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored API key",
	}

	// Subcommands
	cmd.AddCommand(
		newLogin(cfg),
		newStatus(cfg),
		newLogout(cfg),
	)

	return cmd
}

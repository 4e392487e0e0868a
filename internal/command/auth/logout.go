package auth

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/config"
)

func newLogout(auth *config.Auth) *cobra.Command {
	cfg := &config.AuthLogout{Auth: auth}

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(cfg, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runLogout(cfg *config.AuthLogout, out io.Writer) error {
	if err := cfg.AuthStore().Delete(); err != nil {
		return fmt.Errorf("failed to remove stored API key: %w", err)
	}
	fmt.Fprintln(out, "Stored API key removed.")
	return nil
}

package auth

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/auth"
	"github.com/planehq/plane-cli/internal/config"
)

func newStatus(authCfg *config.Auth) *cobra.Command {
	cfg := &config.AuthStatus{Auth: authCfg}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether an API key is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cfg, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runStatus(cfg *config.AuthStatus, out io.Writer) error {
	key, source, err := cfg.AuthStore().APIKey()
	if err != nil {
		return err
	}
	if source == auth.SourceNone {
		fmt.Fprintln(out, "No API key stored. Run \"plane auth login\" to store one.")
		return nil
	}

	fmt.Fprintf(out, "API key: %s (from %s)\n", maskKey(key), source)
	return nil
}

func maskKey(key string) string {
	if len(key) <= 6 {
		return "..."
	}
	return key[:6] + "..."
}

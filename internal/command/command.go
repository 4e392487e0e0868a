// Package command assembles the plane CLI command tree.
package command

import (
	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/buildinfo"
	authcmd "github.com/planehq/plane-cli/internal/command/auth"
	"github.com/planehq/plane-cli/internal/command/issues"
	"github.com/planehq/plane-cli/internal/command/labels"
	"github.com/planehq/plane-cli/internal/command/members"
	"github.com/planehq/plane-cli/internal/command/projects"
	"github.com/planehq/plane-cli/internal/command/states"
	"github.com/planehq/plane-cli/internal/config"
)

func New() *cobra.Command {
	cfg := &config.Root{}

	cmd := &cobra.Command{
		Use:     "plane",
		Short:   "Command-line interface for Plane project management",
		Version: buildinfo.String(),

		// Errors are printed once by main with the error: prefix; most of
		// them are not usage related, so keep cobra quiet.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cfg.AddFlags(cmd)

	// Subcommands
	cmd.AddCommand(
		projects.New(cfg),
		issues.New(cfg),
		states.New(cfg),
		labels.New(cfg),
		members.New(cfg),
		authcmd.New(cfg),
	)

	return cmd
}

package states

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/config"
	"github.com/planehq/plane-cli/internal/print"
)

func newList(states *config.States) *cobra.Command {
	cfg := &config.StatesList{States: states}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List states in a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cfg.AddFlags(cmd)

	return cmd
}

func list(ctx context.Context, cfg *config.StatesList, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}
	workspace, err := cfg.WorkspaceSlug()
	if err != nil {
		return err
	}

	path := fmt.Sprintf("workspaces/%s/projects/%s/states/", workspace, cfg.Project)
	raw, err := cfg.Client.Get(ctx, path, nil)
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		return print.RawJSON(out, raw)
	}

	states, err := api.Results[api.State](raw)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		fmt.Fprintln(out, "No states found.")
		return nil
	}
	return printStateTable(out, states)
}

package projects

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/config"
	"github.com/planehq/plane-cli/internal/print"
)

func newList(projects *config.Projects) *cobra.Command {
	cfg := &config.ProjectsList{Projects: projects}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	return cmd
}

func list(ctx context.Context, cfg *config.ProjectsList, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}
	workspace, err := cfg.WorkspaceSlug()
	if err != nil {
		return err
	}

	raw, err := cfg.Client.Get(ctx, fmt.Sprintf("workspaces/%s/projects/", workspace), nil)
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		return print.RawJSON(out, raw)
	}

	projects, err := api.Results[api.Project](raw)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found.")
		return nil
	}
	return printProjectTable(out, projects)
}

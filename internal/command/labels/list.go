package labels

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/config"
	"github.com/planehq/plane-cli/internal/print"
)

func newList(labels *config.Labels) *cobra.Command {
	cfg := &config.LabelsList{Labels: labels}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels in a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cfg.AddFlags(cmd)

	return cmd
}

func list(ctx context.Context, cfg *config.LabelsList, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}
	workspace, err := cfg.WorkspaceSlug()
	if err != nil {
		return err
	}

	path := fmt.Sprintf("workspaces/%s/projects/%s/labels/", workspace, cfg.Project)
	raw, err := cfg.Client.Get(ctx, path, nil)
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		return print.RawJSON(out, raw)
	}

	labels, err := api.Results[api.Label](raw)
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		fmt.Fprintln(out, "No labels found.")
		return nil
	}
	return printLabelTable(out, labels)
}

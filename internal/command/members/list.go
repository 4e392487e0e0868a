package members

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/config"
	"github.com/planehq/plane-cli/internal/print"
)

func newList(members *config.Members) *cobra.Command {
	cfg := &config.MembersList{Members: members}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cfg.AddFlags(cmd)

	return cmd
}

func list(ctx context.Context, cfg *config.MembersList, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}
	workspace, err := cfg.WorkspaceSlug()
	if err != nil {
		return err
	}

	path := fmt.Sprintf("workspaces/%s/projects/%s/members/", workspace, cfg.Project)
	raw, err := cfg.Client.Get(ctx, path, nil)
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		return print.RawJSON(out, raw)
	}

	// This endpoint returns a bare array on some deployments and the usual
	// results wrapper on others.
	members, err := api.ResultsOrArray[api.Member](raw)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		fmt.Fprintln(out, "No members found.")
		return nil
	}
	return printMemberTable(out, members)
}

package issues

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/config"
	"github.com/planehq/plane-cli/internal/print"
)

func newList(issues *config.Issues) *cobra.Command {
	cfg := &config.IssuesList{Issues: issues}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues in a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cfg.AddFlags(cmd)

	return cmd
}

func list(ctx context.Context, cfg *config.IssuesList, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}
	workspace, err := cfg.WorkspaceSlug()
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("per_page", strconv.FormatUint(uint64(cfg.PerPage), 10))
	if cfg.State != "" {
		query.Set("state", cfg.State)
	}
	if cfg.Assignee != "" {
		query.Set("assignee", cfg.Assignee)
	}
	if cfg.Cursor != "" {
		query.Set("cursor", cfg.Cursor)
	}

	path := fmt.Sprintf("workspaces/%s/projects/%s/issues/", workspace, cfg.Project)
	raw, err := cfg.Client.Get(ctx, path, query)
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		return print.RawJSON(out, raw)
	}

	issues, err := api.Results[api.Issue](raw)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Fprintln(out, "No issues found.")
		return nil
	}
	return printIssueTable(out, issues)
}

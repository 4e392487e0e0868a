package issues

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/config"
	"github.com/planehq/plane-cli/internal/print"
)

func newGet(issues *config.Issues) *cobra.Command {
	cfg := &config.IssuesGet{Issues: issues}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a single issue by ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cfg.AddFlags(cmd)

	return cmd
}

func get(ctx context.Context, cfg *config.IssuesGet, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}
	workspace, err := cfg.WorkspaceSlug()
	if err != nil {
		return err
	}

	path := fmt.Sprintf("workspaces/%s/projects/%s/issues/%s/", workspace, cfg.Project, cfg.ID)
	raw, err := cfg.Client.Get(ctx, path, nil)
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		return print.RawJSON(out, raw)
	}

	var issue api.Issue
	if err := json.Unmarshal(raw, &issue); err != nil {
		return fmt.Errorf("unexpected response format: %w", err)
	}
	return printIssueDetails(out, &issue)
}

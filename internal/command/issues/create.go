package issues

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/config"
	"github.com/planehq/plane-cli/internal/print"
)

func newCreate(issues *config.Issues) *cobra.Command {
	cfg := &config.IssuesCreate{Issues: issues}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return create(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cfg.AddFlags(cmd)

	return cmd
}

func create(ctx context.Context, cfg *config.IssuesCreate, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return err
	}
	workspace, err := cfg.WorkspaceSlug()
	if err != nil {
		return err
	}

	// Only fields the caller supplied go on the wire; the omitempty tags
	// drop the rest.
	body := api.IssueCreateRequest{
		Name:            cfg.Title,
		DescriptionHTML: cfg.Description,
		State:           cfg.State,
		Priority:        string(cfg.Priority),
		Assignees:       cfg.Assignees,
		Labels:          cfg.Labels,
	}

	path := fmt.Sprintf("workspaces/%s/projects/%s/issues/", workspace, cfg.Project)
	raw, err := cfg.Client.Post(ctx, path, body)
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

	green := color.New(color.FgGreen, color.Bold)
	dim := color.New(color.Faint)
	fmt.Fprintf(out, "%s #%d %s\n", green.Sprint("Created"), issue.SequenceID, issue.Name)
	fmt.Fprintf(out, "  %s\n", dim.Sprint(issue.ID))
	return nil
}

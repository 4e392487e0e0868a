package config

import "github.com/spf13/cobra"

type Issues struct {
	*Root
}

type IssuesList struct {
	*Issues

	// Flags
	Project  string
	State    string
	Assignee string
	PerPage  uint32
	Cursor   string
}

func (c *IssuesList) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.Project, "project", "p", "", "project ID")
	cmd.Flags().StringVar(&c.State, "state", "", "filter by state ID")
	cmd.Flags().StringVar(&c.Assignee, "assignee", "", "filter by assignee ID")
	cmd.Flags().Uint32Var(&c.PerPage, "per-page", 50, "results per page")
	cmd.Flags().StringVar(&c.Cursor, "cursor", "", "pagination cursor from a previous response")
	cmd.MarkFlagRequired("project")
}

type IssuesGet struct {
	*Issues

	// Flags
	Project string
	ID      string
}

func (c *IssuesGet) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.Project, "project", "p", "", "project ID")
	cmd.Flags().StringVarP(&c.ID, "id", "i", "", "issue ID")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("id")
}

type IssuesCreate struct {
	*Issues

	// Flags
	Project     string
	Title       string
	Description string
	State       string
	Priority    Priority
	Assignees   []string
	Labels      []string
}

func (c *IssuesCreate) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.Project, "project", "p", "", "project ID")
	cmd.Flags().StringVar(&c.Title, "title", "", "issue title")
	cmd.Flags().StringVar(&c.Description, "description", "", "issue description (HTML)")
	cmd.Flags().StringVar(&c.State, "state", "", "state ID")
	cmd.Flags().Var(&c.Priority, "priority", "priority level (none|urgent|high|medium|low)")
	cmd.Flags().StringArrayVar(&c.Assignees, "assignee", nil, "assignee member ID (repeatable)")
	cmd.Flags().StringArrayVar(&c.Labels, "label", nil, "label ID (repeatable)")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("title")
}

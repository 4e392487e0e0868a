package issues

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/xeonx/timeago"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/tab"
)

type issueRow struct {
	Seq      int64  `tab:"#"`
	Name     string `tab:"NAME,trunc"`
	Priority string `tab:"PRIORITY"`
	ID       string `tab:"ID"`
}

func printIssueTable(out io.Writer, issues []api.Issue) error {
	t := tab.FromStruct[issueRow](out)
	t.AddHeader()
	for _, issue := range issues {
		name := issue.Name
		if name == "" {
			name = "(unnamed)"
		}
		t.AddRow(issueRow{
			Seq:      issue.SequenceID,
			Name:     name,
			Priority: priorityLabel(issue.Priority),
			ID:       issue.ID,
		})
	}
	return t.Flush()
}

func printIssueDetails(out io.Writer, issue *api.Issue) error {
	name := issue.Name
	if name == "" {
		name = "(unnamed)"
	}
	bold := color.New(color.Bold)
	fmt.Fprintf(out, "%s %s\n", bold.Sprintf("#%d", issue.SequenceID), bold.Sprint(name))

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  Priority:\t%s\n", priorityLabel(issue.Priority))
	fmt.Fprintf(tw, "  State:\t%s\n", issue.State)
	fmt.Fprintf(tw, "  Created:\t%s\n", formatCreated(issue.CreatedAt))
	if len(issue.Assignees) > 0 {
		fmt.Fprintf(tw, "  Assignees:\t%s\n", strings.Join(issue.Assignees, ", "))
	}
	if len(issue.Labels) > 0 {
		fmt.Fprintf(tw, "  Labels:\t%s\n", strings.Join(issue.Labels, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if issue.DescriptionHTML != "" {
		dim := color.New(color.Faint)
		fmt.Fprintf(out, "\n  %s\n", dim.Sprint(issue.DescriptionHTML))
	}
	return nil
}

func priorityLabel(priority string) string {
	if priority == "" {
		priority = "none"
	}
	switch priority {
	case "urgent":
		return color.New(color.FgRed).Sprint(priority)
	case "high":
		return color.New(color.FgYellow).Sprint(priority)
	case "medium":
		return color.New(color.FgBlue).Sprint(priority)
	default:
		return priority
	}
}

// formatCreated renders the raw timestamp with a relative suffix when it
// parses as RFC3339.
func formatCreated(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return fmt.Sprintf("%s (%s)", createdAt, timeago.NoMax(timeago.English).Format(t))
}

package api

// Resource models for the subset of fields the CLI renders. Responses are
// kept verbatim for --json output; these types only back the table views.

type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

type State struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Member struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type Issue struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	SequenceID      int64    `json:"sequence_id"`
	Priority        string   `json:"priority"`
	State           string   `json:"state"`
	CreatedAt       string   `json:"created_at"`
	Assignees       []string `json:"assignees"`
	Labels          []string `json:"labels"`
	DescriptionHTML string   `json:"description_html"`
}

// IssueCreateRequest is the POST body for creating an issue. Optional fields
// are omitted from the wire entirely when the caller did not supply them.
type IssueCreateRequest struct {
	Name            string   `json:"name"`
	DescriptionHTML string   `json:"description_html,omitempty"`
	State           string   `json:"state,omitempty"`
	Priority        string   `json:"priority,omitempty"`
	Assignees       []string `json:"assignees,omitempty"`
	Labels          []string `json:"labels,omitempty"`
}

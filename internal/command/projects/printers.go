package projects

import (
	"io"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/tab"
)

type projectRow struct {
	Name       string `tab:"NAME,trunc"`
	Identifier string `tab:"IDENTIFIER"`
	ID         string `tab:"ID"`
}

func printProjectTable(out io.Writer, projects []api.Project) error {
	t := tab.FromStruct[projectRow](out)
	t.AddHeader()
	for _, p := range projects {
		name := p.Name
		if name == "" {
			name = "(unnamed)"
		}
		t.AddRow(projectRow{Name: name, Identifier: p.Identifier, ID: p.ID})
	}
	return t.Flush()
}

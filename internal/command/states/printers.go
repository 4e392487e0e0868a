package states

import (
	"io"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/tab"
)

type stateRow struct {
	Name  string `tab:"NAME,trunc"`
	Group string `tab:"GROUP"`
	ID    string `tab:"ID"`
}

func printStateTable(out io.Writer, states []api.State) error {
	t := tab.FromStruct[stateRow](out)
	t.AddHeader()
	for _, s := range states {
		name := s.Name
		if name == "" {
			name = "(unnamed)"
		}
		t.AddRow(stateRow{Name: name, Group: s.Group, ID: s.ID})
	}
	return t.Flush()
}

package members

import (
	"io"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/tab"
)

type memberRow struct {
	Name string `tab:"NAME,trunc"`
	ID   string `tab:"ID"`
}

func printMemberTable(out io.Writer, members []api.Member) error {
	t := tab.FromStruct[memberRow](out)
	t.AddHeader()
	for _, m := range members {
		name := m.DisplayName
		if name == "" {
			name = "(unnamed)"
		}
		t.AddRow(memberRow{Name: name, ID: m.ID})
	}
	return t.Flush()
}

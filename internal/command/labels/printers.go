package labels

import (
	"io"

	"github.com/planehq/plane-cli/internal/api"
	"github.com/planehq/plane-cli/internal/tab"
)

type labelRow struct {
	Name string `tab:"NAME,trunc"`
	ID   string `tab:"ID"`
}

func printLabelTable(out io.Writer, labels []api.Label) error {
	t := tab.FromStruct[labelRow](out)
	t.AddHeader()
	for _, l := range labels {
		name := l.Name
		if name == "" {
			name = "(unnamed)"
		}
		t.AddRow(labelRow{Name: name, ID: l.ID})
	}
	return t.Flush()
}

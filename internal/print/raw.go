package print

import (
	"encoding/json"
	"io"
)

// RawJSON writes v as indented JSON. A json.RawMessage passes through with
// its content untouched apart from re-indentation.
func RawJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

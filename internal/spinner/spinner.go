// Package spinner displays a progress indicator while a request is
// outstanding. It is cosmetic: callers decide whether the destination is a
// terminal, and Stop clears the line without leaving a trace.
package spinner

import (
	"io"
	"time"

	"github.com/theckman/yacspin"
)

type T struct {
	*yacspin.Spinner
}

func New(out io.Writer, message string) *T {
	cfg := yacspin.Config{
		Writer:        out,
		Frequency:     100 * time.Millisecond,
		CharSet:       yacspin.CharSets[14],
		Message:       message,
		Suffix:        " ",
		StopCharacter: "",
	}
	s, err := yacspin.New(cfg)
	if err != nil {
		panic(err)
	}
	return &T{Spinner: s}
}

// Start creates a new spinner and starts it immediately.
func Start(out io.Writer, message string) *T {
	s := New(out, message)
	if err := s.Spinner.Start(); err != nil {
		panic(err)
	}
	return s
}

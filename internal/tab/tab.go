// Package tab renders aligned tables over text/tabwriter. Columns come from
// struct tags on the row type, e.g.
//
//	type row struct {
//		Name string `tab:"NAME"`
//		ID   string `tab:"ID,trunc"`
//	}
//
// Columns marked trunc are shortened to fit the terminal width.
package tab

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"golang.org/x/term"
)

const padding = 3

type column struct {
	field    string
	title    string
	truncate bool
}

type T[R any] struct {
	tw    *tabwriter.Writer
	cols  []column
	width int
}

// FromStruct builds a table writer from the tab tags of R's fields. Fields
// without a tag are skipped.
func FromStruct[R any](w io.Writer) *T[R] {
	var row R
	rowType := reflect.TypeOf(row)

	var cols []column
	for _, field := range reflect.VisibleFields(rowType) {
		tag := field.Tag.Get("tab")
		if tag == "" {
			continue
		}
		parts := strings.Split(tag, ",")
		col := column{field: field.Name, title: parts[0]}
		for _, attr := range parts[1:] {
			if attr == "trunc" {
				col.truncate = true
			}
		}
		cols = append(cols, col)
	}

	width, _, err := term.GetSize(0)
	if err != nil {
		width = 100
	}

	return &T[R]{
		tw:    tabwriter.NewWriter(w, 0, 0, padding, ' ', 0),
		cols:  cols,
		width: width,
	}
}

// SetTermSize overrides the detected terminal width, mainly for tests.
func (t *T[R]) SetTermSize(width, _ int) {
	t.width = width
}

func (t *T[R]) AddHeader() {
	titles := make([]string, len(t.cols))
	for i, col := range t.cols {
		titles[i] = col.title
	}
	fmt.Fprintln(t.tw, strings.Join(titles, "\t"))
}

func (t *T[R]) AddRow(row R) {
	val := reflect.ValueOf(row)
	limit := t.columnLimit()

	cells := make([]string, len(t.cols))
	for i, col := range t.cols {
		cell := fmt.Sprint(val.FieldByName(col.field).Interface())
		if col.truncate {
			cell = Truncate(cell, limit)
		}
		cells[i] = cell
	}
	fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

func (t *T[R]) Flush() error {
	return t.tw.Flush()
}

// columnLimit is the width budget for a truncatable column: an even share
// of the terminal minus inter-column padding, never below a readable floor.
func (t *T[R]) columnLimit() int {
	n := len(t.cols)
	if n == 0 {
		return 0
	}
	limit := t.width/n - padding
	if limit < 16 {
		limit = 16
	}
	return limit
}

// Truncate shortens s to at most limit runes, marking the cut with "..".
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	if limit <= 2 {
		return string(runes[:limit])
	}
	return string(runes[:limit-2]) + ".."
}

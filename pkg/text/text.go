// Package text provides small string helpers for single-line console layout.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// NormalizeSpace collapses whitespace runs into single spaces and trims the
// ends, so multiline values cannot break single-line layouts.
func NormalizeSpace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// Truncate shortens str to at most width terminal columns, appending "..."
// when anything was cut. Width is display width rather than byte length, so
// wide characters truncate cleanly.
func Truncate(str string, width int) string {
	if runewidth.StringWidth(str) <= width {
		return str
	}

	return runewidth.Truncate(str, width, "...")
}

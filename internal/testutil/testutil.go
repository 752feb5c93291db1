// Package testutil holds small helpers shared by the test suites.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes styling escape sequences so tests can assert on the
// plain text of rendered output.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines splits rendered output into trimmed-right lines.
func Lines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, len(raw))
	for i, line := range raw {
		out[i] = strings.TrimRight(line, " ")
	}
	return out
}

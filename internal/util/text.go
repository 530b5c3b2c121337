package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/folio/internal/config"
)

// Truncate shortens s to width cells, ANSI sequences excluded.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

// Wrap word-wraps s to width cells and returns the lines.
func Wrap(s string, width int) []string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return nil
	}
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens a string to the given number of cells, adding ellipsis
// if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || ansi.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return ansi.Truncate(value, limit, "")
	}
	return ansi.Truncate(value, limit, "...")
}

// truncateMiddle keeps both ends of value, which suits ids and tokens.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	width := ansi.StringWidth(value)
	if limit <= 0 || width <= limit {
		return value
	}
	if limit <= 3 {
		return ansi.Truncate(value, limit, "")
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return ansi.Truncate(value, prefix, "") + "…" + ansi.TruncateLeft(value, width-suffix, "")
}

// wrap breaks text into lines of at most width cells on word boundaries.
// A single word wider than width gets a line of its own.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	line := words[0]
	lineWidth := ansi.StringWidth(line)
	for _, w := range words[1:] {
		ww := ansi.StringWidth(w)
		if lineWidth+1+ww > width {
			lines = append(lines, line)
			line, lineWidth = w, ww
			continue
		}
		line += " " + w
		lineWidth += 1 + ww
	}
	return append(lines, line)
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// Package sysinfo - Formatting utilities
package sysinfo

import "github.com/mattn/go-runewidth"

// ellipsis is appended to labels cut by FitColumns.
const ellipsis = "…"

// FitColumns truncates a label so it occupies at most cols display columns.
//
// Parameters:
//   - s: The label to fit
//   - cols: Maximum display width in monospace cells; zero or less disables truncation
//
// Returns:
//   - The original string if it already fits
//   - A truncated string ending in "…" otherwise
//
// Width is measured with runewidth so East Asian wide runes in a host name
// count as two cells.
func FitColumns(s string, cols int) string {
	if cols <= 0 || runewidth.StringWidth(s) <= cols {
		return s
	}
	return runewidth.Truncate(s, cols, ellipsis)
}

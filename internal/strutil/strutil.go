// Package strutil provides additional string manipulation functions.
package strutil

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Limit truncates a string to a specific display width, accounting for
// ANSI codes.
func Limit(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// Repeat returns a string consisting of count copies of s.
// Unlike strings.Repeat, it returns an empty string if count is negative.
func Repeat(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

// Escape makes control characters visible for single-line display,
// replacing newlines, carriage returns and tabs with their escape
// sequences. Used when printing parsed values in tables.
func Escape(s string) string {
	r := strings.NewReplacer("\n", "\\n", "\r", "\\r", "\t", "\\t")
	return r.Replace(s)
}

// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderWidth is the horizontal space consumed by a panel border plus padding.
	BorderWidth = 4

	// MinContentWidth keeps quote text readable on very narrow terminals.
	MinContentWidth = 20

	// MaxContentWidth caps line length so long quotes stay comfortable to read.
	MaxContentWidth = 80
)

// ContentWidth returns the usable text width inside a panel for a terminal of width.
func ContentWidth(width int) int {
	return min(max(width-BorderWidth, MinContentWidth), MaxContentWidth)
}

package render

import (
	"os"

	"golang.org/x/term"
)

const (
	minBarWidth = 10
	maxBarWidth = 50
	// fixedColumnsWidth approximates the width taken by every column but
	// the bar on a typical listing.
	fixedColumnsWidth = 70
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled implements --color=auto: colors on a terminal unless NO_COLOR is set.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(f)
}

// AutoBarWidth sizes the usage bar to the terminal f is attached to.
func AutoBarWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultBarWidth
	}
	return barWidthFor(width)
}

func barWidthFor(termWidth int) int {
	w := termWidth - fixedColumnsWidth
	if w < minBarWidth {
		return minBarWidth
	}
	if w > maxBarWidth {
		return maxBarWidth
	}
	return w
}

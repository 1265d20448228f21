package ui

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
// Used to avoid prompting or animating when input or output is piped.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// FormatDuration renders d with one decimal of seconds, or in milliseconds below one second.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

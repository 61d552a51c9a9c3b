package ui

import (
	"fmt"
	"io"
)

// Pluralize returns the singular or plural form based on count
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// PrintUsage prints the one-time usage diagnostic for a bad selector.
func PrintUsage(w io.Writer, progName string) {
	fmt.Fprintf(w, "Usage: %s [-lwc] [filename ...]\n", progName)
}

// PrintCannotOpen prints the diagnostic for a file that failed to open.
func PrintCannotOpen(w io.Writer, progName, filename string) {
	fmt.Fprintf(w, "%s: cannot open file %s\n", progName, filename)
}

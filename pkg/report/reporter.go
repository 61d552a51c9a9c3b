package report

import (
	"fmt"
	"io"

	"github.com/tomekjarosik/wordcount/pkg/scanner"
	"github.com/tomekjarosik/wordcount/pkg/ui"
)

// Counter values are right-justified in fields this wide, no separators.
const fieldWidth = 8

// Reporter formats per-source count lines and accumulates cross-source
// totals for the final summary line.
type Reporter struct {
	selector Selector
	totals   scanner.Counts
}

// NewReporter creates a Reporter printing the counters named by sel.
func NewReporter(sel Selector) *Reporter {
	return &Reporter{selector: sel}
}

func (r *Reporter) printFields(w io.Writer, c scanner.Counts) {
	for _, f := range r.selector {
		var v int64
		switch f {
		case Lines:
			v = c.Lines
		case Words:
			v = c.Words
		case Chars:
			v = c.Chars
		}
		fmt.Fprintf(w, "%*d", fieldWidth, v)
	}
}

// PrintLine writes one per-source line: the selected counters, then
// either " <label>" or nothing, then a newline.
func (r *Reporter) PrintLine(w io.Writer, c scanner.Counts, label string) {
	r.printFields(w, c)
	if label != "" {
		fmt.Fprintf(w, " %s\n", label)
		return
	}
	fmt.Fprintln(w)
}

// Accumulate adds one source's counts into the running totals.
func (r *Reporter) Accumulate(c scanner.Counts) {
	r.totals.Add(c)
}

// Totals returns the accumulated counts across all sources so far.
func (r *Reporter) Totals() scanner.Counts {
	return r.totals
}

// PrintTotals writes the summary line. namedSources is the number of file
// arguments given on the command line; openedFiles is how many of them
// were successfully opened. With no named sources (a stdin run) the line
// ends with a bare newline, otherwise with " total in N file[s]" counting
// only the opened files.
func (r *Reporter) PrintTotals(w io.Writer, namedSources, openedFiles int) {
	r.printFields(w, r.totals)
	if namedSources == 0 {
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, " total in %d file%s\n", openedFiles, ui.Pluralize(openedFiles, "", "s"))
}

package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tomekjarosik/wordcount/pkg/report"
	"github.com/tomekjarosik/wordcount/pkg/scanner"
	"github.com/tomekjarosik/wordcount/pkg/ui"
)

// invocation is one parsed command line.
type invocation struct {
	silent   bool
	selector report.Selector
	invalid  string // unrecognized selector characters, in input order
	files    []string
}

// parseInvocation interprets the argument list. Only the first argument
// can be an option word: a leading '-' consumes it, an 's' immediately
// after the dash enables silent mode, and any remaining characters
// replace the default selector. Every later argument is a file name,
// even if it starts with '-'.
func parseInvocation(args []string) invocation {
	inv := invocation{selector: report.Default()}
	if len(args) > 0 && strings.HasPrefix(args[0], "-") {
		opt := args[0][1:]
		if strings.HasPrefix(opt, "s") {
			inv.silent = true
			opt = opt[1:]
		}
		if opt != "" {
			inv.selector, inv.invalid = report.Parse(opt)
		}
		args = args[1:]
	}
	inv.files = args
	return inv
}

func run(cmd *cobra.Command, args []string) Status {
	inv := parseInvocation(args)
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	var status Status
	if inv.invalid != "" {
		ui.PrintUsage(errOut, cmd.Root().Name())
		status |= StatusUsageError
	}

	sc := scanner.New()
	rep := report.NewReporter(inv.selector)

	if len(inv.files) == 0 {
		counts := sc.Count(cmd.InOrStdin())
		rep.Accumulate(counts)
		if !inv.silent {
			rep.PrintLine(out, counts, "")
		}
		if inv.silent {
			rep.PrintTotals(out, 0, 0)
		}
		return status
	}

	opened := 0
	for _, name := range inv.files {
		f, err := os.Open(name)
		if err != nil {
			ui.PrintCannotOpen(errOut, cmd.Root().Name(), name)
			status |= StatusCannotOpen
			continue
		}
		counts := sc.Count(f)
		f.Close()
		opened++
		rep.Accumulate(counts)
		if !inv.silent {
			label := ""
			if len(inv.files) > 1 {
				label = name
			}
			rep.PrintLine(out, counts, label)
		}
	}

	if len(inv.files) > 1 || inv.silent {
		rep.PrintTotals(out, len(inv.files), opened)
	}
	return status
}

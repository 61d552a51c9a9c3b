package cmd

import (
	"context"
	"errors"
	"fmt"

	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func InitializeCommands() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "wordcount [-[s]lwc] [filename ...]",
		Short: "Count lines, words and bytes in files",
		Long: `Wordcount counts lines, words and bytes (characters) in the named files,
or in standard input when no files are given.

An optional first argument selects which counters to print and in what
order: 'l' for lines, 'w' for words, 'c' for bytes (default "lwc").
A leading 's' in the option word enables silent mode, which suppresses
the per-file lines and prints only the summary.`,
		Args: cobra.ArbitraryArgs,
		// The option word is a single combined "-[s]lwc" argument, not a
		// set of flags; it is parsed by hand in run.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := run(cmd, args)
			if status != 0 {
				return &ExitError{Status: status}
			}
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

func Execute(rootCmd *cobra.Command) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Status))
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

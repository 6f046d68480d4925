// Command clozify adds Anki cloze markers to lightly structured markdown.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("clozify")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		flags     optionFlags
		verbosity int
		diff      bool
		write     bool
	)

	cmd := &cobra.Command{
		Use:   "clozify [file]",
		Short: "Add Anki cloze deletions to markdown notes",
		Long: `Add Anki cloze deletions to markdown notes.

List items of the form "front - back" (or "front = back") get their back
clozed. Code lines after a comment line are clozed as a group, up to the
next blank line. Each table data cell gets its own cloze.

Reads the given file, or stdin. Options come from the --config file, or the
nearest .clozify.yaml in the working directory or its parents, and are then
overridden by flags.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(1+verbosity, nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && len(args) == 0 {
				return errWriteNeedsFile
			}
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			out, err := clozifyInput(in, opts)
			if err != nil {
				return err
			}
			switch {
			case diff:
				return writeDiff(cmd.OutOrStdout(), in.text, out)
			case write:
				return writeFile(in.name, out)
			default:
				_, err := io.WriteString(cmd.OutOrStdout(), out)
				return err
			}
		},
	}

	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log more; repeat for more detail")
	flags.register(cmd)
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "print a line diff of the changes instead of the output")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place")
	cmd.MarkFlagsMutuallyExclusive("diff", "write")

	cmd.AddCommand(newTokensCmd())
	cmd.AddCommand(newTreeCmd())
	cmd.AddCommand(newConfigCmd(&flags))
	cmd.AddCommand(newPreviewCmd(&flags))
	return cmd
}

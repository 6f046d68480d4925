package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcorbin/clozedown/internal/cliutil"
	"github.com/jcorbin/clozedown/internal/scandown"
	"github.com/jcorbin/clozedown/internal/scantok"
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the parse tree of a file",
		Long: `Print the parse tree of a file: one numbered line per top level node,
with code lines and table cells indented below their block.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			toks, err := scantok.Tokenize(in.text)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			doc, err := scandown.Parse(toks)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			out := &cliutil.ErrWriter{Writer: cmd.OutOrStdout()}
			if len(doc.Nodes) > 0 || len(doc.Warnings) > 0 {
				fmt.Fprintf(out, "%+v\n", doc)
			}
			return out.Err
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcorbin/clozedown/internal/cliutil"
	"github.com/jcorbin/clozedown/internal/scantok"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a file, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			toks, err := scantok.Tokenize(in.text)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			out := &cliutil.ErrWriter{Writer: cmd.OutOrStdout()}
			for _, tok := range toks {
				fmt.Fprintf(out, "%+v\n", tok)
			}
			return out.Err
		},
	}
}

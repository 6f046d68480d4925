package main

import (
	"github.com/russross/blackfriday"
	"github.com/spf13/cobra"
)

func newPreviewCmd(flags *optionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [file]",
		Short: "Render the clozified file as HTML",
		Long: `Render the clozified file as HTML, roughly as a card editor would show it.
Cloze markers are left in place.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			html := blackfriday.Run([]byte(out), blackfriday.WithExtensions(blackfriday.CommonExtensions))
			_, err = cmd.OutOrStdout().Write(html)
			return err
		},
	}
}

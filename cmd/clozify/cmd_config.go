package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcorbin/clozedown/clozify"
	"github.com/jcorbin/clozedown/internal/cliutil"
)

func newConfigCmd(flags *optionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective options as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			data, err := clozify.MarshalOptions(opts)
			if err != nil {
				return err
			}
			out := &cliutil.ErrWriter{Writer: cmd.OutOrStdout()}
			if path, _ := flags.configPath(); path != "" {
				fmt.Fprintf(out, "# from %s\n", path)
			}
			out.Write(data)
			return out.Err
		},
	}
}

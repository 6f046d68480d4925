package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/renameio"
	"github.com/spf13/cobra"

	"github.com/jcorbin/clozedown/clozify"
)

var errWriteNeedsFile = errors.New("-w requires a file argument")

// input is the text to process, and the name to report it by.
type input struct {
	name string
	text string
}

func readInput(cmd *cobra.Command, args []string) (input, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return input{}, fmt.Errorf("read stdin: %w", err)
		}
		return input{name: "<stdin>", text: string(b)}, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return input{}, fmt.Errorf("read file: %w", err)
	}
	return input{name: args[0], text: string(b)}, nil
}

// clozifyInput runs the input through clozify, logging any warnings.
func clozifyInput(in input, opts clozify.Options) (string, error) {
	res, err := clozify.Run(in.text, opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", in.name, err)
	}
	for _, w := range res.Warnings {
		log.Warningf("%s:%v", in.name, w)
	}
	return res.Text, nil
}

// writeFile atomically replaces the named file, keeping its permissions.
func writeFile(name, text string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(name); err == nil {
		perm = info.Mode().Perm()
	}
	if err := renameio.WriteFile(name, []byte(text), perm); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	log.Infof("wrote %s", name)
	return nil
}

package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jcorbin/clozedown/internal/cliutil"
)

// isTerminal returns true if w is a terminal, to decide on colored output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// writeDiff writes a line diff from one text to another, marking removed
// lines with "-" and added lines with "+".
func writeDiff(w io.Writer, from, to string) error {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var (
		ew      = &cliutil.ErrWriter{Writer: w}
		added   = color.New(color.FgGreen)
		removed = color.New(color.FgRed)
	)
	if !isTerminal(w) {
		added.DisableColor()
		removed.DisableColor()
	}

	for _, d := range diffs {
		pw := cliutil.PrefixWriter{Prefix: "  ", To: ew}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			pw.Prefix = added.Sprint("+ ")
		case diffmatchpatch.DiffDelete:
			pw.Prefix = removed.Sprint("- ")
		}
		io.WriteString(&pw, d.Text)
		pw.EndLine()
	}
	return ew.Err
}

package cliutil

import (
	"bytes"
	"io"
)

// ErrWriter wraps a writer, tracking its first error, and dropping any
// writes after it.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter writes Prefix before every line written through it. A line
// split across several writes gets one prefix.
type PrefixWriter struct {
	Prefix string
	To     io.Writer

	midLine bool
}

func (pw *PrefixWriter) Write(p []byte) (n int, err error) {
	for len(p) > 0 {
		if !pw.midLine {
			if _, err := io.WriteString(pw.To, pw.Prefix); err != nil {
				return n, err
			}
			pw.midLine = true
		}
		line := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			line = p[:i+1]
			pw.midLine = false
		}
		m, err := pw.To.Write(line)
		n += m
		if err != nil {
			return n, err
		}
		p = p[len(line):]
	}
	return n, nil
}

// EndLine writes a newline if the last write left a line unterminated.
func (pw *PrefixWriter) EndLine() error {
	if !pw.midLine {
		return nil
	}
	pw.midLine = false
	_, err := io.WriteString(pw.To, "\n")
	return err
}

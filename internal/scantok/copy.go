package scantok

import (
	"io"
	"strings"
)

// CopyTokens writes the lexeme of every given token into dst, returning the
// number of bytes written and any write error that stopped the copy.
func CopyTokens(dst io.Writer, toks ...Token) (written int64, err error) {
	for _, tok := range toks {
		var n int
		n, err = io.WriteString(dst, tok.Lexeme)
		written += int64(n)
		if err != nil {
			break
		}
	}
	return written, err
}

// Join concatenates the lexemes of the given tokens.
func Join(toks []Token) string {
	switch len(toks) {
	case 0:
		return ""
	case 1:
		return toks[0].Lexeme
	}
	var sb strings.Builder
	CopyTokens(&sb, toks...)
	return sb.String()
}

// AppendTokens appends the lexemes of the given tokens to b.
func AppendTokens(b []byte, toks ...Token) []byte {
	for _, tok := range toks {
		b = append(b, tok.Lexeme...)
	}
	return b
}

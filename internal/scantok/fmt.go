package scantok

import (
	"fmt"
	"io"
)

// Format writes a type string representing the receiver kind.
func (k Kind) Format(f fmt.State, _ rune) {
	switch k {
	case noKind:
		io.WriteString(f, "None")
	case Text:
		io.WriteString(f, "Text")
	case Number:
		io.WriteString(f, "Number")
	case Punctuation:
		io.WriteString(f, "Punctuation")
	case Whitespace:
		io.WriteString(f, "Whitespace")
	case Newline:
		io.WriteString(f, "Newline")
	default:
		fmt.Fprintf(f, "InvalidKind%v", int(k))
	}
}

// Format writes a textual representation of the receiver token, providing
// improved fmt.Printf display. Produces a positioned "line:col Kind(lexeme)"
// form when formatted with `%+v", a terse "Kind(lexeme)" form otherwise.
func (tok Token) Format(f fmt.State, _ rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "%v:%v ", tok.Line, tok.Col)
	}
	fmt.Fprintf(f, "%v(%q)", tok.Kind, tok.Lexeme)
}

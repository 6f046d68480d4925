package scantok

import "fmt"

// Error reports a rune that matches no token class. It indicates a gap in
// the classification rules rather than malformed user input.
type Error struct {
	Rune    rune
	Pos     Pos
	Context string // source text starting at Pos
}

func (err *Error) Error() string {
	return fmt.Sprintf("unexpected character %q at %v:%v (context: %q)",
		err.Rune, err.Pos.Line, err.Pos.Col, err.Context)
}

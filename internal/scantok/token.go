package scantok

// Kind classifies a token.
type Kind int

const (
	noKind Kind = iota
	Text
	Number
	Punctuation
	Whitespace
	Newline
)

// Pos locates a token within its (newline normalized) source text.
// Positions are informational only, for use in diagnostics.
type Pos struct {
	Offset int // byte offset
	Line   int // one-based line number
	Col    int // one-based rune column
}

// Token is a typed, positioned run of source text.
// Concatenating the Lexeme of every token from Tokenize reproduces its
// (newline normalized) input exactly.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos
}

// Is returns true if the token has the given kind and lexeme.
func (tok Token) Is(kind Kind, lexeme string) bool {
	return tok.Kind == kind && tok.Lexeme == lexeme
}

// IsAny returns true if the token has the given kind, and its lexeme is any
// of the given ones.
func (tok Token) IsAny(kind Kind, lexemes ...string) bool {
	if tok.Kind != kind {
		return false
	}
	for _, lexeme := range lexemes {
		if tok.Lexeme == lexeme {
			return true
		}
	}
	return false
}

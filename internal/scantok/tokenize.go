package scantok

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const nbsp = '\u00a0'

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Tokenize splits text into a flat sequence of tokens.
//
// Line endings are normalized to "\n" first. Every token is the maximal run
// of its class, except Newline tokens which always hold exactly one "\n".
// Classes are tried in order: Text, Number, Whitespace, Newline,
// Punctuation. A rune that falls into none of them (e.g. a vertical tab)
// stops tokenization with an *Error.
func Tokenize(text string) ([]Token, error) {
	text = newlines.Replace(text)

	var (
		toks []Token
		pos  = Pos{Line: 1, Col: 1}
	)
	for pos.Offset < len(text) {
		r, _ := utf8.DecodeRuneInString(text[pos.Offset:])

		var (
			kind  Kind
			match func(rune) bool
		)
		switch {
		case isText(r):
			kind, match = Text, isText
		case isDigit(r):
			kind, match = Number, isDigit
		case isSpace(r):
			kind, match = Whitespace, isSpace
		case r == '\n':
			kind = Newline
		case isPunct(r):
			kind, match = Punctuation, isPunct
		default:
			return nil, &Error{
				Rune:    r,
				Pos:     pos,
				Context: context(text[pos.Offset:], 5),
			}
		}

		end := pos.Offset + 1
		if match != nil {
			end = pos.Offset + runLen(text[pos.Offset:], match)
		}

		tok := Token{kind, text[pos.Offset:end], pos}
		toks = append(toks, tok)
		pos = advance(pos, tok.Lexeme)
	}
	return toks, nil
}

// runLen returns the byte length of the longest prefix of s whose runes all
// match.
func runLen(s string, match func(rune) bool) int {
	for i, r := range s {
		if !match(r) {
			return i
		}
	}
	return len(s)
}

func advance(pos Pos, lexeme string) Pos {
	pos.Offset += len(lexeme)
	if lexeme == "\n" {
		pos.Line++
		pos.Col = 1
	} else {
		pos.Col += utf8.RuneCountInString(lexeme)
	}
	return pos
}

func context(s string, n int) string {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return s[:i]
}

func isText(r rune) bool  { return r == '_' || unicode.IsLetter(r) }
func isDigit(r rune) bool { return unicode.IsDigit(r) }
func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == nbsp }

func isPunct(r rune) bool {
	return !isText(r) && !isDigit(r) && !unicode.IsSpace(r)
}

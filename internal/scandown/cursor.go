package scandown

import "github.com/jcorbin/clozedown/internal/scantok"

// cursor is an immutable position within a token slice; every consuming
// method returns a new cursor, so backtracking is just keeping the old one.
type cursor struct {
	toks []scantok.Token
	next int
}

func (cur cursor) eof() bool { return cur.next >= len(cur.toks) }

// sol returns true at the start of a line.
func (cur cursor) sol() bool {
	return cur.next == 0 || cur.toks[cur.next-1].Kind == scantok.Newline
}

func (cur cursor) pos() scantok.Pos {
	if cur.next < len(cur.toks) {
		return cur.toks[cur.next].Pos
	}
	if n := len(cur.toks); n > 0 {
		last := cur.toks[n-1]
		pos := last.Pos
		pos.Offset += len(last.Lexeme)
		pos.Col += len([]rune(last.Lexeme))
		return pos
	}
	return scantok.Pos{Line: 1, Col: 1}
}

// peek returns up to n tokens without consuming them.
func (cur cursor) peek(n int) []scantok.Token {
	end := cur.next + n
	if end > len(cur.toks) {
		end = len(cur.toks)
	}
	return cur.toks[cur.next:end]
}

// peekIs returns true if the next tokens have the given kinds.
func (cur cursor) peekIs(kinds ...scantok.Kind) bool {
	toks := cur.peek(len(kinds))
	if len(toks) < len(kinds) {
		return false
	}
	for i, kind := range kinds {
		if toks[i].Kind != kind {
			return false
		}
	}
	return true
}

func (cur cursor) consume(n int) (cursor, []scantok.Token) {
	toks := cur.peek(n)
	cur.next += len(toks)
	return cur, toks
}

// consumeKind consumes the run of tokens of the given kind.
func (cur cursor) consumeKind(kind scantok.Kind) (cursor, []scantok.Token) {
	i := cur.next
	for i < len(cur.toks) && cur.toks[i].Kind == kind {
		i++
	}
	toks := cur.toks[cur.next:i]
	cur.next = i
	return cur, toks
}

// consumeUntil consumes tokens up to, but not including, the first token of
// the given kind.
func (cur cursor) consumeUntil(kind scantok.Kind) (cursor, []scantok.Token) {
	i := cur.next
	for i < len(cur.toks) && cur.toks[i].Kind != kind {
		i++
	}
	toks := cur.toks[cur.next:i]
	cur.next = i
	return cur, toks
}

// consumeNewline consumes a newline token, if one is next.
func (cur cursor) consumeNewline() (cursor, *scantok.Token) {
	if cur.peekIs(scantok.Newline) {
		tok := cur.toks[cur.next]
		cur.next++
		return cur, &tok
	}
	return cur, nil
}

// restOfLine consumes the remaining tokens on the current line and its
// newline, which is nil at end of input.
func (cur cursor) restOfLine() (cursor, []scantok.Token, *scantok.Token) {
	cur, toks := cur.consumeUntil(scantok.Newline)
	cur, nl := cur.consumeNewline()
	return cur, toks, nl
}

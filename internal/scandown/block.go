package scandown

import (
	"errors"
	"fmt"

	"github.com/jcorbin/clozedown/internal/scantok"
)

// ErrInvariant marks a violated tokenizer/parser contract. It never results
// from well formed tokens, whatever their text.
var ErrInvariant = errors.New("parser invariant violated")

// Document is the result of parsing: the top level nodes, in source order,
// and any diagnostics collected along the way.
type Document struct {
	Nodes    []Node
	Warnings []Warning
}

// Warning is a non-fatal parse diagnostic.
type Warning struct {
	Pos     scantok.Pos
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%v:%v: %s", w.Pos.Line, w.Pos.Col, w.Message)
}

// AppendText appends the source text of every node in the document.
func (doc *Document) AppendText(b []byte) []byte {
	for _, node := range doc.Nodes {
		b = node.AppendText(b)
	}
	return b
}

func (doc *Document) warnf(pos scantok.Pos, format string, args ...interface{}) {
	doc.Warnings = append(doc.Warnings, Warning{pos, fmt.Sprintf(format, args...)})
}

// Parse builds a lossless parse tree from tokens.
func Parse(toks []scantok.Token) (*Document, error) {
	var (
		doc Document
		cur = cursor{toks: toks}
	)
	for !cur.eof() {
		node, next, err := nextNode(&doc, cur)
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, node)
		cur = next
	}
	return &doc, nil
}

// lineRecognizer attempts to parse a construct starting at a line start.
// It returns a nil node, and the unchanged cursor, to decline.
type lineRecognizer func(doc *Document, cur cursor) (Node, cursor, error)

func nextNode(doc *Document, cur cursor) (Node, cursor, error) {
	if !cur.sol() {
		return nil, cur, invariantf(cur, "parse resumed mid line")
	}
	for _, r := range []lineRecognizer{
		table,
		codeFence,
		listItem,
		textLine,
	} {
		node, next, err := r(doc, cur)
		if err != nil {
			return nil, cur, err
		}
		if node != nil {
			if next.next <= cur.next {
				return nil, cur, invariantf(cur, "%v consumed no tokens", node.Kind())
			}
			return node, next, nil
		}
	}
	return nil, cur, invariantf(cur, "no construct claims line")
}

func invariantf(cur cursor, format string, args ...interface{}) error {
	pos := cur.pos()
	return fmt.Errorf("%w: %s at %v:%v (next tokens: %v)",
		ErrInvariant, fmt.Sprintf(format, args...), pos.Line, pos.Col, cur.peek(5))
}

// indent consumes leading whitespace, which the tokenizer always merges into
// at most one token.
func indent(cur cursor) (Indent, cursor, error) {
	pos := cur.pos()
	next, ws := cur.consumeKind(scantok.Whitespace)
	switch len(ws) {
	case 0:
		return Indent{Pos: pos}, next, nil
	case 1:
		return Indent{Raw: ws[0].Lexeme, Pos: pos}, next, nil
	default:
		return Indent{}, cur, invariantf(cur, "indentation split across %v whitespace tokens", len(ws))
	}
}

// line consumes an indented line's content and newline.
func line(cur cursor) (Line, cursor, error) {
	in, cur, err := indent(cur)
	if err != nil {
		return Line{}, cur, err
	}
	cur, content, nl := cur.restOfLine()
	return Line{Indent: in, Content: Text{content}, Newline: nl}, cur, nil
}

func textLine(_ *Document, cur cursor) (Node, cursor, error) {
	ln, next, err := line(cur)
	if err != nil {
		return nil, cur, err
	}
	return &TextLine{ln}, next, nil
}

// listItem recognizes "- ", "* " and "N. " marked lines, after any indent.
func listItem(_ *Document, cur cursor) (Node, cursor, error) {
	in, next, err := indent(cur)
	if err != nil {
		return nil, cur, err
	}

	li := &ListItem{}
	switch toks := next.peek(3); {
	case next.peekIs(scantok.Punctuation, scantok.Whitespace) &&
		toks[0].IsAny(scantok.Punctuation, "-", "*"):
		next, li.Marker = next.consume(1)
	case next.peekIs(scantok.Number, scantok.Punctuation, scantok.Whitespace) &&
		toks[1].Is(scantok.Punctuation, "."):
		next, li.Marker = next.consume(2)
		li.Ordered = true
	default:
		return nil, cur, nil
	}

	next, gap := next.consume(1)
	li.Gap = gap[0]
	next, content, nl := next.restOfLine()
	li.Line = Line{Indent: in, Content: Text{content}, Newline: nl}
	return li, next, nil
}

const fence = "```"

// codeFence recognizes a fenced code block: an unindented "```" line, any
// number of code lines, and a line starting with the same fence. An
// unterminated block is declined.
func codeFence(doc *Document, cur cursor) (Node, cursor, error) {
	if toks := cur.peek(1); len(toks) == 0 || !toks[0].Is(scantok.Punctuation, fence) {
		return nil, cur, nil
	}

	cb := &CodeBlock{}
	next, open := cur.consume(1)
	cb.Fence = open[0]
	var nl *scantok.Token
	next, cb.Tag, nl = next.restOfLine()
	if nl == nil {
		return nil, cur, nil
	}
	cb.OpenNewline = *nl

	lang, known := LookupLanguage(cb.TagString())
	cb.Language = lang
	openers := lang.CommentOpeners()

	for {
		if next.eof() {
			return nil, cur, nil
		}
		if toks := next.peek(1); toks[0].Is(scantok.Punctuation, cb.Fence.Lexeme) {
			var closing []scantok.Token
			next, closing = next.consume(1)
			cb.Close = closing[0]
			next, cb.CloseTail, cb.Newline = next.restOfLine()
			break
		}

		ln, after, err := line(next)
		if err != nil {
			return nil, cur, err
		}
		cl := &CodeLine{Line: ln}
		if !ln.Blank() {
			cl.Comment = ln.Content.Tokens[0].IsAny(scantok.Punctuation, openers...)
		}
		cb.Lines = append(cb.Lines, cl)
		next = after
	}

	if !known {
		if tag := cb.TagString(); tag == "" {
			doc.warnf(cb.Fence.Pos, "code block has no language tag, using %q", lang)
		} else {
			doc.warnf(cb.Fence.Pos, "unrecognized code block language %q, using %q", tag, lang)
		}
	}
	return cb, next, nil
}

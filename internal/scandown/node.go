package scandown

import (
	"strings"

	"github.com/jcorbin/clozedown/internal/scantok"
)

// NodeKind identifies a parse tree node variant.
type NodeKind int

const (
	noNode NodeKind = iota
	IndentNode
	TextNode
	TextLineNode
	ListNode
	CodeBlockNode
	CodeLineNode
	CodeCommentNode
	TableNode
)

// Node is a parse tree node. The set of variants is closed: *Indent, *Text,
// *TextLine, *ListItem, *CodeBlock, *CodeLine and *Table.
//
// AppendText appends the exact source text that the node was parsed from.
type Node interface {
	Kind() NodeKind
	AppendText(b []byte) []byte
}

// Source returns the concatenated source text of the given nodes.
func Source(nodes ...Node) string {
	var b []byte
	for _, node := range nodes {
		b = node.AppendText(b)
	}
	return string(b)
}

// Indent is the leading whitespace of a line.
type Indent struct {
	Raw string
	Pos scantok.Pos
}

// Spaces counts space (and non-breaking space) characters.
func (in *Indent) Spaces() (n int) {
	for _, r := range in.Raw {
		if r != '\t' {
			n++
		}
	}
	return n
}

// Tabs counts tab characters.
func (in *Indent) Tabs() int { return strings.Count(in.Raw, "\t") }

func (in *Indent) Kind() NodeKind             { return IndentNode }
func (in *Indent) AppendText(b []byte) []byte { return append(b, in.Raw...) }

// Text is a raw run of inline tokens.
type Text struct {
	Tokens []scantok.Token
}

func (tx *Text) String() string             { return scantok.Join(tx.Tokens) }
func (tx *Text) Kind() NodeKind             { return TextNode }
func (tx *Text) AppendText(b []byte) []byte { return scantok.AppendTokens(b, tx.Tokens...) }

// Line holds the fields shared by every line shaped node.
type Line struct {
	Indent  Indent
	Content Text
	Newline *scantok.Token // nil at end of input
}

// Blank returns true if the line has no content beyond its indentation.
func (ln *Line) Blank() bool { return len(ln.Content.Tokens) == 0 }

// AppendNewline appends the line's newline, if any.
func (ln *Line) AppendNewline(b []byte) []byte {
	if ln.Newline != nil {
		b = append(b, ln.Newline.Lexeme...)
	}
	return b
}

// TextLine is a plain line of text.
type TextLine struct {
	Line
}

func (tl *TextLine) Kind() NodeKind { return TextLineNode }

func (tl *TextLine) AppendText(b []byte) []byte {
	b = tl.Indent.AppendText(b)
	b = tl.Content.AppendText(b)
	return tl.AppendNewline(b)
}

// ListItem is a single (flat) list item line: an indent, a "-", "*" or "N."
// marker, the whitespace gap after the marker, and its content.
type ListItem struct {
	Line
	Ordered bool
	Marker  []scantok.Token
	Gap     scantok.Token
}

func (li *ListItem) Kind() NodeKind { return ListNode }

func (li *ListItem) AppendText(b []byte) []byte {
	b = li.Indent.AppendText(b)
	b = scantok.AppendTokens(b, li.Marker...)
	b = append(b, li.Gap.Lexeme...)
	b = li.Content.AppendText(b)
	return li.AppendNewline(b)
}

// CodeLine is a line within a fenced code block.
// Comment is decided once at parse time from the block's language.
type CodeLine struct {
	Line
	Comment bool
}

func (cl *CodeLine) Kind() NodeKind {
	if cl.Comment {
		return CodeCommentNode
	}
	return CodeLineNode
}

func (cl *CodeLine) AppendText(b []byte) []byte {
	b = cl.Indent.AppendText(b)
	b = cl.Content.AppendText(b)
	return cl.AppendNewline(b)
}

// CodeBlock is a fenced code block. It has exactly one CodeLine for every
// physical line between its opening and closing fence lines.
type CodeBlock struct {
	Fence       scantok.Token   // opening "```"
	Tag         []scantok.Token // rest of the opening line
	OpenNewline scantok.Token
	Language    Language

	Lines []*CodeLine

	Close     scantok.Token   // closing "```"
	CloseTail []scantok.Token // rest of the closing line
	Newline   *scantok.Token  // nil at end of input
}

// TagString returns the raw language tag, trimmed of surrounding space.
func (cb *CodeBlock) TagString() string { return trimSpace(scantok.Join(cb.Tag)) }

func (cb *CodeBlock) Kind() NodeKind { return CodeBlockNode }

func (cb *CodeBlock) AppendText(b []byte) []byte {
	b = cb.AppendOpen(b)
	for _, line := range cb.Lines {
		b = line.AppendText(b)
	}
	return cb.AppendClose(b)
}

// AppendOpen appends the opening fence line, including its newline.
func (cb *CodeBlock) AppendOpen(b []byte) []byte {
	b = append(b, cb.Fence.Lexeme...)
	b = scantok.AppendTokens(b, cb.Tag...)
	return append(b, cb.OpenNewline.Lexeme...)
}

// AppendClose appends the closing fence line, including any newline.
func (cb *CodeBlock) AppendClose(b []byte) []byte {
	b = append(b, cb.Close.Lexeme...)
	b = scantok.AppendTokens(b, cb.CloseTail...)
	if cb.Newline != nil {
		b = append(b, cb.Newline.Lexeme...)
	}
	return b
}

func trimSpace(s string) string { return strings.Trim(s, " \t\u00a0") }

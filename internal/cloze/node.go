package cloze

import (
	"fmt"
	"strings"

	"github.com/jcorbin/clozedown/internal/scandown"
)

// Mark assigns a span of text to a cloze. The zero Mark leaves it plain.
type Mark struct {
	Index int  // cloze number, from 1
	Hint  bool // shown before the cloze is revealed, rather than hidden
}

// Clozed returns true if the mark assigns a cloze.
func (m Mark) Clozed() bool { return m.Index > 0 }

// Node is a cloze tree node. Its AppendText method appends the exact source
// text it was transformed from; Render produces its output under opts, or
// its plain form when disabled.
//
// The set of variants is closed: *Indent, *Span, *TextLine, *ListItem,
// *CodeBlock, *CodeLine and *Table.
type Node interface {
	scandown.Node
	Render(opts Options, disabled bool) string
}

// Render renders nodes in order, after checking that every mark is one that
// the node carrying it supports.
func Render(nodes []Node, opts Options, disabled bool) (string, error) {
	if err := validate(nodes); err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, node := range nodes {
		sb.WriteString(node.Render(opts, disabled))
	}
	return sb.String(), nil
}

// Indent is leading line whitespace.
type Indent struct {
	Raw string

	// TabWidth is the number of spaces per tab used to re-express Raw as
	// tabs; zero keeps Raw as is.
	TabWidth int

	// Text marks text line and list item indentation, which follows
	// Options.TextIndent rather than Options.CodeIndent.
	Text bool
}

func (in *Indent) Kind() scandown.NodeKind    { return scandown.IndentNode }
func (in *Indent) AppendText(b []byte) []byte { return append(b, in.Raw...) }

func (in *Indent) Render(opts Options, disabled bool) string {
	mode := opts.CodeIndent
	if in.Text {
		mode = opts.TextIndent
	}
	if disabled || in.TabWidth == 0 || mode == IndentPreserve {
		return in.Raw
	}
	return strings.Repeat("\t", in.Tabs())
}

// Tabs returns the number of tabs that Raw amounts to, rounding leftover
// spaces to the nearest tab stop.
func (in *Indent) Tabs() int {
	var spaces, tabs int
	for _, r := range in.Raw {
		if r == '\t' {
			tabs++
		} else {
			spaces++
		}
	}
	if in.TabWidth == 0 {
		return tabs
	}
	return (spaces+in.TabWidth/2)/in.TabWidth + tabs
}

// Span is a run of inline text, possibly marked as a cloze.
type Span struct {
	Text string
	Mark Mark
}

func (sp *Span) Kind() scandown.NodeKind    { return scandown.TextNode }
func (sp *Span) AppendText(b []byte) []byte { return append(b, sp.Text...) }

// Render wraps the span in its cloze marker. Hints render as plain text
// unless opts enable them.
func (sp *Span) Render(opts Options, disabled bool) string {
	if disabled || !sp.Mark.Clozed() || (sp.Mark.Hint && !opts.ListHints) {
		return sp.Text
	}
	return wrap(opts.Curly, sp.Mark, sp.Text)
}

// Line holds the fields shared by text lines and list items.
type Line struct {
	Indent  Indent
	Content []*Span
	Newline string // empty at end of input
}

// Blank returns true if the line has no content beyond its indentation.
func (ln *Line) Blank() bool { return len(ln.Content) == 0 }

func (ln *Line) appendContent(b []byte) []byte {
	for _, sp := range ln.Content {
		b = sp.AppendText(b)
	}
	return b
}

func (ln *Line) renderContent(sb *strings.Builder, opts Options, disabled bool) {
	for _, sp := range ln.Content {
		sb.WriteString(sp.Render(opts, disabled))
	}
}

// TextLine is a plain line of text.
type TextLine struct {
	Line
}

func (tl *TextLine) Kind() scandown.NodeKind { return scandown.TextLineNode }

func (tl *TextLine) AppendText(b []byte) []byte {
	b = tl.Indent.AppendText(b)
	b = tl.appendContent(b)
	return append(b, tl.Newline...)
}

// Render renders the line with its indentation re-expressed per opts.
// Whitespace only lines keep their whitespace as written.
func (tl *TextLine) Render(opts Options, disabled bool) string {
	if tl.Blank() {
		return tl.Indent.Raw + tl.Newline
	}
	var sb strings.Builder
	sb.WriteString(tl.Indent.Render(opts, disabled))
	tl.renderContent(&sb, opts, disabled)
	sb.WriteString(tl.Newline)
	return sb.String()
}

// ListItem is a list item line; its content may be split into a front hint,
// the separator, and a back deletion.
type ListItem struct {
	Line
	Ordered bool
	Marker  string
	Gap     string
}

func (li *ListItem) Kind() scandown.NodeKind { return scandown.ListNode }

func (li *ListItem) AppendText(b []byte) []byte {
	b = li.Indent.AppendText(b)
	b = append(b, li.Marker...)
	b = append(b, li.Gap...)
	b = li.appendContent(b)
	return append(b, li.Newline...)
}

func (li *ListItem) Render(opts Options, disabled bool) string {
	var sb strings.Builder
	sb.WriteString(li.Indent.Render(opts, disabled))
	sb.WriteString(li.Marker)
	sb.WriteString(li.Gap)
	li.renderContent(&sb, opts, disabled)
	sb.WriteString(li.Newline)
	return sb.String()
}

// CodeLine is a line of a code block. Comment lines are never clozed.
type CodeLine struct {
	Indent  Indent
	Content string
	Comment bool
	Mark    Mark
	Newline string
}

// Blank returns true if the line has no content beyond its indentation.
func (cl *CodeLine) Blank() bool { return cl.Content == "" }

func (cl *CodeLine) Kind() scandown.NodeKind {
	if cl.Comment {
		return scandown.CodeCommentNode
	}
	return scandown.CodeLineNode
}

func (cl *CodeLine) AppendText(b []byte) []byte {
	b = cl.Indent.AppendText(b)
	b = append(b, cl.Content...)
	return append(b, cl.Newline...)
}

// Render renders the line as it appears within a block mode code block.
// Blank lines keep their whitespace as written.
func (cl *CodeLine) Render(opts Options, disabled bool) string {
	if cl.Blank() {
		return cl.Indent.Raw + cl.Newline
	}
	return cl.Indent.Render(opts, disabled) + cl.body(opts, disabled) + cl.Newline
}

// body renders the line content, escaped for HTML modes and wrapped in its
// cloze marker.
func (cl *CodeLine) body(opts Options, disabled bool) string {
	text := cl.Content
	if opts.CodeMode.HTML() {
		text = escapeHTML(text)
	}
	if disabled || !cl.Mark.Clozed() {
		return text
	}
	return wrap(opts.Curly, cl.Mark, text)
}

// CodeBlock is a fenced code block, holding one CodeLine per source line.
type CodeBlock struct {
	Open     string // opening fence line, with its newline
	Language scandown.Language
	Lines    []*CodeLine
	TabWidth int
	Close    string // closing fence line, without its newline
	Newline  string // empty at end of input
}

func (cb *CodeBlock) Kind() scandown.NodeKind { return scandown.CodeBlockNode }

func (cb *CodeBlock) AppendText(b []byte) []byte {
	b = append(b, cb.Open...)
	for _, line := range cb.Lines {
		b = line.AppendText(b)
	}
	b = append(b, cb.Close...)
	return append(b, cb.Newline...)
}

const (
	htmlPre         = `<pre style="white-space: pre-wrap; overflow-wrap: normal;">`
	htmlBlockOpen   = htmlPre + "\n" + `<code class="language-%s">` + "\n"
	htmlBlockClose  = "</code>\n</pre>"
	htmlInlineOpen  = htmlPre + `<code class="language-%s">`
	htmlInlineClose = "</code></pre>"
)

// Render renders the block in the code mode selected by opts. Inline modes
// render each non-blank line on its own, without indentation, dropping the
// final line's newline.
func (cb *CodeBlock) Render(opts Options, disabled bool) string {
	var sb strings.Builder
	switch opts.CodeMode {
	case CodeHTMLBlock:
		fmt.Fprintf(&sb, htmlBlockOpen, cb.Language)
		for _, line := range cb.Lines {
			sb.WriteString(line.Render(opts, disabled))
		}
		sb.WriteString(htmlBlockClose)

	case CodeMarkdownInline, CodeHTMLInline:
		var content strings.Builder
		for _, line := range cb.Lines {
			if !line.Blank() {
				body := line.body(opts, disabled)
				if opts.CodeMode == CodeHTMLInline {
					fmt.Fprintf(&content, htmlInlineOpen, cb.Language)
					content.WriteString(body)
					content.WriteString(htmlInlineClose)
				} else {
					content.WriteString("`")
					content.WriteString(body)
					content.WriteString("`")
				}
			}
			content.WriteString(line.Newline)
		}
		sb.WriteString(strings.TrimSuffix(content.String(), "\n"))

	default:
		sb.WriteString(cb.Open)
		for _, line := range cb.Lines {
			sb.WriteString(line.Render(opts, disabled))
		}
		sb.WriteString(cb.Close)
	}
	sb.WriteString(cb.Newline)
	return sb.String()
}

// MarkerOverhead is the display width reserved for cloze markers in table
// cells, the length of "{{c1000::}}".
const MarkerOverhead = 11

// Table is a pipe delimited table whose data cells may be clozed.
type Table struct {
	Source           string // exact source text
	Aligns           []scandown.Alignment
	Widths           []int // plain display width of each column
	Header           *TableRow
	SeparatorIndent  string
	SeparatorNewline string
	Rows             []*TableRow
}

// TableRow is a table header or data row, its cells trimmed of padding.
type TableRow struct {
	Indent  string // kept as written, so that rows stay aligned
	Cells   []*Span
	Newline string // empty at end of input
}

func (tb *Table) Kind() scandown.NodeKind    { return scandown.TableNode }
func (tb *Table) AppendText(b []byte) []byte { return append(b, tb.Source...) }

// Render renders the table with every column widened to hold cloze markers,
// so that pipes stay aligned in a monospace font. When disabled, it renders
// the table's source.
func (tb *Table) Render(opts Options, disabled bool) string {
	if disabled {
		return tb.Source
	}
	var sb strings.Builder
	writeRow := func(row *TableRow) {
		sb.WriteString(row.Indent)
		sb.WriteString("|")
		for i, cell := range row.Cells {
			sb.WriteString(" ")
			sb.WriteString(scandown.PadCell(cell.Render(opts, false), tb.Widths[i]+MarkerOverhead, tb.Aligns[i]))
			sb.WriteString(" |")
		}
		sb.WriteString(row.Newline)
	}
	writeRow(tb.Header)
	sb.WriteString(tb.SeparatorIndent)
	sb.WriteString("|")
	for i, align := range tb.Aligns {
		sb.WriteString(scandown.SeparatorCell(tb.Widths[i]+MarkerOverhead+2, align))
		sb.WriteString("|")
	}
	sb.WriteString(tb.SeparatorNewline)
	for _, row := range tb.Rows {
		writeRow(row)
	}
	return sb.String()
}

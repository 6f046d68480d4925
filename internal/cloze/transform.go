package cloze

import (
	"fmt"
	"strings"

	"github.com/jcorbin/clozedown/internal/scandown"
	"github.com/jcorbin/clozedown/internal/scantok"
)

// Transform derives a cloze tree from a parse tree, numbering clozes from 1
// in document order. The result shares no state with nodes.
func Transform(nodes []scandown.Node) ([]Node, error) {
	tr := transformer{next: 1}
	out := make([]Node, 0, len(nodes))
	for i, node := range nodes {
		cn, err := tr.visit(i+1, node)
		if err != nil {
			return nil, err
		}
		out = append(out, cn)
	}
	return out, nil
}

type transformer struct {
	next  int      // next unused cloze index
	stack []string // nodes being visited, for error context
}

func (tr *transformer) alloc() int {
	i := tr.next
	tr.next++
	return i
}

func (tr *transformer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{strings.Join(tr.stack, " > ")}, args...)...)
}

func (tr *transformer) visit(n int, node scandown.Node) (Node, error) {
	tr.stack = append(tr.stack, fmt.Sprintf("%v#%v", node.Kind(), n))
	defer func() { tr.stack = tr.stack[:len(tr.stack)-1] }()

	switch node := node.(type) {
	case Node:
		return nil, tr.errorf("%w", ErrAlreadyClozed)
	case *scandown.TextLine:
		return &TextLine{plainLine(&node.Line)}, nil
	case *scandown.ListItem:
		return tr.listItem(node), nil
	case *scandown.CodeBlock:
		return tr.codeBlock(node), nil
	case *scandown.Table:
		return tr.table(node), nil
	default:
		return nil, tr.errorf("unexpected %T node", node)
	}
}

func newline(tok *scantok.Token) string {
	if tok == nil {
		return ""
	}
	return tok.Lexeme
}

// textTabWidth is the number of spaces per tab in text and list indentation.
const textTabWidth = 2

func plainLine(ln *scandown.Line) Line {
	out := Line{
		Indent:  Indent{Raw: ln.Indent.Raw, TabWidth: textTabWidth, Text: true},
		Newline: newline(ln.Newline),
	}
	if !ln.Blank() {
		out.Content = []*Span{{Text: ln.Content.String()}}
	}
	return out
}

// listItem splits "front - back" (or "front = back") content into a hint,
// the separator, and a deletion sharing one cloze.
func (tr *transformer) listItem(li *scandown.ListItem) *ListItem {
	out := &ListItem{
		Line:    plainLine(&li.Line),
		Ordered: li.Ordered,
		Marker:  scantok.Join(li.Marker),
		Gap:     li.Gap.Lexeme,
	}
	toks := li.Content.Tokens
	if i := listSplit(toks); i >= 0 {
		index := tr.alloc()
		out.Content = []*Span{
			{Text: scantok.Join(toks[:i]), Mark: Mark{Index: index, Hint: true}},
			{Text: scantok.Join(toks[i : i+3])},
			{Text: scantok.Join(toks[i+3:]), Mark: Mark{Index: index}},
		}
	}
	return out
}

// listSplit returns the index of the first " - " or " = " separator with
// content on both sides, or -1 if there is none.
func listSplit(toks []scantok.Token) int {
	for i := 1; i+3 < len(toks); i++ {
		if toks[i].Is(scantok.Whitespace, " ") &&
			toks[i+1].IsAny(scantok.Punctuation, "-", "=") &&
			toks[i+2].Is(scantok.Whitespace, " ") {
			return i
		}
	}
	return -1
}

// codeBlock groups code lines under the comment line preceding them. Every
// non-blank code line of a group is a deletion of the group's cloze. A blank
// line ends the group; a comment line starts the next one. Lines before the
// first comment, or after a blank line, stay plain.
func (tr *transformer) codeBlock(cb *scandown.CodeBlock) *CodeBlock {
	width := inferTabWidth(cb.Lines)
	out := &CodeBlock{
		Open:     string(cb.AppendOpen(nil)),
		Language: cb.Language,
		TabWidth: width,
		Close:    cb.Close.Lexeme + scantok.Join(cb.CloseTail),
		Newline:  newline(cb.Newline),
	}

	var inGroup, used bool
	for _, line := range cb.Lines {
		cl := &CodeLine{
			Indent:  Indent{Raw: line.Indent.Raw, TabWidth: width},
			Content: line.Content.String(),
			Comment: line.Comment,
			Newline: newline(line.Newline),
		}
		switch {
		case line.Comment:
			if inGroup && used {
				tr.next++
				used = false
			}
			inGroup = true
		case line.Blank():
			if inGroup && used {
				tr.next++
			}
			inGroup, used = false, false
		case inGroup:
			cl.Mark = Mark{Index: tr.next}
			used = true
		}
		out.Lines = append(out.Lines, cl)
	}
	if inGroup && used {
		tr.next++
	}
	return out
}

// inferTabWidth returns 4 if every non-blank line is indented by a multiple
// of 4 spaces, otherwise 2.
func inferTabWidth(lines []*scandown.CodeLine) int {
	for _, line := range lines {
		if !line.Blank() && line.Indent.Spaces()%4 != 0 {
			return 2
		}
	}
	return 4
}

// table clozes every non-empty data cell on its own, row by row.
func (tr *transformer) table(tb *scandown.Table) *Table {
	out := &Table{
		Source:           scandown.Source(tb),
		Widths:           append([]int(nil), tb.Widths...),
		Header:           tr.tableRow(tb.Header, false),
		SeparatorIndent:  tb.Separator.Indent,
		SeparatorNewline: newline(tb.Separator.Newline),
	}
	for _, cell := range tb.Separator.Cells {
		out.Aligns = append(out.Aligns, cell.Align)
	}
	for _, row := range tb.Rows {
		out.Rows = append(out.Rows, tr.tableRow(row, true))
	}
	return out
}

func (tr *transformer) tableRow(row *scandown.TableRow, cloze bool) *TableRow {
	out := &TableRow{Indent: row.Indent, Newline: newline(row.Newline)}
	for _, cell := range row.Cells {
		sp := &Span{Text: cell.Content}
		if cloze && cell.Content != "" {
			sp.Mark = Mark{Index: tr.alloc()}
		}
		out.Cells = append(out.Cells, sp)
	}
	return out
}

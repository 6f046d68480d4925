package scandown

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jcorbin/clozedown/internal/scantok"
)

// Alignment is a table column alignment, as declared by the separator row.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Table is a pipe delimited table: a header row, an alignment separator row,
// and zero or more data rows.
type Table struct {
	Header    *TableRow
	Separator *TableRow
	Rows      []*TableRow
	Widths    []int // display width of each column
}

// TableRow is one table line.
type TableRow struct {
	Tokens  []scantok.Token // the line, without its newline
	Indent  string          // whitespace before the first pipe
	Cells   []TableCell
	Newline *scantok.Token // nil at end of input
}

// TableCell is one cell of a table row. Align and Width are resolved for
// the cell's column once the whole table has been parsed.
type TableCell struct {
	Raw     string // between pipes, verbatim
	Content string // Raw trimmed of surrounding space
	Align   Alignment
	Width   int
}

func (tb *Table) Kind() NodeKind { return TableNode }

func (tb *Table) AppendText(b []byte) []byte {
	b = tb.Header.AppendText(b)
	b = tb.Separator.AppendText(b)
	for _, row := range tb.Rows {
		b = row.AppendText(b)
	}
	return b
}

func (row *TableRow) AppendText(b []byte) []byte {
	b = scantok.AppendTokens(b, row.Tokens...)
	if row.Newline != nil {
		b = append(b, row.Newline.Lexeme...)
	}
	return b
}

// DisplayWidth returns the monospace display width of s.
func DisplayWidth(s string) int { return runewidth.StringWidth(s) }

// PadCell pads content with spaces to the given display width, placing it
// according to alignment. Content wider than width is returned as is.
func PadCell(content string, width int, align Alignment) string {
	pad := width - DisplayWidth(content)
	if pad <= 0 {
		return content
	}
	switch align {
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", pad-left)
	case AlignRight:
		return strings.Repeat(" ", pad) + content
	default:
		return content + strings.Repeat(" ", pad)
	}
}

// SeparatorCell returns a separator row cell spanning width columns between
// its pipes, with colons marking alignment.
func SeparatorCell(width int, align Alignment) string {
	if width < 2 {
		width = 2
	}
	switch align {
	case AlignLeft:
		return ":" + strings.Repeat("-", width-1)
	case AlignCenter:
		return ":" + strings.Repeat("-", width-2) + ":"
	case AlignRight:
		return strings.Repeat("-", width-1) + ":"
	default:
		return strings.Repeat("-", width)
	}
}

var separatorPattern = regexp.MustCompile(`^(:?)-+(:?)$`)

func parseAlignment(cell string) (Alignment, bool) {
	m := separatorPattern.FindStringSubmatch(cell)
	if m == nil {
		return AlignNone, false
	}
	switch left, right := m[1] != "", m[2] != ""; {
	case left && right:
		return AlignCenter, true
	case left:
		return AlignLeft, true
	case right:
		return AlignRight, true
	default:
		return AlignNone, true
	}
}

// tableRow parses the line at cur as a pipe delimited row. Cells are split
// from the line's raw text, since punctuation runs may fuse pipes with
// neighboring colons or dashes.
func tableRow(cur cursor) (*TableRow, cursor, bool) {
	if cur.eof() || !cur.sol() {
		return nil, cur, false
	}
	next, toks, nl := cur.restOfLine()
	raw := scantok.Join(toks)
	line := trimSpace(raw)
	if len(line) < 2 || line[0] != '|' || line[len(line)-1] != '|' {
		return nil, cur, false
	}
	row := &TableRow{
		Tokens:  toks,
		Indent:  raw[:strings.Index(raw, "|")],
		Newline: nl,
	}
	for _, cell := range strings.Split(line[1:len(line)-1], "|") {
		row.Cells = append(row.Cells, TableCell{Raw: cell, Content: trimSpace(cell)})
	}
	return row, next, true
}

// table recognizes a header row followed by a valid separator row, and then
// any data rows with a matching number of cells. Any failure before the
// first data row backtracks the whole attempt.
func table(doc *Document, cur cursor) (Node, cursor, error) {
	header, next, ok := tableRow(cur)
	if !ok || header.Newline == nil {
		return nil, cur, nil
	}
	sep, next, ok := tableRow(next)
	if !ok || len(sep.Cells) != len(header.Cells) {
		return nil, cur, nil
	}
	aligns := make([]Alignment, len(sep.Cells))
	for i, cell := range sep.Cells {
		if aligns[i], ok = parseAlignment(cell.Content); !ok {
			return nil, cur, nil
		}
	}

	tb := &Table{Header: header, Separator: sep}
	for tail := sep.Newline; tail != nil; {
		row, after, ok := tableRow(next)
		if !ok || len(row.Cells) != len(header.Cells) {
			break
		}
		tb.Rows = append(tb.Rows, row)
		next, tail = after, row.Newline
	}
	tb.resolveColumns(aligns)
	return tb, next, nil
}

// resolveColumns computes column widths as the widest header or data cell,
// and stamps alignment and width onto every cell.
func (tb *Table) resolveColumns(aligns []Alignment) {
	tb.Widths = make([]int, len(aligns))
	for _, row := range append([]*TableRow{tb.Header}, tb.Rows...) {
		for i, cell := range row.Cells {
			if w := DisplayWidth(cell.Content); w > tb.Widths[i] {
				tb.Widths[i] = w
			}
		}
	}
	for _, row := range append([]*TableRow{tb.Header, tb.Separator}, tb.Rows...) {
		for i := range row.Cells {
			row.Cells[i].Align = aligns[i]
			row.Cells[i].Width = tb.Widths[i]
		}
	}
}

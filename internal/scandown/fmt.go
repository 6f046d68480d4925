package scandown

import (
	"fmt"
	"io"
)

// Format writes a type string representing the receiver kind.
func (k NodeKind) Format(f fmt.State, _ rune) {
	switch k {
	case noNode:
		io.WriteString(f, "None")
	case IndentNode:
		io.WriteString(f, "Indent")
	case TextNode:
		io.WriteString(f, "Text")
	case TextLineNode:
		io.WriteString(f, "TextLine")
	case ListNode:
		io.WriteString(f, "List")
	case CodeBlockNode:
		io.WriteString(f, "CodeBlock")
	case CodeLineNode:
		io.WriteString(f, "CodeLine")
	case CodeCommentNode:
		io.WriteString(f, "CodeComment")
	case TableNode:
		io.WriteString(f, "Table")
	default:
		fmt.Fprintf(f, "InvalidNode%v", int(k))
	}
}

// Format writes the separator pattern of the receiver alignment.
func (a Alignment) Format(f fmt.State, _ rune) {
	switch a {
	case AlignNone:
		io.WriteString(f, "---")
	case AlignLeft:
		io.WriteString(f, ":--")
	case AlignCenter:
		io.WriteString(f, ":-:")
	case AlignRight:
		io.WriteString(f, "--:")
	default:
		fmt.Fprintf(f, "InvalidAlign%v", int(a))
	}
}

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display. Produces a multi-line verbose form, one node per line
// followed by any warnings, when formatted with `%+v"; a space separated
// list of each node's terse form otherwise.
func (doc *Document) Format(f fmt.State, _ rune) {
	if f.Flag('+') {
		for i, node := range doc.Nodes {
			if i > 0 {
				io.WriteString(f, "\n")
			}
			fmt.Fprintf(f, "%v. %+v", i+1, node)
		}
		for _, w := range doc.Warnings {
			fmt.Fprintf(f, "\nwarning %v", w)
		}
		return
	}
	for i, node := range doc.Nodes {
		if i > 0 {
			io.WriteString(f, " ")
		}
		fmt.Fprint(f, node)
	}
}

// Format writes a terse "Kind" form of the receiver, or a verbose
// "<Kind attr=value>" form when formatted with `%+v".
func (tl *TextLine) Format(f fmt.State, _ rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "<%v indent=%q text=%q%v>", tl.Kind(), tl.Indent.Raw, tl.Content.String(), eol(tl.Newline != nil))
	} else {
		fmt.Fprint(f, tl.Kind())
	}
}

// Format writes a terse "Kind" form of the receiver, or a verbose
// "<Kind attr=value>" form when formatted with `%+v".
func (li *ListItem) Format(f fmt.State, _ rune) {
	if !f.Flag('+') {
		fmt.Fprint(f, li.Kind())
		return
	}
	marker := ""
	for _, tok := range li.Marker {
		marker += tok.Lexeme
	}
	fmt.Fprintf(f, "<%v ordered=%v indent=%q marker=%q text=%q%v>",
		li.Kind(), li.Ordered, li.Indent.Raw, marker, li.Content.String(), eol(li.Newline != nil))
}

// Format writes a terse "Kind" form of the receiver, or a verbose
// "<Kind attr=value>" form when formatted with `%+v".
func (cl *CodeLine) Format(f fmt.State, _ rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "<%v indent=%q text=%q%v>", cl.Kind(), cl.Indent.Raw, cl.Content.String(), eol(cl.Newline != nil))
	} else {
		fmt.Fprint(f, cl.Kind())
	}
}

// Format writes a terse "Kind:lang" form of the receiver. When formatted with
// `%+v" it also writes every code line on its own indented line.
func (cb *CodeBlock) Format(f fmt.State, _ rune) {
	if !f.Flag('+') {
		fmt.Fprintf(f, "%v:%v", cb.Kind(), cb.Language)
		return
	}
	fmt.Fprintf(f, "<%v lang=%v tag=%q lines=%v%v>", cb.Kind(), cb.Language, cb.TagString(), len(cb.Lines), eol(cb.Newline != nil))
	for _, line := range cb.Lines {
		fmt.Fprintf(f, "\n  %+v", line)
	}
}

// Format writes a terse "Kind" form of the receiver. When formatted with
// `%+v" it also writes the resolved columns and every row's cell contents.
func (tb *Table) Format(f fmt.State, _ rune) {
	if !f.Flag('+') {
		fmt.Fprint(f, tb.Kind())
		return
	}
	fmt.Fprintf(f, "<%v rows=%v>", tb.Kind(), len(tb.Rows))
	io.WriteString(f, "\n  columns:")
	for i, width := range tb.Widths {
		fmt.Fprintf(f, " %v/%v", tb.Separator.Cells[i].Align, width)
	}
	for _, row := range append([]*TableRow{tb.Header}, tb.Rows...) {
		io.WriteString(f, "\n  cells:")
		for _, cell := range row.Cells {
			fmt.Fprintf(f, " %q", cell.Content)
		}
	}
}

type eol bool

func (nl eol) String() string {
	if nl {
		return ""
	}
	return " eof"
}

package cloze_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/clozedown/internal/cloze"
	"github.com/jcorbin/clozedown/internal/scandown"
	"github.com/jcorbin/clozedown/internal/scantok"
)

func transform(t *testing.T, input string) []Node {
	toks, err := scantok.Tokenize(input)
	require.NoError(t, err)
	doc, err := scandown.Parse(toks)
	require.NoError(t, err)
	nodes, err := Transform(doc.Nodes)
	require.NoError(t, err)
	return nodes
}

func render(t *testing.T, input string, opts Options, disabled bool) string {
	out, err := Render(transform(t, input), opts, disabled)
	require.NoError(t, err)
	return out
}

func lines(ls ...string) string { return strings.Join(ls, "\n") }

var cppExample = lines(
	"```cpp",
	"/* multi-line comment */",
	"#include <iostream>",
	"",
	"int main() {",
	"    // This is a simple C++ program",
	`    std::cout << "Hello, world!" << std::endl;`,
	"    return 0;",
	"  ",
	"}",
	"```",
	"",
)

func TestRender_code(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{
			name:  "comment groups",
			input: cppExample,
			want: lines(
				"```cpp",
				"/* multi-line comment */",
				"{{c1::#include <iostream>}}",
				"",
				"int main() {",
				"\t// This is a simple C++ program",
				"\t{{c2::std::cout << \"Hello, world!\" << std::endl;}}",
				"\t{{c2::return 0;}}",
				"  ",
				"}",
				"```",
				"",
			),
		},
		{
			name:  "preserved indent",
			input: cppExample,
			opts:  Options{CodeIndent: IndentPreserve},
			want: lines(
				"```cpp",
				"/* multi-line comment */",
				"{{c1::#include <iostream>}}",
				"",
				"int main() {",
				"    // This is a simple C++ program",
				`    {{c2::std::cout << "Hello, world!" << std::endl;}}`,
				"    {{c2::return 0;}}",
				"  ",
				"}",
				"```",
				"",
			),
		},
		{
			name:  "two space tabs",
			input: lines("```go", "// f", "func f() {", "  if x {", "    y()", "   }", "}", "```"),
			want:  lines("```go", "// f", "{{c1::func f() {}}", "\t{{c1::if x {}}", "\t\t{{c1::y()}}", "\t\t{{c1::} }}", "{{c1::} }}", "```"),
			opts:  Options{Curly: CurlyInsertSpace},
		},
		{
			name:  "no comment no cloze",
			input: lines("```", "x = 1", "```", "after"),
			want:  lines("```", "x = 1", "```", "after"),
		},
		{
			name:  "consecutive comments share a group",
			input: lines("```python", "# a", "# b", "x", "```", "- q - r", ""),
			want:  lines("```python", "# a", "# b", "{{c1::x}}", "```", "- q - {{c2::r}}", ""),
		},
		{
			name: "indices have no gaps",
			input: lines(
				"```go",
				"// a", "x",
				"// b", "y",
				"",
				"// c",
				"",
				"z",
				"```",
				"- q - r",
			),
			want: lines(
				"```go",
				"// a", "{{c1::x}}",
				"// b", "{{c2::y}}",
				"",
				"// c",
				"",
				"z",
				"```",
				"- q - {{c3::r}}",
			),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render(t, tc.input, tc.opts, false))
		})
	}
}

var modeExample = lines(
	"```python",
	"# add",
	"x = a + b",
	"y = x < 2 & 1",
	"",
	"z = 0",
	"```",
	"",
)

func TestRender_codeModes(t *testing.T) {
	const pre = `<pre style="white-space: pre-wrap; overflow-wrap: normal;">`
	for _, tc := range []struct {
		mode CodeMode
		want string
	}{
		{CodeMarkdownBlock, lines(
			"```python",
			"# add",
			"{{c1::x = a + b}}",
			"{{c1::y = x < 2 & 1}}",
			"",
			"z = 0",
			"```",
			"",
		)},
		{CodeMarkdownInline, lines(
			"`# add`",
			"`{{c1::x = a + b}}`",
			"`{{c1::y = x < 2 & 1}}`",
			"",
			"`z = 0`",
			"",
		)},
		{CodeHTMLBlock, lines(
			pre,
			`<code class="language-python">`,
			"# add",
			"{{c1::x = a + b}}",
			"{{c1::y = x &lt; 2 &amp; 1}}",
			"",
			"z = 0",
			"</code>",
			"</pre>",
		) + "\n"},
		{CodeHTMLInline, lines(
			pre+`<code class="language-python"># add</code></pre>`,
			pre+`<code class="language-python">{{c1::x = a + b}}</code></pre>`,
			pre+`<code class="language-python">{{c1::y = x &lt; 2 &amp; 1}}</code></pre>`,
			"",
			pre+`<code class="language-python">z = 0</code></pre>`,
			"",
		)},
	} {
		t.Run(tc.mode.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, render(t, modeExample, Options{CodeMode: tc.mode}, false))
		})
	}
}

func TestRender_lists(t *testing.T) {
	input := lines(
		"- Front - Back",
		"- Front = Back",
		"1. Front - Back",
		"  * a - b - c",
		"- no separator",
		"- trailing -",
		"- double  - space",
		"plain - text",
		"",
	)
	for _, tc := range []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "hints disabled",
			want: lines(
				"- Front - {{c1::Back}}",
				"- Front = {{c2::Back}}",
				"1. Front - {{c3::Back}}",
				"\t* a - {{c4::b - c}}",
				"- no separator",
				"- trailing -",
				"- double  - space",
				"plain - text",
				"",
			),
		},
		{
			name: "hints enabled",
			opts: Options{ListHints: true},
			want: lines(
				"- {{c1::::Front}} - {{c1::Back}}",
				"- {{c2::::Front}} = {{c2::Back}}",
				"1. {{c3::::Front}} - {{c3::Back}}",
				"\t* {{c4::::a}} - {{c4::b - c}}",
				"- no separator",
				"- trailing -",
				"- double  - space",
				"plain - text",
				"",
			),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render(t, input, tc.opts, false))
		})
	}
}

func TestRender_table(t *testing.T) {
	input := lines(
		"| A | BB |",
		"|:-|--:|",
		"| 1 | 2 |",
		"|  | x |",
		"after",
	)
	assert.Equal(t, lines(
		"| A            |            BB |",
		"|:-------------|--------------:|",
		"| {{c1::1}}    |     {{c2::2}} |",
		"|              |     {{c3::x}} |",
		"after",
	), render(t, input, Options{}, false))

	assert.Equal(t, input, render(t, input, Options{}, true))
}

func TestRender_indentedTable(t *testing.T) {
	input := lines(
		"  | a | b |",
		"  |---|---|",
		"  | 1 | 2 |",
		"",
	)
	assert.Equal(t, lines(
		"  | a            | b            |",
		"  |--------------|--------------|",
		"  | {{c1::1}}    | {{c2::2}}    |",
		"",
	), render(t, input, Options{}, false))
	assert.Equal(t, input, render(t, input, Options{}, true))
}

func TestRender_textIndent(t *testing.T) {
	input := lines(
		"  indented text",
		"    - a - b",
		" \t1. c = d",
		"   ",
		"plain",
	)
	assert.Equal(t, lines(
		"\tindented text",
		"\t\t- a - {{c1::b}}",
		"\t\t1. c = {{c2::d}}",
		"   ",
		"plain",
	), render(t, input, Options{}, false))
	assert.Equal(t, lines(
		"  indented text",
		"    - a - {{c1::b}}",
		" \t1. c = {{c2::d}}",
		"   ",
		"plain",
	), render(t, input, Options{TextIndent: IndentPreserve}, false))

	code := lines("```go", "// x", "    y()", "```", "")
	assert.Equal(t, lines("```go", "// x", "    {{c1::y()}}", "```", ""),
		render(t, code, Options{CodeIndent: IndentPreserve, TextIndent: IndentTabs}, false))
}

func TestRender_curly(t *testing.T) {
	input := "- x - a}}b}\n"
	for _, tc := range []struct {
		mode CurlyMode
		want string
	}{
		{CurlyFullwidth, "- x - {{c1::a\uff5d\uff5db\uff5d}}\n"},
		{CurlyZWJ, "- x - {{c1::a}\u200d}b}\u200d}}\n"},
		{CurlyInsertSpace, "- x - {{c1::a} }b} }}\n"},
	} {
		t.Run(tc.mode.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, render(t, input, Options{Curly: tc.mode}, false))
		})
	}
}

func TestEscapeCurly(t *testing.T) {
	for _, tc := range []struct {
		mode CurlyMode
		in   string
		want string
	}{
		{CurlyZWJ, "}}", "}\u200d}\u200d"},
		{CurlyZWJ, "}}}", "}\u200d}\u200d}\u200d"},
		{CurlyZWJ, "a}b", "a}b"},
		{CurlyInsertSpace, "}}}", "} } } "},
		{CurlyInsertSpace, "{x}", "{x} "},
		{CurlyFullwidth, "{x}}", "{x\uff5d\uff5d"},
		{CurlyFullwidth, "no braces", "no braces"},
	} {
		assert.Equal(t, tc.want, EscapeCurly(tc.mode, tc.in), "%v %q", tc.mode, tc.in)
	}
}

func TestRender_disabled(t *testing.T) {
	for _, input := range []string{
		"",
		"plain\n\n  indented text\n",
		"- Front - Back\n1. a = b",
		cppExample,
		modeExample,
		"```\nunterminated\n",
		"| not | a table |\n",
		"| A | BB |\n|:-|--:|\n| 1 | 2 |\n|  | x |\n",
		"| h |\n|---|\n| a}} |\n| b |",
		"  | a | b |\n  |---|---|\n  | 1 | 2 |\n",
		"    - deep = item\n \t text\n",
	} {
		for _, indent := range []IndentMode{IndentTabs, IndentPreserve} {
			opts := Options{CodeIndent: indent, ListHints: true}
			assert.Equal(t, input, render(t, input, opts, true), "disabled render of %q", input)
		}
	}
}

func TestTransform_source(t *testing.T) {
	for _, input := range []string{
		cppExample,
		modeExample,
		"- Front - Back\n| A | B |\n|---|:-:|\n| 1 | 2 |\ntail",
	} {
		nodes := transform(t, input)
		var b []byte
		for _, node := range nodes {
			b = node.AppendText(b)
		}
		assert.Equal(t, input, string(b))
	}
}

func TestTransform_alreadyClozed(t *testing.T) {
	nodes := transform(t, "- a - b\n")
	_, err := Transform([]scandown.Node{nodes[0]})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyClozed), "unexpected error: %v", err)
	assert.Contains(t, err.Error(), "List#1")
}

func TestRender_hintOnCode(t *testing.T) {
	nodes := transform(t, modeExample)
	cb := nodes[0].(*CodeBlock)
	cb.Lines[1].Mark.Hint = true
	_, err := Render(nodes, Options{}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHintOnCode), "unexpected error: %v", err)
}

func TestIndent_Tabs(t *testing.T) {
	for _, tc := range []struct {
		raw   string
		width int
		want  int
	}{
		{"", 4, 0},
		{"    ", 4, 1},
		{"  ", 4, 1},
		{" ", 4, 0},
		{"\t  ", 2, 2},
		{"      ", 4, 2},
		{"\t\t", 0, 2},
	} {
		in := Indent{Raw: tc.raw, TabWidth: tc.width}
		assert.Equal(t, tc.want, in.Tabs(), "indent %q width %v", tc.raw, tc.width)
	}
}

func TestParseModes(t *testing.T) {
	curly, err := ParseCurlyMode("insert_space")
	require.NoError(t, err)
	assert.Equal(t, CurlyInsertSpace, curly)

	code, err := ParseCodeMode("html_inline")
	require.NoError(t, err)
	assert.Equal(t, CodeHTMLInline, code)
	assert.True(t, code.HTML())
	assert.True(t, code.Inline())

	indent, err := ParseIndentMode("preserve")
	require.NoError(t, err)
	assert.Equal(t, IndentPreserve, indent)

	_, err = ParseCodeMode("markdown")
	assert.EqualError(t, err, `invalid code transform mode "markdown", expected one of ["markdown_block" "markdown_inline" "html_block" "html_inline"]`)

	assert.Equal(t, "fullwidth", Options{}.Curly.String())
	assert.Equal(t, "invalid(9)", CodeMode(9).String())
}

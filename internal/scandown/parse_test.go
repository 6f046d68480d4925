package scandown_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/clozedown/internal/scandown"
	"github.com/jcorbin/clozedown/internal/scantok"
)

func parse(t *testing.T, input string) *Document {
	toks, err := scantok.Tokenize(input)
	require.NoError(t, err, "tokenize %q", input)
	doc, err := Parse(toks)
	require.NoError(t, err, "parse %q", input)
	return doc
}

func Example() {
	toks, err := scantok.Tokenize(strings.Join([]string{
		"Intro line",
		"- Front - Back",
		"1. ordered = item",
		"| A | BB |",
		"|:-|--:|",
		"| 1 | 2 |",
		"```python",
		"# comment",
		"x = 1",
		"```",
		"tail",
	}, "\n"))
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return
	}
	doc, err := Parse(toks)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return
	}
	fmt.Printf("%v\n", doc)
	fmt.Printf("%+v\n", doc)

	// Output:
	// TextLine List List Table CodeBlock:python TextLine
	// 1. <TextLine indent="" text="Intro line">
	// 2. <List ordered=false indent="" marker="-" text="Front - Back">
	// 3. <List ordered=true indent="" marker="1." text="ordered = item">
	// 4. <Table rows=1>
	//   columns: :--/1 --:/2
	//   cells: "A" "BB"
	//   cells: "1" "2"
	// 5. <CodeBlock lang=python tag="python" lines=2>
	//   <CodeComment indent="" text="# comment">
	//   <CodeLine indent="" text="x = 1">
	// 6. <TextLine indent="" text="tail" eof>
}

func TestParse_roundTrip(t *testing.T) {
	for _, input := range []string{
		"",
		"\n",
		"\n\n\n",
		"no trailing newline",
		"Hello 123\n \tWorld\n456\n",
		"- Front - Back\n  * nested looking = item\n10. ten\n",
		"-not a list\n1.5 not ordered\n",
		"```cpp\n/* c */\n#include <iostream>\n\nint main() {\n    return 0;\n  \n}\n```\n",
		"```\nuntagged\n```",
		"``` Go extra words \ncode\n```trailing junk\nafter",
		"```python\nunterminated\n",
		"```",
		"| A | BB |\n|:-|--:|\n| 1 | 2 |\n| short |\nafter\n",
		"| A | B |\n| not | separator |\n",
		"| A | B |\n|---|\n",
		"|x|\n|-|",
		"  | indented | table |\n  |:---:|---|\n  | c | d |\n",
		"\u00a0 nbsp indent\n\ttab indent\n",
	} {
		doc := parse(t, input)
		assert.Equal(t, input, string(doc.AppendText(nil)), "round trip of %q", input)
	}
}

func TestParse_kinds(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"blank lines", "\n\n", "TextLine TextLine"},
		{"unordered markers", "- a\n* b\n  - c", "List List List"},
		{"ordered marker", "12. twelve", "List"},
		{"marker needs gap", "-a\n*b\n1.x", "TextLine TextLine TextLine"},
		{"code", "```go\nx\n```\n", "CodeBlock:go"},
		{"code alias", "```JS\nx\n```\n", "CodeBlock:javascript"},
		{"code without newline after open", "```go", "TextLine"},
		{"unterminated code", "```go\nx\n", "TextLine TextLine"},
		{"indented fence is text", " ```go\nx\n ```\n", "TextLine TextLine TextLine"},
		{"table", "|a|b|\n|-|-|\n|1|2|\n|3|4|", "Table"},
		{"table header only", "|a|\n|:-:|\nnext", "Table TextLine"},
		{"table needs separator", "|a|b|\n|1|2|\n", "TextLine TextLine"},
		{"table separator count", "|a|b|\n|-|\n", "TextLine TextLine"},
		{"table separator content", "|a|b|\n|-|x|\n", "TextLine TextLine"},
		{"table header needs newline", "|a|b|", "TextLine"},
		{"table ends on cell count", "|a|b|\n|-|-|\n|1|\n", "Table TextLine"},
		{"list looking table row", "- |a|\n", "List"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := parse(t, tc.input)
			assert.Equal(t, tc.want, fmt.Sprint(doc))
		})
	}
}

func TestParse_codeComments(t *testing.T) {
	doc := parse(t, strings.Join([]string{
		"```cpp",
		"/* multi-line comment */",
		"#include <iostream>",
		"",
		"int main() {",
		"    // This is a simple C++ program",
		"    std::cout << \"Hello, world!\" << std::endl;",
		"    return 0;",
		"  ",
		"}",
		"```",
		"",
	}, "\n"))
	require.Len(t, doc.Nodes, 1)
	cb, ok := doc.Nodes[0].(*CodeBlock)
	require.True(t, ok, "expected a *CodeBlock, got %T", doc.Nodes[0])

	assert.Equal(t, Cpp, cb.Language)
	assert.Empty(t, doc.Warnings)

	var kinds []string
	for _, line := range cb.Lines {
		kinds = append(kinds, fmt.Sprint(line.Kind()))
	}
	assert.Equal(t, []string{
		"CodeComment",
		"CodeLine",
		"CodeLine",
		"CodeLine",
		"CodeComment",
		"CodeLine",
		"CodeLine",
		"CodeLine",
		"CodeLine",
	}, kinds)

	assert.True(t, cb.Lines[2].Blank())
	assert.True(t, cb.Lines[7].Blank())
	assert.Equal(t, "  ", cb.Lines[7].Indent.Raw)
	assert.Equal(t, 4, cb.Lines[4].Indent.Spaces())
}

func TestParse_commentOpeners(t *testing.T) {
	for _, tc := range []struct {
		lang    string
		line    string
		comment bool
	}{
		{"python", "# x", true},
		{"python", "// x", false},
		{"", "# x", true},
		{"sql", "-- x", true},
		{"sql", "--- x", false},
		{"css", "/* x */", true},
		{"css", "// x", false},
		{"hcl", "# x", true},
		{"go", "  // indented", true},
		{"go", "x // trailing", false},
		{"json", "# x", false},
		{"unknownlang", "# x", true},
	} {
		t.Run(tc.lang+" "+tc.line, func(t *testing.T) {
			doc := parse(t, "```"+tc.lang+"\n"+tc.line+"\n```\n")
			require.Len(t, doc.Nodes, 1)
			cb := doc.Nodes[0].(*CodeBlock)
			require.Len(t, cb.Lines, 1)
			assert.Equal(t, tc.comment, cb.Lines[0].Comment)
		})
	}
}

func TestParse_warnings(t *testing.T) {
	doc := parse(t, "```\na\n```\n```Brainfuck v2\nb\n```\n```rust\nunterminated\n")
	require.Len(t, doc.Warnings, 2)
	assert.Equal(t, `1:1: code block has no language tag, using "none"`, doc.Warnings[0].String())
	assert.Equal(t, `4:1: unrecognized code block language "Brainfuck v2", using "none"`, doc.Warnings[1].String())
}

func TestParse_invariant(t *testing.T) {
	_, err := Parse([]scantok.Token{
		{Kind: scantok.Whitespace, Lexeme: " "},
		{Kind: scantok.Whitespace, Lexeme: "\t"},
		{Kind: scantok.Text, Lexeme: "x"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariant), "unexpected error: %v", err)
}

func TestLookupLanguage(t *testing.T) {
	for _, tc := range []struct {
		tag   string
		want  Language
		known bool
	}{
		{"", NoLanguage, false},
		{"none", NoLanguage, false},
		{"cpp", Cpp, true},
		{"C++", Cpp, true},
		{"py", Python, true},
		{"  yaml  title=x", YAML, true},
		{"text", PlainText, true},
		{"cobol", NoLanguage, false},
	} {
		lang, known := LookupLanguage(tc.tag)
		assert.Equal(t, tc.want, lang, "tag %q", tc.tag)
		assert.Equal(t, tc.known, known, "tag %q", tc.tag)
	}
}

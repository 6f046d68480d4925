package cloze

import "fmt"

// Options control cloze rendering. The zero value holds the defaults.
type Options struct {
	Curly      CurlyMode  // escaping of "}" inside cloze markers
	ListHints  bool       // render list item fronts as hints
	CodeMode   CodeMode   // code block output form
	CodeIndent IndentMode // code line indentation
	TextIndent IndentMode // text line and list item indentation
}

// CurlyMode selects how a closing brace within a cloze is escaped, so that it
// cannot terminate the cloze marker early.
type CurlyMode int

const (
	// CurlyFullwidth replaces every "}" with a fullwidth right brace.
	CurlyFullwidth CurlyMode = iota
	// CurlyZWJ separates adjacent braces, and a trailing brace from the
	// closing marker, with a zero width joiner.
	CurlyZWJ
	// CurlyInsertSpace is like CurlyZWJ, but with a plain space.
	CurlyInsertSpace
)

// CodeMode selects the output form of fenced code blocks.
type CodeMode int

const (
	CodeMarkdownBlock CodeMode = iota
	CodeMarkdownInline
	CodeHTMLBlock
	CodeHTMLInline
)

// IndentMode selects how line indentation is rendered.
type IndentMode int

const (
	// IndentTabs re-expresses leading spaces as tabs, using the tab width
	// inferred for each code block, or 2 spaces per tab outside of code.
	// Whitespace only lines are kept as written.
	IndentTabs IndentMode = iota
	// IndentPreserve keeps indentation as written.
	IndentPreserve
)

var (
	curlyNames  = []string{"fullwidth", "zwj", "insert_space"}
	codeNames   = []string{"markdown_block", "markdown_inline", "html_block", "html_inline"}
	indentNames = []string{"tabs", "preserve"}
)

func (m CurlyMode) String() string  { return enumName(curlyNames, int(m)) }
func (m CodeMode) String() string   { return enumName(codeNames, int(m)) }
func (m IndentMode) String() string { return enumName(indentNames, int(m)) }

// Inline returns true for the modes that render each code line on its own.
func (m CodeMode) Inline() bool { return m == CodeMarkdownInline || m == CodeHTMLInline }

// HTML returns true for the modes that emit HTML markup.
func (m CodeMode) HTML() bool { return m == CodeHTMLBlock || m == CodeHTMLInline }

// ParseCurlyMode parses a brace handling name, like "zwj".
func ParseCurlyMode(s string) (CurlyMode, error) {
	i, err := parseEnum("curly brace mode", curlyNames, s)
	return CurlyMode(i), err
}

// ParseCodeMode parses a code transform mode name, like "html_block".
func ParseCodeMode(s string) (CodeMode, error) {
	i, err := parseEnum("code transform mode", codeNames, s)
	return CodeMode(i), err
}

// ParseIndentMode parses an indentation mode name, like "preserve".
func ParseIndentMode(s string) (IndentMode, error) {
	i, err := parseEnum("indent mode", indentNames, s)
	return IndentMode(i), err
}

// CurlyModes, CodeModes and IndentModes list the valid mode names, for use
// in help text.
func CurlyModes() []string  { return append([]string(nil), curlyNames...) }
func CodeModes() []string   { return append([]string(nil), codeNames...) }
func IndentModes() []string { return append([]string(nil), indentNames...) }

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("invalid(%d)", i)
}

func parseEnum(what string, names []string, s string) (int, error) {
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid %s %q, expected one of %q", what, s, names)
}

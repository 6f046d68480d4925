// Package clozify turns lightly structured markdown into Anki cloze
// flashcard text.
//
// Input is a sequence of plain text lines, flat list items, fenced code
// blocks, and pipe tables. List items of the form "front - back" get their
// back clozed. Code lines following a comment line are clozed as a group.
// Table data cells are each clozed on their own, with columns widened so
// that the table stays aligned. Everything else passes through unchanged.
package clozify

import (
	"fmt"

	"github.com/jcorbin/clozedown/internal/cloze"
	"github.com/jcorbin/clozedown/internal/scandown"
	"github.com/jcorbin/clozedown/internal/scantok"
)

type (
	// Options control output rendering; the zero value holds the defaults.
	Options = cloze.Options

	CurlyMode  = cloze.CurlyMode
	CodeMode   = cloze.CodeMode
	IndentMode = cloze.IndentMode

	// Warning is a non-fatal diagnostic, like an unrecognized code block
	// language.
	Warning = scandown.Warning
)

const (
	CurlyFullwidth   = cloze.CurlyFullwidth
	CurlyZWJ         = cloze.CurlyZWJ
	CurlyInsertSpace = cloze.CurlyInsertSpace

	CodeMarkdownBlock  = cloze.CodeMarkdownBlock
	CodeMarkdownInline = cloze.CodeMarkdownInline
	CodeHTMLBlock      = cloze.CodeHTMLBlock
	CodeHTMLInline     = cloze.CodeHTMLInline

	IndentTabs     = cloze.IndentTabs
	IndentPreserve = cloze.IndentPreserve
)

// Result is the output of Run.
type Result struct {
	Text     string
	Warnings []Warning
}

// Clozify returns text with cloze markers added.
func Clozify(text string, opts Options) (string, error) {
	res, err := Run(text, opts)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Run returns text with cloze markers added, along with any warnings.
// There is no partial output: any error fails the whole run.
func Run(text string, opts Options) (*Result, error) {
	nodes, doc, err := transform(text)
	if err != nil {
		return nil, err
	}
	out, err := cloze.Render(nodes, opts, false)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &Result{Text: out, Warnings: doc.Warnings}, nil
}

// Plain renders text with cloze markers disabled. It reproduces text
// exactly, except that code blocks take the form selected by opts.
func Plain(text string, opts Options) (string, error) {
	nodes, _, err := transform(text)
	if err != nil {
		return "", err
	}
	return cloze.Render(nodes, opts, true)
}

func transform(text string) ([]cloze.Node, *scandown.Document, error) {
	toks, err := scantok.Tokenize(text)
	if err != nil {
		return nil, nil, fmt.Errorf("tokenize: %w", err)
	}
	doc, err := scandown.Parse(toks)
	if err != nil {
		return nil, nil, fmt.Errorf("parse: %w", err)
	}
	nodes, err := cloze.Transform(doc.Nodes)
	if err != nil {
		return nil, nil, fmt.Errorf("transform: %w", err)
	}
	return nodes, doc, nil
}

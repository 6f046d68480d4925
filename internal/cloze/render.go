package cloze

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrAlreadyClozed is returned when transforming a tree that already
	// contains cloze nodes.
	ErrAlreadyClozed = errors.New("node is already clozed")

	// ErrHintOnCode is returned when rendering a code line marked as a
	// cloze hint; code lines only support deletions.
	ErrHintOnCode = errors.New("cloze hint on code line is not supported")
)

const (
	zwj            = "\u200d"
	fullwidthBrace = "\uff5d"
)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

// EscapeCurly escapes closing braces in s so that none of them can combine
// with a following "}}" cloze terminator.
func EscapeCurly(mode CurlyMode, s string) string {
	switch mode {
	case CurlyZWJ:
		return separateBraces(s, "}"+zwj+"}", zwj)
	case CurlyInsertSpace:
		return separateBraces(s, "} }", " ")
	default:
		return strings.ReplaceAll(s, "}", fullwidthBrace)
	}
}

// separateBraces rewrites every "}}" pair as pair, which separates the two;
// replacing twice covers runs of three or more braces, whose pairs overlap.
// A trailing brace gets tail appended.
func separateBraces(s, pair, tail string) string {
	s = strings.ReplaceAll(s, "}}", pair)
	s = strings.ReplaceAll(s, "}}", pair)
	if strings.HasSuffix(s, "}") {
		s += tail
	}
	return s
}

// wrap renders text inside the cloze marker for m.
func wrap(curly CurlyMode, m Mark, text string) string {
	var sb strings.Builder
	sb.WriteString("{{c")
	sb.WriteString(strconv.Itoa(m.Index))
	sb.WriteString("::")
	if m.Hint {
		sb.WriteString("::")
	}
	sb.WriteString(EscapeCurly(curly, text))
	sb.WriteString("}}")
	return sb.String()
}

func validate(nodes []Node) error {
	for _, node := range nodes {
		cb, ok := node.(*CodeBlock)
		if !ok {
			continue
		}
		for i, line := range cb.Lines {
			if line.Mark.Hint {
				return fmt.Errorf("%v line %v: %w", cb.Language, i+1, ErrHintOnCode)
			}
		}
	}
	return nil
}

package clozify

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/jcorbin/clozedown/internal/cloze"
)

// optionsFile is the YAML (or JSON) form of Options. Every field is optional;
// unset fields keep their prior value.
type optionsFile struct {
	HandleCurly *string      `yaml:"handle_curly"`
	Text        *textOptions `yaml:"text"`
	List        *listOptions `yaml:"list"`
	Code        *codeOptions `yaml:"code"`
}

type textOptions struct {
	Indent *string `yaml:"indent"`
}

type listOptions struct {
	EnableHints *bool `yaml:"enable_hints"`
}

type codeOptions struct {
	TransformMode *string `yaml:"transform_mode"`
	Indent        *string `yaml:"indent"`
}

// ParseOptions parses an options document over the defaults.
func ParseOptions(data []byte) (Options, error) {
	return ApplyOptions(Options{}, data)
}

// ApplyOptions parses an options document over base. Keys left unset keep
// their base value, and unknown keys are ignored.
func ApplyOptions(base Options, data []byte) (Options, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return base, nil
	}
	var file optionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("invalid options: %w", err)
	}

	opts := base
	var err error
	if file.HandleCurly != nil {
		if opts.Curly, err = cloze.ParseCurlyMode(*file.HandleCurly); err != nil {
			return base, fmt.Errorf("handle_curly: %w", err)
		}
	}
	if file.Text != nil && file.Text.Indent != nil {
		if opts.TextIndent, err = cloze.ParseIndentMode(*file.Text.Indent); err != nil {
			return base, fmt.Errorf("text.indent: %w", err)
		}
	}
	if file.List != nil && file.List.EnableHints != nil {
		opts.ListHints = *file.List.EnableHints
	}
	if code := file.Code; code != nil {
		if code.TransformMode != nil {
			if opts.CodeMode, err = cloze.ParseCodeMode(*code.TransformMode); err != nil {
				return base, fmt.Errorf("code.transform_mode: %w", err)
			}
		}
		if code.Indent != nil {
			if opts.CodeIndent, err = cloze.ParseIndentMode(*code.Indent); err != nil {
				return base, fmt.Errorf("code.indent: %w", err)
			}
		}
	}
	return opts, nil
}

// LoadOptions reads an options file over the defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// MarshalOptions returns the YAML form of opts, with every key set.
func MarshalOptions(opts Options) ([]byte, error) {
	var (
		curly      = opts.Curly.String()
		textIndent = opts.TextIndent.String()
		hints      = opts.ListHints
		mode       = opts.CodeMode.String()
		indent     = opts.CodeIndent.String()
	)
	return yaml.Marshal(optionsFile{
		HandleCurly: &curly,
		Text:        &textOptions{Indent: &textIndent},
		List:        &listOptions{EnableHints: &hints},
		Code:        &codeOptions{TransformMode: &mode, Indent: &indent},
	})
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcorbin/clozedown/clozify"
	"github.com/jcorbin/clozedown/internal/cliutil"
	"github.com/jcorbin/clozedown/internal/cloze"
)

// configName is the options file looked for when --config is not given.
const configName = ".clozify.yaml"

// optionFlags are the option flags shared by every command that clozifies.
type optionFlags struct {
	config     string
	curly      string
	hints      bool
	codeMode   string
	codeIndent string
	textIndent string
}

func (f *optionFlags) register(cmd *cobra.Command) {
	fl := cmd.PersistentFlags()
	fl.StringVar(&f.config, "config", "", "options file (default: nearest "+configName+")")
	fl.StringVar(&f.curly, "curly", "", "closing brace escaping: "+strings.Join(cloze.CurlyModes(), ", "))
	fl.BoolVar(&f.hints, "hints", false, "render list item fronts as cloze hints")
	fl.StringVar(&f.codeMode, "code-mode", "", "code block output: "+strings.Join(cloze.CodeModes(), ", "))
	fl.StringVar(&f.codeIndent, "code-indent", "", "code indentation: "+strings.Join(cloze.IndentModes(), ", "))
	fl.StringVar(&f.textIndent, "text-indent", "", "text and list indentation: "+strings.Join(cloze.IndentModes(), ", "))
}

// configPath returns the options file to load, if any.
func (f *optionFlags) configPath() (string, error) {
	if f.config != "" {
		return f.config, nil
	}
	return cliutil.FindWDFile(configName)
}

// resolve layers the options file, then any flags set, over the defaults.
func (f *optionFlags) resolve(cmd *cobra.Command) (clozify.Options, error) {
	var opts clozify.Options

	path, err := f.configPath()
	if err != nil {
		return opts, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return opts, fmt.Errorf("read config: %w", err)
		}
		if opts, err = clozify.ApplyOptions(opts, data); err != nil {
			return opts, fmt.Errorf("%s: %w", path, err)
		}
		log.Infof("loaded options from %s", path)
	}

	changed := func(name string) bool {
		flag := cmd.Flag(name)
		return flag != nil && flag.Changed
	}
	if changed("curly") {
		if opts.Curly, err = cloze.ParseCurlyMode(f.curly); err != nil {
			return opts, fmt.Errorf("--curly: %w", err)
		}
	}
	if changed("hints") {
		opts.ListHints = f.hints
	}
	if changed("code-mode") {
		if opts.CodeMode, err = cloze.ParseCodeMode(f.codeMode); err != nil {
			return opts, fmt.Errorf("--code-mode: %w", err)
		}
	}
	if changed("code-indent") {
		if opts.CodeIndent, err = cloze.ParseIndentMode(f.codeIndent); err != nil {
			return opts, fmt.Errorf("--code-indent: %w", err)
		}
	}
	if changed("text-indent") {
		if opts.TextIndent, err = cloze.ParseIndentMode(f.textIndent); err != nil {
			return opts, fmt.Errorf("--text-indent: %w", err)
		}
	}
	log.Debugf("options: %+v", opts)
	return opts, nil
}

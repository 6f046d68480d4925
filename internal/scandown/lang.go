package scandown

import "strings"

// Language is a code block language, as recognized from its fence tag.
type Language int

const (
	NoLanguage Language = iota
	C
	Cpp
	CSS
	Go
	Groovy
	HCL
	JavaScript
	JSX
	TypeScript
	TSX
	Proto
	SQL
	PLSQL
	Python
	TOML
	YAML

	// recognized, but without comment detection
	JSON
	HTML
	XML
	Markdown
	PlainText
)

var languageNames = [...]string{
	NoLanguage: "none",
	C:          "c",
	Cpp:        "cpp",
	CSS:        "css",
	Go:         "go",
	Groovy:     "groovy",
	HCL:        "hcl",
	JavaScript: "javascript",
	JSX:        "jsx",
	TypeScript: "typescript",
	TSX:        "tsx",
	Proto:      "proto",
	SQL:        "sql",
	PLSQL:      "plsql",
	Python:     "python",
	TOML:       "toml",
	YAML:       "yaml",
	JSON:       "json",
	HTML:       "html",
	XML:        "xml",
	Markdown:   "markdown",
	PlainText:  "text",
}

var languageAliases = map[string]Language{
	"h":          C,
	"c++":        Cpp,
	"cc":         Cpp,
	"cxx":        Cpp,
	"hpp":        Cpp,
	"golang":     Go,
	"gradle":     Groovy,
	"terraform":  HCL,
	"tf":         HCL,
	"js":         JavaScript,
	"mjs":        JavaScript,
	"ts":         TypeScript,
	"protobuf":   Proto,
	"mysql":      SQL,
	"postgres":   SQL,
	"postgresql": SQL,
	"sqlite":     SQL,
	"oracle":     PLSQL,
	"py":         Python,
	"python3":    Python,
	"yml":        YAML,
	"htm":        HTML,
	"md":         Markdown,
	"txt":        PlainText,
	"plaintext":  PlainText,
}

// String returns the canonical language name, as used in HTML class names.
func (lang Language) String() string {
	if lang >= 0 && int(lang) < len(languageNames) {
		return languageNames[lang]
	}
	return "none"
}

// LookupLanguage maps a fence tag to a language. Only the first
// whitespace-separated word of the tag is considered, case insensitively.
// Returns false for an empty or unrecognized tag.
func LookupLanguage(tag string) (Language, bool) {
	fields := strings.Fields(tag)
	if len(fields) == 0 {
		return NoLanguage, false
	}
	name := strings.ToLower(fields[0])
	if lang, ok := languageAliases[name]; ok {
		return lang, true
	}
	for lang, canon := range languageNames {
		if lang != int(NoLanguage) && canon == name {
			return Language(lang), true
		}
	}
	return NoLanguage, false
}

// CommentOpeners returns the punctuation lexemes that start a comment line in
// the receiver language. Languages without an entry get no comment detection.
func (lang Language) CommentOpeners() []string {
	switch lang {
	case CSS:
		return []string{"/*"}
	case C, Cpp, Go, Groovy, JavaScript, JSX, TypeScript, TSX, Proto:
		return []string{"//", "/*"}
	case HCL:
		return []string{"#", "//", "/*"}
	case SQL, PLSQL:
		return []string{"--", "/*"}
	case Python, TOML, YAML, NoLanguage:
		return []string{"#"}
	default:
		return nil
	}
}

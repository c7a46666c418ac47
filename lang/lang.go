package lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"path/filepath"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/sunlin7/difft/diff"
)

// Language identifies one of the built-in languages.
type Language int

const (
	Unknown Language = iota
	C
	Clojure
	EmacsLisp
	Go
	JavaScript
	JSON
	Python
	Rust
)

// Name returns the human-readable language name used in diff headers.
func (l Language) Name() string {
	if sp, ok := For(l); ok {
		return sp.Name
	}
	return "Text"
}

// FromName resolves a canonical language name, as printed by Name, back
// to the language. Matching is case-insensitive.
func FromName(name string) (Language, bool) {
	for _, sp := range registry {
		if strings.EqualFold(sp.Name, name) {
			return sp.Lang, true
		}
	}
	return Unknown, false
}

// For returns the spec of a language.
func For(l Language) (*Spec, bool) {
	for _, sp := range registry {
		if sp.Lang == l {
			return sp, true
		}
	}
	return nil, false
}

// Guess determines the language of an input from its file name — first by
// extension, then by well-known file names — and finally from a shebang
// line in the source.
func Guess(path string, src string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	base := filepath.Base(path)
	for _, sp := range registry {
		for _, e := range sp.Extensions {
			if e == ext {
				return sp.Lang
			}
		}
	}
	for _, sp := range registry {
		for _, name := range sp.FileNames {
			if name == base {
				return sp.Lang
			}
		}
	}
	if interp := shebangInterpreter(src); interp != "" {
		for _, sp := range registry {
			for _, s := range sp.Shebangs {
				if s == interp {
					return sp.Lang
				}
			}
		}
	}
	return Unknown
}

// shebangInterpreter extracts the interpreter name from a leading #! line,
// looking through /usr/bin/env indirection.
func shebangInterpreter(src string) string {
	if !strings.HasPrefix(src, "#!") {
		return ""
	}
	line := src[2:]
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	interp := filepath.Base(fields[0])
	if interp == "env" && len(fields) > 1 {
		interp = fields[1]
	}
	return interp
}

// ListNames returns the names of all built-in languages in sorted order.
func ListNames() []string {
	set := treeset.NewWith(utils.StringComparator)
	for _, sp := range registry {
		set.Add(sp.Name)
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

// Specs returns the specs of all built-in languages, ordered by name.
func Specs() []*Spec {
	names := ListNames()
	out := make([]*Spec, 0, len(names))
	for _, name := range names {
		l, _ := FromName(name)
		sp, _ := For(l)
		out = append(out, sp)
	}
	return out
}

// --- Built-in language registry ---------------------------------------------

var parens = [][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}}

var registry = []*Spec{
	{
		Lang:            EmacsLisp,
		Name:            "Emacs Lisp",
		Extensions:      []string{".el"},
		FileNames:       []string{".emacs", "_emacs"},
		CommentPatterns: []string{`;[^\n]*`},
		StringPatterns:  []string{`"([^"\\]|\\.)*"`},
		IdentPattern:    `[a-zA-Z_*/+<>=!?-][a-zA-Z0-9_*/+<>=!?-]*`,
		Keywords:        []string{"defun", "defvar", "defmacro", "let", "let*", "if", "when", "unless", "lambda", "setq"},
		Delimiters:      parens,
		Policy:          diff.SlideToLater,
	},
	{
		Lang:            Clojure,
		Name:            "Clojure",
		Extensions:      []string{".clj", ".cljs", ".cljc", ".edn"},
		Shebangs:        []string{"bb", "clojure"},
		CommentPatterns: []string{`;[^\n]*`},
		StringPatterns:  []string{`"([^"\\]|\\.)*"`},
		IdentPattern:    `[a-zA-Z_*/+<>=!?.-][a-zA-Z0-9_*/+<>=!?.-]*`,
		Keywords:        []string{"def", "defn", "defmacro", "let", "if", "when", "fn", "loop", "recur", "ns"},
		Delimiters:      parens,
		Policy:          diff.SlideToLater,
	},
	{
		Lang:           JSON,
		Name:           "JSON",
		Extensions:     []string{".json"},
		StringPatterns: []string{`"([^"\\]|\\.)*"`},
		Keywords:       []string{"true", "false", "null"},
		Delimiters:     [][2]string{{"{", "}"}, {"[", "]"}},
		Policy:         diff.SlideEarliest,
	},
	{
		Lang:            Go,
		Name:            "Go",
		Extensions:      []string{".go"},
		CommentPatterns: []string{`//[^\n]*`, `/\*([^*]|\*+[^*/])*\*+/`},
		StringPatterns:  []string{`"([^"\\]|\\.)*"`, "`[^`]*`", `'([^'\\]|\\.)+'`},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select",
			"struct", "switch", "type", "var",
		},
		Delimiters: parens,
		Policy:     diff.SlideEarliest,
	},
	{
		Lang:            Rust,
		Name:            "Rust",
		Extensions:      []string{".rs"},
		CommentPatterns: []string{`//[^\n]*`, `/\*([^*]|\*+[^*/])*\*+/`},
		StringPatterns:  []string{`"([^"\\]|\\.)*"`},
		Keywords: []string{
			"as", "break", "const", "continue", "crate", "else", "enum",
			"extern", "fn", "for", "if", "impl", "in", "let", "loop", "match",
			"mod", "move", "mut", "pub", "ref", "return", "self", "static",
			"struct", "trait", "type", "unsafe", "use", "where", "while",
		},
		Delimiters: parens,
		Policy:     diff.SlideEarliest,
	},
	{
		Lang:            C,
		Name:            "C",
		Extensions:      []string{".c", ".h"},
		CommentPatterns: []string{`//[^\n]*`, `/\*([^*]|\*+[^*/])*\*+/`},
		StringPatterns:  []string{`"([^"\\]|\\.)*"`, `'([^'\\]|\\.)'`},
		Keywords: []string{
			"break", "case", "const", "continue", "default", "do", "else",
			"enum", "extern", "for", "goto", "if", "return", "sizeof",
			"static", "struct", "switch", "typedef", "union", "while",
		},
		Delimiters: parens,
		Policy:     diff.SlideEarliest,
	},
	{
		Lang:            JavaScript,
		Name:            "JavaScript",
		Extensions:      []string{".js", ".mjs", ".cjs", ".jsx"},
		Shebangs:        []string{"node", "deno"},
		CommentPatterns: []string{`//[^\n]*`, `/\*([^*]|\*+[^*/])*\*+/`},
		StringPatterns:  []string{`"([^"\\]|\\.)*"`, `'([^'\\]|\\.)*'`, "`[^`]*`"},
		Keywords: []string{
			"async", "await", "break", "case", "catch", "class", "const",
			"continue", "default", "delete", "do", "else", "export", "extends",
			"finally", "for", "function", "if", "import", "in", "instanceof",
			"let", "new", "of", "return", "static", "switch", "throw", "try",
			"typeof", "var", "while", "yield",
		},
		Delimiters: parens,
		Policy:     diff.SlideEarliest,
	},
	{
		Lang:            Python,
		Name:            "Python",
		Extensions:      []string{".py", ".pyi"},
		Shebangs:        []string{"python", "python2", "python3"},
		CommentPatterns: []string{`#[^\n]*`},
		StringPatterns:  []string{`"([^"\\]|\\.)*"`, `'([^'\\]|\\.)*'`},
		Keywords: []string{
			"and", "as", "assert", "async", "await", "break", "class",
			"continue", "def", "del", "elif", "else", "except", "finally",
			"for", "from", "global", "if", "import", "in", "is", "lambda",
			"not", "or", "pass", "raise", "return", "try", "while", "with",
			"yield",
		},
		Delimiters: parens,
		Policy:     diff.SlideEarliest,
	},
}

package lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/sunlin7/difft"
	"github.com/sunlin7/difft/diff"
)

// TokenCat is the coarse token category the lowering step works with.
type TokenCat int

const (
	CatAtom TokenCat = iota // identifiers, numbers, operators, punctuation
	CatKeyword
	CatString
	CatComment
	CatOpen  // opening delimiter of a bracket pair
	CatClose // closing delimiter of a bracket pair
)

// Token is one lexical token together with its byte range in the source.
type Token struct {
	Cat    TokenCat
	Lexeme string
	Span   difft.Span
}

// Spec describes the lexical surface of one language. Specs are static
// data; the embedded lexer is compiled on first use and shared afterwards.
type Spec struct {
	Lang       Language
	Name       string
	Extensions []string // with leading dot, lower case
	FileNames  []string // exact base names, e.g. ".emacs"
	Shebangs   []string // interpreter names matched against a #! line

	CommentPatterns []string    // regexes covering a whole comment
	StringPatterns  []string    // regexes covering a whole string literal
	IdentPattern    string      // identifier regex; empty selects the default
	Keywords        []string    // literal keywords
	Delimiters      [][2]string // bracket pairs, opening before closing

	Policy diff.SliderPolicy

	once   sync.Once
	lexer  *lexmachine.Lexer
	lexErr error
}

const (
	defaultIdentPattern = `[a-zA-Z_$][a-zA-Z0-9_$]*`
	numberPattern       = `[0-9]+(\.[0-9]+)?`
	operatorPattern     = `[!%&*+,./:;<=>?@^|~-]+`
	whitespacePattern   = `( |\t|\n|\r)+`
)

// closeFor returns the closing delimiter paired with an opening one.
func (sp *Spec) closeFor(open string) string {
	for _, d := range sp.Delimiters {
		if d[0] == open {
			return d[1]
		}
	}
	return ""
}

// compiled returns the language's lexer, compiling it on first use.
// Compiling a static spec can only fail on a malformed pattern table,
// which is a programming error; it is still surfaced as an error so the
// caller can degrade to the line differ.
func (sp *Spec) compiled() (*lexmachine.Lexer, error) {
	sp.once.Do(func() {
		sp.lexer, sp.lexErr = sp.build()
		if sp.lexErr != nil {
			tracer().Errorf("error compiling DFA for %s: %v", sp.Name, sp.lexErr)
		}
	})
	return sp.lexer, sp.lexErr
}

func (sp *Spec) build() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	for _, p := range sp.CommentPatterns {
		lexer.Add([]byte(p), makeToken(CatComment))
	}
	for _, p := range sp.StringPatterns {
		lexer.Add([]byte(p), makeToken(CatString))
	}
	for _, kw := range sp.Keywords {
		lexer.Add([]byte(escapeLiteral(kw)), makeToken(CatKeyword))
	}
	for _, d := range sp.Delimiters {
		lexer.Add([]byte(escapeLiteral(d[0])), makeToken(CatOpen))
		lexer.Add([]byte(escapeLiteral(d[1])), makeToken(CatClose))
	}
	ident := sp.IdentPattern
	if ident == "" {
		ident = defaultIdentPattern
	}
	lexer.Add([]byte(ident), makeToken(CatAtom))
	lexer.Add([]byte(numberPattern), makeToken(CatAtom))
	lexer.Add([]byte(operatorPattern), makeToken(CatAtom))
	lexer.Add([]byte(whitespacePattern), skip)
	if err := lexer.Compile(); err != nil {
		return nil, err
	}
	return lexer, nil
}

// escapeLiteral escapes every character of a literal token, so that
// keywords and delimiters never act as regex operators.
func escapeLiteral(lit string) string {
	return "\\" + strings.Join(strings.Split(lit, ""), "\\")
}

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a pre-defined action which wraps a scanned match into a
// token of the given category.
func makeToken(cat TokenCat) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(cat), string(m.Bytes), m), nil
	}
}

// Tokenize scans a whole input. Unlexable bytes are skipped; the lexical
// grammar is deliberately permissive, so this only happens for stray
// bytes like unterminated strings.
func (sp *Spec) Tokenize(src string) ([]Token, error) {
	lexer, err := sp.compiled()
	if err != nil {
		return nil, err
	}
	s, err := lexer.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for {
		tok, err, eof := s.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				if ui.FailTC > s.TC {
					s.TC = ui.FailTC
				} else {
					s.TC++
				}
				continue
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		tokens = append(tokens, Token{
			Cat:    TokenCat(t.Type),
			Lexeme: string(t.Lexeme),
			Span:   difft.Span{uint32(t.TC), uint32(t.TC + len(t.Lexeme))},
		})
	}
	tracer().Debugf("%s tokenizer: %d tokens", sp.Name, len(tokens))
	return tokens, nil
}

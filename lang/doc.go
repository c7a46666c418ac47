/*
Package lang knows the built-in languages of the differ.

For every supported language the package carries a Spec: the lexical
surface (comment and string syntax, keywords, bracket pairs) together with
file-name patterns used for guessing and the slider policy the corrector
applies for that language. A Spec compiles into a lexmachine lexer on
first use; compiled lexers are immutable and shared between workers.

Lowering turns the flat token stream into the differ's atom/list form:
bracket tokens open and close lists, comments, strings and keywords become
marked atoms, everything in between becomes regular atoms. Whitespace never
reaches the tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'difft.lang'.
func tracer() tracing.Trace {
	return tracing.Select("difft.lang")
}

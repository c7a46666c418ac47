/*
Package linediff is the line-oriented fallback differ.

It is used whenever the tree differ cannot run: unknown languages, inputs
above the byte limit, and searches that exceeded the graph limit. The
result uses the same MatchedPos vocabulary as the tree differ, with whole
lines as the unit of change.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linediff

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'difft.linediff'.
func tracer() tracing.Trace {
	return tracing.Select("difft.linediff")
}

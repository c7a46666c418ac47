/*
Package syntax implements the tree model of the differ.

A syntax tree consists of two kinds of nodes: atoms, leaf nodes covering
one lexical token, and lists, interior nodes bracketed by an opening and a
closing delimiter atom. All nodes of a diff run — both the left and the
right tree — live in one arena and are addressed by integer ids. Parent
and sibling relationships are expressed as ids resolved against the arena,
not as owning references, which keeps the trees cycle-free and lets the
change map be a plain array indexed by id.

Trees are immutable after InitAllInfo has run. The only mutable state of
a diff run is the ChangeMap, which lives outside the nodes so that the
search can re-read the trees freely.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'difft.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("difft.syntax")
}

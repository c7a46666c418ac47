/*
Package diff computes node-level edits between two syntax trees.

The differ works in three passes. First the unchanged peeler walks both
trees in lockstep and strips maximal runs of content-equal nodes from
the top and bottom, recursing into paired lists; what remains is a set of
divergent sections. Second, for each divergent section, a shortest-path
search runs from the paired start cursors to the terminal state over a
graph whose vertices are synchronized cursor positions and whose edges are
edit operations with tuned costs. Third, the slider corrector normalizes
runs of novel nodes whose placement among equivalent sibling slots is
ambiguous.

The search is Dijkstra's algorithm with a deterministic tie-break: equal
costs are resolved in favor of paths entering fewer novel lists, then by
discovery order.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diff

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'difft.diff'.
func tracer() tracing.Trace {
	return tracing.Select("difft.diff")
}

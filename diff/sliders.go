package diff

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/sunlin7/difft/syntax"
)

// SliderPolicy picks the canonical placement for runs of novel nodes that
// could equally attach to either side of a boundary. Languages where a
// definition opens with its name (most brace languages) read better when
// an inserted run starts as early as possible; Lisp-family languages
// where a closing delimiter trails the construct prefer the later slot.
type SliderPolicy int

//go:generate stringer -type SliderPolicy
const (
	SlideEarliest SliderPolicy = iota
	SlideToLater
)

// FixAllSliders normalizes the placement of ambiguous novel runs on one
// side of the diff. It never changes how many nodes are novel — only which
// sibling slots a run occupies among placements with identical cost. The
// pass is idempotent: a second run finds nothing left to slide.
func FixAllSliders(a *syntax.Arena, policy SliderPolicy, roots []syntax.NodeID, cm *syntax.ChangeMap) {
	fixSequence(a, policy, roots, cm)
	for _, id := range roots {
		if n := a.Node(id); n.List {
			FixAllSliders(a, policy, n.Children, cm)
		}
	}
}

func fixSequence(a *syntax.Arena, policy SliderPolicy, seq []syntax.NodeID, cm *syntax.ChangeMap) {
	i := 0
	for i < len(seq) {
		if !isNovelAtom(a, cm, seq[i]) {
			i++
			continue
		}
		j := i
		for j+1 < len(seq) && isNovelAtom(a, cm, seq[j+1]) {
			j++
		}
		if commentsOnly(a, seq[i:j+1]) || policy == SlideToLater {
			i, j = slideRight(a, seq, i, j, cm)
		} else {
			i, j = slideLeft(a, seq, i, j, cm)
		}
		i = j + 1
	}
}

func isNovelAtom(a *syntax.Arena, cm *syntax.ChangeMap, id syntax.NodeID) bool {
	if a.Node(id).List {
		return false
	}
	c, ok := cm.Get(id)
	return ok && c.Kind == syntax.Novel
}

func commentsOnly(a *syntax.Arena, ids []syntax.NodeID) bool {
	for _, id := range ids {
		if a.Node(id).Kind != syntax.Comment {
			return false
		}
	}
	return true
}

// slideLeft moves the run [i..j] towards the front of the sibling run as
// long as the unchanged neighbor before it is interchangeable with the
// run's last node. The peer mapping follows the move, so peer consistency
// is preserved.
func slideLeft(a *syntax.Arena, seq []syntax.NodeID, i, j int, cm *syntax.ChangeMap) (int, int) {
	for i > 0 {
		prev, last := seq[i-1], seq[j]
		c, ok := cm.Get(prev)
		if !ok || c.Kind != syntax.Unchanged || a.Node(prev).List {
			break
		}
		if !syntax.ContentEqual(a, prev, last) {
			break
		}
		cm.Set(last, syntax.Change{Kind: syntax.Unchanged, Peer: c.Peer})
		cm.Set(c.Peer, syntax.Change{Kind: syntax.Unchanged, Peer: last})
		cm.Set(prev, syntax.Change{Kind: syntax.Novel, Peer: syntax.NoNode})
		i--
		j--
	}
	return i, j
}

// slideRight is the mirror image: the run attaches to the following
// boundary, which is also where comment-only runs belong.
func slideRight(a *syntax.Arena, seq []syntax.NodeID, i, j int, cm *syntax.ChangeMap) (int, int) {
	for j+1 < len(seq) {
		next, first := seq[j+1], seq[i]
		c, ok := cm.Get(next)
		if !ok || c.Kind != syntax.Unchanged || a.Node(next).List {
			break
		}
		if !syntax.ContentEqual(a, next, first) {
			break
		}
		cm.Set(first, syntax.Change{Kind: syntax.Unchanged, Peer: c.Peer})
		cm.Set(c.Peer, syntax.Change{Kind: syntax.Unchanged, Peer: first})
		cm.Set(next, syntax.Change{Kind: syntax.Novel, Peer: syntax.NoNode})
		i++
		j++
	}
	return i, j
}

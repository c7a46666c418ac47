package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/sunlin7/difft"
)

// MatchKind classifies a matched position for display.
type MatchKind int

//go:generate stringer -type MatchKind
const (
	MatchNovel           MatchKind = iota // inserted or deleted bytes
	MatchUnchanged                        // bytes with a peer range on the other side
	MatchStyledDelimiter                  // delimiter of an unchanged list
	MatchIgnored                          // bytes excluded from diffing (ignored comments)
)

// MatchedPos tags a byte range of one side with its change status. For
// MatchUnchanged and MatchStyledDelimiter, Peer is the corresponding byte
// range in the opposite side's source.
type MatchedPos struct {
	Span difft.Span
	Kind MatchKind
	Peer difft.Span
}

// ChangePositions walks a tagged tree in source order and emits one
// MatchedPos per token. Whitespace between siblings is not emitted; the
// display engine re-creates it from the source. Every node must have been
// tagged by the differ; an untagged node is a bug and panics.
func ChangePositions(a *Arena, roots []NodeID, cm *ChangeMap) []MatchedPos {
	var out []MatchedPos
	for _, id := range roots {
		out = appendPositions(a, id, cm, out)
	}
	return out
}

func appendPositions(a *Arena, id NodeID, cm *ChangeMap, out []MatchedPos) []MatchedPos {
	n := a.Node(id)
	change := cm.MustGet(id)
	if !n.List {
		switch change.Kind {
		case Unchanged:
			peer := a.Node(change.Peer)
			out = append(out, MatchedPos{Span: n.Span, Kind: MatchUnchanged, Peer: peer.Span})
		case ReplacedComment:
			peer := a.Node(change.Peer)
			out = append(out, MatchedPos{Span: n.Span, Kind: MatchNovel, Peer: peer.Span})
		default:
			out = append(out, MatchedPos{Span: n.Span, Kind: MatchNovel})
		}
		return out
	}
	switch change.Kind {
	case Unchanged:
		peer := a.Node(change.Peer)
		out = append(out, MatchedPos{Span: n.OpenSpan, Kind: MatchStyledDelimiter, Peer: peer.OpenSpan})
		for _, child := range n.Children {
			out = appendPositions(a, child, cm, out)
		}
		out = append(out, MatchedPos{Span: n.CloseSpan, Kind: MatchStyledDelimiter, Peer: peer.CloseSpan})
	default:
		out = append(out, MatchedPos{Span: n.OpenSpan, Kind: MatchNovel})
		for _, child := range n.Children {
			out = appendPositions(a, child, cm, out)
		}
		out = append(out, MatchedPos{Span: n.CloseSpan, Kind: MatchNovel})
	}
	return out
}

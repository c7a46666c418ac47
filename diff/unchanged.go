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

// Section is a pair of residual sibling subsequences that the peeler could
// not match and that must be fed to the shortest-path differ. One of the
// two sides may be empty.
type Section struct {
	LHS []syntax.NodeID
	RHS []syntax.NodeID
}

// MarkUnchanged walks both root sequences in lockstep, tags maximal runs
// of content-equal nodes at the top and the bottom as unchanged, and
// recurses into paired lists of the same shape. It returns the divergent sections that
// remain.
func MarkUnchanged(a *syntax.Arena, cm *syntax.ChangeMap, lhsRoots, rhsRoots []syntax.NodeID) []Section {
	return peel(a, cm, lhsRoots, rhsRoots, nil)
}

func peel(a *syntax.Arena, cm *syntax.ChangeMap, lhs, rhs []syntax.NodeID, acc []Section) []Section {
	for {
		// Strip equal nodes from the front.
		for len(lhs) > 0 && len(rhs) > 0 && syntax.ContentEqual(a, lhs[0], rhs[0]) {
			syntax.MarkUnchangedPair(a, cm, lhs[0], rhs[0])
			lhs, rhs = lhs[1:], rhs[1:]
		}
		// Strip equal nodes from the back.
		for len(lhs) > 0 && len(rhs) > 0 &&
			syntax.ContentEqual(a, lhs[len(lhs)-1], rhs[len(rhs)-1]) {
			syntax.MarkUnchangedPair(a, cm, lhs[len(lhs)-1], rhs[len(rhs)-1])
			lhs, rhs = lhs[:len(lhs)-1], rhs[:len(rhs)-1]
		}
		if len(lhs) == 0 && len(rhs) == 0 {
			return acc
		}
		if len(lhs) == 0 || len(rhs) == 0 {
			return append(acc, Section{LHS: lhs, RHS: rhs})
		}
		nl, nr := a.Node(lhs[0]), a.Node(rhs[0])
		if nl.List && nr.List && nl.Open == nr.Open && nl.Close == nr.Close &&
			nl.StructuralHash == nr.StructuralHash {
			// Same skeleton, different contents somewhere inside: keep the
			// delimiters matched and descend.
			tracer().Debugf("peeling into list pair %s / %s", nl, nr)
			cm.Set(nl.ID, syntax.Change{Kind: syntax.Unchanged, Peer: nr.ID})
			cm.Set(nr.ID, syntax.Change{Kind: syntax.Unchanged, Peer: nl.ID})
			acc = peel(a, cm, nl.Children, nr.Children, acc)
			lhs, rhs = lhs[1:], rhs[1:]
			continue
		}
		return append(acc, Section{LHS: lhs, RHS: rhs})
	}
}

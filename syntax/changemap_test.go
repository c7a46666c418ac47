package syntax

import (
	"testing"
)

func TestMarkUnchangedPairIsSymmetric(t *testing.T) {
	arena := NewArena()
	lhs, la, lb := buildSmallTree(arena)
	rhsA := arena.Atom(Normal, "a", span(11, 12))
	rhsB := arena.Atom(Normal, "b", span(13, 14))
	rhs := arena.List("(", span(10, 11), []NodeID{rhsA, rhsB}, ")", span(14, 15))
	InitAllInfo(arena, []NodeID{lhs}, []NodeID{rhs})

	cm := NewChangeMap(arena)
	MarkUnchangedPair(arena, cm, lhs, rhs)

	for _, pair := range [][2]NodeID{{lhs, rhs}, {la, rhsA}, {lb, rhsB}} {
		x, y := pair[0], pair[1]
		cx := cm.MustGet(x)
		cy := cm.MustGet(y)
		if cx.Kind != Unchanged || cy.Kind != Unchanged {
			t.Errorf("expected pair (%d,%d) to be unchanged", x, y)
		}
		if cx.Peer != y || cy.Peer != x {
			t.Errorf("peer mapping of (%d,%d) is not symmetric: %d/%d", x, y, cx.Peer, cy.Peer)
		}
		if arena.Node(x).ContentHash != arena.Node(y).ContentHash {
			t.Errorf("unchanged pair (%d,%d) with differing content hashes", x, y)
		}
	}
}

func TestChangeMapTotalityPanicsOnMissingTag(t *testing.T) {
	arena := NewArena()
	id := arena.Atom(Normal, "a", span(0, 1))
	InitAllInfo(arena, []NodeID{id}, nil)
	cm := NewChangeMap(arena)
	defer func() {
		if recover() == nil {
			t.Errorf("expected MustGet to panic for an untagged node")
		}
	}()
	cm.MustGet(id)
}

func TestChangePositionsByteCoverage(t *testing.T) {
	// ( a b ) — every non-whitespace byte must be covered exactly once.
	arena := NewArena()
	lhs, la, lb := buildSmallTree(arena)
	InitAllInfo(arena, []NodeID{lhs}, nil)
	cm := NewChangeMap(arena)
	cm.Set(lhs, Change{Kind: Novel, Peer: NoNode})
	cm.Set(la, Change{Kind: Novel, Peer: NoNode})
	cm.Set(lb, Change{Kind: Novel, Peer: NoNode})

	positions := ChangePositions(arena, []NodeID{lhs}, cm)
	covered := make(map[uint32]int)
	for _, pos := range positions {
		for b := pos.Span.From(); b < pos.Span.To(); b++ {
			covered[b]++
		}
	}
	for _, b := range []uint32{0, 1, 3, 4} { // bytes of ( a b )
		if covered[b] != 1 {
			t.Errorf("expected byte %d to be covered exactly once, was %d times", b, covered[b])
		}
	}
	if covered[2] != 0 {
		t.Errorf("whitespace byte 2 must not be covered")
	}
}

func TestChangePositionsEmitsPeerRanges(t *testing.T) {
	arena := NewArena()
	x := arena.Atom(Normal, "foo", span(0, 3))
	y := arena.Atom(Normal, "foo", span(10, 13))
	InitAllInfo(arena, []NodeID{x}, []NodeID{y})
	cm := NewChangeMap(arena)
	MarkUnchangedPair(arena, cm, x, y)

	lhsPos := ChangePositions(arena, []NodeID{x}, cm)
	if len(lhsPos) != 1 {
		t.Fatalf("expected one position, got %d", len(lhsPos))
	}
	if lhsPos[0].Kind != MatchUnchanged {
		t.Errorf("expected MatchUnchanged, got %s", lhsPos[0].Kind)
	}
	if lhsPos[0].Peer != span(10, 13) {
		t.Errorf("expected peer range (10…13), got %s", lhsPos[0].Peer)
	}
}

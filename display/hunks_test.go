package display

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sunlin7/difft"
	"github.com/sunlin7/difft/syntax"
)

func unchanged(from, to, peerFrom, peerTo uint32) syntax.MatchedPos {
	return syntax.MatchedPos{
		Span: difft.Span{from, to},
		Kind: syntax.MatchUnchanged,
		Peer: difft.Span{peerFrom, peerTo},
	}
}

func novel(from, to uint32) syntax.MatchedPos {
	return syntax.MatchedPos{Span: difft.Span{from, to}, Kind: syntax.MatchNovel}
}

func TestSingleLineReplacementMakesOneHunk(t *testing.T) {
	lhsSrc := "x = 1"
	rhsSrc := "x = 2"
	lhsPositions := []syntax.MatchedPos{
		unchanged(0, 1, 0, 1), unchanged(2, 3, 2, 3), novel(4, 5),
	}
	rhsPositions := []syntax.MatchedPos{
		unchanged(0, 1, 0, 1), unchanged(2, 3, 2, 3), novel(4, 5),
	}
	lhsLines, rhsLines := NewLineIndex(lhsSrc), NewLineIndex(rhsSrc)
	hunks := MergeAdjacent(MatchedPosToHunks(lhsPositions, rhsPositions, lhsLines, rhsLines), 3)
	want := []Hunk{{
		LHS: difft.LineSpan{From: 0, To: 0},
		RHS: difft.LineSpan{From: 0, To: 0},
	}}
	if d := cmp.Diff(want, hunks); d != "" {
		t.Errorf("unexpected hunks (-want +got):\n%s", d)
	}
}

func TestDistantChangesStaySeparate(t *testing.T) {
	// Two novel lines, 20 unchanged lines apart.
	var lhsSrc, rhsSrc string
	for i := 0; i < 22; i++ {
		lhsSrc += "line\n"
		rhsSrc += "line\n"
	}
	lhsLines, rhsLines := NewLineIndex(lhsSrc), NewLineIndex(rhsSrc)
	var lhsPositions, rhsPositions []syntax.MatchedPos
	for i := 0; i < 22; i++ {
		from := lhsLines.SpanOf(i).From()
		to := lhsLines.SpanOf(i).To()
		if i == 0 || i == 21 {
			lhsPositions = append(lhsPositions, novel(from, to))
			rhsPositions = append(rhsPositions, novel(from, to))
		} else {
			lhsPositions = append(lhsPositions, unchanged(from, to, from, to))
			rhsPositions = append(rhsPositions, unchanged(from, to, from, to))
		}
	}
	hunks := MergeAdjacent(MatchedPosToHunks(lhsPositions, rhsPositions, lhsLines, rhsLines), 3)
	if len(hunks) != 2 {
		t.Fatalf("expected 2 hunks, got %d: %v", len(hunks), hunks)
	}
}

func TestNearbyChangesMerge(t *testing.T) {
	// Two novel lines with 3 unchanged lines between them merge at the
	// default context of 3 (3 < 2*3+1).
	var src string
	for i := 0; i < 5; i++ {
		src += "line\n"
	}
	li := NewLineIndex(src)
	var positions []syntax.MatchedPos
	for i := 0; i < 5; i++ {
		from, to := li.SpanOf(i).From(), li.SpanOf(i).To()
		if i == 0 || i == 4 {
			positions = append(positions, novel(from, to))
		} else {
			positions = append(positions, unchanged(from, to, from, to))
		}
	}
	hunks := MergeAdjacent(MatchedPosToHunks(positions, positions, li, li), 3)
	if len(hunks) != 1 {
		t.Fatalf("expected the hunks to merge, got %d", len(hunks))
	}
	if hunks[0].LHS.From != 0 || hunks[0].LHS.To != 4 {
		t.Errorf("merged hunk covers %s", hunks[0].LHS)
	}
}

func TestHunksAreMonotonic(t *testing.T) {
	var src string
	for i := 0; i < 40; i++ {
		src += "line\n"
	}
	li := NewLineIndex(src)
	var positions []syntax.MatchedPos
	for i := 0; i < 40; i++ {
		from, to := li.SpanOf(i).From(), li.SpanOf(i).To()
		if i%10 == 0 {
			positions = append(positions, novel(from, to))
		} else {
			positions = append(positions, unchanged(from, to, from, to))
		}
	}
	hunks := MergeAdjacent(MatchedPosToHunks(positions, positions, li, li), 1)
	for i := 1; i < len(hunks); i++ {
		if hunks[i].LHS.From <= hunks[i-1].LHS.To {
			t.Errorf("hunks %d and %d overlap or are out of order", i-1, i)
		}
	}
}

func TestPureInsertionAnchorsOnOppositeSide(t *testing.T) {
	lhsSrc := "a\nb"
	rhsSrc := "a\nX\nb"
	lhsLines, rhsLines := NewLineIndex(lhsSrc), NewLineIndex(rhsSrc)
	lhsPositions := []syntax.MatchedPos{
		unchanged(0, 1, 0, 1), unchanged(2, 3, 4, 5),
	}
	rhsPositions := []syntax.MatchedPos{
		unchanged(0, 1, 0, 1), novel(2, 3), unchanged(4, 5, 2, 3),
	}
	hunks := MergeAdjacent(MatchedPosToHunks(lhsPositions, rhsPositions, lhsLines, rhsLines), 3)
	if len(hunks) != 1 {
		t.Fatalf("expected one hunk, got %d", len(hunks))
	}
	if !hunks[0].LHS.IsEmpty() {
		t.Errorf("expected an empty lhs side for a pure insertion, got %s", hunks[0].LHS)
	}
	if hunks[0].RHS.From != 1 || hunks[0].RHS.To != 1 {
		t.Errorf("expected the insertion on rhs line 1, got %s", hunks[0].RHS)
	}
}

func TestLineIndex(t *testing.T) {
	li := NewLineIndex("ab\ncd\n\nef")
	if li.NumLines() != 4 {
		t.Errorf("expected 4 lines, got %d", li.NumLines())
	}
	if li.LineOf(0) != 0 || li.LineOf(4) != 1 || li.LineOf(6) != 2 || li.LineOf(8) != 3 {
		t.Errorf("line lookup is off: %d %d %d %d", li.LineOf(0), li.LineOf(4), li.LineOf(6), li.LineOf(8))
	}
	if li.Line(1) != "cd" || li.Line(2) != "" {
		t.Errorf("line content lookup is off: %q %q", li.Line(1), li.Line(2))
	}
}

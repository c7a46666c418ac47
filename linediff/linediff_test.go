package linediff

import (
	"testing"

	"github.com/sunlin7/difft/syntax"
)

func TestIdenticalSources(t *testing.T) {
	src := "a\nb\nc"
	positions := ChangePositions(src, src)
	if len(positions) != 3 {
		t.Fatalf("expected one position per line, got %d", len(positions))
	}
	for i, pos := range positions {
		if pos.Kind != syntax.MatchUnchanged {
			t.Errorf("line %d: expected MatchUnchanged, got %s", i, pos.Kind)
		}
		if pos.Span != pos.Peer {
			t.Errorf("line %d: peer range should equal own range for identical input", i)
		}
	}
}

func TestReplacedLine(t *testing.T) {
	lhs := "a\nbb\nc"
	rhs := "a\nXY\nc"
	positions := ChangePositions(lhs, rhs)
	if len(positions) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(positions))
	}
	if positions[0].Kind != syntax.MatchUnchanged {
		t.Errorf("first line should be unchanged")
	}
	if positions[1].Kind != syntax.MatchNovel {
		t.Errorf("middle line should be novel")
	}
	if positions[1].Span.From() != 2 {
		t.Errorf("novel line starts at byte %d, want 2", positions[1].Span.From())
	}
	if positions[2].Kind != syntax.MatchUnchanged {
		t.Errorf("last line should be unchanged")
	}
	// The unchanged 'c' line sits at different offsets on both sides only
	// if lengths differ; here they match.
	if positions[2].Peer.From() != positions[2].Span.From() {
		t.Errorf("peer offset of trailing line is off")
	}
}

func TestInsertionShiftsPeers(t *testing.T) {
	lhs := "a\nc"
	rhs := "a\nb\nc"
	positions := ChangePositions(lhs, rhs)
	if len(positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(positions))
	}
	last := positions[1]
	if last.Kind != syntax.MatchUnchanged {
		t.Fatalf("expected trailing line to be unchanged")
	}
	if last.Span.From() != 2 || last.Peer.From() != 4 {
		t.Errorf("expected c to map from byte 2 to byte 4, got %s -> %s", last.Span, last.Peer)
	}
}

func TestDeletionIsNovel(t *testing.T) {
	positions := ChangePositions("a\nb\nc", "a\nc")
	novel := 0
	for _, pos := range positions {
		if pos.Kind == syntax.MatchNovel {
			novel++
		}
	}
	if novel != 1 {
		t.Errorf("expected exactly one novel line, got %d", novel)
	}
}

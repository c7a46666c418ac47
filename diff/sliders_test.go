package diff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sunlin7/difft/diff"
	"github.com/sunlin7/difft/lang"
	"github.com/sunlin7/difft/syntax"
)

func tagsOf(arena *syntax.Arena, cm *syntax.ChangeMap) []syntax.Change {
	var tags []syntax.Change
	for id := 0; id < arena.Len(); id++ {
		tags = append(tags, cm.MustGet(syntax.NodeID(id)))
	}
	return tags
}

func TestSlideEarliestMovesRunToFront(t *testing.T) {
	// Appending a second x is ambiguous: the differ marks the trailing x
	// novel, the corrector prefers the earliest equivalent slot.
	arena, lhs, rhs := parsePair(t, lang.Go, "a x", "a x x")
	cm := runDiff(t, arena, lhs, rhs, 1_000_000)
	diff.FixAllSliders(arena, diff.SlideEarliest, rhs, cm)

	middle, last := arena.Node(rhs[1]), arena.Node(rhs[2])
	if cm.MustGet(middle.ID).Kind != syntax.Novel {
		t.Errorf("expected the middle x to be novel after sliding")
	}
	c := cm.MustGet(last.ID)
	if c.Kind != syntax.Unchanged {
		t.Fatalf("expected the trailing x to be unchanged after sliding")
	}
	if peer := cm.MustGet(c.Peer); peer.Peer != last.ID {
		t.Errorf("sliding broke the peer mapping")
	}
}

func TestSlideToLaterKeepsRunAtBack(t *testing.T) {
	arena, lhs, rhs := parsePair(t, lang.Go, "a x", "a x x")
	cm := runDiff(t, arena, lhs, rhs, 1_000_000)
	diff.FixAllSliders(arena, diff.SlideToLater, rhs, cm)
	if cm.MustGet(rhs[2]).Kind != syntax.Novel {
		t.Errorf("expected the trailing x to stay novel under SlideToLater")
	}
}

func TestSlidersAreIdempotent(t *testing.T) {
	for _, policy := range []diff.SliderPolicy{diff.SlideEarliest, diff.SlideToLater} {
		arena, lhs, rhs := parsePair(t, lang.Go, "a x y", "a x x y y")
		cm := runDiff(t, arena, lhs, rhs, 1_000_000)
		diff.FixAllSliders(arena, policy, lhs, cm)
		diff.FixAllSliders(arena, policy, rhs, cm)
		once := tagsOf(arena, cm)
		diff.FixAllSliders(arena, policy, lhs, cm)
		diff.FixAllSliders(arena, policy, rhs, cm)
		twice := tagsOf(arena, cm)
		if d := cmp.Diff(once, twice); d != "" {
			t.Errorf("%s: second corrector run changed tags (-once +twice):\n%s", policy, d)
		}
	}
}

func TestSliderNeverChangesNovelCount(t *testing.T) {
	arena, lhs, rhs := parsePair(t, lang.Go, "f a b", "f a a b b")
	cm := runDiff(t, arena, lhs, rhs, 1_000_000)
	before := countNovel(arena, cm, rhs)
	diff.FixAllSliders(arena, diff.SlideEarliest, rhs, cm)
	after := countNovel(arena, cm, rhs)
	if before != after {
		t.Errorf("corrector changed the novel count: %d -> %d", before, after)
	}
}

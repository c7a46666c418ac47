package diff_test

import (
	"testing"

	"github.com/sunlin7/difft/diff"
	"github.com/sunlin7/difft/lang"
	"github.com/sunlin7/difft/syntax"
)

func TestPeelerConsumesIdenticalTrees(t *testing.T) {
	src := "(a (b c) d)"
	arena, lhs, rhs := parsePair(t, lang.EmacsLisp, src, src)
	cm := syntax.NewChangeMap(arena)
	sections := diff.MarkUnchanged(arena, cm, lhs, rhs)
	if len(sections) != 0 {
		t.Fatalf("expected no divergent sections, got %d", len(sections))
	}
	for id := 0; id < arena.Len(); id++ {
		if cm.MustGet(syntax.NodeID(id)).Kind != syntax.Unchanged {
			t.Errorf("node %d not tagged unchanged after peeling", id)
		}
	}
}

func TestPeelerRecursesIntoSameShapedLists(t *testing.T) {
	// Both sides are a single list of three idents; only the middle one
	// differs. The peeler should descend and leave a one-atom section.
	arena, lhs, rhs := parsePair(t, lang.EmacsLisp, "(a b c)", "(a x c)")
	cm := syntax.NewChangeMap(arena)
	sections := diff.MarkUnchanged(arena, cm, lhs, rhs)
	if len(sections) != 1 {
		t.Fatalf("expected one divergent section, got %d", len(sections))
	}
	s := sections[0]
	if len(s.LHS) != 1 || len(s.RHS) != 1 {
		t.Fatalf("expected a one-atom section per side, got %d/%d", len(s.LHS), len(s.RHS))
	}
	if arena.Node(s.LHS[0]).Text != "b" || arena.Node(s.RHS[0]).Text != "x" {
		t.Errorf("section holds %q / %q", arena.Node(s.LHS[0]).Text, arena.Node(s.RHS[0]).Text)
	}
	if cm.MustGet(lhs[0]).Kind != syntax.Unchanged {
		t.Errorf("expected the outer list delimiters to be matched")
	}
}

func TestPeelerEmitsOneSidedSections(t *testing.T) {
	arena, lhs, rhs := parsePair(t, lang.EmacsLisp, "a b", "a b c d")
	cm := syntax.NewChangeMap(arena)
	sections := diff.MarkUnchanged(arena, cm, lhs, rhs)
	if len(sections) != 1 {
		t.Fatalf("expected one section, got %d", len(sections))
	}
	if len(sections[0].LHS) != 0 || len(sections[0].RHS) != 2 {
		t.Errorf("expected an rhs-only section, got %d/%d", len(sections[0].LHS), len(sections[0].RHS))
	}
}

func TestPeelerSkipsDifferentlyShapedLists(t *testing.T) {
	arena, lhs, rhs := parsePair(t, lang.EmacsLisp, "(a b)", "(a b b)")
	cm := syntax.NewChangeMap(arena)
	sections := diff.MarkUnchanged(arena, cm, lhs, rhs)
	if len(sections) != 1 {
		t.Fatalf("expected one section, got %d", len(sections))
	}
	// Different child counts mean different structural hashes: the whole
	// list pair stays in the section for the search to decide.
	if len(sections[0].LHS) != 1 || !arena.Node(sections[0].LHS[0]).List {
		t.Errorf("expected the list pair to be left for the differ")
	}
}

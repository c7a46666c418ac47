package diff

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sunlin7/difft/syntax"
)

// Edge costs. UnchangedNode = 1 makes any match cheaper than any novelty.
// UnchangedDelimiter (100) is cheaper than a single novel atom and far
// cheaper than entering two novel lists (600), so matched brackets win
// whenever the children beneath them also match. Novel atoms carry a length term so a long rename is
// attributed to a single novel atom instead of being split across many
// small matches.
const (
	costUnchangedNode       = 1
	costUnchangedDelimiter  = 100
	costReplacedCommentBase = 150
	costNovelAtomBase       = 300
	costEnterNovelList      = 300
	costExitList            = 1
)

func novelAtomCost(text string) int {
	n := len(text)
	if n > 100 {
		n = 100
	}
	return costNovelAtomBase + n/10
}

var dmp = diffmatchpatch.New()

func replacedCommentCost(lhs, rhs string) int {
	diffs := dmp.DiffMain(lhs, rhs, false)
	return costReplacedCommentBase + dmp.DiffLevenshtein(diffs)/10
}

// --- Cursors ----------------------------------------------------------------

// frame is one level of a cursor's list nesting. Frames are persistent:
// advancing a cursor allocates a new head frame and shares everything
// below, so no queue entry ever copies a whole path.
type frame struct {
	list  syntax.NodeID // enclosing list, NoNode for the section level
	nodes []syntax.NodeID
	idx   int
	up    *frame
}

// node returns the node under the cursor, or NoNode when the cursor is
// past the end of its sibling run.
func (f *frame) node() syntax.NodeID {
	if f.idx < len(f.nodes) {
		return f.nodes[f.idx]
	}
	return syntax.NoNode
}

func (f *frame) pastEnd() bool {
	return f.idx >= len(f.nodes)
}

// done reports the terminal condition for one side: past the end at the
// outermost frame.
func (f *frame) done() bool {
	return f.pastEnd() && f.up == nil
}

func (f *frame) advance() *frame {
	return &frame{list: f.list, nodes: f.nodes, idx: f.idx + 1, up: f.up}
}

// enter descends into the list under the cursor. The parent frame is
// stored pre-advanced, so exiting lands on the list's next sibling.
func (f *frame) enter(a *syntax.Arena) *frame {
	l := a.Node(f.node())
	return &frame{list: l.ID, nodes: l.Children, idx: 0, up: f.advance()}
}

func (f *frame) depth() uint16 {
	d := uint16(0)
	for g := f.up; g != nil; g = g.up {
		d++
	}
	return d
}

func sectionFrame(nodes []syntax.NodeID) *frame {
	return &frame{list: syntax.NoNode, nodes: nodes}
}

// --- Vertices and edges -----------------------------------------------------

// vertexKey identifies a synchronized cursor pair. When a cursor is past
// the end of a sibling run, the enclosing list id together with the end
// flag stands in for the node id; frame depth disambiguates re-entries.
type vertexKey struct {
	lhs, rhs           syntax.NodeID
	lhsEnd, rhsEnd     bool
	lhsDepth, rhsDepth uint16
}

func keyOf(lf, rf *frame) vertexKey {
	k := vertexKey{lhsDepth: lf.depth(), rhsDepth: rf.depth()}
	if lf.pastEnd() {
		k.lhs, k.lhsEnd = lf.list, true
	} else {
		k.lhs = lf.node()
	}
	if rf.pastEnd() {
		k.rhs, k.rhsEnd = rf.list, true
	} else {
		k.rhs = rf.node()
	}
	return k
}

// editOp enumerates the edge alphabet of the search graph.
type editOp int

const (
	opUnchangedNode editOp = iota
	opUnchangedDelimiter
	opReplacedComment
	opNovelAtomLHS
	opNovelAtomRHS
	opEnterNovelListLHS
	opEnterNovelListRHS
	opExitListLHS
	opExitListRHS
)

// step is one taken edge, recorded for path reconstruction.
type step struct {
	op       editOp
	lhs, rhs syntax.NodeID
}

type edge struct {
	cost       int
	novelEnter int // 1 for EnterNovelList edges, tie-break input
	via        step
	lhs, rhs   *frame
}

// neighbors generates the fixed set of edges leaving a vertex. The
// generation order is fixed so that runs on identical input push entries
// in identical order.
func neighbors(a *syntax.Arena, lf, rf *frame) []edge {
	var out []edge
	ln, rn := lf.node(), rf.node()

	if ln != syntax.NoNode && rn != syntax.NoNode {
		nl, nr := a.Node(ln), a.Node(rn)
		if syntax.ContentEqual(a, ln, rn) {
			out = append(out, edge{
				cost: costUnchangedNode,
				via:  step{op: opUnchangedNode, lhs: ln, rhs: rn},
				lhs:  lf.advance(), rhs: rf.advance(),
			})
		} else {
			if nl.List && nr.List && nl.Open == nr.Open && nl.Close == nr.Close {
				out = append(out, edge{
					cost: costUnchangedDelimiter,
					via:  step{op: opUnchangedDelimiter, lhs: ln, rhs: rn},
					lhs:  lf.enter(a), rhs: rf.enter(a),
				})
			}
			if !nl.List && !nr.List && nl.Kind == syntax.Comment && nr.Kind == syntax.Comment {
				out = append(out, edge{
					cost: replacedCommentCost(nl.Text, nr.Text),
					via:  step{op: opReplacedComment, lhs: ln, rhs: rn},
					lhs:  lf.advance(), rhs: rf.advance(),
				})
			}
		}
	}
	if ln != syntax.NoNode {
		if nl := a.Node(ln); nl.List {
			out = append(out, edge{
				cost:       costEnterNovelList,
				novelEnter: 1,
				via:        step{op: opEnterNovelListLHS, lhs: ln, rhs: syntax.NoNode},
				lhs:        lf.enter(a), rhs: rf,
			})
		} else {
			out = append(out, edge{
				cost: novelAtomCost(nl.Text),
				via:  step{op: opNovelAtomLHS, lhs: ln, rhs: syntax.NoNode},
				lhs:  lf.advance(), rhs: rf,
			})
		}
	}
	if rn != syntax.NoNode {
		if nr := a.Node(rn); nr.List {
			out = append(out, edge{
				cost:       costEnterNovelList,
				novelEnter: 1,
				via:        step{op: opEnterNovelListRHS, lhs: syntax.NoNode, rhs: rn},
				lhs:        lf, rhs: rf.enter(a),
			})
		} else {
			out = append(out, edge{
				cost: novelAtomCost(nr.Text),
				via:  step{op: opNovelAtomRHS, lhs: syntax.NoNode, rhs: rn},
				lhs:  lf, rhs: rf.advance(),
			})
		}
	}
	if ln == syntax.NoNode && lf.up != nil {
		out = append(out, edge{
			cost: costExitList,
			via:  step{op: opExitListLHS},
			lhs:  lf.up, rhs: rf,
		})
	}
	if rn == syntax.NoNode && rf.up != nil {
		out = append(out, edge{
			cost: costExitList,
			via:  step{op: opExitListRHS},
			lhs:  lf, rhs: rf.up,
		})
	}
	return out
}

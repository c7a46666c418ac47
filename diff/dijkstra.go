package diff

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/sunlin7/difft/syntax"
)

// ErrExceededGraphLimit is returned when the search expanded more distinct
// vertices than the configured graph limit allows. The caller is expected
// to fall back to a line-based diff; the error never terminates the
// process.
var ErrExceededGraphLimit = errors.New("diff: exceeded graph limit")

// queueEntry is one priority-queue element. Entries carry a monotonically
// increasing sequence number as the final tie-break, so two runs on
// identical input produce byte-identical output.
type queueEntry struct {
	cost       int
	novelEnter int // cumulative count of EnterNovelList edges on the path
	seq        uint64
	lhs, rhs   *frame
	via        step
	pred       *queueEntry
}

func entryComparator(x, y interface{}) int {
	a, b := x.(*queueEntry), y.(*queueEntry)
	switch {
	case a.cost != b.cost:
		return a.cost - b.cost
	case a.novelEnter != b.novelEnter:
		return a.novelEnter - b.novelEnter
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}

// MarkSyntax diffs one divergent section: it runs a shortest-path search
// from the paired start cursors to the terminal vertex and applies the
// change tags of the winning path to the change map.
//
// The search expands at most graphLimit distinct vertices; beyond that it
// gives up with ErrExceededGraphLimit.
func MarkSyntax(a *syntax.Arena, cm *syntax.ChangeMap, lhs, rhs []syntax.NodeID, graphLimit int) error {
	heap := binaryheap.NewWith(entryComparator)
	seq := uint64(0)
	push := func(e *queueEntry) {
		e.seq = seq
		seq++
		heap.Push(e)
	}

	push(&queueEntry{lhs: sectionFrame(lhs), rhs: sectionFrame(rhs)})

	visited := make(map[vertexKey]bool)
	expanded := 0
	for {
		v, ok := heap.Pop()
		if !ok {
			// The novel edges alone connect any start vertex to the
			// terminal, so an empty queue means the graph was malformed.
			panic("diff: search queue drained before reaching terminal vertex")
		}
		cur := v.(*queueEntry)
		key := keyOf(cur.lhs, cur.rhs)
		if visited[key] {
			continue
		}
		visited[key] = true
		expanded++
		if cur.lhs.done() && cur.rhs.done() {
			tracer().Debugf("route found, cost=%d, %d vertices expanded", cur.cost, expanded)
			applyRoute(a, cm, cur)
			return nil
		}
		if expanded >= graphLimit {
			tracer().Infof("graph limit hit after %d vertices", expanded)
			return ErrExceededGraphLimit
		}
		for _, e := range neighbors(a, cur.lhs, cur.rhs) {
			next := &queueEntry{
				cost:       cur.cost + e.cost,
				novelEnter: cur.novelEnter + e.novelEnter,
				lhs:        e.lhs,
				rhs:        e.rhs,
				via:        e.via,
				pred:       cur,
			}
			if !visited[keyOf(e.lhs, e.rhs)] {
				push(next)
			}
		}
	}
}

// applyRoute walks the predecessor chain back to the start vertex and
// applies the edge tags in forward order.
func applyRoute(a *syntax.Arena, cm *syntax.ChangeMap, terminal *queueEntry) {
	var steps []step
	for e := terminal; e.pred != nil; e = e.pred {
		steps = append(steps, e.via)
	}
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		switch s.op {
		case opUnchangedNode:
			syntax.MarkUnchangedPair(a, cm, s.lhs, s.rhs)
		case opUnchangedDelimiter:
			cm.Set(s.lhs, syntax.Change{Kind: syntax.Unchanged, Peer: s.rhs})
			cm.Set(s.rhs, syntax.Change{Kind: syntax.Unchanged, Peer: s.lhs})
		case opReplacedComment:
			cm.Set(s.lhs, syntax.Change{Kind: syntax.ReplacedComment, Peer: s.rhs})
			cm.Set(s.rhs, syntax.Change{Kind: syntax.ReplacedComment, Peer: s.lhs})
		case opNovelAtomLHS, opEnterNovelListLHS:
			cm.Set(s.lhs, syntax.Change{Kind: syntax.Novel, Peer: syntax.NoNode})
		case opNovelAtomRHS, opEnterNovelListRHS:
			cm.Set(s.rhs, syntax.Change{Kind: syntax.Novel, Peer: syntax.NoNode})
		case opExitListLHS, opExitListRHS:
			// Exits carry no tag.
		}
	}
}

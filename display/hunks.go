package display

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/sunlin7/difft"
	"github.com/sunlin7/difft/syntax"
)

// Hunk is one contiguous display block: a run of changed lines on either
// side plus their paired lines on the opposite side. One of the two line
// spans may be empty (pure insertion or deletion); its From still records
// where the change anchors on that side.
type Hunk struct {
	LHS difft.LineSpan
	RHS difft.LineSpan
}

// MatchedPosToHunks computes the raw, unmerged hunks: one per maximal run
// of changed lines on one side, anchored on the opposite side through the
// unchanged-line alignment.
func MatchedPosToHunks(lhsPositions, rhsPositions []syntax.MatchedPos, lhsLines, rhsLines *LineIndex) []Hunk {
	lhsChanged := changedLines(lhsPositions, lhsLines, rhsLines)
	rhsChanged := changedLines(rhsPositions, rhsLines, lhsLines)
	lhsToRHS := oppositeLines(lhsPositions, lhsLines, rhsLines)
	rhsToLHS := oppositeLines(rhsPositions, rhsLines, lhsLines)

	var hunks []Hunk
	for _, run := range runsOf(lhsChanged) {
		anchor := projectLine(lhsToRHS, run.From)
		hunks = append(hunks, Hunk{
			LHS: run,
			RHS: difft.LineSpan{From: anchor, To: anchor - 1},
		})
	}
	for _, run := range runsOf(rhsChanged) {
		anchor := projectLine(rhsToLHS, run.From)
		hunks = append(hunks, Hunk{
			LHS: difft.LineSpan{From: anchor, To: anchor - 1},
			RHS: run,
		})
	}
	sort.SliceStable(hunks, func(i, j int) bool {
		if hunks[i].LHS.From != hunks[j].LHS.From {
			return hunks[i].LHS.From < hunks[j].LHS.From
		}
		return hunks[i].RHS.From < hunks[j].RHS.From
	})
	tracer().Debugf("%d raw hunks", len(hunks))
	return hunks
}

// MergeAdjacent merges hunks separated by fewer unchanged lines than
// 2*numContextLines+1 and returns the final list, ascending and
// non-overlapping on both sides.
func MergeAdjacent(hunks []Hunk, numContextLines int) []Hunk {
	if len(hunks) == 0 {
		return nil
	}
	threshold := 2*numContextLines + 1
	out := []Hunk{hunks[0]}
	for _, h := range hunks[1:] {
		last := &out[len(out)-1]
		if gapBetween(*last, h) < threshold {
			last.LHS = unionSpan(last.LHS, h.LHS)
			last.RHS = unionSpan(last.RHS, h.RHS)
		} else {
			out = append(out, h)
		}
	}
	return out
}

// changedLines computes the set of changed lines of one side. A line is
// changed when it contains a novel position, or an unchanged position
// whose peer line runs against the source order — that is moved code, not
// mere drift from insertions above it.
func changedLines(positions []syntax.MatchedPos, li, opposite *LineIndex) map[int]bool {
	changed := make(map[int]bool)
	lastLine, lastPeer := -1, -1
	for _, pos := range positions {
		line := li.LineOf(pos.Span.From())
		switch pos.Kind {
		case syntax.MatchNovel:
			changed[line] = true
		case syntax.MatchUnchanged, syntax.MatchStyledDelimiter:
			peer := opposite.LineOf(pos.Peer.From())
			if lastLine >= 0 && line > lastLine && peer < lastPeer {
				changed[line] = true
			}
			lastLine, lastPeer = line, peer
		case syntax.MatchIgnored:
			// Ignored ranges never make a line changed.
		}
	}
	return changed
}

// oppositeLines maps lines of one side to the corresponding lines of the
// other side, derived from the unchanged positions. The first pairing of
// a line wins.
func oppositeLines(positions []syntax.MatchedPos, li, opposite *LineIndex) map[int]int {
	m := make(map[int]int)
	for _, pos := range positions {
		if pos.Kind != syntax.MatchUnchanged && pos.Kind != syntax.MatchStyledDelimiter {
			continue
		}
		line := li.LineOf(pos.Span.From())
		if _, seen := m[line]; !seen {
			m[line] = opposite.LineOf(pos.Peer.From())
		}
	}
	return m
}

// projectLine estimates where a line of one side lands on the other side,
// using the nearest aligned line at or before it.
func projectLine(alignment map[int]int, line int) int {
	for l := line; l >= 0; l-- {
		if p, ok := alignment[l]; ok {
			return p + (line - l)
		}
	}
	return 0
}

func runsOf(changed map[int]bool) []difft.LineSpan {
	lines := make([]int, 0, len(changed))
	for l := range changed {
		lines = append(lines, l)
	}
	sort.Ints(lines)
	var runs []difft.LineSpan
	for _, l := range lines {
		if len(runs) > 0 && runs[len(runs)-1].To == l-1 {
			runs[len(runs)-1].To = l
			continue
		}
		runs = append(runs, difft.LineSpan{From: l, To: l})
	}
	return runs
}

// gapBetween counts the unchanged lines separating two hunks, taking the
// larger of the two sides. Overlapping hunks yield a negative gap.
func gapBetween(a, b Hunk) int {
	gapL := b.LHS.From - a.LHS.To - 1
	gapR := b.RHS.From - a.RHS.To - 1
	if gapL > gapR {
		return gapL
	}
	return gapR
}

func unionSpan(a, b difft.LineSpan) difft.LineSpan {
	if a.IsEmpty() && b.IsEmpty() {
		if a.From < b.From {
			return a
		}
		return b
	}
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	out := a
	if b.From < out.From {
		out.From = b.From
	}
	if b.To > out.To {
		out.To = b.To
	}
	return out
}

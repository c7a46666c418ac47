package linediff

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sunlin7/difft"
	"github.com/sunlin7/difft/syntax"
)

// ChangePositions diffs src against the opposite side line by line and
// returns one MatchedPos per line of src: unchanged lines carry the byte
// range of their counterpart in the opposite source, lines missing from
// the opposite side are novel.
func ChangePositions(src, opposite string) []syntax.MatchedPos {
	dmp := diffmatchpatch.New()
	rSrc, rOpp, lineArray := dmp.DiffLinesToRunes(src, opposite)
	diffs := dmp.DiffMainRunes(rSrc, rOpp, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, lineArray[idx])
			}
		}
		return out
	}

	var positions []syntax.MatchedPos
	srcOff, oppOff := 0, 0
	for _, d := range diffs {
		lines := decode(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			for _, line := range lines {
				positions = append(positions, syntax.MatchedPos{
					Span: lineSpan(srcOff, line),
					Kind: syntax.MatchUnchanged,
					Peer: lineSpan(oppOff, line),
				})
				srcOff += len(line)
				oppOff += len(line)
			}
		case diffmatchpatch.DiffDelete:
			for _, line := range lines {
				positions = append(positions, syntax.MatchedPos{
					Span: lineSpan(srcOff, line),
					Kind: syntax.MatchNovel,
				})
				srcOff += len(line)
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range lines {
				oppOff += len(line)
			}
		}
	}
	tracer().Debugf("line diff: %d positions", len(positions))
	return positions
}

// lineSpan covers a line's content without its trailing newline.
func lineSpan(off int, line string) difft.Span {
	content := strings.TrimSuffix(line, "\n")
	return difft.Span{uint32(off), uint32(off + len(content))}
}

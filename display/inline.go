package display

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/sunlin7/difft"
	"github.com/sunlin7/difft/syntax"
)

// printInline renders hunks as an old block above a new block, the way
// unified diffs read.
func printInline(w io.Writer, res *DiffResult, opts difft.DisplayOptions) {
	p := newPalette(opts)
	lhsLines := NewLineIndex(res.LHSSrc)
	rhsLines := NewLineIndex(res.RHSSrc)
	lhsNovel := novelByLine(res.LHSPositions, lhsLines)
	rhsNovel := novelByLine(res.RHSPositions, rhsLines)
	gutter := gutterWidth(lhsLines, rhsLines)

	for i, h := range res.Hunks {
		fmt.Fprintln(w, Header(res.LHSDisplayPath, res.RHSDisplayPath, i+1, len(res.Hunks), res.DisplayLanguage, opts))
		printBlock(w, p, p.novelLHS, lhsLines, h.LHS, lhsNovel, gutter, opts)
		if !h.LHS.IsEmpty() && !h.RHS.IsEmpty() {
			fmt.Fprintln(w)
		}
		printBlock(w, p, p.novelRHS, rhsLines, h.RHS, rhsNovel, gutter, opts)
		fmt.Fprintln(w)
	}
}

func printBlock(w io.Writer, p palette, novelStyle *pterm.Style, li *LineIndex, span difft.LineSpan, novel map[int][]difft.Span, gutter int, opts difft.DisplayOptions) {
	if span.IsEmpty() {
		return
	}
	from := span.From - opts.NumContextLines
	if from < 0 {
		from = 0
	}
	to := span.To + opts.NumContextLines
	if to >= li.NumLines() {
		to = li.NumLines() - 1
	}
	for line := from; line <= to; line++ {
		number := fmt.Sprintf("%*d ", gutter, line+1)
		if line < span.From || line > span.To {
			number = p.paint(p.dim, number)
		} else {
			number = p.paint(novelStyle, number)
		}
		fmt.Fprintf(w, "%s%s\n", number, paintLine(p, novelStyle, li, line, novel[line], opts))
	}
}

// paintLine renders one source line, coloring its novel byte ranges.
func paintLine(p palette, novelStyle *pterm.Style, li *LineIndex, line int, novel []difft.Span, opts difft.DisplayOptions) string {
	content := li.Line(line)
	lineSpan := li.SpanOf(line)
	if len(novel) == 0 {
		return expandTabs(content, opts.TabWidth)
	}
	var b strings.Builder
	cursor := lineSpan.From()
	for _, span := range novel {
		from, to := span.From(), span.To()
		if to <= lineSpan.From() || from >= lineSpan.To() {
			continue
		}
		if from < lineSpan.From() {
			from = lineSpan.From()
		}
		if to > lineSpan.To() {
			to = lineSpan.To()
		}
		if from > cursor {
			b.WriteString(content[cursor-lineSpan.From() : from-lineSpan.From()])
		}
		b.WriteString(p.paint(novelStyle, content[from-lineSpan.From():to-lineSpan.From()]))
		cursor = to
	}
	if cursor < lineSpan.To() {
		b.WriteString(content[cursor-lineSpan.From():])
	}
	return expandTabs(b.String(), opts.TabWidth)
}

// novelByLine collects the novel byte ranges of each line.
func novelByLine(positions []syntax.MatchedPos, li *LineIndex) map[int][]difft.Span {
	m := make(map[int][]difft.Span)
	for _, pos := range positions {
		if pos.Kind != syntax.MatchNovel {
			continue
		}
		first := li.LineOf(pos.Span.From())
		last := first
		if pos.Span.To() > pos.Span.From() {
			last = li.LineOf(pos.Span.To() - 1)
		}
		for line := first; line <= last; line++ {
			m[line] = append(m[line], pos.Span)
		}
	}
	return m
}

func gutterWidth(lhs, rhs *LineIndex) int {
	max := lhs.NumLines()
	if rhs.NumLines() > max {
		max = rhs.NumLines()
	}
	return len(fmt.Sprint(max))
}

func expandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

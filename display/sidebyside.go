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

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"

	"github.com/sunlin7/difft"
)

// printSideBySide renders hunks as two aligned columns, old on the left.
// In SideBySideShowBoth mode a column is shown even when it has no
// changes of its own; plain SideBySide collapses to a single column for
// pure insertions and deletions.
func printSideBySide(w io.Writer, res *DiffResult, opts difft.DisplayOptions) {
	p := newPalette(opts)
	lhsLines := NewLineIndex(res.LHSSrc)
	rhsLines := NewLineIndex(res.RHSSrc)
	lhsNovel := novelByLine(res.LHSPositions, lhsLines)
	rhsNovel := novelByLine(res.RHSPositions, rhsLines)
	gutter := gutterWidth(lhsLines, rhsLines)

	for i, h := range res.Hunks {
		fmt.Fprintln(w, Header(res.LHSDisplayPath, res.RHSDisplayPath, i+1, len(res.Hunks), res.DisplayLanguage, opts))
		showBoth := opts.Mode == difft.SideBySideShowBoth
		if h.LHS.IsEmpty() && !showBoth {
			printBlock(w, p, p.novelRHS, rhsLines, h.RHS, rhsNovel, gutter, opts)
			fmt.Fprintln(w)
			continue
		}
		if h.RHS.IsEmpty() && !showBoth {
			printBlock(w, p, p.novelLHS, lhsLines, h.LHS, lhsNovel, gutter, opts)
			fmt.Fprintln(w)
			continue
		}

		lhsRows := blockRows(lhsLines, h.LHS, opts)
		rhsRows := blockRows(rhsLines, h.RHS, opts)
		for len(lhsRows) < len(rhsRows) {
			lhsRows = append(lhsRows, -1)
		}
		for len(rhsRows) < len(lhsRows) {
			rhsRows = append(rhsRows, -1)
		}

		width := columnWidth(lhsLines, lhsRows, opts)
		for row := range lhsRows {
			left, leftWidth := renderCell(p, p.novelLHS, lhsLines, h.LHS, lhsRows[row], lhsNovel, gutter, opts)
			right, _ := renderCell(p, p.novelRHS, rhsLines, h.RHS, rhsRows[row], rhsNovel, gutter, opts)
			pad := width - leftWidth
			if pad < 0 {
				pad = 0
			}
			fmt.Fprintf(w, "%s%s   %s\n", left, strings.Repeat(" ", pad), right)
		}
		fmt.Fprintln(w)
	}
}

// blockRows lists the line numbers of a hunk side including context, or
// an empty slice for an empty side.
func blockRows(li *LineIndex, span difft.LineSpan, opts difft.DisplayOptions) []int {
	if span.IsEmpty() {
		return nil
	}
	from := span.From - opts.NumContextLines
	if from < 0 {
		from = 0
	}
	to := span.To + opts.NumContextLines
	if to >= li.NumLines() {
		to = li.NumLines() - 1
	}
	rows := make([]int, 0, to-from+1)
	for line := from; line <= to; line++ {
		rows = append(rows, line)
	}
	return rows
}

// renderCell renders one column cell and reports its display width, which
// excludes the invisible color escapes.
func renderCell(p palette, style *pterm.Style, li *LineIndex, span difft.LineSpan, line int, novel map[int][]difft.Span, gutter int, opts difft.DisplayOptions) (string, int) {
	if line < 0 {
		return strings.Repeat(" ", gutter+1), 0
	}
	number := fmt.Sprintf("%*d ", gutter, line+1)
	if line < span.From || line > span.To {
		number = p.paint(p.dim, number)
	} else {
		number = p.paint(style, number)
	}
	content := paintLine(p, style, li, line, novel[line], opts)
	plain := expandTabs(li.Line(line), opts.TabWidth)
	return number + content, runewidth.StringWidth(plain)
}

// columnWidth sizes the left column to its widest visible row.
func columnWidth(li *LineIndex, rows []int, opts difft.DisplayOptions) int {
	width := 0
	for _, line := range rows {
		if line < 0 {
			continue
		}
		w := runewidth.StringWidth(expandTabs(li.Line(line), opts.TabWidth))
		if w > width {
			width = w
		}
	}
	return width
}

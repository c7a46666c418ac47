package display

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/sunlin7/difft"
)

// LineIndex maps between byte offsets and 0-based line numbers of one
// source string.
type LineIndex struct {
	src    string
	starts []uint32 // byte offset of each line start
}

// NewLineIndex builds the index. An empty source still has one (empty)
// line.
func NewLineIndex(src string) *LineIndex {
	starts := []uint32{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, uint32(i+1))
		}
	}
	return &LineIndex{src: src, starts: starts}
}

// NumLines returns the number of lines.
func (li *LineIndex) NumLines() int {
	return len(li.starts)
}

// LineOf returns the line containing the given byte offset.
func (li *LineIndex) LineOf(off uint32) int {
	return sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > off
	}) - 1
}

// Line returns a line's content without its trailing newline. Out-of-range
// lines are empty.
func (li *LineIndex) Line(n int) string {
	if n < 0 || n >= len(li.starts) {
		return ""
	}
	from := li.starts[n]
	to := uint32(len(li.src))
	if n+1 < len(li.starts) {
		to = li.starts[n+1]
	}
	return strings.TrimSuffix(li.src[from:to], "\n")
}

// SpanOf returns the byte range of a line's content, without the newline.
func (li *LineIndex) SpanOf(n int) difft.Span {
	if n < 0 || n >= len(li.starts) {
		return difft.Span{}
	}
	from := li.starts[n]
	return difft.Span{from, from + uint32(len(li.Line(n)))}
}

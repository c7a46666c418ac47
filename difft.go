package difft

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a range of input bytes. Every syntax
// node and every matched position tracks which part of the source it
// covers. A span denotes a start position and the position just behind
// the end.
type Span [2]uint32 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint32 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint32 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint32 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Contains checks whether other lies fully inside s.
func (s Span) Contains(other Span) bool {
	return other[0] >= s[0] && other[1] <= s[1]
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Line spans -------------------------------------------------------

// LineSpan captures a contiguous run of (0-based) line numbers, both ends
// inclusive. An empty run is denoted by From > To.
type LineSpan struct {
	From int
	To   int
}

// IsEmpty reports whether the span covers no lines.
func (ls LineSpan) IsEmpty() bool {
	return ls.From > ls.To
}

func (ls LineSpan) String() string {
	if ls.IsEmpty() {
		return "(empty)"
	}
	return fmt.Sprintf("%d–%d", ls.From, ls.To)
}

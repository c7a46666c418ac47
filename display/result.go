package display

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/sunlin7/difft/syntax"
)

// FileContent distinguishes text inputs from binary ones.
type FileContent int

const (
	ContentText FileContent = iota
	ContentBinary
)

// DiffResult is everything the printer needs to report one file pair.
type DiffResult struct {
	LHSDisplayPath string
	RHSDisplayPath string

	// DisplayLanguage is the language name shown in the header. It is
	// "Text" for unparsed inputs and carries a fallback suffix such as
	// "Text (exceeded DFT_GRAPH_LIMIT)" when the tree differ gave up.
	DisplayLanguage string

	LHSContent FileContent
	RHSContent FileContent
	LHSSrc     string
	RHSSrc     string

	LHSPositions []syntax.MatchedPos
	RHSPositions []syntax.MatchedPos
	Hunks        []Hunk

	HasByteChanges      bool
	HasSyntacticChanges bool
}

// HasReportableChange decides whether this result flips the process exit
// code when --exit-code is in effect.
func (r *DiffResult) HasReportableChange() bool {
	if r.LHSContent == ContentBinary || r.RHSContent == ContentBinary {
		return r.HasByteChanges
	}
	return r.HasSyntacticChanges
}

package display

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/sunlin7/difft"
)

// palette bundles the pterm styles of one rendering run. With colors
// disabled every paint function is the identity.
type palette struct {
	enabled  bool
	header   *pterm.Style
	novelLHS *pterm.Style
	novelRHS *pterm.Style
	dim      *pterm.Style
}

func newPalette(opts difft.DisplayOptions) palette {
	return palette{
		enabled:  opts.UseColor,
		header:   pterm.NewStyle(pterm.Bold),
		novelLHS: pterm.NewStyle(pterm.FgRed),
		novelRHS: pterm.NewStyle(pterm.FgGreen),
		dim:      pterm.NewStyle(pterm.FgGray),
	}
}

func (p palette) paint(style *pterm.Style, s string) string {
	if !p.enabled || s == "" {
		return s
	}
	return style.Sprint(s)
}

// Header renders the per-hunk header line, e.g.
//
//	src/main.go --- 2/3 --- Go
func Header(lhsPath, rhsPath string, hunk, total int, language string, opts difft.DisplayOptions) string {
	p := newPalette(opts)
	path := lhsPath
	if rhsPath != lhsPath {
		path = lhsPath + " -> " + rhsPath
	}
	if total > 1 {
		return p.paint(p.header, fmt.Sprintf("%s --- %d/%d --- %s", path, hunk, total, language))
	}
	return p.paint(p.header, fmt.Sprintf("%s --- %s", path, language))
}

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

	"github.com/sunlin7/difft"
)

// PrintDiffResult reports one file pair. All output of a file is written
// contiguously; when files are diffed in parallel, the caller funnels
// results through a single printer.
func PrintDiffResult(w io.Writer, opts difft.DisplayOptions, res *DiffResult) {
	lhsBinary := res.LHSContent == ContentBinary
	rhsBinary := res.RHSContent == ContentBinary
	switch {
	case lhsBinary && rhsBinary:
		if opts.PrintUnchanged || res.HasByteChanges {
			fmt.Fprintln(w, Header(res.LHSDisplayPath, res.RHSDisplayPath, 1, 1, "binary", opts))
			if res.HasByteChanges {
				fmt.Fprintln(w, "Binary contents changed.")
			} else {
				fmt.Fprintln(w, "No changes.")
			}
		}
	case lhsBinary || rhsBinary:
		// A binary file diffed against a text file.
		fmt.Fprintln(w, Header(res.LHSDisplayPath, res.RHSDisplayPath, 1, 1, "binary", opts))
		fmt.Fprintln(w, "Binary contents changed.")
	default:
		printTextResult(w, opts, res)
	}
}

func printTextResult(w io.Writer, opts difft.DisplayOptions, res *DiffResult) {
	language := res.DisplayLanguage
	if language == "" {
		language = "Text"
	}
	if !res.HasSyntacticChanges {
		if opts.PrintUnchanged {
			fmt.Fprintln(w, Header(res.LHSDisplayPath, res.RHSDisplayPath, 1, 1, language, opts))
			if language == "Text" || res.LHSSrc == res.RHSSrc {
				fmt.Fprintln(w, "No changes.")
			} else {
				fmt.Fprintln(w, "No syntactic changes.")
			}
			fmt.Fprintln(w)
		}
		return
	}
	if len(res.Hunks) == 0 {
		// Changed, but no hunks were computed (a check-only result).
		fmt.Fprintln(w, Header(res.LHSDisplayPath, res.RHSDisplayPath, 1, 1, language, opts))
		if language == "Text" {
			fmt.Fprintln(w, "Has changes.")
		} else {
			fmt.Fprintln(w, "Has syntactic changes.")
		}
		fmt.Fprintln(w)
		return
	}
	switch opts.Mode {
	case difft.Inline:
		printInline(w, res, opts)
	default:
		printSideBySide(w, res, opts)
	}
}

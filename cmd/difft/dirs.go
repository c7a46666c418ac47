package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/creachadair/taskgroup"

	"github.com/sunlin7/difft"
	"github.com/sunlin7/difft/display"
	"github.com/sunlin7/difft/files"
	"github.com/sunlin7/difft/lang"
)

// diffDirectories compares two directories pairwise by the union of their
// relative paths. File pairs are diffed on a worker pool, one worker per
// logical CPU; results go through a bounded channel to a single printer,
// so each file's output stays contiguous. Output order is completion
// order, not input order.
func diffDirectories(lhsDir, rhsDir string, diffOpts difft.DiffOptions, dispOpts difft.DisplayOptions, override lang.Language) (bool, error) {
	paths, err := files.RelativePathsInEither(lhsDir, rhsDir)
	if err != nil {
		return false, err
	}

	var encountered atomic.Bool
	results := make(chan *display.DiffResult, 1)
	printerDone := make(chan struct{})
	go func() {
		defer close(printerDone)
		for res := range results {
			display.PrintDiffResult(os.Stdout, dispOpts, res)
			if res.HasReportableChange() {
				encountered.Store(true)
			}
		}
	}()

	g, start := taskgroup.New(nil).Limit(runtime.NumCPU())
	for _, rel := range paths {
		rel := rel
		start(func() error {
			lhs := files.ParseFileArgument(filepath.Join(lhsDir, rel))
			rhs := files.ParseFileArgument(filepath.Join(rhsDir, rel))
			res, err := diffFile(rel, rel, lhs, rhs, diffOpts, dispOpts, override, true)
			if err != nil {
				// A single unreadable file must not stop the run.
				fmt.Fprintf(os.Stderr, "%s: %v\n", rel, err)
				return nil
			}
			results <- res
			return nil
		})
	}
	g.Wait()
	close(results)
	<-printerDone
	return encountered.Load(), nil
}

package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"os"
	"strings"

	"github.com/sunlin7/difft"
	"github.com/sunlin7/difft/diff"
	"github.com/sunlin7/difft/display"
	"github.com/sunlin7/difft/files"
	"github.com/sunlin7/difft/lang"
	"github.com/sunlin7/difft/linediff"
	"github.com/sunlin7/difft/syntax"
)

// diffFile reads both sides and diffs their content.
func diffFile(lhsDisplayPath, rhsDisplayPath string, lhsArg, rhsArg files.FileArgument, diffOpts difft.DiffOptions, dispOpts difft.DisplayOptions, override lang.Language, missingAsEmpty bool) (*display.DiffResult, error) {
	lhsBytes, rhsBytes, err := files.ReadFiles(lhsArg, rhsArg, missingAsEmpty)
	if err != nil {
		return nil, err
	}
	return diffFileContent(lhsDisplayPath, rhsDisplayPath, rhsArg, lhsBytes, rhsBytes, diffOpts, dispOpts, override), nil
}

// diffFileContent is the per-file pipeline: sniff, parse, peel, search,
// fix sliders, extract positions, build hunks. It never fails; inputs the
// tree differ cannot handle degrade to the line differ with a tagged
// display language.
func diffFileContent(lhsDisplayPath, rhsDisplayPath string, rhsArg files.FileArgument, lhsBytes, rhsBytes []byte, diffOpts difft.DiffOptions, dispOpts difft.DisplayOptions, override lang.Language) *display.DiffResult {
	res := &display.DiffResult{
		LHSDisplayPath: lhsDisplayPath,
		RHSDisplayPath: rhsDisplayPath,
	}
	if files.GuessContent(lhsBytes) == files.ProbablyBinary ||
		files.GuessContent(rhsBytes) == files.ProbablyBinary {
		res.LHSContent = display.ContentBinary
		res.RHSContent = display.ContentBinary
		res.HasByteChanges = !bytes.Equal(lhsBytes, rhsBytes)
		return res
	}

	// Ignore the trailing newline, if present.
	lhsSrc := strings.TrimSuffix(string(lhsBytes), "\n")
	rhsSrc := strings.TrimSuffix(string(rhsBytes), "\n")
	res.LHSSrc, res.RHSSrc = lhsSrc, rhsSrc

	// The right-hand side is usually the newer revision, so its name
	// decides the language — unless it is the null device.
	guessPath, guessSrc := rhsDisplayPath, rhsSrc
	if rhsArg.Kind == files.DevNull {
		guessPath, guessSrc = lhsDisplayPath, lhsSrc
	}
	language := override
	if language == lang.Unknown {
		language = lang.Guess(guessPath, guessSrc)
	}
	sp, haveParser := lang.For(language)
	if haveParser {
		res.DisplayLanguage = sp.Name
	} else {
		res.DisplayLanguage = "Text"
	}

	if bytes.Equal(lhsBytes, rhsBytes) {
		// Completely identical inputs need no parse at all.
		return res
	}
	res.HasByteChanges = true

	usedTree := false
	switch {
	case len(lhsBytes) > diffOpts.ByteLimit || len(rhsBytes) > diffOpts.ByteLimit:
		res.DisplayLanguage = "Text (exceeded DFT_BYTE_LIMIT)"
		res.LHSPositions = linediff.ChangePositions(lhsSrc, rhsSrc)
		res.RHSPositions = linediff.ChangePositions(rhsSrc, lhsSrc)
	case haveParser:
		usedTree = treeDiff(res, sp, lhsSrc, rhsSrc, diffOpts)
		if !usedTree {
			res.DisplayLanguage = "Text (exceeded DFT_GRAPH_LIMIT)"
			res.LHSPositions = linediff.ChangePositions(lhsSrc, rhsSrc)
			res.RHSPositions = linediff.ChangePositions(rhsSrc, lhsSrc)
		}
	default:
		res.LHSPositions = linediff.ChangePositions(lhsSrc, rhsSrc)
		res.RHSPositions = linediff.ChangePositions(rhsSrc, lhsSrc)
	}

	if diffOpts.CheckOnly {
		if !usedTree {
			// Without a tree there is no finer notion of change than bytes.
			res.HasSyntacticChanges = res.HasByteChanges
		}
		return res
	}

	lhsLines := display.NewLineIndex(lhsSrc)
	rhsLines := display.NewLineIndex(rhsSrc)
	hunks := display.MatchedPosToHunks(res.LHSPositions, res.RHSPositions, lhsLines, rhsLines)
	res.Hunks = display.MergeAdjacent(hunks, dispOpts.NumContextLines)
	res.HasSyntacticChanges = len(res.Hunks) > 0
	return res
}

// treeDiff runs the syntactic pipeline. It reports false when the search
// exceeded the graph limit and the caller should fall back to lines.
func treeDiff(res *display.DiffResult, sp *lang.Spec, lhsSrc, rhsSrc string, diffOpts difft.DiffOptions) bool {
	arena := syntax.NewArena()
	lhsRoots, lhsComments, lhsErr := lang.Lower(arena, sp, lhsSrc, diffOpts.IgnoreComments)
	rhsRoots, rhsComments, rhsErr := lang.Lower(arena, sp, rhsSrc, diffOpts.IgnoreComments)
	if lhsErr != nil || rhsErr != nil {
		return false
	}
	syntax.InitAllInfo(arena, lhsRoots, rhsRoots)

	if diffOpts.CheckOnly {
		res.HasSyntacticChanges = !sequencesEqual(arena, lhsRoots, rhsRoots)
		return true
	}

	cm := syntax.NewChangeMap(arena)
	var sections []diff.Section
	if _, keep := os.LookupEnv(difft.EnvKeepUnchanged); keep {
		sections = []diff.Section{{LHS: lhsRoots, RHS: rhsRoots}}
	} else {
		sections = diff.MarkUnchanged(arena, cm, lhsRoots, rhsRoots)
	}
	for _, section := range sections {
		if err := diff.MarkSyntax(arena, cm, section.LHS, section.RHS, diffOpts.GraphLimit); err != nil {
			return false
		}
	}

	diff.FixAllSliders(arena, sp.Policy, lhsRoots, cm)
	diff.FixAllSliders(arena, sp.Policy, rhsRoots, cm)

	res.LHSPositions = syntax.ChangePositions(arena, lhsRoots, cm)
	res.RHSPositions = syntax.ChangePositions(arena, rhsRoots, cm)
	if diffOpts.IgnoreComments {
		for _, span := range lhsComments {
			res.LHSPositions = append(res.LHSPositions, syntax.MatchedPos{Span: span, Kind: syntax.MatchIgnored})
		}
		for _, span := range rhsComments {
			res.RHSPositions = append(res.RHSPositions, syntax.MatchedPos{Span: span, Kind: syntax.MatchIgnored})
		}
	}
	return true
}

func sequencesEqual(a *syntax.Arena, lhs, rhs []syntax.NodeID) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	for i := range lhs {
		if !syntax.ContentEqual(a, lhs[i], rhs[i]) {
			return false
		}
	}
	return true
}

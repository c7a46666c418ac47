package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/sunlin7/difft"
	"github.com/sunlin7/difft/display"
	"github.com/sunlin7/difft/files"
	"github.com/sunlin7/difft/lang"
	"github.com/sunlin7/difft/syntax"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Exit codes. "Changes found" is only reported when -exit-code is given.
const (
	exitSuccess      = 0
	exitFoundChanges = 1
	exitUsageError   = 2
)

var traceKeys = []string{
	"difft.syntax", "difft.lang", "difft.diff",
	"difft.linediff", "difft.display", "difft.files",
}

func main() {
	// set up logging
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")

	diffOpts := difft.DefaultDiffOptions()
	dispOpts := difft.DefaultDisplayOptions()
	langName := flag.String("language", "", "Override the language, by canonical name")
	displayMode := flag.String("display", "side-by-side", "Display mode [inline|side-by-side|side-by-side-show-both]")
	color := flag.String("color", "auto", "Use colors [always|never|auto]")
	flag.IntVar(&dispOpts.NumContextLines, "context", dispOpts.NumContextLines, "Unchanged lines to show around changes")
	flag.IntVar(&dispOpts.TabWidth, "tab-width", dispOpts.TabWidth, "Spaces per tab stop")
	flag.BoolVar(&dispOpts.PrintUnchanged, "print-unchanged", false, "Also report files without changes")
	flag.IntVar(&diffOpts.GraphLimit, "graph-limit", diffOpts.GraphLimit, "Vertices to expand before giving up on a file")
	flag.IntVar(&diffOpts.ByteLimit, "byte-limit", diffOpts.ByteLimit, "Fall back to a line diff above this input size")
	flag.BoolVar(&diffOpts.IgnoreComments, "ignore-comments", false, "Exclude comments from the diff")
	flag.BoolVar(&diffOpts.CheckOnly, "check-only", false, "Only report whether there are changes")
	missingAsEmpty := flag.Bool("missing-as-empty", false, "Treat missing files as empty")
	setExitCode := flag.Bool("exit-code", false, "Exit with 1 when changes were found")
	listLanguages := flag.Bool("list-languages", false, "Print the built-in languages and exit")
	dumpSyntax := flag.String("dump-syntax", "", "Parse one file and print its syntax tree")
	dumpTokens := flag.String("dump-tokens", "", "Tokenize one file and print the raw tokens")
	flag.Parse()

	level := tracing.TraceLevelFromString(*tlevel)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}

	switch *color {
	case "always":
		dispOpts.UseColor = true
	case "never":
		dispOpts.UseColor = false
	case "auto":
		dispOpts.UseColor = stdoutIsTerminal()
	default:
		usageError("unknown --color value: " + *color)
	}
	switch *displayMode {
	case "inline":
		dispOpts.Mode = difft.Inline
	case "side-by-side":
		dispOpts.Mode = difft.SideBySide
	case "side-by-side-show-both":
		dispOpts.Mode = difft.SideBySideShowBoth
	default:
		usageError("unknown --display mode: " + *displayMode)
	}

	override := lang.Unknown
	if *langName != "" {
		l, ok := lang.FromName(*langName)
		if !ok {
			usageError("unknown language: " + *langName)
		}
		override = l
	}

	switch {
	case *listLanguages:
		printLanguages(dispOpts)
	case *dumpTokens != "":
		dumpFileTokens(*dumpTokens, override)
	case *dumpSyntax != "":
		dumpFileSyntax(*dumpSyntax, override, diffOpts.IgnoreComments)
	default:
		os.Exit(runDiff(diffOpts, dispOpts, override, *missingAsEmpty, *setExitCode))
	}
}

func runDiff(diffOpts difft.DiffOptions, dispOpts difft.DisplayOptions, override lang.Language, missingAsEmpty, setExitCode bool) int {
	if flag.NArg() != 2 {
		usageError("expected exactly two inputs to compare")
	}
	lhs := files.ParseFileArgument(flag.Arg(0))
	rhs := files.ParseFileArgument(flag.Arg(1))
	if lhs.Kind == files.Stdin && rhs.Kind == files.Stdin {
		usageError("only one input can come from standard input")
	}
	if lhs == rhs {
		kind := "file"
		if lhs.IsDir() {
			kind = "directory"
		}
		fmt.Fprintf(os.Stderr, "warning: You've specified the same %s twice.\n\n", kind)
	}

	if lhs.IsDir() && rhs.IsDir() {
		encountered, err := diffDirectories(lhs.Path, rhs.Path, diffOpts, dispOpts, override)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitUsageError
		}
		if setExitCode && encountered {
			return exitFoundChanges
		}
		return exitSuccess
	}

	res, err := diffFile(lhs.Path, rhs.Path, lhs, rhs, diffOpts, dispOpts, override, missingAsEmpty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsageError
	}
	display.PrintDiffResult(os.Stdout, dispOpts, res)
	if setExitCode && res.HasReportableChange() {
		return exitFoundChanges
	}
	return exitSuccess
}

// --- Auxiliary modes --------------------------------------------------------

func printLanguages(opts difft.DisplayOptions) {
	for _, sp := range lang.Specs() {
		name := sp.Name
		if opts.UseColor {
			name = pterm.NewStyle(pterm.Bold).Sprint(name)
		}
		fmt.Println(name)
		var pats []string
		for _, ext := range sp.Extensions {
			pats = append(pats, "*"+ext)
		}
		pats = append(pats, sp.FileNames...)
		if len(pats) > 0 {
			fmt.Println(" " + strings.Join(pats, " "))
		}
	}
}

func dumpFileTokens(path string, override lang.Language) {
	src, sp := loadForDump(path, override)
	tokens, err := sp.Tokenize(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsageError)
	}
	for _, tok := range tokens {
		fmt.Printf("%-4d %-4d %q\n", tok.Span.From(), tok.Span.To(), tok.Lexeme)
	}
}

func dumpFileSyntax(path string, override lang.Language, ignoreComments bool) {
	src, sp := loadForDump(path, override)
	arena := syntax.NewArena()
	roots, _, err := lang.Lower(arena, sp, src, ignoreComments)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsageError)
	}
	syntax.InitAllInfo(arena, roots, nil)
	ll := syntax.LeveledList(arena, roots)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func loadForDump(path string, override lang.Language) (string, *lang.Spec) {
	data, err := files.ParseFileArgument(path).Read(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsageError)
	}
	src := string(data)
	l := override
	if l == lang.Unknown {
		l = lang.Guess(path, src)
	}
	sp, ok := lang.For(l)
	if !ok {
		fmt.Fprintf(os.Stderr, "no parser for file: %s\n", path)
		os.Exit(exitUsageError)
	}
	return src, sp
}

// --- Helpers ----------------------------------------------------------------

func usageError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	flag.Usage()
	os.Exit(exitUsageError)
}

func stdoutIsTerminal() bool {
	st, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}

package main

import (
	"strings"
	"testing"

	"github.com/sunlin7/difft"
	"github.com/sunlin7/difft/files"
	"github.com/sunlin7/difft/lang"
)

func TestDiffIdenticalContent(t *testing.T) {
	res := diffFileContent(
		"foo.el", "foo.el",
		files.ParseFileArgument("foo.el"),
		[]byte("foo"), []byte("foo"),
		difft.DefaultDiffOptions(), difft.DefaultDisplayOptions(), lang.Unknown,
	)
	if len(res.LHSPositions) != 0 || len(res.RHSPositions) != 0 {
		t.Errorf("expected no positions for identical content")
	}
	if res.HasSyntacticChanges {
		t.Errorf("expected no syntactic changes")
	}
	if res.HasReportableChange() {
		t.Errorf("identical content must not flip the exit code")
	}
}

func TestTrailingNewlineIsIgnored(t *testing.T) {
	res := diffFileContent(
		"foo.el", "foo.el",
		files.ParseFileArgument("foo.el"),
		[]byte("foo\n"), []byte("foo"),
		difft.DefaultDiffOptions(), difft.DefaultDisplayOptions(), lang.Unknown,
	)
	if res.HasSyntacticChanges {
		t.Errorf("a trailing newline alone is not a syntactic change")
	}
}

func TestByteLimitFallsBackToLines(t *testing.T) {
	opts := difft.DefaultDiffOptions()
	opts.ByteLimit = 8
	res := diffFileContent(
		"big.el", "big.el",
		files.ParseFileArgument("big.el"),
		[]byte("(a b c d e f)"), []byte("(a b c d e g)"),
		opts, difft.DefaultDisplayOptions(), lang.Unknown,
	)
	if res.DisplayLanguage != "Text (exceeded DFT_BYTE_LIMIT)" {
		t.Errorf("expected the byte-limit fallback label, got %q", res.DisplayLanguage)
	}
	if !res.HasSyntacticChanges {
		t.Errorf("the line differ should still report the change")
	}
}

func TestGraphLimitFallsBackToLines(t *testing.T) {
	opts := difft.DefaultDiffOptions()
	opts.GraphLimit = 1
	res := diffFileContent(
		"f.el", "f.el",
		files.ParseFileArgument("f.el"),
		[]byte("(a)"), []byte("(b)"),
		opts, difft.DefaultDisplayOptions(), lang.Unknown,
	)
	if res.DisplayLanguage != "Text (exceeded DFT_GRAPH_LIMIT)" {
		t.Errorf("expected the graph-limit fallback label, got %q", res.DisplayLanguage)
	}
	if !res.HasReportableChange() {
		t.Errorf("the fallback must still report that a change was found")
	}
}

func TestBinaryContentsCompareByBytes(t *testing.T) {
	lhs := []byte{0x7f, 'E', 'L', 'F', 0, 1}
	rhs := []byte{0x7f, 'E', 'L', 'F', 0, 2}
	res := diffFileContent(
		"prog", "prog",
		files.ParseFileArgument("prog"),
		lhs, rhs,
		difft.DefaultDiffOptions(), difft.DefaultDisplayOptions(), lang.Unknown,
	)
	if !res.HasByteChanges || !res.HasReportableChange() {
		t.Errorf("expected differing binaries to report a byte change")
	}
	same := diffFileContent(
		"prog", "prog",
		files.ParseFileArgument("prog"),
		lhs, lhs,
		difft.DefaultDiffOptions(), difft.DefaultDisplayOptions(), lang.Unknown,
	)
	if same.HasReportableChange() {
		t.Errorf("identical binaries must not report a change")
	}
}

func TestCheckOnlySkipsHunks(t *testing.T) {
	opts := difft.DefaultDiffOptions()
	opts.CheckOnly = true
	res := diffFileContent(
		"x.go", "x.go",
		files.ParseFileArgument("x.go"),
		[]byte("x = 1"), []byte("x = 2"),
		opts, difft.DefaultDisplayOptions(), lang.Unknown,
	)
	if !res.HasSyntacticChanges {
		t.Errorf("check-only should still detect the change")
	}
	if len(res.Hunks) != 0 || len(res.LHSPositions) != 0 {
		t.Errorf("check-only must not compute hunks or positions")
	}
}

func TestLanguageOverride(t *testing.T) {
	res := diffFileContent(
		"noext", "noext",
		files.ParseFileArgument("noext"),
		[]byte("x = 1"), []byte("x = 2"),
		difft.DefaultDiffOptions(), difft.DefaultDisplayOptions(), lang.Go,
	)
	if res.DisplayLanguage != "Go" {
		t.Errorf("expected the override to set the display language, got %q", res.DisplayLanguage)
	}
	if !res.HasSyntacticChanges {
		t.Errorf("expected one changed literal to be reported")
	}
	if !strings.Contains(res.DisplayLanguage, "Go") {
		t.Errorf("display language lost the override")
	}
}

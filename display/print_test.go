package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sunlin7/difft"
)

func plainOpts() difft.DisplayOptions {
	opts := difft.DefaultDisplayOptions()
	opts.UseColor = false
	return opts
}

func TestPrintUnchangedIsSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	res := &DiffResult{
		LHSDisplayPath:  "a.go",
		RHSDisplayPath:  "a.go",
		DisplayLanguage: "Go",
	}
	PrintDiffResult(&buf, plainOpts(), res)
	if buf.Len() != 0 {
		t.Errorf("unchanged files should print nothing, got %q", buf.String())
	}
}

func TestPrintNoSyntacticChanges(t *testing.T) {
	var buf bytes.Buffer
	opts := plainOpts()
	opts.PrintUnchanged = true
	res := &DiffResult{
		LHSDisplayPath:  "a.go",
		RHSDisplayPath:  "a.go",
		DisplayLanguage: "Go",
		LHSSrc:          "x=1 ",
		RHSSrc:          "x=1",
		HasByteChanges:  true,
	}
	PrintDiffResult(&buf, opts, res)
	if !strings.Contains(buf.String(), "No syntactic changes.") {
		t.Errorf("expected 'No syntactic changes.', got %q", buf.String())
	}
}

func TestPrintBinaryChange(t *testing.T) {
	var buf bytes.Buffer
	res := &DiffResult{
		LHSDisplayPath: "prog",
		RHSDisplayPath: "prog",
		LHSContent:     ContentBinary,
		RHSContent:     ContentBinary,
		HasByteChanges: true,
	}
	PrintDiffResult(&buf, plainOpts(), res)
	if !strings.Contains(buf.String(), "Binary contents changed.") {
		t.Errorf("expected binary notice, got %q", buf.String())
	}
}

func TestInlineRenderingShowsBothSides(t *testing.T) {
	var buf bytes.Buffer
	opts := plainOpts()
	opts.Mode = difft.Inline
	lhsSrc := "x = 1"
	rhsSrc := "x = 2"
	res := &DiffResult{
		LHSDisplayPath:      "a.go",
		RHSDisplayPath:      "a.go",
		DisplayLanguage:     "Go",
		LHSSrc:              lhsSrc,
		RHSSrc:              rhsSrc,
		HasByteChanges:      true,
		HasSyntacticChanges: true,
		Hunks: []Hunk{{
			LHS: difft.LineSpan{From: 0, To: 0},
			RHS: difft.LineSpan{From: 0, To: 0},
		}},
	}
	PrintDiffResult(&buf, opts, res)
	out := buf.String()
	if !strings.Contains(out, "a.go --- Go") {
		t.Errorf("missing header, got %q", out)
	}
	if !strings.Contains(out, "x = 1") || !strings.Contains(out, "x = 2") {
		t.Errorf("expected both sides in the output, got %q", out)
	}
}

package difft

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"os"
	"strconv"
)

// Default limits for the tree differ. Both may be overridden per invocation
// with flags, or process-wide with the environment variables DFT_GRAPH_LIMIT
// and DFT_BYTE_LIMIT.
const (
	DefaultGraphLimit = 3_000_000 // vertices expanded before giving up
	DefaultByteLimit  = 1_000_000 // max input size per side for tree diffing
)

// EnvKeepUnchanged is a debugging toggle: when set, the unchanged-subtree
// peeling is skipped and full trees are fed to the differ.
const EnvKeepUnchanged = "DFT_DBG_KEEP_UNCHANGED"

// DiffOptions control how a single file pair is diffed.
type DiffOptions struct {
	GraphLimit     int  // abort the search after this many expanded vertices
	ByteLimit      int  // fall back to a line diff above this input size
	IgnoreComments bool // drop comments before diffing
	CheckOnly      bool // only report whether there are syntactic changes
}

// DefaultDiffOptions returns diff options with the built-in limits, after
// applying any DFT_GRAPH_LIMIT / DFT_BYTE_LIMIT environment overrides.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{
		GraphLimit: envInt("DFT_GRAPH_LIMIT", DefaultGraphLimit),
		ByteLimit:  envInt("DFT_BYTE_LIMIT", DefaultByteLimit),
	}
}

// DisplayMode selects one of the hunk rendering layouts.
type DisplayMode int

//go:generate stringer -type DisplayMode
const (
	Inline DisplayMode = iota
	SideBySide
	SideBySideShowBoth
)

// DisplayOptions control how diff results are rendered.
type DisplayOptions struct {
	Mode            DisplayMode
	NumContextLines int  // unchanged lines shown around a hunk
	UseColor        bool
	PrintUnchanged  bool // also report files without changes
	TabWidth        int
}

// DefaultDisplayOptions returns the rendering defaults: side-by-side,
// three context lines.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		Mode:            SideBySide,
		NumContextLines: 3,
		UseColor:        true,
		TabWidth:        8,
	}
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

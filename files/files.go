package files

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"go.uber.org/multierr"
)

// ArgKind says what a file argument denotes.
type ArgKind int

const (
	NamedPath ArgKind = iota
	Stdin
	DevNull
)

// FileArgument is one side of a diff invocation.
type FileArgument struct {
	Kind ArgKind
	Path string
}

// ParseFileArgument interprets a command-line operand: "-" is standard
// input and the platform null device means an empty file.
func ParseFileArgument(arg string) FileArgument {
	switch arg {
	case "-":
		return FileArgument{Kind: Stdin, Path: "-"}
	case os.DevNull, "/dev/null":
		return FileArgument{Kind: DevNull, Path: arg}
	}
	return FileArgument{Kind: NamedPath, Path: arg}
}

// IsDir reports whether the argument names an existing directory.
func (fa FileArgument) IsDir() bool {
	if fa.Kind != NamedPath {
		return false
	}
	st, err := os.Stat(fa.Path)
	return err == nil && st.IsDir()
}

// Read returns the argument's content. A missing file is an error unless
// missingAsEmpty is set, in which case it reads as empty — that is how
// additions and deletions reach us from version control.
func (fa FileArgument) Read(missingAsEmpty bool) ([]byte, error) {
	switch fa.Kind {
	case Stdin:
		return io.ReadAll(os.Stdin)
	case DevNull:
		return nil, nil
	}
	data, err := os.ReadFile(fa.Path)
	if err != nil {
		if missingAsEmpty && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("files: %w", err)
	}
	return data, nil
}

// ReadFiles reads both sides; read failures of the two sides are combined
// into one error.
func ReadFiles(lhs, rhs FileArgument, missingAsEmpty bool) ([]byte, []byte, error) {
	lhsBytes, lhsErr := lhs.Read(missingAsEmpty)
	rhsBytes, rhsErr := rhs.Read(missingAsEmpty)
	return lhsBytes, rhsBytes, multierr.Append(lhsErr, rhsErr)
}

// --- Content sniffing -------------------------------------------------------

// ProbableFileKind is the result of content sniffing.
type ProbableFileKind int

const (
	ProbablyText ProbableFileKind = iota
	ProbablyBinary
)

// GuessContent decides whether bytes look like text from the leading
// 1024-byte window: a NUL byte, or invalid UTF-8 in more than one byte out
// of twenty, marks the input as binary.
func GuessContent(data []byte) ProbableFileKind {
	window := data
	if len(window) > 1024 {
		window = window[:1024]
	}
	windowLen := len(window)
	for _, b := range window {
		if b == 0 {
			return ProbablyBinary
		}
	}
	invalid := 0
	for len(window) > 0 {
		r, size := utf8.DecodeRune(window)
		if r == utf8.RuneError && size == 1 {
			invalid++
		}
		window = window[size:]
	}
	if invalid*20 > windowLen {
		return ProbablyBinary
	}
	return ProbablyText
}

// --- Directory enumeration --------------------------------------------------

// RelativePathsInEither enumerates the union of the relative file paths
// below two directories, sorted.
func RelativePathsInEither(lhsDir, rhsDir string) ([]string, error) {
	set := treeset.NewWith(utils.StringComparator)
	for _, dir := range []string{lhsDir, rhsDir} {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			set.Add(rel)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	paths := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		paths = append(paths, v.(string))
	}
	tracer().Debugf("%d relative paths in %s / %s", len(paths), lhsDir, rhsDir)
	return paths, nil
}

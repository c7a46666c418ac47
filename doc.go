/*
Package difft is a structural diff tool.

difft compares two versions of a source file by parsing both sides into
syntax trees and computing the smallest set of node-level insertions,
deletions and unchanged mappings that transforms one tree into the other.
A brace that moves together with its block is not reported as a change.
Package structure is as follows:

■ syntax: Package syntax holds the tree model — arena-allocated atoms and
lists with content/structural hashes — together with the change map and
the extraction of matched positions.

■ lang: Package lang knows the built-in languages: guessing a language from
a file name or shebang, tokenizing with lexmachine and lowering token
streams into the atom/list form.

■ diff: Package diff is the differ itself: unchanged-subtree peeling, a
shortest-path search over synchronized tree cursors, and slider correction.

■ linediff: Package linediff is the line-oriented fallback used for plain
text and for inputs the tree differ cannot handle.

■ display: Package display converts matched positions into hunks and
renders them inline or side-by-side.

■ files: Package files reads the file arguments and enumerates directories.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package difft

/*
Package display turns matched positions into something a human can read.

The hunker groups positions by line, decides which lines count as changed,
and merges nearby changes into display hunks. The renderers then print the
hunks inline (old block above new block) or side by side; both respect the
terminal color settings and re-create whitespace from the original source,
since the tree differ never records it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'difft.display'.
func tracer() tracing.Trace {
	return tracing.Select("difft.display")
}

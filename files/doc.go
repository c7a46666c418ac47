/*
Package files reads the inputs of a diff run.

An input is a named path, standard input, or the null device (meaning
"treat as empty"). The package also sniffs binary content and enumerates
directory pairs by the union of their relative paths.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package files

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'difft.files'.
func tracer() tracing.Trace {
	return tracing.Select("difft.files")
}

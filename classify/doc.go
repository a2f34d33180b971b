/*
Package classify determines the bidirectional character class of code
points, feeding the paragraph algorithm of the parent package. Classes come
from the Unicode character database via golang.org/x/text; the explicit
directional formatting characters, which x/text files under a collective
Control class, are mapped by code point.

Positions are rune positions: Classes(s) returns one class per rune of s.
*/
package classify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheenbidi'.
func tracer() tracing.Trace {
	return tracing.Select("sheenbidi")
}

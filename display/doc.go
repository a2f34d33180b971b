/*
Package display renders resolved bidi paragraphs for terminals: the text
with its per-position embedding levels aligned underneath, and the stream
of isolating run sequences a paragraph produces. Terminal output of
bidirectional text is notoriously device-dependent; this package makes no
attempt at reordering, it visualizes the algorithm's output as-is.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheenbidi'.
func tracer() tracing.Trace {
	return tracing.Select("sheenbidi")
}

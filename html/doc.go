/*
Package html extracts bidi algorithm input from HTML fragments. The markup
hierarchy is flattened to its textual content, with dir attributes turned
into the directional isolates HTML5 defines for them, so that a fragment
like

	<p>The title is <span dir="rtl">مفتاح معايير الويب</span> in Arabic.</p>

resolves with the Arabic span properly isolated from its surroundings.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheenbidi'.
func tracer() tracing.Trace {
	return tracing.Select("sheenbidi")
}

/*
Package sheenbidi implements the paragraph-level part of the Unicode
Bidirectional Algorithm (UAX#9): determination of the paragraph embedding
level (rules P2/P3) and resolution of explicit embeddings, overrides and
isolates (rules X1–X10) into one embedding level per input position.

The algorithm operates on a sequence of bidi character classes, not on text.
Classifying code points is the job of a collaborator; package `classify`
provides one on top of the Unicode character database. Given the classes,

	classes := classify.Classes(input)
	algo := sheenbidi.New(classes)
	para, err := algo.Paragraph(0, len(classes), sheenbidi.LevelDefaultLTR)

yields a Paragraph carrying the resolved base level and the embedding level
of every input position. While resolving, the algorithm partitions the
paragraph into level runs, groups them into isolating run sequences and hands
each sequence to an optional RunResolver (see WithRunResolver). The weak,
neutral and implicit rules of UAX#9 (W1–W7, N0–N2, I1–I2) are the business of
such a downstream resolver and are not part of this package; neither are
line breaking, run reordering and mirroring.

Positions are indices into the class slice given to New. Whether those are
rune or byte positions is the classifier's choice; package classify works
with rune positions.
*/
package sheenbidi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sheenbidi'.
func tracer() tracing.Trace {
	return tracing.Select("sheenbidi")
}

// BidiError is the package error type.
type BidiError string

func (e BidiError) Error() string {
	return string(e)
}

// ErrIllegalRange is flagged whenever a paragraph request does not fit into
// the classified input, or is empty.
const ErrIllegalRange = BidiError("paragraph range exceeds the classified input")

// ErrIllegalArguments is flagged for nil or otherwise unusable arguments.
const ErrIllegalArguments = BidiError("illegal arguments: nil")

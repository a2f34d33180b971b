package sheenbidi

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Algorithm binds a read-only sequence of per-position bidi classes,
// usually covering a whole text, and creates paragraphs over sub-ranges of
// it. The class slice is shared, never copied and never written to, so a
// single Algorithm may serve concurrent paragraph resolutions.
type Algorithm struct {
	classes []Class
	sepLen  func(index int) int
	sink    RunResolver
}

// Option configures an Algorithm.
type Option func(algo *Algorithm)

// WithSeparatorLengths installs an oracle telling how many positions a
// paragraph separator found at `index´ occupies. The classifier knows this
// (CR+LF is one separator of length 2); without the option every separator
// counts as a single position.
func WithSeparatorLengths(f func(index int) int) Option {
	return func(algo *Algorithm) {
		algo.sepLen = f
	}
}

// WithRunResolver installs the downstream resolver receiving the isolating
// run sequences of every paragraph created by this Algorithm.
func WithRunResolver(sink RunResolver) Option {
	return func(algo *Algorithm) {
		algo.sink = sink
	}
}

// New creates an Algorithm over per-position bidi classes.
func New(classes []Class, opts ...Option) *Algorithm {
	algo := &Algorithm{classes: classes}
	for _, opt := range opts {
		opt(algo)
	}
	return algo
}

// Length is the number of classified positions the Algorithm covers.
func (algo *Algorithm) Length() int {
	return len(algo.classes)
}

// ParagraphBoundary determines how long a paragraph starting at `offset´
// actually is: up to and including the first paragraph separator within the
// suggested length, or the suggested length if there is none.
func (algo *Algorithm) ParagraphBoundary(offset, suggestedLength int) int {
	limit := offset + suggestedLength
	for index := offset; index < limit; index++ {
		if algo.classes[index] != B {
			continue
		}
		sep := 1
		if algo.sepLen != nil {
			if s := algo.sepLen(index); s > 1 {
				sep = s
			}
		}
		actual := (index - offset) + sep
		if actual > suggestedLength {
			actual = suggestedLength
		}
		return actual
	}
	return suggestedLength
}

// Paragraph resolves the paragraph starting at `offset´. The paragraph ends
// at the first paragraph separator within `suggestedLength´, or after
// suggestedLength positions. baseLevel below LevelMax forces the paragraph
// embedding level; LevelDefaultLTR and LevelDefaultRTL request rules P2/P3
// with the respective fallback.
func (algo *Algorithm) Paragraph(offset, suggestedLength int, baseLevel Level) (*Paragraph, error) {
	if offset < 0 || suggestedLength <= 0 || offset+suggestedLength > len(algo.classes) {
		return nil, ErrIllegalRange
	}
	tracer().Debugf("paragraph input: offset=%d, suggested length=%d, base=%d", offset, suggestedLength, baseLevel)

	actualLength := algo.ParagraphBoundary(offset, suggestedLength)
	tracer().Debugf("determined paragraph boundary: actual length=%d", actualLength)

	rs := newResolver(algo.classes[offset:offset+actualLength], algo.sink)
	resolved := rs.determineParagraphLevel(baseLevel)
	tracer().Debugf("determined paragraph level: %d (%s)", resolved, resolved.Direction())

	rs.baseLevel = resolved
	rs.isolating = IsolatingRun{
		ParagraphOffset: offset,
		ParagraphLevel:  resolved,
	}
	if err := rs.determineLevels(); err != nil {
		return nil, err
	}

	levels := make([]Level, actualLength)
	rs.saveLevels(levels)
	tracer().Debugf("determined embedding levels: %v", levels)

	return &Paragraph{
		offset:    offset,
		length:    actualLength,
		baseLevel: resolved,
		levels:    levels,
	}, nil
}

// EachParagraph splits the whole classified input into paragraphs and
// resolves them one after another, applying f to each. All paragraphs get
// the same base level request.
func (algo *Algorithm) EachParagraph(baseLevel Level, f func(para *Paragraph) error) error {
	if f == nil {
		return ErrIllegalArguments
	}
	for offset := 0; offset < len(algo.classes); {
		para, err := algo.Paragraph(offset, len(algo.classes)-offset, baseLevel)
		if err != nil {
			return err
		}
		if err := f(para); err != nil {
			return err
		}
		offset += para.Length()
	}
	return nil
}

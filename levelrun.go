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

// runKind classifies a level run by the way it participates in isolates.
// A run ending with an isolate initiator opens an isolating run sequence and
// stays `partial´ until a matching terminating run arrives. A run starting
// with PDI terminates an enclosing isolating run sequence; once it has been
// attached to its initiator it must not be processed as a base run again.
type runKind uint8

const (
	runKindSimple      runKind = 0x00
	runKindIsolate     runKind = 0x01
	runKindPartial     runKind = 0x02
	runKindTerminating runKind = 0x04
	runKindAttached    runKind = 0x08

	runKindPartialIsolate      = runKindIsolate | runKindPartial
	runKindAttachedTerminating = runKindTerminating | runKindAttached
)

func makeRunKind(isolate, terminating bool) runKind {
	kind := runKindSimple
	if isolate {
		kind |= runKindPartialIsolate
	}
	if terminating {
		kind |= runKindTerminating
	}
	return kind
}

func (kind runKind) isTerminating() bool {
	return kind&runKindTerminating != 0
}

func (kind runKind) isPartialIsolate() bool {
	return kind&runKindPartialIsolate == runKindPartialIsolate
}

func (kind runKind) isAttachedTerminating() bool {
	return kind&runKindAttachedTerminating == runKindAttachedTerminating
}

// LevelRun is a maximal span of consecutive chain links sharing one
// embedding level, together with its boundary classes sor and eor (rule X10
// calls them start-of-run and end-of-run). Level runs belonging to the same
// isolating run sequence are linked through Next.
type LevelRun struct {
	chain          *bidiChain
	next           *LevelRun
	firstLink      bidiLink
	lastLink       bidiLink
	subsequentLink bidiLink // successor of lastLink at construction time
	sor, eor       Class
	kind           runKind
	level          Level
}

func newLevelRun(chain *bidiChain, firstLink, lastLink bidiLink, sor, eor Class) *LevelRun {
	firstClass := chain.class(firstLink)
	lastClass := chain.class(lastLink)
	return &LevelRun{
		chain:          chain,
		firstLink:      firstLink,
		lastLink:       lastLink,
		subsequentLink: chain.next(lastLink),
		sor:            sor,
		eor:            eor,
		kind:           makeRunKind(lastClass.IsIsolateInitiator(), firstClass.IsIsolateTerminator()),
		level:          chain.level(firstLink),
	}
}

// attach links a terminating run as the continuation of this run's isolating
// run sequence.
func (run *LevelRun) attach(next *LevelRun) {
	run.next = next
}

// Level is the embedding level shared by all of the run's positions.
func (run *LevelRun) Level() Level {
	return run.level
}

// SOR is the start-of-run boundary class, L or R.
func (run *LevelRun) SOR() Class {
	return run.sor
}

// EOR is the end-of-run boundary class, L or R.
func (run *LevelRun) EOR() Class {
	return run.eor
}

// Next is the continuation of this run's isolating run sequence, or nil.
// For a run ending with an isolate initiator whose matching PDI exists in
// the paragraph, Next leads to the run terminated by that PDI.
func (run *LevelRun) Next() *LevelRun {
	return run.next
}

// Span is one chain link of a level run, handed out by EachSpan. Downstream
// resolvers may adjust the span's level (rules I1/I2) through SetLevel; the
// adjustment is picked up when the paragraph's levels are materialized.
type Span struct {
	chain *bidiChain
	link  bidiLink
	limit bidiLink
}

// Offset is the paragraph position of the span's first character.
func (sp Span) Offset() int {
	return sp.chain.offset(sp.link)
}

// Length is the number of positions covered by the span.
func (sp Span) Length() int {
	return int(sp.limit) - int(sp.link)
}

// Class is the span's bidi class after the explicit rules.
func (sp Span) Class() Class {
	return sp.chain.class(sp.link)
}

// Level is the span's embedding level.
func (sp Span) Level() Level {
	return sp.chain.level(sp.link)
}

// SetLevel overwrites the span's embedding level.
func (sp Span) SetLevel(level Level) {
	sp.chain.setLevel(sp.link, level)
}

// EachSpan applies f to every span of the run, in paragraph order. The
// chain is in its X9-normalized form, so abandoned formatting characters do
// not show up. Iteration stops on the first non-nil error, which is passed
// through.
func (run *LevelRun) EachSpan(f func(span Span) error) error {
	link := run.firstLink
	for {
		limit := run.chain.next(link)
		if link == run.lastLink {
			limit = run.subsequentLink
		}
		if err := f(Span{chain: run.chain, link: link, limit: limit}); err != nil {
			return err
		}
		if link == run.lastLink {
			return nil
		}
		link = run.chain.next(link)
	}
}

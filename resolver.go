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

// resolver is the per-paragraph working state: the chain of links, the
// directional status stack of rule X1, the queue of level runs awaiting
// rule X10, and the overflow counters of rules X5a–X7. All of it is local
// to one paragraph; resolving two paragraphs concurrently is safe as long
// as each has its own resolver.
type resolver struct {
	chain     bidiChain
	stack     statusStack
	queue     runQueue
	isolating IsolatingRun
	sink      RunResolver

	baseLevel     Level
	overIsolate   int
	overEmbedding int
	validIsolate  int
}

func newResolver(classes []Class, sink RunResolver) *resolver {
	rs := &resolver{sink: sink}
	rs.chain.initialize(len(classes))
	rs.populate(classes)
	return rs
}

// populate builds the chain from the paragraph's classes. Every formatting,
// isolation or separator character becomes a link of its own; everything
// else coalesces into maximal same-class links. A paragraph separator ends
// the scan: it can only be the last character of a paragraph, any trailing
// separator positions (the LF of CR+LF) are covered by the separator's own
// link, and the terminating Nil link starts at the paragraph's end.
func (rs *resolver) populate(classes []Class) {
	scanClass := Nil
	priorIndex := -1
	index := 0
scan:
	for ; index < len(classes); index++ {
		priorClass := scanClass
		scanClass = classes[index]

		switch scanClass {
		case B, ON, LRE, RLE, LRO, RLO, PDF, LRI, RLI, FSI, PDI:
			rs.chain.add(scanClass, index-priorIndex)
			priorIndex = index
			if scanClass == B {
				index = len(classes)
				break scan
			}
		default:
			if scanClass != priorClass {
				rs.chain.add(scanClass, index-priorIndex)
				priorIndex = index
			}
		}
	}
	rs.chain.add(Nil, index-priorIndex)
}

// determineParagraphLevel resolves the paragraph embedding level. A base
// level below LevelMax is taken as is; otherwise rules P2/P3 scan for the
// first strong character, falling back to RTL only for LevelDefaultRTL.
func (rs *resolver) determineParagraphLevel(baseLevel Level) Level {
	if baseLevel >= LevelMax {
		fallback := Level(0)
		if baseLevel == LevelDefaultRTL {
			fallback = 1
		}
		return rs.chain.determineBaseLevel(rs.chain.roller, rs.chain.roller, fallback, false)
	}
	return baseLevel
}

// pushEmbedding implements the shared body of rules X2–X5. The embedding
// or override character itself is BN-equivalent and handled by the caller.
func (rs *resolver) pushEmbedding(newLevel Level, override Class) {
	if newLevel <= LevelMax && rs.overIsolate == 0 && rs.overEmbedding == 0 {
		rs.stack.push(newLevel, override, false)
	} else if rs.overIsolate == 0 {
		rs.overEmbedding++
	}
}

// pushIsolate implements the shared body of rules X5a–X5c. The initiator
// link itself stays in the chain and carries the level of its surrounding
// context; an active override rewrites its class, which may make it
// mergeable with its predecessor. Reports whether it merged.
func (rs *resolver) pushIsolate(priorLink, link bidiLink, newLevel Level, override Class) bool {
	priorStatus := rs.stack.overrideStatus()
	rs.chain.setLevel(link, rs.stack.embeddingLevel())

	if newLevel <= LevelMax && rs.overIsolate == 0 && rs.overEmbedding == 0 {
		rs.validIsolate++
		rs.stack.push(newLevel, override, true)
	} else {
		rs.overIsolate++
	}

	if priorStatus != ON {
		rs.chain.setClass(link, priorStatus)
		return rs.chain.mergeIfEqual(priorLink, link)
	}
	return false
}

// applyOverride rewrites the link's class per the active override status
// (tail of rules X6 and X6a) and coalesces it with its predecessor if they
// became equal. Reports whether it merged.
func (rs *resolver) applyOverride(priorLink, link bidiLink) bool {
	override := rs.stack.overrideStatus()
	if override == ON {
		return false
	}
	rs.chain.setClass(link, override)
	return rs.chain.mergeIfEqual(priorLink, link)
}

// determineLevels executes rules X1–X10: it assigns an embedding level to
// every link, folds explicit formatting characters away per rule X9, and
// streams the resulting level runs into the queue.
func (rs *resolver) determineLevels() error {
	chain := &rs.chain
	stack := &rs.stack
	roller := chain.roller

	priorLink := roller
	firstLink := linkNone
	priorLevel := rs.baseLevel
	sor := Nil

	// Rule X1
	rs.overIsolate = 0
	rs.overEmbedding = 0
	rs.validIsolate = 0
	stack.setEmpty()
	stack.push(rs.baseLevel, ON, false)

	for link := chain.next(roller); link != roller; link = chain.next(link) {
		forceFinish := false
		bnEquivalent := false
		merged := false

		switch chain.class(link) {
		case RLE: // rule X2
			bnEquivalent = true
			rs.pushEmbedding(leastGreaterOdd(stack.embeddingLevel()), ON)

		case LRE: // rule X3
			bnEquivalent = true
			rs.pushEmbedding(leastGreaterEven(stack.embeddingLevel()), ON)

		case RLO: // rule X4
			bnEquivalent = true
			rs.pushEmbedding(leastGreaterOdd(stack.embeddingLevel()), R)

		case LRO: // rule X5
			bnEquivalent = true
			rs.pushEmbedding(leastGreaterEven(stack.embeddingLevel()), L)

		case RLI: // rule X5a
			merged = rs.pushIsolate(priorLink, link, leastGreaterOdd(stack.embeddingLevel()), ON)

		case LRI: // rule X5b
			merged = rs.pushIsolate(priorLink, link, leastGreaterEven(stack.embeddingLevel()), ON)

		case FSI: // rule X5c
			newLevel := leastGreaterEven(stack.embeddingLevel())
			if chain.determineBaseLevel(link, roller, 0, true) == 1 {
				newLevel = leastGreaterOdd(stack.embeddingLevel())
			}
			merged = rs.pushIsolate(priorLink, link, newLevel, ON)

		case PDI: // rule X6a
			if rs.overIsolate != 0 {
				rs.overIsolate--
			} else if rs.validIsolate == 0 {
				// No matching isolate initiator, leave the stack alone.
			} else {
				rs.overEmbedding = 0
				for !stack.isolateStatus() {
					stack.pop()
				}
				stack.pop()
				rs.validIsolate--
			}
			chain.setLevel(link, stack.embeddingLevel())
			merged = rs.applyOverride(priorLink, link)

		case PDF: // rule X7
			bnEquivalent = true
			if rs.overIsolate != 0 {
				// Within an overflow isolate, ignore.
			} else if rs.overEmbedding != 0 {
				rs.overEmbedding--
			} else if !stack.isolateStatus() && stack.count >= 2 {
				stack.pop()
			}

		case B: // rule X8
			// B can only occur as the last character of a paragraph; the
			// reset matches UAX#9 nevertheless.
			stack.setEmpty()
			stack.push(rs.baseLevel, ON, false)
			rs.overIsolate = 0
			rs.overEmbedding = 0
			rs.validIsolate = 0
			chain.setLevel(link, rs.baseLevel)

		case BN:
			bnEquivalent = true

		case Nil:
			forceFinish = true
			chain.setLevel(link, rs.baseLevel)

		default: // rule X6
			chain.setLevel(link, stack.embeddingLevel())
			merged = rs.applyOverride(priorLink, link)
		}

		if merged {
			// The link was folded into priorLink; the cursors stay put.
			continue
		}

		// Rule X9
		if bnEquivalent {
			chain.setClass(link, BN)
			chain.abandonNext(priorLink)
			continue
		}

		// Stream out level runs (rule X10 preparation).
		if sor == Nil {
			sor = maxLevel(rs.baseLevel, chain.level(link)).normalClass()
			firstLink = link
			priorLevel = chain.level(link)
		} else if currentLevel := chain.level(link); priorLevel != currentLevel || forceFinish {
			// The level changed at this link, so the run ends at the prior
			// one. Both neighbouring levels are known now, which identifies
			// eor; sor was fixed when the run started.
			lastLink := priorLink
			eor := maxLevel(priorLevel, currentLevel).normalClass()

			run := newLevelRun(chain, firstLink, lastLink, sor, eor)
			if err := rs.processRun(run, forceFinish); err != nil {
				return err
			}

			sor = eor
			firstLink = link
			priorLevel = currentLevel
		}

		priorLink = link
	}
	return nil
}

// processRun enqueues a freshly cut level run and, as soon as the queue
// holds only complete isolating run sequences (rule X10), flushes it,
// handing every base run to the downstream resolver. Terminating runs that
// were attached to their initiator are dequeued without further work.
func (rs *resolver) processRun(run *LevelRun, forceFinish bool) error {
	rs.queue.enqueue(run)

	if !rs.queue.shouldDequeue && !forceFinish {
		return nil
	}
	for rs.queue.count() != 0 {
		peek := rs.queue.peek()
		if !peek.kind.isAttachedTerminating() {
			rs.isolating.BaseRun = peek
			if rs.sink != nil {
				if err := rs.sink.ResolveIsolatingRun(&rs.isolating); err != nil {
					return err
				}
			}
		}
		rs.queue.dequeue()
	}
	return nil
}

// saveLevels flattens the chain into one level per input position. The
// positions of abandoned links (explicit formatting characters and other
// BN-equivalents) are not covered by any remaining link; they inherit the
// level of the link preceding them, exactly the "as if not there" reading
// of rule X9.
func (rs *resolver) saveLevels(levels []Level) {
	chain := &rs.chain
	index := 0
	level := rs.baseLevel

	for link := chain.next(chain.roller); link != chain.roller; link = chain.next(link) {
		offset := chain.offset(link)
		for ; index < offset; index++ {
			levels[index] = level
		}
		level = chain.level(link)
	}
}

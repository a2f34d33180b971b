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

// The paragraph resolver works on a singly linked chain of links, each link
// standing for a run of positions sharing one bidi class (the resolver gives
// every ON, formatting, isolate and separator character a link of its
// own, and coalesces all other classes into maximal runs). The chain
// is not built from pointers but lives in a dense arena of parallel slices,
// addressed by compact link indices. A link's index is its source offset
// plus one, which keeps two invariants for free:
//
//   * index 0 is reserved for the `roller´, a sentinel which is both the
//     predecessor of the first link and the successor of the last one, so
//     iteration needs no nil checks;
//   * the length of a link's run never has to be stored, it is the
//     difference between the offsets of the link and of its successor.
//
// Splicing a link out of the chain (merging it into its predecessor, or
// abandoning it per rule X9) is a single next-pointer update and leaves all
// link indices stable.

// bidiLink addresses a link inside the chain's arena.
type bidiLink uint32

// linkNone marks the absence of a link.
const linkNone bidiLink = ^bidiLink(0)

type bidiChain struct {
	types  []Class
	levels []Level
	links  []bidiLink
	roller bidiLink
	last   bidiLink
}

// initialize sets up the arena for a paragraph of `length´ positions and
// writes the roller as link 0. Two extra slots hold the roller and the
// terminating Nil link.
func (chain *bidiChain) initialize(length int) {
	chain.types = make([]Class, length+2)
	chain.levels = make([]Level, length+2)
	chain.links = make([]bidiLink, length+2)
	chain.roller = 0
	chain.last = 0
	chain.types[0] = Nil
	chain.levels[0] = LevelInvalid
	chain.links[0] = linkNone
}

// add appends a link after the current tail. `length´ is the distance from
// the previous link's first position, which makes the new link's index equal
// to its own first position plus one.
func (chain *bidiChain) add(class Class, length int) {
	link := chain.last + bidiLink(length)
	chain.types[link] = class
	chain.levels[link] = LevelInvalid
	chain.links[link] = chain.roller
	chain.links[chain.last] = link
	chain.last = link
}

func (chain *bidiChain) next(link bidiLink) bidiLink {
	return chain.links[link]
}

func (chain *bidiChain) class(link bidiLink) Class {
	return chain.types[link]
}

func (chain *bidiChain) setClass(link bidiLink, class Class) {
	chain.types[link] = class
}

func (chain *bidiChain) level(link bidiLink) Level {
	return chain.levels[link]
}

func (chain *bidiChain) setLevel(link bidiLink, level Level) {
	chain.levels[link] = level
}

// offset is the index of the link's first position in the paragraph.
func (chain *bidiChain) offset(link bidiLink) int {
	return int(link) - 1
}

// abandonNext splices the successor of `link´ out of the chain. The spliced
// link keeps its own next pointer, so an iteration currently standing on it
// still advances correctly.
func (chain *bidiChain) abandonNext(link bidiLink) {
	chain.links[link] = chain.links[chain.links[link]]
}

// mergeIfEqual folds `link´ into `prior´ if both carry the same class and
// level, keeping the chain in canonical maximal-run form. Reports whether a
// merge happened.
func (chain *bidiChain) mergeIfEqual(prior, link bidiLink) bool {
	if chain.types[prior] == chain.types[link] && chain.levels[prior] == chain.levels[link] {
		chain.links[prior] = chain.links[link]
		return true
	}
	return false
}

// skipIsolatingRun advances from an isolate initiator to its matching PDI,
// skipping nested isolates. Reports false if the isolate never closes before
// breakLink.
func (chain *bidiChain) skipIsolatingRun(skipLink, breakLink bidiLink) (bidiLink, bool) {
	depth := 1
	for link := chain.next(skipLink); link != breakLink; link = chain.next(link) {
		switch chain.class(link) {
		case LRI, RLI, FSI:
			depth++
		case PDI:
			if depth--; depth == 0 {
				return link, true
			}
		}
	}
	return linkNone, false
}

// determineBaseLevel scans for the first strong class after skipLink,
// ignoring the contents of isolates (rules P2, P3). It returns 0 for L, 1
// for R or AL, and defaultLevel if no strong class is found. With isIsolate
// set, a PDI on the top level closes the scanned isolate and ends the scan
// with the default (used by rule X5c to type an FSI).
func (chain *bidiChain) determineBaseLevel(skipLink, breakLink bidiLink, defaultLevel Level, isIsolate bool) Level {
	for link := chain.next(skipLink); link != breakLink; link = chain.next(link) {
		switch chain.class(link) {
		case L:
			return 0
		case AL, R:
			return 1
		case LRI, RLI, FSI:
			pdi, ok := chain.skipIsolatingRun(link, breakLink)
			if !ok {
				return defaultLevel
			}
			link = pdi
		case PDI:
			if isIsolate {
				// The PDI closing the isolate under scan.
				return defaultLevel
			}
		}
	}
	return defaultLevel
}

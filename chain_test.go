package sheenbidi

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func chainLinks(chain *bidiChain) []bidiLink {
	var links []bidiLink
	for link := chain.next(chain.roller); link != chain.roller; link = chain.next(link) {
		links = append(links, link)
	}
	return links
}

func TestChainAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	var chain bidiChain
	chain.initialize(6)
	chain.add(L, 1)   // starts at 0
	chain.add(R, 2)   // starts at 2
	chain.add(ON, 3)  // starts at 5
	chain.add(Nil, 1) // terminator at 6

	links := chainLinks(&chain)
	if len(links) != 4 {
		t.Fatalf("expected 4 links, got %d", len(links))
	}
	offsets := []int{0, 2, 5, 6}
	for i, link := range links {
		if chain.offset(link) != offsets[i] {
			t.Errorf("link %d: expected offset %d, got %d", i, offsets[i], chain.offset(link))
		}
	}
	if chain.class(links[0]) != L || chain.class(links[1]) != R || chain.class(links[3]) != Nil {
		t.Error("link classes do not round-trip")
	}
	if chain.level(links[0]) != LevelInvalid {
		t.Error("fresh links must carry LevelInvalid")
	}
}

func TestChainAbandonNext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	var chain bidiChain
	chain.initialize(3)
	chain.add(L, 1)
	chain.add(RLE, 1)
	chain.add(R, 1)
	chain.add(Nil, 1)

	links := chainLinks(&chain)
	first := links[0]
	chain.abandonNext(first) // splice out the RLE link

	links = chainLinks(&chain)
	if len(links) != 3 {
		t.Fatalf("expected 3 links after abandoning, got %d", len(links))
	}
	if chain.class(links[1]) != R {
		t.Errorf("successor of the first link should be the R link, got %s", chain.class(links[1]))
	}
	// The abandoned link's own next pointer is untouched, so an iteration
	// standing on it still advances into the live chain.
	abandoned := first + 1
	if chain.next(abandoned) != links[1] {
		t.Error("abandoned link lost its forward pointer")
	}
}

func TestChainMergeIfEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	var chain bidiChain
	chain.initialize(3)
	chain.add(R, 1)
	chain.add(R, 1)
	chain.add(L, 1)
	chain.add(Nil, 1)

	links := chainLinks(&chain)
	chain.setLevel(links[0], 1)
	chain.setLevel(links[1], 1)
	chain.setLevel(links[2], 1)

	if !chain.mergeIfEqual(links[0], links[1]) {
		t.Fatal("expected equal R/R links to merge")
	}
	if got := len(chainLinks(&chain)); got != 3 {
		t.Errorf("expected 3 links after merge, got %d", got)
	}
	if chain.mergeIfEqual(links[0], links[2]) {
		t.Error("R and L links must not merge")
	}
	// Same class but different level: no merge either.
	chain.setLevel(links[2], 1)
	chain.setClass(links[2], R)
	chain.setLevel(links[0], 2)
	if chain.mergeIfEqual(links[0], links[2]) {
		t.Error("links with different levels must not merge")
	}
}

func TestChainBaseLevelScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	// Isolated content is invisible to P2: the R inside the isolate does
	// not decide the paragraph level, the L after it does.
	var chain bidiChain
	chain.initialize(5)
	chain.add(RLI, 1)
	chain.add(R, 1)
	chain.add(PDI, 1)
	chain.add(L, 1)
	chain.add(Nil, 1)

	level := chain.determineBaseLevel(chain.roller, chain.roller, 1, false)
	if level != 0 {
		t.Errorf("expected P2 to skip the isolate and find L, got level %d", level)
	}

	// An isolate that never closes: scan runs off the end, default wins.
	var open bidiChain
	open.initialize(3)
	open.add(RLI, 1)
	open.add(R, 1)
	open.add(Nil, 1)
	if got := open.determineBaseLevel(open.roller, open.roller, 0, false); got != 0 {
		t.Errorf("expected default level 0 for unclosed isolate, got %d", got)
	}
}

package sheenbidi

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// isolateChain builds the chain for `L LRI PDI L´ with levels assigned, a
// minimal setup to construct runs with isolate and terminating kinds.
func isolateChain() *bidiChain {
	chain := &bidiChain{}
	chain.initialize(4)
	chain.add(L, 1)
	chain.add(LRI, 1)
	chain.add(PDI, 1)
	chain.add(L, 1)
	chain.add(Nil, 1)
	for link := chain.next(chain.roller); link != chain.roller; link = chain.next(link) {
		chain.setLevel(link, 0)
	}
	return chain
}

func TestRunKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	chain := isolateChain()
	initiator := newLevelRun(chain, 1, 2, L, L) // L LRI
	terminator := newLevelRun(chain, 3, 4, L, L) // PDI L
	simple := newLevelRun(chain, 4, 4, L, L)     // L

	if !initiator.kind.isPartialIsolate() {
		t.Error("a run ending with LRI must be a partial isolate")
	}
	if !terminator.kind.isTerminating() {
		t.Error("a run starting with PDI must be terminating")
	}
	if simple.kind != runKindSimple {
		t.Errorf("expected a simple run, got kind %#x", simple.kind)
	}
}

func TestRunQueueAttach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	chain := isolateChain()
	initiator := newLevelRun(chain, 1, 2, L, L)
	terminator := newLevelRun(chain, 3, 4, L, L)

	var queue runQueue
	queue.enqueue(initiator)
	if queue.shouldDequeue {
		t.Error("an open isolate must hold the queue")
	}
	queue.enqueue(terminator)
	if !queue.shouldDequeue {
		t.Error("completing the isolate must release the queue")
	}
	if initiator.Next() != terminator {
		t.Error("terminating run should be attached to its initiator")
	}
	if initiator.kind.isPartialIsolate() {
		t.Error("completed initiator must no longer be partial")
	}
	if !terminator.kind.isAttachedTerminating() {
		t.Error("attached terminator must be marked as such")
	}
	if queue.count() != 2 || queue.peek() != initiator {
		t.Errorf("queue head must stay the initiator, count %d", queue.count())
	}
	queue.dequeue()
	queue.dequeue()
	if queue.count() != 0 {
		t.Errorf("expected empty queue, got count %d", queue.count())
	}
}

func TestRunQueueUnmatchedTerminator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheenbidi")
	defer teardown()
	//
	// A PDI-led run without an open initiator stays unattached and is
	// processed as a base run of its own.
	chain := isolateChain()
	terminator := newLevelRun(chain, 3, 4, L, L)

	var queue runQueue
	queue.enqueue(terminator)
	if !queue.shouldDequeue {
		t.Error("an unmatched terminator must not hold the queue")
	}
	if terminator.kind.isAttachedTerminating() {
		t.Error("unmatched terminator must not be marked attached")
	}
}

package engine

import (
	"context"
	"testing"

	"github.com/kestrelchess/core/movegen"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/search"
)

func TestPoolSearchReturnsLegalMove(t *testing.T) {
	pool := New(2, 1<<20)
	pos := position.StartPosition()

	best := pool.Search(context.Background(), pos, 2)
	if best.Move.IsNull() {
		t.Fatal("expected a non-null best move from the start position")
	}
}

func TestPoolStopSignalsWorkers(t *testing.T) {
	pool := New(1, 1<<16)
	pool.Stop()
	if pool.stop != nil && !pool.stop.Get() {
		t.Fatal("expected Stop to be a no-op before a search has started, not panic")
	}

	pool.Search(context.Background(), position.StartPosition(), 1)
	pool.Stop()
	if !pool.stop.Get() {
		t.Fatal("expected Stop to raise the stop flag shared by the workers of the last search")
	}
}

func TestShuffleForWorkerIsDeterministic(t *testing.T) {
	pos := position.StartPosition()
	var list piece.MoveList
	movegen.Generate(pos, movegen.All, &list)
	base := list.Slice()

	a := make([]search.RootMove, len(base))
	b := make([]search.RootMove, len(base))
	for i, m := range base {
		a[i] = search.NewRootMove(m)
		b[i] = search.NewRootMove(m)
	}
	shuffleForWorker(a, 3)
	shuffleForWorker(b, 3)

	for i := range a {
		if a[i].Move != b[i].Move {
			t.Fatalf("shuffleForWorker is not deterministic at index %d", i)
		}
	}
}

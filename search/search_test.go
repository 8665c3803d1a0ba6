package search

import (
	"testing"

	"github.com/kestrelchess/core/movegen"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/ttable"
)

func rootMovesFor(t *testing.T, pos *position.Position) []RootMove {
	t.Helper()
	var list piece.MoveList
	movegen.Generate(pos, movegen.All, &list)
	moves := list.Slice()
	out := make([]RootMove, len(moves))
	for i, m := range moves {
		out[i] = NewRootMove(m)
	}
	return out
}

func TestAdjustMateRoundTrip(t *testing.T) {
	s := MateIn(2)
	stored := adjustMateForStorage(s, 5)
	retrieved := adjustMateForRetrieval(stored, 5)
	if retrieved != s {
		t.Fatalf("mate score round trip failed: got %d, want %d", retrieved, s)
	}
}

func TestSearchFindsBackRankMateInOne(t *testing.T) {
	// White to move, mate in one: Ra8#.
	pos, err := position.FromFEN("6k1/5ppp/8/8/8/8/8/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	tt := ttable.New(1 << 20)
	w := NewWorker(tt)
	moves := rootMovesFor(t, pos)
	if len(moves) == 0 {
		t.Fatal("expected at least one legal move")
	}

	w.searchRoot(pos, moves, 3, -Infinite, Infinite)
	SortRootMoves(moves)

	best := moves[0]
	if !best.Score.IsMateScore() || best.Score <= 0 {
		t.Fatalf("expected a winning mate score for white, got %d", best.Score)
	}
}

func TestIterativeDeepenReachesRequestedDepth(t *testing.T) {
	pos := position.StartPosition()
	tt := ttable.New(1 << 20)
	w := NewWorker(tt)
	moves := rootMovesFor(t, pos)

	result := w.IterativeDeepen(pos, moves, 1, 2)
	if result.Depth != 2 {
		t.Fatalf("expected iterative deepening to reach depth 2, got %d", result.Depth)
	}
	if result.Moves[0].Move.IsNull() {
		t.Fatal("expected a non-null best move from the start position")
	}
}

func TestStoppedHonorsFlag(t *testing.T) {
	tt := ttable.New(1 << 16)
	w := NewWorker(tt)
	flag := NewBoolFlag()
	w.Limits.Stop = flag
	if w.Stopped() {
		t.Fatal("worker should not be stopped before the flag is set")
	}
	flag.Set(true)
	if !w.Stopped() {
		t.Fatal("worker should report stopped once the flag is set")
	}
}

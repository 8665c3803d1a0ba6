package uci

import (
	"testing"

	"github.com/kestrelchess/core/position"
)

func TestMove2UCISimplePawnPush(t *testing.T) {
	pos := position.StartPosition()
	m, ok := ParseMove(pos, "e2e4")
	if !ok {
		t.Fatal("e2e4 should be a legal opening move")
	}
	if got := Move2UCI(m); got != "e2e4" {
		t.Fatalf("Move2UCI round trip = %q, want e2e4", got)
	}
}

func TestMove2UCIKingsideCastle(t *testing.T) {
	pos, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m, ok := ParseMove(pos, "e1g1")
	if !ok {
		t.Fatal("e1g1 should parse as white kingside castling")
	}
	if got := Move2UCI(m); got != "e1g1" {
		t.Fatalf("Move2UCI castling = %q, want e1g1 (king's landing square, not the rook's)", got)
	}
}

func TestParseMovePromotion(t *testing.T) {
	pos, err := position.FromFEN("8/P6k/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m, ok := ParseMove(pos, "a7a8q")
	if !ok {
		t.Fatal("a7a8q should be a legal queen promotion")
	}
	if got := Move2UCI(m); got != "a7a8q" {
		t.Fatalf("Move2UCI promotion = %q, want a7a8q", got)
	}
}

func TestParseMoveRejectsIllegal(t *testing.T) {
	pos := position.StartPosition()
	if _, ok := ParseMove(pos, "e2e5"); ok {
		t.Fatal("e2e5 is not a legal opening move and should be rejected")
	}
}

func TestParseGoWithClock(t *testing.T) {
	limits := ParseGo([]string{"wtime", "60000", "btime", "55000", "winc", "1000", "movestogo", "30"})
	if limits.WhiteTime.Milliseconds() != 60000 {
		t.Fatalf("wtime = %v, want 60000ms", limits.WhiteTime)
	}
	if limits.MovesToGo != 30 {
		t.Fatalf("movestogo = %d, want 30", limits.MovesToGo)
	}
}

func TestParseGoInfinite(t *testing.T) {
	limits := ParseGo([]string{"infinite"})
	if !limits.Infinite {
		t.Fatal("expected Infinite to be set")
	}
}

func TestParseGoSearchmoves(t *testing.T) {
	limits := ParseGo([]string{"searchmoves", "e2e4", "d2d4", "depth", "10"})
	if len(limits.SearchMoves) != 2 {
		t.Fatalf("expected 2 searchmoves, got %v", limits.SearchMoves)
	}
	if limits.Depth != 10 {
		t.Fatalf("depth = %d, want 10", limits.Depth)
	}
}

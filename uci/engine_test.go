package uci

import "testing"

func TestSetPositionStartpos(t *testing.T) {
	e := &Engine{}
	if err := e.SetPosition("startpos", []string{"e2e4", "e7e5"}); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if got := e.Position().FEN(); got == "" {
		t.Fatal("expected a non-empty FEN after applying moves")
	}
}

func TestSetPositionRejectsIllegalMove(t *testing.T) {
	e := &Engine{}
	if err := e.SetPosition("startpos", []string{"e2e5"}); err == nil {
		t.Fatal("expected SetPosition to reject an illegal move in the move list")
	}
}

func TestSetPositionFEN(t *testing.T) {
	e := &Engine{}
	fen := "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1"
	if err := e.SetPosition(fen, nil); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if e.Position().Key() == 0 {
		t.Fatal("expected a non-zero zobrist key for a populated position")
	}
}

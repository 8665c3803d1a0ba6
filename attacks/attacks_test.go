package attacks

import (
	"testing"

	"github.com/kestrelchess/core/bitset"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

func TestKnightAttacksCorner(t *testing.T) {
	a1 := square.New(0, 0)
	got := Knight(a1)
	want := bitset.From(square.New(1, 2)) | bitset.From(square.New(2, 1))
	if got != want {
		t.Fatalf("knight attacks from a1 = %v, want %v", got, want)
	}
}

func TestKingAttacksCenter(t *testing.T) {
	e4 := square.New(4, 3)
	if Knight(e4)&King(e4) != 0 {
		t.Fatal("knight and king attack sets should never overlap from the same square")
	}
	if King(e4).Count() != 8 {
		t.Fatalf("king attacks from e4 count = %d, want 8", King(e4).Count())
	}
}

func TestPawnAttacksAsymmetric(t *testing.T) {
	e4 := square.New(4, 3)
	white := Pawn(piece.White, e4)
	black := Pawn(piece.Black, e4)
	if white == black {
		t.Fatal("white/black pawn attacks from the same square must differ")
	}
	want := bitset.From(square.New(3, 4)) | bitset.From(square.New(5, 4))
	if white != want {
		t.Fatalf("white pawn attacks from e4 = %v, want %v", white, want)
	}
}

func TestRookAttacksBlockedByOccupancy(t *testing.T) {
	a1 := square.New(0, 0)
	occ := bitset.From(square.New(0, 3)) // a4 blocks the rook's north ray
	got := Rook(a1, occ)
	if !got.Set(square.New(0, 3)) {
		t.Fatal("rook attacks must include the blocking square itself")
	}
	if got.Set(square.New(0, 4)) {
		t.Fatal("rook attacks must not extend past a blocker")
	}
	if !got.Set(square.New(7, 0)) {
		t.Fatal("rook attacks along the unblocked rank must reach h1")
	}
}

func TestBishopAttacksOpenBoard(t *testing.T) {
	d4 := square.New(3, 3)
	got := Bishop(d4, bitset.Empty)
	if !got.Set(square.New(0, 0)) || !got.Set(square.New(6, 6)) {
		t.Fatal("bishop on an empty board must reach both far diagonal corners")
	}
}

func TestQueenIsRookUnionBishop(t *testing.T) {
	d4 := square.New(3, 3)
	occ := bitset.From(square.New(3, 6))
	if Queen(d4, occ) != Rook(d4, occ)|Bishop(d4, occ) {
		t.Fatal("queen attacks must equal rook attacks union bishop attacks")
	}
}

func TestBetweenAndLine(t *testing.T) {
	a1 := square.New(0, 0)
	h8 := square.New(7, 7)
	d4 := square.New(3, 3)
	if !Aligned(a1, h8, d4) {
		t.Fatal("a1, h8 and d4 are on the same diagonal")
	}
	if !Between(a1, h8).Set(d4) {
		t.Fatal("d4 lies between a1 and h8")
	}
	e1 := square.New(4, 0)
	if Aligned(a1, h8, e1) {
		t.Fatal("e1 is not on the a1-h8 diagonal")
	}
}

func TestPassedPawnMaskExcludesBehind(t *testing.T) {
	e4 := square.New(4, 3)
	mask := PassedPawnMask(piece.White, e4)
	if mask.Set(square.New(4, 0)) {
		t.Fatal("passed pawn mask must not include squares behind the pawn")
	}
	if !mask.Set(square.New(4, 5)) {
		t.Fatal("passed pawn mask must include squares ahead on the same file")
	}
}

func TestRingAtDistance(t *testing.T) {
	e4 := square.New(4, 3)
	if Ring(e4, 0) != 0 {
		t.Fatal("ring at distance 0 must be empty")
	}
	ring1 := Ring(e4, 1)
	if ring1.Count() != King(e4).Count() {
		t.Fatalf("ring at distance 1 from e4 must equal the king's attack set, got count %d want %d", ring1.Count(), King(e4).Count())
	}
	if ring1 != King(e4) {
		t.Fatal("ring at distance 1 must be exactly the king's attack set")
	}
	a1 := square.New(0, 0)
	if !Ring(a1, 7).Set(square.New(7, 7)) {
		t.Fatal("h8 must be at Chebyshev distance 7 from a1")
	}
}

func TestForwardRanksExcludesOwnAndBehind(t *testing.T) {
	e4 := square.New(4, 3)
	white := ForwardRanks(piece.White, e4)
	if white.Set(square.New(0, 3)) {
		t.Fatal("white's forward ranks must exclude sq's own rank")
	}
	if white.Set(square.New(0, 0)) {
		t.Fatal("white's forward ranks must exclude ranks behind sq")
	}
	if !white.Set(square.New(0, 4)) || !white.Set(square.New(7, 7)) {
		t.Fatal("white's forward ranks must include every square on every rank ahead")
	}
	black := ForwardRanks(piece.Black, e4)
	if !black.Set(square.New(0, 0)) {
		t.Fatal("black's forward ranks must include ranks behind white's sq (ahead for black)")
	}
}

func TestForwardSpanExcludesOwnFile(t *testing.T) {
	e4 := square.New(4, 3)
	span := ForwardSpan(piece.White, e4)
	if span.Set(square.New(4, 5)) {
		t.Fatal("forward span must not include sq's own file")
	}
	if !span.Set(square.New(3, 5)) || !span.Set(square.New(5, 5)) {
		t.Fatal("forward span must include both adjacent files ahead")
	}
}

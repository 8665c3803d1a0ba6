package bitset

import (
	"testing"

	"github.com/kestrelchess/core/square"
)

func TestFromAndSet(t *testing.T) {
	b := From(square.New(4, 3))
	if !b.Set(square.New(4, 3)) {
		t.Fatal("expected square to be set")
	}
	if b.Count() != 1 {
		t.Fatalf("count = %d, want 1", b.Count())
	}
}

func TestPopLSBOrderAndTermination(t *testing.T) {
	b := From(square.Square(5)) | From(square.Square(2)) | From(square.Square(40))
	var seen []square.Square
	for !b.Empty() {
		seen = append(seen, b.PopLSB())
	}
	want := []square.Square{2, 5, 40}
	if len(seen) != len(want) {
		t.Fatalf("got %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("got %v, want %v", seen, want)
		}
	}
}

func TestShiftEastWestGuards(t *testing.T) {
	h1 := From(square.New(7, 0))
	if h1.ShiftEast() != Empty {
		t.Fatal("shifting off the h-file must not wrap")
	}
	a1 := From(square.New(0, 0))
	if a1.ShiftWest() != Empty {
		t.Fatal("shifting off the a-file must not wrap")
	}
	e4 := From(square.New(4, 3))
	if e4.ShiftEast() != From(square.New(5, 3)) {
		t.Fatal("e4 shifted east should be f4")
	}
}

func TestUpDownSideParameterization(t *testing.T) {
	e4 := From(square.New(4, 3))
	if e4.Up(White) != e4.ShiftNorth() {
		t.Fatal("white up should be north")
	}
	if e4.Up(Black) != e4.ShiftSouth() {
		t.Fatal("black up should be south")
	}
}

func TestFileAndRankMasks(t *testing.T) {
	if Files[0].Count() != 8 {
		t.Fatalf("file a count = %d, want 8", Files[0].Count())
	}
	if Ranks[0].Count() != 8 {
		t.Fatalf("rank 1 count = %d, want 8", Ranks[0].Count())
	}
	if Ranks[0]&Files[0] != From(square.New(0, 0)) {
		t.Fatal("rank1 & filea should be a1 only")
	}
}

// Package square implements board square arithmetic: file-major, rank-minor
// indexing shared by every other package in the module.
package square

// Square is a board square in [0,63], or [None] for "no square".
//
// Square 0 is a1, square 63 is h8 — file-major, rank-minor: the low 3 bits
// are the file, the next 3 bits are the rank.
type Square int8

// None is the sentinel for "no square" (used for en-passant target, etc).
const None Square = -1

// New builds a Square from a zero-based file and rank, both in [0,7].
func New(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file of the square, in [0,7] (0 = a-file).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the rank of the square, in [0,7] (0 = rank 1).
func (s Square) Rank() int { return int(s) >> 3 }

// FlipRank mirrors the square across the board's horizontal midline
// (a1 <-> a8), used to share pawn tables between sides.
func (s Square) FlipRank() Square { return s ^ 0b111000 }

// Distance returns the Chebyshev distance (max of file/rank deltas) between
// two squares.
func Distance(a, b Square) int {
	df := absInt(a.File() - b.File())
	dr := absInt(a.Rank() - b.Rank())
	if df > dr {
		return df
	}
	return dr
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// names is the lowercase algebraic name of every square, used for UCI
// notation and diagnostics.
var names = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String returns the lowercase algebraic name of the square, or "-" for
// [None].
func (s Square) String() string {
	if s == None || s < 0 || int(s) >= len(names) {
		return "-"
	}
	return names[s]
}

// Parse parses a lowercase algebraic square name ("e4"), returning [None]
// for "-".
func Parse(str string) (Square, bool) {
	if str == "-" {
		return None, true
	}
	if len(str) != 2 {
		return None, false
	}
	file := str[0]
	rank := str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return None, false
	}
	return New(int(file-'a'), int(rank-'1')), true
}

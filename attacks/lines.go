package attacks

import (
	"github.com/kestrelchess/core/bitset"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

// between[a][b] holds the squares strictly between a and b when they share a
// rank, file, or diagonal (exclusive of both endpoints), used to test
// whether a piece blocks a check or pin. line[a][b] extends the same ray to
// the edges of the board (inclusive of a and b), used to test whether a
// piece lies on a pinning ray at all.
var (
	between [64][64]bitset.BitSet
	line    [64][64]bitset.BitSet
	// passedMask[side][sq] is the set of squares a pawn on sq must see no
	// enemy pawn on to be a passed pawn: its file and both adjacent files,
	// from sq forward to the promotion rank.
	passedMask [2][64]bitset.BitSet
	// forwardFiles[side][sq] is the file-only forward portion of passedMask,
	// used to test "no pawn of mine is still behind/ahead blocking this one".
	forwardFiles [2][64]bitset.BitSet
	// adjacentFiles[file] is the pair of files next to file.
	adjacentFiles [8]bitset.BitSet
	// ring[sq][d] is the set of squares at exact Chebyshev distance d from
	// sq.
	ring [64][8]bitset.BitSet
	// forwardRanks[side][rank] is every rank strictly ahead of rank from
	// side's perspective, across all files.
	forwardRanks [2][8]bitset.BitSet
	// forwardSpan[side][sq] is sq's adjacent files only (excluding sq's own
	// file), from sq forward to the edge of the board — the attack span a
	// pawn on sq could ever capture into. PassedPawnMask additionally
	// includes sq's own file.
	forwardSpan [2][64]bitset.BitSet
)

func init() {
	initLines()
	initPassedMasks()
	for f := range 8 {
		var m bitset.BitSet
		if f > 0 {
			m |= bitset.Files[f-1]
		}
		if f < 7 {
			m |= bitset.Files[f+1]
		}
		adjacentFiles[f] = m
	}
	initRings()
	initForwardRanks()
}

func initRings() {
	for a := range 64 {
		sa := square.Square(a)
		for b := range 64 {
			if a == b {
				continue
			}
			sb := square.Square(b)
			d := square.Distance(sa, sb)
			ring[a][d] |= bitset.From(sb)
		}
	}
}

func initForwardRanks() {
	for r := range 8 {
		var white, black bitset.BitSet
		for rr := r + 1; rr <= 7; rr++ {
			white |= rankMask(rr)
		}
		for rr := r - 1; rr >= 0; rr-- {
			black |= rankMask(rr)
		}
		forwardRanks[piece.White][r] = white
		forwardRanks[piece.Black][r] = black
	}
	for i := range 64 {
		sq := square.Square(i)
		adj := adjacentFilesOf(sq.File())
		forwardSpan[piece.White][i] = adj & forwardRanks[piece.White][sq.Rank()]
		forwardSpan[piece.Black][i] = adj & forwardRanks[piece.Black][sq.Rank()]
	}
}

var allDirections = [8]direction{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func initLines() {
	for a := range 64 {
		sa := square.Square(a)
		for _, d := range allDirections {
			f, r := sa.File(), sa.Rank()
			var ray bitset.BitSet
			var betweenRay bitset.BitSet
			cf, cr := f+d.dx, r+d.dy
			for cf >= 0 && cf <= 7 && cr >= 0 && cr <= 7 {
				b := square.New(cf, cr)
				ray |= bitset.From(b)
				// record the ray so far (exclusive of b) as "between" for
				// every square along it once we know the far endpoint.
				between[a][b] = betweenRay
				betweenRay |= bitset.From(b)
				cf += d.dx
				cr += d.dy
			}
			// the full line through a in this direction pair is built by
			// unioning both opposite directions plus the origin square.
			var back bitset.BitSet
			for bf, br := f-d.dx, r-d.dy; bf >= 0 && bf <= 7 && br >= 0 && br <= 7; bf, br = bf-d.dx, br-d.dy {
				back |= bitset.From(square.New(bf, br))
			}
			for bSq := ray; bSq != 0; {
				b := bSq.PopLSB()
				line[a][b] |= ray | back | bitset.From(sa)
			}
		}
	}
}

func initPassedMasks() {
	for i := range 64 {
		sq := square.Square(i)
		file := bitset.Files[sq.File()]
		span := file | adjacentFilesOf(sq.File())
		var whiteSpan, blackSpan bitset.BitSet
		for r := sq.Rank() + 1; r <= 7; r++ {
			whiteSpan |= rankMask(r) & span
		}
		for r := sq.Rank() - 1; r >= 0; r-- {
			blackSpan |= rankMask(r) & span
		}
		passedMask[piece.White][i] = whiteSpan
		passedMask[piece.Black][i] = blackSpan
		forwardFiles[piece.White][i] = fileForward(sq, piece.White)
		forwardFiles[piece.Black][i] = fileForward(sq, piece.Black)
	}
}

func adjacentFilesOf(f int) bitset.BitSet {
	var m bitset.BitSet
	if f > 0 {
		m |= bitset.Files[f-1]
	}
	if f < 7 {
		m |= bitset.Files[f+1]
	}
	return m
}

func rankMask(r int) bitset.BitSet { return bitset.Ranks[r] }

func fileForward(sq square.Square, side piece.Side) bitset.BitSet {
	var m bitset.BitSet
	file := bitset.Files[sq.File()]
	if side == piece.White {
		for r := sq.Rank() + 1; r <= 7; r++ {
			m |= rankMask(r) & file
		}
	} else {
		for r := sq.Rank() - 1; r >= 0; r-- {
			m |= rankMask(r) & file
		}
	}
	return m
}

// Between returns the squares strictly between a and b along a shared rank,
// file, or diagonal, or the empty set if they don't share one.
func Between(a, b square.Square) bitset.BitSet { return between[a][b] }

// Line returns the full rank, file, or diagonal passing through both a and
// b, or the empty set if they don't share one.
func Line(a, b square.Square) bitset.BitSet { return line[a][b] }

// Aligned reports whether a, b and c all lie on a common rank, file, or
// diagonal — the pin/skewer test.
func Aligned(a, b, c square.Square) bool { return line[a][b]&bitset.From(c) != 0 }

// PassedPawnMask returns the squares that must be free of enemy pawns for a
// pawn of side on sq to be a passed pawn.
func PassedPawnMask(side piece.Side, sq square.Square) bitset.BitSet { return passedMask[side][sq] }

// ForwardFile returns the squares on sq's file strictly ahead of sq from
// side's perspective.
func ForwardFile(side piece.Side, sq square.Square) bitset.BitSet { return forwardFiles[side][sq] }

// AdjacentFiles returns the (up to two) files neighbouring file f.
func AdjacentFiles(f int) bitset.BitSet { return adjacentFiles[f] }

// Ring returns every square at exact Chebyshev distance d from sq (d==0
// returns the empty set; d beyond the board's extent from sq also returns
// the empty set).
func Ring(sq square.Square, d int) bitset.BitSet {
	if d < 0 || d > 7 {
		return 0
	}
	return ring[sq][d]
}

// ForwardRanks returns every rank strictly ahead of sq's rank from side's
// perspective, across all files — the rank-only counterpart to ForwardFile.
func ForwardRanks(side piece.Side, sq square.Square) bitset.BitSet {
	return forwardRanks[side][sq.Rank()]
}

// ForwardSpan returns the attack span of a pawn on sq from side's
// perspective: sq's two adjacent files (never sq's own file) from sq forward
// to the edge of the board.
func ForwardSpan(side piece.Side, sq square.Square) bitset.BitSet { return forwardSpan[side][sq] }

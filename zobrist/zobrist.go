/*
Package zobrist generates the deterministic hash keys used to identify
positions: one per piece-on-square, one per en-passant file, one per
castling-rights subset, and one for side to move.

Grounded on treepeck-chego's initPieceKeys/initEnPassantKeys/initCastlingKeys
in init.go, which draw from math/rand/v2 at package init time. This package
seeds that draw with a fixed key so the same binary always produces the
same Zobrist keys, which the transposition table and repetition detection
both depend on for cross-run reproducibility in tests.
*/
package zobrist

import (
	"math/rand/v2"

	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

const seed = 0xBADC0FFEE0DDF00D

var (
	// PieceSquare[kind][side][sq] is the key for that colored piece sitting
	// on that square.
	PieceSquare [6][2][64]uint64
	// EnPassantFile[file] is the key for an en-passant target on that file.
	// Only the file matters: the target square's rank is implied by side to
	// move, so indexing by file alone halves the table without losing
	// information.
	EnPassantFile [8]uint64
	// Castling[rights] is the key for a given [piece.CastlingRights] value,
	// indexed directly by the packed byte.
	Castling [256]uint64
	// Side is XORed in whenever it is black to move.
	Side uint64
)

func init() {
	rng := rand.New(rand.NewPCG(seed, seed^0x2545F4914F6CDD1D))

	for k := piece.Pawn; k <= piece.King; k++ {
		for s := range 2 {
			for sq := range 64 {
				PieceSquare[k][s][sq] = rng.Uint64()
			}
		}
	}
	for f := range 8 {
		EnPassantFile[f] = rng.Uint64()
	}
	for r := range 256 {
		Castling[r] = rng.Uint64()
	}
	Side = rng.Uint64()
}

// Piece returns the key for a colored piece on a square.
func Piece(k piece.Kind, s piece.Side, sq square.Square) uint64 {
	return PieceSquare[k][s][sq]
}

// EnPassant returns the key for an en-passant target square, keyed by file
// only, or 0 if there is no en-passant target.
func EnPassant(sq square.Square) uint64 {
	if sq == square.None {
		return 0
	}
	return EnPassantFile[sq.File()]
}

// CastlingKey returns the key for a castling-rights byte.
func CastlingKey(rights piece.CastlingRights) uint64 { return Castling[rights] }

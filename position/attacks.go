package position

import (
	"github.com/kestrelchess/core/attacks"
	"github.com/kestrelchess/core/bitset"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

// attacksFor is a thin indirection to the attacks package so the rest of
// this package can stay agnostic of whether a piece kind's attack pattern
// depends on occupancy (sliders) or not (leapers).
func attacksFor(kind piece.Kind, side piece.Side, sq square.Square, occ bitset.BitSet) bitset.BitSet {
	return attacks.Of(kind, side, sq, occ)
}

// pawnAttacksFrom returns the squares a pawn of the given side attacks from
// sq — used both for real pawns and, with the side argument flipped, for
// testing whether a square is attacked BY an enemy pawn.
func pawnAttacksFrom(side piece.Side, sq square.Square) bitset.BitSet {
	return attacks.Pawn(side, sq)
}

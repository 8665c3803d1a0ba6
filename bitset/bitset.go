// Package bitset implements the 64-bit board set primitive shared by attack
// tables, position state, and move generation.
package bitset

import (
	"math/bits"

	"github.com/kestrelchess/core/square"
)

// BitSet is a set of board squares, one bit per square (bit i = square i).
type BitSet uint64

// Side identifies which color's "up" direction a shift should use.
type Side int

const (
	White Side = iota
	Black
)

// Opposite returns the other side.
func (s Side) Opposite() Side { return s ^ 1 }

// Precomputed file and rank masks, indexed 0 (a-file/rank-1) to 7.
var (
	Files [8]BitSet
	Ranks [8]BitSet
)

func init() {
	for f := range 8 {
		var m BitSet
		for r := range 8 {
			m |= From(square.New(f, r))
		}
		Files[f] = m
	}
	for r := range 8 {
		Ranks[r] = BitSet(0xFF) << (8 * r)
	}
}

// Guard masks used to prevent file wraparound when shifting east/west.
const (
	notAFile BitSet = ^BitSet(0) &^ (BitSet(0x0101010101010101))
	notHFile BitSet = ^BitSet(0) &^ (BitSet(0x8080808080808080))
)

// Empty is the empty set. All is the full 64-square set.
const (
	Empty BitSet = 0
	All   BitSet = ^BitSet(0)
)

// From returns the singleton set containing s.
func From(s square.Square) BitSet { return BitSet(1) << uint(s) }

// Set tests whether s is a member of the set.
func (b BitSet) Set(s square.Square) bool { return b&From(s) != 0 }

// With returns the set with s added.
func (b BitSet) With(s square.Square) BitSet { return b | From(s) }

// Without returns the set with s removed.
func (b BitSet) Without(s square.Square) BitSet { return b &^ From(s) }

// Union, Intersect, Complement, Difference: the usual set operations.
func (b BitSet) Union(o BitSet) BitSet        { return b | o }
func (b BitSet) Intersect(o BitSet) BitSet    { return b & o }
func (b BitSet) Complement() BitSet           { return ^b }
func (b BitSet) Difference(o BitSet) BitSet   { return b &^ o }
func (b BitSet) Empty() bool                  { return b == 0 }
func (b BitSet) MoreThanOne() bool            { return b&(b-1) != 0 }
func (b BitSet) Count() int                   { return bits.OnesCount64(uint64(b)) }

// LSB returns the least-significant set square, or [square.None] if empty.
func (b BitSet) LSB() square.Square {
	if b == 0 {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least-significant set square. Iterating a
// set by repeatedly calling PopLSB visits squares low-to-high and terminates
// exactly when the set empties, per the iteration-order invariant.
func (b *BitSet) PopLSB() square.Square {
	s := b.LSB()
	*b &= *b - 1
	return s
}

// directional shifts, each masking off the file it would wrap from.
func (b BitSet) ShiftNorth() BitSet     { return b << 8 }
func (b BitSet) ShiftSouth() BitSet     { return b >> 8 }
func (b BitSet) ShiftEast() BitSet      { return (b & notHFile) << 1 }
func (b BitSet) ShiftWest() BitSet      { return (b & notAFile) >> 1 }
func (b BitSet) ShiftNorthEast() BitSet { return (b & notHFile) << 9 }
func (b BitSet) ShiftNorthWest() BitSet { return (b & notAFile) << 7 }
func (b BitSet) ShiftSouthEast() BitSet { return (b & notHFile) >> 7 }
func (b BitSet) ShiftSouthWest() BitSet { return (b & notAFile) >> 9 }

// Up shifts a set one rank towards the far side from the given side's point
// of view: north for white, south for black. Parameterizing direction by
// side lets pawn-move generation be written once for both colors.
func (b BitSet) Up(side Side) BitSet {
	if side == White {
		return b.ShiftNorth()
	}
	return b.ShiftSouth()
}

// Down is the mirror of [BitSet.Up].
func (b BitSet) Down(side Side) BitSet {
	if side == White {
		return b.ShiftSouth()
	}
	return b.ShiftNorth()
}

// UpLeft and UpRight follow the same side-relative convention as Up: "left"
// and "right" are from the mover's perspective, so they swap for black.
func (b BitSet) UpLeft(side Side) BitSet {
	if side == White {
		return b.ShiftNorthWest()
	}
	return b.ShiftSouthEast()
}

func (b BitSet) UpRight(side Side) BitSet {
	if side == White {
		return b.ShiftNorthEast()
	}
	return b.ShiftSouthWest()
}

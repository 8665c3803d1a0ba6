/*
Package attacks builds and serves every precomputed attack table the move
generator needs: leaper tables for pawns, knights and kings, and magic
bitboard tables for bishops and rooks.

The magic numbers are not hardcoded. init finds them itself with the same
sparse-random search Stockfish uses, ported here from FrankyGo's
internal/types/magic.go (itself a port of Stockfish's init_magics). Seeding
math/rand/v2 with a fixed PCG seed keeps the search, and therefore the
resulting magic numbers, deterministic across runs and platforms.
*/
package attacks

import (
	"math/bits"
	"math/rand/v2"

	"github.com/kestrelchess/core/bitset"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

// magicSeed fixes the PRNG used by the magic search so the whole module is
// reproducible: same binary, same tables, every time.
const magicSeed = 0xC0FFEE12345678

// magicEntry holds one square's magic multiplier, relevant-occupancy mask,
// and the index shift derived from the mask's bit count.
type magicEntry struct {
	mask  bitset.BitSet
	magic uint64
	shift uint
}

var (
	bishopMagics [64]magicEntry
	rookMagics   [64]magicEntry

	// bishopTable and rookTable hold one slice per square, each sized
	// exactly to that square's relevant-occupancy bit count (up to 512
	// entries for a bishop, 4096 for a rook) and allocated once at init,
	// mirroring treepeck-chego's fixed per-square attack tables.
	bishopTable [64][]bitset.BitSet
	rookTable   [64][]bitset.BitSet

	pawnAttacks   [2][64]bitset.BitSet
	knightAttacks [64]bitset.BitSet
	kingAttacks   [64]bitset.BitSet
)

func init() {
	initLeapers()
	initSliderTable(&bishopMagics, &bishopTable, bishopDirections)
	initSliderTable(&rookMagics, &rookTable, rookDirections)
}

func initLeapers() {
	for i := range 64 {
		s := square.Square(i)
		from := bitset.From(s)
		pawnAttacks[piece.White][i] = pawnAttacksFrom(from, piece.White)
		pawnAttacks[piece.Black][i] = pawnAttacksFrom(from, piece.Black)
		knightAttacks[i] = knightAttacksFrom(from)
		kingAttacks[i] = kingAttacksFrom(from)
	}
}

func pawnAttacksFrom(pawn bitset.BitSet, side piece.Side) bitset.BitSet {
	return pawn.UpLeft(side) | pawn.UpRight(side)
}

func knightAttacksFrom(knight bitset.BitSet) bitset.BitSet {
	return knight.ShiftNorth().ShiftNorth().ShiftEast() |
		knight.ShiftNorth().ShiftNorth().ShiftWest() |
		knight.ShiftSouth().ShiftSouth().ShiftEast() |
		knight.ShiftSouth().ShiftSouth().ShiftWest() |
		knight.ShiftEast().ShiftEast().ShiftNorth() |
		knight.ShiftEast().ShiftEast().ShiftSouth() |
		knight.ShiftWest().ShiftWest().ShiftNorth() |
		knight.ShiftWest().ShiftWest().ShiftSouth()
}

func kingAttacksFrom(king bitset.BitSet) bitset.BitSet {
	return king.ShiftNorth() | king.ShiftSouth() | king.ShiftEast() | king.ShiftWest() |
		king.ShiftNorthEast() | king.ShiftNorthWest() | king.ShiftSouthEast() | king.ShiftSouthWest()
}

// direction is one of the four ray directions a bishop or rook slides
// along; dx/dy are the per-step file/rank delta.
type direction struct{ dx, dy int }

var bishopDirections = [4]direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirections = [4]direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// slideAttacks rolls a ray from sq in each direction, stopping at (and
// including) the first occupied square, mirroring genBishopAttacks /
// genRookAttacks.
func slideAttacks(sq square.Square, occ bitset.BitSet, dirs [4]direction) bitset.BitSet {
	var result bitset.BitSet
	f, r := sq.File(), sq.Rank()
	for _, d := range dirs {
		cf, cr := f+d.dx, r+d.dy
		for cf >= 0 && cf <= 7 && cr >= 0 && cr <= 7 {
			s := bitset.From(square.New(cf, cr))
			result |= s
			if occ&s != 0 {
				break
			}
			cf += d.dx
			cr += d.dy
		}
	}
	return result
}

func relevantOccupancy(sq square.Square, dirs [4]direction) bitset.BitSet {
	var result bitset.BitSet
	f, r := sq.File(), sq.Rank()
	for _, d := range dirs {
		cf, cr := f+d.dx, r+d.dy
		for {
			nf, nr := cf+d.dx, cr+d.dy
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				break
			}
			if cf < 0 || cf > 7 || cr < 0 || cr > 7 {
				break
			}
			result |= bitset.From(square.New(cf, cr))
			cf, cr = nf, nr
		}
	}
	return result
}

// occupancySubset returns the index-th subset of mask's set bits: bit i of
// index decides whether the i-th lowest set bit of mask is included.
// Calling it for every index below 1<<mask.Count() walks every blocker
// combination a magic must be verified against.
func occupancySubset(index int, mask bitset.BitSet) bitset.BitSet {
	var result bitset.BitSet
	m := mask
	for i := 0; m != 0; i++ {
		sq := m.PopLSB()
		if index&(1<<i) != 0 {
			result |= bitset.From(sq)
		}
	}
	return result
}

// sparseRand draws a candidate magic biased towards few set bits, as
// FrankyGo's PrnG.sparseRand does: AND-ing three draws together thins out
// the bits, which empirically finds valid magics faster than a uniform
// draw.
func sparseRand(rng *rand.Rand) uint64 {
	return rng.Uint64() & rng.Uint64() & rng.Uint64()
}

// initSliderTable finds a magic number for every square and fills the
// attack table it addresses into, grounded on FrankyGo's initMagics and
// treepeck-chego's initBishopAttacks/initRookAttacks shape.
func initSliderTable(magics *[64]magicEntry, table *[64][]bitset.BitSet, dirs [4]direction) {
	rng := rand.New(rand.NewPCG(magicSeed, magicSeed^0x9E3779B97F4A7C15))

	for i := range 64 {
		sq := square.Square(i)
		mask := relevantOccupancy(sq, dirs)
		bitCount := mask.Count()
		size := 1 << bitCount
		shift := uint(64 - bitCount)

		occupancies := make([]bitset.BitSet, size)
		references := make([]bitset.BitSet, size)
		for j := range size {
			occupancies[j] = occupancySubset(j, mask)
			references[j] = slideAttacks(sq, occupancies[j], dirs)
		}

		var magic uint64
		used := make([]bitset.BitSet, size)
		for attempt := 0; ; attempt++ {
			for {
				magic = sparseRand(rng)
				if bits.OnesCount64(uint64(mask)*magic&0xFF00000000000000) >= 6 {
					break
				}
			}

			ok := true
			for j := range used {
				used[j] = 0
			}
			for j := 0; j < size && ok; j++ {
				idx := (uint64(occupancies[j]) * magic) >> shift
				if used[idx] != 0 && used[idx] != references[j] {
					ok = false
					break
				}
				used[idx] = references[j]
			}
			if ok {
				break
			}
		}

		magics[i] = magicEntry{mask: mask, magic: magic, shift: shift}
		table[i] = make([]bitset.BitSet, size)
		for j := range size {
			idx := (uint64(occupancies[j]) * magic) >> shift
			table[i][idx] = references[j]
		}
	}
}

func magicIndex(m magicEntry, occ bitset.BitSet) uint64 {
	return (uint64(occ&m.mask) * m.magic) >> m.shift
}

// Pawn returns the squares a pawn of the given side attacks from sq.
func Pawn(side piece.Side, sq square.Square) bitset.BitSet { return pawnAttacks[side][sq] }

// Knight returns the squares a knight attacks from sq.
func Knight(sq square.Square) bitset.BitSet { return knightAttacks[sq] }

// King returns the squares a king attacks from sq.
func King(sq square.Square) bitset.BitSet { return kingAttacks[sq] }

// Bishop returns the squares a bishop attacks from sq given the full board
// occupancy.
func Bishop(sq square.Square, occ bitset.BitSet) bitset.BitSet {
	m := bishopMagics[sq]
	return bishopTable[sq][magicIndex(m, occ)]
}

// Rook returns the squares a rook attacks from sq given the full board
// occupancy.
func Rook(sq square.Square, occ bitset.BitSet) bitset.BitSet {
	m := rookMagics[sq]
	return rookTable[sq][magicIndex(m, occ)]
}

// Queen returns the squares a queen attacks from sq: the union of a rook's
// and a bishop's attacks from that square.
func Queen(sq square.Square, occ bitset.BitSet) bitset.BitSet {
	return Bishop(sq, occ) | Rook(sq, occ)
}

// Of returns the attack set for an arbitrary piece kind, used by generic
// move-generation and attack-detection code that doesn't want a switch
// per kind.
func Of(kind piece.Kind, side piece.Side, sq square.Square, occ bitset.BitSet) bitset.BitSet {
	switch kind {
	case piece.Pawn:
		return Pawn(side, sq)
	case piece.Knight:
		return Knight(sq)
	case piece.Bishop:
		return Bishop(sq, occ)
	case piece.Rook:
		return Rook(sq, occ)
	case piece.Queen:
		return Queen(sq, occ)
	case piece.King:
		return King(sq)
	}
	return bitset.Empty
}

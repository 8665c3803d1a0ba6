/*
Package piece defines the colored-piece encoding, the 16-bit packed [Move]
representation, and the fixed-capacity [MoveList] used throughout the
module.

Grounded on treepeck-chego's types.go: a packed uint16 Move with accessor
methods and a preallocated, dynamic-allocation-free move list, re-laid-out to
match the bit assignment this spec requires.
*/
package piece

import "github.com/kestrelchess/core/bitset"

// Kind is one of the six piece kinds.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Side is white or black, re-exported from bitset so callers only need one
// import for "which color".
type Side = bitset.Side

const (
	White = bitset.White
	Black = bitset.Black
)

// Colored is a colored piece: low 3 bits are the [Kind], the next bit is the
// [Side]. ColoredNone is the sentinel for an empty square.
type Colored uint8

const ColoredNone Colored = 0xFF

// NewColored packs a kind and side into a [Colored] piece.
func NewColored(k Kind, s Side) Colored {
	return Colored(uint8(k) | uint8(s)<<3)
}

// Kind unpacks the piece kind.
func (c Colored) Kind() Kind { return Kind(c & 0x7) }

// Side unpacks the piece's side.
func (c Colored) Side() Side { return Side((c >> 3) & 0x1) }

var kindSymbols = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// Symbol returns the FEN letter for the piece (uppercase for white).
func (c Colored) Symbol() byte {
	if c == ColoredNone {
		return '.'
	}
	sym := kindSymbols[c.Kind()]
	if c.Side() == Black {
		sym += 'a' - 'A'
	}
	return sym
}

// Value is the conventional centipawn material weight of a piece kind, used
// by MVV-LVA ordering and the minimal evaluator.
var Value = [6]int16{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// MoveCategory is the move's category flag, per spec §3: bit pattern 0
// covers both quiet moves and the double pawn push (distinguished by the
// 16-square delta, not by a dedicated bit), 1 is castling, 2 covers both
// normal captures and en-passant (distinguished by whether the destination
// square is occupied), 3 is any promotion (plain or capturing).
type MoveCategory uint8

const (
	CategoryQuiet MoveCategory = iota
	CategoryCastle
	CategoryCapture
	CategoryPromotion
)

// PromotionKind is the promotion piece encoded in a promotion move.
type PromotionKind uint8

const (
	PromoKnight PromotionKind = iota
	PromoBishop
	PromoRook
	PromoQueen
)

// Kind converts a promotion flag to the corresponding piece [Kind].
func (p PromotionKind) Kind() Kind { return Knight + Kind(p) }

/*
Move is a chess move packed into 16 bits:

	bits 0-5:   source square
	bits 6-11:  destination square
	bits 12-13: promotion kind (knight=0, bishop=1, rook=2, queen=3)
	bits 14-15: category flag (see [MoveCategory])

Castling moves encode the king's source square and the ROOK's home square
(not the king's destination) so that the generator and the mover agree on
which rook is involved without a side-band flag. A move whose source equals
its destination is the null move, reserved for search bookkeeping; the
generator never produces it.
*/
type Move uint16

// Null is the reserved null move.
const Null Move = 0

// New builds a non-promotion move.
func New(source, dest uint8, category MoveCategory) Move {
	return Move(uint16(source) | uint16(dest)<<6 | uint16(category)<<14)
}

// NewPromotion builds a promotion move (category is always [CategoryPromotion]).
func NewPromotion(source, dest uint8, promo PromotionKind) Move {
	return Move(uint16(source) | uint16(dest)<<6 | uint16(promo)<<12 | uint16(CategoryPromotion)<<14)
}

func (m Move) Source() uint8          { return uint8(m & 0x3F) }
func (m Move) Dest() uint8            { return uint8((m >> 6) & 0x3F) }
func (m Move) Promotion() PromotionKind { return PromotionKind((m >> 12) & 0x3) }
func (m Move) Category() MoveCategory { return MoveCategory((m >> 14) & 0x3) }

// IsNull reports whether the move is the reserved null move.
func (m Move) IsNull() bool { return m.Source() == m.Dest() }

// MaxMoves bounds the number of legal moves any chess position can have
// (the largest known count is 218), so move lists can be preallocated and
// never grow dynamically.
const MaxMoves = 218

// MoveList is a fixed-capacity, allocation-free container for generated
// moves, mirroring the teacher's MoveList.
type MoveList struct {
	Moves [MaxMoves]Move
	Len   int
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Len] = m
	l.Len++
}

// Slice returns the populated prefix of the backing array.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Len] }

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.Len = 0 }

// CastlingRights packs both sides' castling availability plus "has castled"
// tracking bits into 8 bits, per spec §3.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
	WhiteHasCastled
	BlackHasCastled
)

// removalMask maps a square (king or rook home square) to the castling-right
// bits that moving to/from it revokes.
var removalMask = [64]CastlingRights{
	0:  WhiteQueenSide,
	4:  WhiteKingSide | WhiteQueenSide,
	7:  WhiteKingSide,
	56: BlackQueenSide,
	60: BlackKingSide | BlackQueenSide,
	63: BlackKingSide,
}

// RemovalMask returns the castling-right bits that a move touching this
// square (as source or destination) revokes.
func RemovalMask(sq uint8) CastlingRights { return removalMask[sq] }

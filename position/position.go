/*
Package position implements the mutable board state, FEN import/export, and
the incremental make/unmake machinery the search and move generator drive.

Grounded on treepeck-chego's position.go and fen.go: the bitboard-array
layout, placePiece/removePiece pair, and the FEN field-by-field parser are
all kept in shape, generalized to this module's colored-piece/zobrist/
snapshot data model.
*/
package position

import (
	"github.com/kestrelchess/core/bitset"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
	"github.com/kestrelchess/core/zobrist"
)

// Position is a chessboard state plus a pointer to the snapshot stack that
// lets MakeMove/UnmakeMove be O(1) without copying the whole board.
type Position struct {
	pieces  [2][6]bitset.BitSet
	occ     [2]bitset.BitSet
	squares [64]piece.Colored
	side    piece.Side
	fullmove int
	top     *Snapshot
}

// New returns an empty position with no snapshot history. Callers normally
// obtain a Position via [FromFEN] or [StartPosition].
func New() *Position {
	p := &Position{}
	for i := range p.squares {
		p.squares[i] = piece.ColoredNone
	}
	p.top = &Snapshot{
		castling: piece.WhiteKingSide | piece.WhiteQueenSide | piece.BlackKingSide | piece.BlackQueenSide,
		epTarget: square.None,
	}
	return p
}

// Clone returns an independent copy of p: every field is a plain array or
// a pointer to the snapshot stack's immutable tail, so the copy and the
// original can each make/unmake moves without disturbing the other. Used
// by the engine package to hand every search worker its own position
// sharing only the read-only history behind top.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// StartPosition returns the standard chess starting position.
func StartPosition() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic("position: malformed built-in start FEN: " + err.Error())
	}
	return p
}

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SideToMove returns which side is to move.
func (p *Position) SideToMove() piece.Side { return p.side }

// FullmoveNumber returns the current full-move counter.
func (p *Position) FullmoveNumber() int { return p.fullmove }

// Castling returns the current castling rights.
func (p *Position) Castling() piece.CastlingRights { return p.top.castling }

// EnPassant returns the current en-passant target square, or [square.None].
func (p *Position) EnPassant() square.Square { return p.top.epTarget }

// HalfmoveClock returns the current fifty-move-rule counter.
func (p *Position) HalfmoveClock() int { return p.top.halfmove }

// Key returns the Zobrist hash of the current position.
func (p *Position) Key() uint64 { return p.top.key }

// PieceAt returns the colored piece on sq, or [piece.ColoredNone].
func (p *Position) PieceAt(sq square.Square) piece.Colored { return p.squares[sq] }

// Pieces returns the bitboard of all pieces of kind k belonging to side s.
func (p *Position) Pieces(s piece.Side, k piece.Kind) bitset.BitSet { return p.pieces[s][k] }

// Occupied returns the bitboard of all squares occupied by side s.
func (p *Position) Occupied(s piece.Side) bitset.BitSet { return p.occ[s] }

// AllOccupied returns the bitboard of every occupied square.
func (p *Position) AllOccupied() bitset.BitSet { return p.occ[piece.White] | p.occ[piece.Black] }

// King returns the square of side s's king.
func (p *Position) King(s piece.Side) square.Square { return p.pieces[s][piece.King].LSB() }

// Checkers returns the set of enemy pieces currently giving check to the
// side to move.
func (p *Position) Checkers() bitset.BitSet { return p.top.checkers }

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.top.checkers != 0 }

// Blockers returns the set of pieces that, if moved, would expose side s's
// king to an attack along a pin ray.
func (p *Position) Blockers(s piece.Side) bitset.BitSet { return p.top.blockers[s] }

// Pinners returns the set of enemy sliders pinning one of side s's pieces.
func (p *Position) Pinners(s piece.Side) bitset.BitSet { return p.top.pinners[s] }

func (p *Position) placePiece(c piece.Colored, sq square.Square) {
	bb := bitset.From(sq)
	p.pieces[c.Side()][c.Kind()] |= bb
	p.occ[c.Side()] |= bb
	p.squares[sq] = c
}

func (p *Position) removePiece(c piece.Colored, sq square.Square) {
	bb := bitset.From(sq)
	p.pieces[c.Side()][c.Kind()] &^= bb
	p.occ[c.Side()] &^= bb
	p.squares[sq] = piece.ColoredNone
}

func (p *Position) movePiece(c piece.Colored, from, to square.Square) {
	p.removePiece(c, from)
	p.placePiece(c, to)
}

// MaterialValue sums the centipawn material weight of every non-king piece
// on the board for side s.
func (p *Position) MaterialValue(s piece.Side) int16 {
	var total int16
	for k := piece.Pawn; k <= piece.Queen; k++ {
		total += int16(p.pieces[s][k].Count()) * piece.Value[k]
	}
	return total
}

// IsAttacked reports whether sq is attacked by side `by`, used both for
// "is the king in check" and for testing castling/king-move safety.
func (p *Position) IsAttacked(sq square.Square, by piece.Side) bool {
	occ := p.AllOccupied()
	if attacksFor(piece.Knight, by.Opposite(), sq, occ)&p.pieces[by][piece.Knight] != 0 {
		return true
	}
	if attacksFor(piece.King, by.Opposite(), sq, occ)&p.pieces[by][piece.King] != 0 {
		return true
	}
	if attacksFor(piece.Bishop, by.Opposite(), sq, occ)&(p.pieces[by][piece.Bishop]|p.pieces[by][piece.Queen]) != 0 {
		return true
	}
	if attacksFor(piece.Rook, by.Opposite(), sq, occ)&(p.pieces[by][piece.Rook]|p.pieces[by][piece.Queen]) != 0 {
		return true
	}
	// pawn attacks are not symmetric: "is sq attacked by a `by`-side pawn"
	// uses the attack pattern of the OPPOSITE side from sq, since a white
	// pawn attacking sq looks like a black pawn's attack pattern from sq.
	if pawnAttacksFrom(by.Opposite(), sq)&p.pieces[by][piece.Pawn] != 0 {
		return true
	}
	return false
}

// AttackersTo returns every piece (of either side) attacking sq given the
// current board occupancy, used to build the checkers/pinners tables.
func (p *Position) AttackersTo(sq square.Square, occ bitset.BitSet) bitset.BitSet {
	var result bitset.BitSet
	result |= attacksFor(piece.Knight, piece.White, sq, occ) & p.pieces[piece.White][piece.Knight]
	result |= attacksFor(piece.Knight, piece.Black, sq, occ) & p.pieces[piece.Black][piece.Knight]
	result |= attacksFor(piece.King, piece.White, sq, occ) & p.pieces[piece.White][piece.King]
	result |= attacksFor(piece.King, piece.Black, sq, occ) & p.pieces[piece.Black][piece.King]
	bishopLike := attacksFor(piece.Bishop, piece.White, sq, occ)
	result |= bishopLike & (p.pieces[piece.White][piece.Bishop] | p.pieces[piece.White][piece.Queen])
	result |= bishopLike & (p.pieces[piece.Black][piece.Bishop] | p.pieces[piece.Black][piece.Queen])
	rookLike := attacksFor(piece.Rook, piece.White, sq, occ)
	result |= rookLike & (p.pieces[piece.White][piece.Rook] | p.pieces[piece.White][piece.Queen])
	result |= rookLike & (p.pieces[piece.Black][piece.Rook] | p.pieces[piece.Black][piece.Queen])
	result |= pawnAttacksFrom(piece.Black, sq) & p.pieces[piece.White][piece.Pawn]
	result |= pawnAttacksFrom(piece.White, sq) & p.pieces[piece.Black][piece.Pawn]
	return result
}

func zobristForSquare(c piece.Colored, sq square.Square) uint64 {
	return zobrist.Piece(c.Kind(), c.Side(), sq)
}

package position

import (
	"github.com/kestrelchess/core/attacks"
	"github.com/kestrelchess/core/bitset"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

/*
IsLegal re-checks a pseudo-legal move against the three ways a move can
expose the mover's own king, so the generator can produce pseudo-legal
moves cheaply and filter them here rather than recompute attacks per
candidate from scratch:

 1. the king itself moves into an attacked square;
 2. a pinned piece moves off the ray pinning it to the king;
 3. an en-passant capture removes the one pawn blocking a rook/queen check
    along the capturing pawn's rank (the "discovered check through the
    en-passant square" edge case).
*/
func (p *Position) IsLegal(m piece.Move) bool {
	side := p.side
	source := square.Square(m.Source())
	dest := square.Square(m.Dest())
	kingSq := p.King(side)

	if source == kingSq {
		if m.Category() == piece.CategoryCastle {
			return true // castling legality (path/attacked squares) is checked at generation time.
		}
		occWithoutKing := p.AllOccupied() &^ bitset.From(kingSq)
		return !p.isAttackedExcludingKing(dest, side.Opposite(), occWithoutKing)
	}

	if m.Category() == piece.CategoryCapture && p.squares[dest] == piece.ColoredNone && p.squares[source].Kind() == piece.Pawn {
		return p.enPassantIsLegal(source, dest, side)
	}

	if p.top.blockers[side]&bitset.From(source) == 0 {
		return true
	}
	return attacks.Aligned(kingSq, source, dest)
}

// isAttackedExcludingKing is like Position.IsAttacked but pretends the
// moving king isn't on the board, so a king sliding straight back along a
// rook's attack ray isn't wrongly judged safe.
func (p *Position) isAttackedExcludingKing(sq square.Square, by piece.Side, occ bitset.BitSet) bool {
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
	if pawnAttacksFrom(by.Opposite(), sq)&p.pieces[by][piece.Pawn] != 0 {
		return true
	}
	return false
}

func (p *Position) enPassantIsLegal(source, dest square.Square, side piece.Side) bool {
	capSq := dest
	if side == piece.White {
		capSq = dest - 8
	} else {
		capSq = dest + 8
	}
	occ := p.AllOccupied() &^ bitset.From(source) &^ bitset.From(capSq) | bitset.From(dest)
	kingSq := p.King(side)
	enemy := side.Opposite()
	attackers := (attacks.Rook(kingSq, occ) & (p.pieces[enemy][piece.Rook] | p.pieces[enemy][piece.Queen])) |
		(attacks.Bishop(kingSq, occ) & (p.pieces[enemy][piece.Bishop] | p.pieces[enemy][piece.Queen]))
	return attackers == 0
}

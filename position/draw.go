package position

import "github.com/kestrelchess/core/piece"

/*
IsRepetition reports whether the current position has occurred at least
twice before since the last irreversible move (pawn push, capture, or
castling right change) — i.e. this would be the third occurrence, triggering
the threefold-repetition draw rule.

Grounded on treepeck-chego's repetition.go, which builds a string key from
the bitboard array plus side/castling/legal-move-list and looks it up in a
map kept by the caller. This package instead walks the snapshot's own
history chain comparing Zobrist keys, since every earlier position is
already reachable by following prev pointers — no external map needed, and
the search doesn't keep positions alive longer than the line currently
being searched anyway.
*/
func (p *Position) IsRepetition() bool {
	count := 0
	key := p.top.key
	s := p.top.prev
	// Repetition can only happen on the same side to move, so every other
	// frame is a candidate; walk back until an irreversible move (halfmove
	// reset to 0) bounds the search.
	for s != nil {
		if s.key == key {
			count++
			if count >= 2 {
				return true
			}
		}
		if s.halfmove == 0 {
			break
		}
		s = s.prev
	}
	return false
}

// IsFiftyMoveDraw reports whether the fifty-move rule (100 halfmoves
// without a capture or pawn push) allows a draw claim.
func (p *Position) IsFiftyMoveDraw() bool { return p.top.halfmove >= 100 }

// IsInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate, per the conventional king/king+minor rule.
func (p *Position) IsInsufficientMaterial() bool {
	for _, s := range [2]piece.Side{piece.White, piece.Black} {
		if p.pieces[s][piece.Pawn] != 0 || p.pieces[s][piece.Rook] != 0 || p.pieces[s][piece.Queen] != 0 {
			return false
		}
	}
	minors := p.pieces[piece.White][piece.Knight].Count() + p.pieces[piece.White][piece.Bishop].Count() +
		p.pieces[piece.Black][piece.Knight].Count() + p.pieces[piece.Black][piece.Bishop].Count()
	return minors <= 1
}

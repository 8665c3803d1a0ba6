/*
Package uci implements the Universal Chess Interface text protocol: move
notation conversion, "go" parameter parsing, and an Engine wrapper that
drives an engine.Pool from UCI commands.

Grounded on treepeck-chego/uci.go's Move2UCI (long algebraic notation
serialization) and original_source/pleco_engine/src/uci/parse.rs's
token-walking parameter parser, generalized from treepeck-chego's
serialize-only function to also parse, and from castling represented as a
normal king move to this module's internal king-to-rook castling encoding.
*/
package uci

import (
	"strings"

	"github.com/kestrelchess/core/movegen"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/square"
)

// Move2UCI converts an internal move to long algebraic notation, e.g.
// "e2e4", "e7e8q". Castling is normalized to the king's actual
// destination square (g1/c1/g8/c8) since UCI has no king-to-rook
// encoding; internally this module stores castling as king-source,
// rook-dest (see piece.CategoryCastle).
func Move2UCI(m piece.Move) string {
	var b strings.Builder
	b.Grow(5)

	source := square.Square(m.Source())
	dest := square.Square(m.Dest())
	if m.Category() == piece.CategoryCastle {
		dest = castleKingDest(source, dest)
	}

	b.WriteString(source.String())
	b.WriteString(dest.String())

	if m.Category() == piece.CategoryPromotion {
		switch m.Promotion() {
		case piece.PromoKnight:
			b.WriteByte('n')
		case piece.PromoBishop:
			b.WriteByte('b')
		case piece.PromoRook:
			b.WriteByte('r')
		case piece.PromoQueen:
			b.WriteByte('q')
		}
	}

	return b.String()
}

// castleKingDest translates the internal king-source/rook-dest castling
// encoding to the king's landing square: kingside castling always lands
// the king on the g-file, queenside on the c-file, same rank as source.
func castleKingDest(kingSource, rookDest square.Square) square.Square {
	rank := kingSource.Rank()
	if rookDest.File() > kingSource.File() {
		return square.New(6, rank) // kingside: g-file
	}
	return square.New(2, rank) // queenside: c-file
}

// ParseMove resolves a UCI move string against the legal moves available
// at pos, returning the matching internal move. This round-trips through
// legal move generation rather than reconstructing the packed Move
// directly, since only movegen knows whether a given source/dest pair is
// an en-passant capture, a capture-promotion, or a castle.
func ParseMove(pos *position.Position, s string) (piece.Move, bool) {
	if len(s) < 4 {
		return 0, false
	}
	from, ok := square.Parse(s[0:2])
	if !ok {
		return 0, false
	}
	to, ok := square.Parse(s[2:4])
	if !ok {
		return 0, false
	}
	var promo piece.PromotionKind
	hasPromo := len(s) >= 5
	if hasPromo {
		switch s[4] {
		case 'n':
			promo = piece.PromoKnight
		case 'b':
			promo = piece.PromoBishop
		case 'r':
			promo = piece.PromoRook
		case 'q':
			promo = piece.PromoQueen
		default:
			return 0, false
		}
	}

	var list piece.MoveList
	movegen.Generate(pos, movegen.All, &list)
	for _, m := range list.Slice() {
		source := square.Square(m.Source())
		dest := square.Square(m.Dest())
		if m.Category() == piece.CategoryCastle {
			dest = castleKingDest(source, dest)
		}
		if source != from || dest != to {
			continue
		}
		if m.Category() == piece.CategoryPromotion {
			if !hasPromo || m.Promotion() != promo {
				continue
			}
		} else if hasPromo {
			continue
		}
		return m, true
	}
	return 0, false
}

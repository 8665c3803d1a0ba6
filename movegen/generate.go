package movegen

import (
	"github.com/kestrelchess/core/attacks"
	"github.com/kestrelchess/core/bitset"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/square"
)

// Generate appends every strictly legal move of the requested category to
// list. list is not reset first, so callers that want a fresh list should
// call list.Reset() themselves (this mirrors treepeck-chego's GenLegalMoves,
// which resets LastMoveIndex itself, but letting the caller control reset
// lets search reuse a scratch buffer across plies without reallocating).
func Generate(pos *position.Position, cat Category, list *piece.MoveList) {
	if cat == All {
		if pos.InCheck() {
			cat = Evasions
		} else {
			cat = NonEvasions
		}
	}

	var pseudo piece.MoveList
	genPseudoLegal(pos, &pseudo)

	side := pos.SideToMove()
	kingSq := pos.King(side)
	checkers := pos.Checkers()
	checkerCount := checkers.Count()
	var resolveMask bitset.BitSet
	if checkerCount == 1 {
		checkerSq := checkers.LSB()
		resolveMask = attacks.Between(kingSq, checkerSq) | bitset.From(checkerSq)
	}

	for _, m := range pseudo.Slice() {
		if cat == Evasions {
			if m.Source() != uint8(kingSq) {
				if checkerCount >= 2 {
					continue
				}
				if !movesResolvesCheck(pos, m, resolveMask, checkers.LSB()) {
					continue
				}
			}
		} else if pos.InCheck() {
			// NonEvasions was requested explicitly while in check (callers
			// should normally pass Evasions instead, but stay correct).
			if m.Source() != uint8(kingSq) && checkerCount >= 1 {
				if checkerCount >= 2 {
					continue
				}
				if !movesResolvesCheck(pos, m, resolveMask, checkers.LSB()) {
					continue
				}
			}
		}

		if !categoryMatches(cat, m) {
			continue
		}
		if !pos.IsLegal(m) {
			continue
		}
		if cat == QuietChecks {
			pos.MakeMove(m)
			givesCheck := pos.InCheck()
			pos.UnmakeMove(m)
			if !givesCheck {
				continue
			}
		}
		list.Push(m)
	}
}

func movesResolvesCheck(pos *position.Position, m piece.Move, resolveMask bitset.BitSet, checkerSq square.Square) bool {
	dest := square.Square(m.Dest())
	if resolveMask&bitset.From(dest) != 0 {
		return true
	}
	// an en-passant capture resolves check by removing the checking pawn,
	// whose square is not the destination square.
	if m.Category() == piece.CategoryCapture && pos.PieceAt(dest) == piece.ColoredNone && pos.PieceAt(square.Square(m.Source())).Kind() == piece.Pawn {
		capSq := dest
		if pos.SideToMove() == piece.White {
			capSq = dest - 8
		} else {
			capSq = dest + 8
		}
		return capSq == checkerSq
	}
	return false
}

func categoryMatches(cat Category, m piece.Move) bool {
	switch cat {
	case Captures:
		return isCaptureOrPromotion(m)
	case Quiets:
		return !isCaptureOrPromotion(m)
	case QuietChecks:
		return !isCaptureOrPromotion(m)
	default:
		return true
	}
}

// genPseudoLegal generates every pseudo-legal move (ignoring pins and
// whether the side to move is in check) for every piece kind.
func genPseudoLegal(pos *position.Position, list *piece.MoveList) {
	side := pos.SideToMove()
	friendly := pos.Occupied(side)
	enemy := pos.Occupied(side.Opposite())
	occ := friendly | enemy

	genPawnMoves(pos, list, side, occ, enemy)
	genLeaperOrSlider(pos, list, piece.Knight, side, friendly, occ)
	genLeaperOrSlider(pos, list, piece.Bishop, side, friendly, occ)
	genLeaperOrSlider(pos, list, piece.Rook, side, friendly, occ)
	genLeaperOrSlider(pos, list, piece.Queen, side, friendly, occ)
	genKingMoves(pos, list, side, friendly, occ)
	genCastling(pos, list, side, occ)
}

func genLeaperOrSlider(pos *position.Position, list *piece.MoveList, kind piece.Kind, side piece.Side, friendly, occ bitset.BitSet) {
	pieces := pos.Pieces(side, kind)
	for pieces != 0 {
		from := pieces.PopLSB()
		dests := attacks.Of(kind, side, from, occ) &^ friendly
		for dests != 0 {
			to := dests.PopLSB()
			if pos.PieceAt(to) == piece.ColoredNone {
				list.Push(piece.New(uint8(from), uint8(to), piece.CategoryQuiet))
			} else {
				list.Push(piece.New(uint8(from), uint8(to), piece.CategoryCapture))
			}
		}
	}
}

func genKingMoves(pos *position.Position, list *piece.MoveList, side piece.Side, friendly, occ bitset.BitSet) {
	from := pos.King(side)
	if from == square.None {
		return
	}
	dests := attacks.King(from) &^ friendly
	for dests != 0 {
		to := dests.PopLSB()
		if pos.PieceAt(to) == piece.ColoredNone {
			list.Push(piece.New(uint8(from), uint8(to), piece.CategoryQuiet))
		} else {
			list.Push(piece.New(uint8(from), uint8(to), piece.CategoryCapture))
		}
	}
}

package movegen

import (
	"github.com/kestrelchess/core/bitset"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/square"
)

// promotionKinds lists every promotion kind in the order the generator
// emits them, queen first. All four kinds are emitted, and all four count
// as noisy moves for the Captures category that quiescence search uses.
var promotionKinds = [4]piece.PromotionKind{piece.PromoQueen, piece.PromoRook, piece.PromoBishop, piece.PromoKnight}

func genPawnMoves(pos *position.Position, list *piece.MoveList, side piece.Side, occ, enemy bitset.BitSet) {
	pawns := pos.Pieces(side, piece.Pawn)
	empty := ^occ
	promoRank := bitset.Ranks[7]
	if side == piece.Black {
		promoRank = bitset.Ranks[0]
	}
	startRank := bitset.Ranks[1]
	if side == piece.Black {
		startRank = bitset.Ranks[6]
	}

	singlePush := pawns.Up(side) & empty
	doublePush := (singlePush & startRank.Up(side)).Up(side) & empty

	pushPromo := singlePush & promoRank
	pushQuiet := singlePush &^ promoRank

	emitPawnDestinations(list, pushQuiet, side, false, 8)
	emitPawnPromotions(list, pushPromo, side, 8)
	emitPawnDestinations(list, doublePush, side, false, 16)

	leftCaptures := pawns.UpLeft(side) & enemy
	rightCaptures := pawns.UpRight(side) & enemy
	leftPromo := leftCaptures & promoRank
	rightPromo := rightCaptures & promoRank
	leftCaptures &^= promoRank
	rightCaptures &^= promoRank

	emitPawnCaptures(list, leftCaptures, side, true)
	emitPawnCaptures(list, rightCaptures, side, false)
	emitPawnCapturePromotions(list, leftPromo, side, true)
	emitPawnCapturePromotions(list, rightPromo, side, false)

	if ep := pos.EnPassant(); ep != square.None {
		epBB := bitset.From(ep)
		left := pawns.UpLeft(side) & epBB
		right := pawns.UpRight(side) & epBB
		if left != 0 {
			from := offsetSquare(ep, side, true)
			list.Push(piece.New(uint8(from), uint8(ep), piece.CategoryCapture))
		}
		if right != 0 {
			from := offsetSquare(ep, side, false)
			list.Push(piece.New(uint8(from), uint8(ep), piece.CategoryCapture))
		}
	}
}

// offsetSquare finds the pawn square that attacks ep "left" or "right"
// depending on which UpLeft/UpRight set matched, by reversing the shift.
func offsetSquare(to square.Square, side piece.Side, left bool) square.Square {
	if side == piece.White {
		if left {
			return to - 7
		}
		return to - 9
	}
	if left {
		return to + 7
	}
	return to + 9
}

func emitPawnDestinations(list *piece.MoveList, dests bitset.BitSet, side piece.Side, _ bool, delta int) {
	for dests != 0 {
		to := dests.PopLSB()
		from := pawnSource(to, side, delta)
		list.Push(piece.New(uint8(from), uint8(to), piece.CategoryQuiet))
	}
}

func emitPawnPromotions(list *piece.MoveList, dests bitset.BitSet, side piece.Side, delta int) {
	for dests != 0 {
		to := dests.PopLSB()
		from := pawnSource(to, side, delta)
		for _, pk := range promotionKinds {
			list.Push(piece.NewPromotion(uint8(from), uint8(to), pk))
		}
	}
}

func emitPawnCaptures(list *piece.MoveList, dests bitset.BitSet, side piece.Side, left bool) {
	for dests != 0 {
		to := dests.PopLSB()
		from := offsetSquare(to, side, left)
		list.Push(piece.New(uint8(from), uint8(to), piece.CategoryCapture))
	}
}

func emitPawnCapturePromotions(list *piece.MoveList, dests bitset.BitSet, side piece.Side, left bool) {
	for dests != 0 {
		to := dests.PopLSB()
		from := offsetSquare(to, side, left)
		for _, pk := range promotionKinds {
			list.Push(piece.NewPromotion(uint8(from), uint8(to), pk))
		}
	}
}

func pawnSource(to square.Square, side piece.Side, delta int) square.Square {
	if side == piece.White {
		return to - square.Square(delta)
	}
	return to + square.Square(delta)
}

// genCastling appends pseudo-legal castling moves: both the path-empty and
// not-moving-through-check conditions are checked here since they aren't
// expressible as "is the destination square attacked", unlike a normal
// king move.
func genCastling(pos *position.Position, list *piece.MoveList, side piece.Side, occ bitset.BitSet) {
	rights := pos.Castling()
	enemy := side.Opposite()

	rank := 0
	kingSide, queenSide := piece.WhiteKingSide, piece.WhiteQueenSide
	if side == piece.Black {
		rank = 7
		kingSide, queenSide = piece.BlackKingSide, piece.BlackQueenSide
	}
	kingSq := square.New(4, rank)
	if pos.King(side) != kingSq {
		return
	}

	if rights&kingSide != 0 {
		rookSq := square.New(7, rank)
		path := bitset.From(square.New(5, rank)) | bitset.From(square.New(6, rank))
		walk := bitset.From(square.New(4, rank)) | path
		if occ&path == 0 && !anyAttacked(pos, walk, enemy) {
			list.Push(piece.New(uint8(kingSq), uint8(rookSq), piece.CategoryCastle))
		}
	}
	if rights&queenSide != 0 {
		rookSq := square.New(0, rank)
		empty := bitset.From(square.New(1, rank)) | bitset.From(square.New(2, rank)) | bitset.From(square.New(3, rank))
		walk := bitset.From(square.New(4, rank)) | bitset.From(square.New(3, rank)) | bitset.From(square.New(2, rank))
		if occ&empty == 0 && !anyAttacked(pos, walk, enemy) {
			list.Push(piece.New(uint8(kingSq), uint8(rookSq), piece.CategoryCastle))
		}
	}
}

func anyAttacked(pos *position.Position, squares bitset.BitSet, by piece.Side) bool {
	for squares != 0 {
		sq := squares.PopLSB()
		if pos.IsAttacked(sq, by) {
			return true
		}
	}
	return false
}

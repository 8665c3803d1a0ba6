/*
Package eval implements a minimal material-plus-piece-square-table static
evaluator, standing in for the "external collaborator" evaluation function
the spec leaves unspecified.

Grounded on original_source/pleco/src/helper/psqt.rs's BONUS table shape
(one 64-square bonus array per piece kind, defined for White and mirrored
across the rank for Black) and named after
other_examples/ef4c48ef_easychessanimations-zurichess__engine-material.go.go's
Material concept. Table values are condensed from the well-known "simplified
evaluation function" tallies rather than reproduced line-for-line from
pleco's tapered middlegame/endgame pair, since this module's Score is a
single int16, not pleco's separate middlegame/endgame Score(mg, eg) pair.
*/
package eval

import (
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/square"
)

// pst[kind][sq] is the positional bonus for a White piece of that kind on
// that square; Black's bonus for the same relative square is looked up
// after mirroring the square across the rank (sq.FlipRank()), so only one
// table per kind needs to be written down.
var pst = [6][64]int16{
	piece.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	piece.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	piece.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	piece.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	piece.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	piece.King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

func pieceSquareValue(k piece.Kind, side piece.Side, sq square.Square) int16 {
	s := sq
	if side == piece.Black {
		s = sq.FlipRank()
	}
	return pst[k][s]
}

// Evaluate returns a static score from the perspective of the side to
// move: positive means that side stands better. It is the sum of each
// side's material plus piece-square bonuses, signed relative to side to
// move.
func Evaluate(pos *position.Position) int16 {
	var white, black int16
	for k := piece.Pawn; k <= piece.King; k++ {
		for _, side := range [2]piece.Side{piece.White, piece.Black} {
			bb := pos.Pieces(side, k)
			for bb != 0 {
				sq := bb.PopLSB()
				bonus := pieceSquareValue(k, side, sq)
				if k != piece.King {
					bonus += piece.Value[k]
				}
				if side == piece.White {
					white += bonus
				} else {
					black += bonus
				}
			}
		}
	}

	score := white - black
	if pos.SideToMove() == piece.Black {
		score = -score
	}
	return score
}

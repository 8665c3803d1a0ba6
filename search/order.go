package search

import (
	"sort"

	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/square"
)

// orderMoves sorts pseudo-legal moves best-first for alpha-beta: the
// transposition-table move (if any) leads, then captures ranked by
// most-valuable-victim/least-valuable-attacker, then promotions, then
// castles, then the two killer quiet moves recorded at this ply, then the
// rest in generation order. Grounded
// on thread_search.rs's mvv_lva_sort call immediately before the move loop.
func orderMoves(pos *position.Position, moves []piece.Move, ttMove piece.Move, killers [2]piece.Move) {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = moveOrderScore(pos, m, ttMove, killers)
	}
	sort.Stable(&moveSorter{moves: moves, scores: scores})
}

func moveOrderScore(pos *position.Position, m piece.Move, ttMove piece.Move, killers [2]piece.Move) int32 {
	if m == ttMove {
		return 1 << 30
	}
	switch m.Category() {
	case piece.CategoryCapture:
		victim := capturedPieceKind(pos, m)
		attacker := pos.PieceAt(square.Square(m.Source())).Kind()
		return 1<<20 + int32(piece.Value[victim])*8 - int32(piece.Value[attacker])
	case piece.CategoryPromotion:
		return 1<<19 + int32(piece.Value[m.Promotion().Kind()])
	case piece.CategoryCastle:
		return 1 << 10
	default:
		if m == killers[0] {
			return 1 << 9
		}
		if m == killers[1] {
			return 1 << 8
		}
		return 0
	}
}

func capturedPieceKind(pos *position.Position, m piece.Move) piece.Kind {
	dest := square.Square(m.Dest())
	if c := pos.PieceAt(dest); c != piece.ColoredNone {
		return c.Kind()
	}
	return piece.Pawn // en passant always captures a pawn
}

type moveSorter struct {
	moves  []piece.Move
	scores []int32
}

func (s *moveSorter) Len() int      { return len(s.moves) }
func (s *moveSorter) Swap(i, j int) { s.moves[i], s.moves[j] = s.moves[j], s.moves[i]; s.scores[i], s.scores[j] = s.scores[j], s.scores[i] }
func (s *moveSorter) Less(i, j int) bool { return s.scores[i] > s.scores[j] }

package search

import (
	"sort"

	"github.com/kestrelchess/core/piece"
)

// RootMove tracks a move available at the search root alongside its score
// history, grounded on Pleco's RootMove
// (original_source/pleco_engine/src/root_moves/mod.rs): score/prev_score
// pair plus depth_reached, sorted with higher-score-at-higher-depth first.
type RootMove struct {
	Move         piece.Move
	Score        Score
	PrevScore    Score
	DepthReached int
}

// NewRootMove returns a RootMove with both scores initialized to -Infinite,
// so an unsearched move always sorts behind any move that has been scored.
func NewRootMove(m piece.Move) RootMove {
	return RootMove{Move: m, Score: -Infinite, PrevScore: -Infinite}
}

// Insert records a freshly searched score/depth.
func (r *RootMove) Insert(score Score, depth int) {
	r.Score = score
	r.DepthReached = depth
}

// Rollback moves the current score into PrevScore ahead of a new
// iterative-deepening pass, the same bookkeeping as pleco's rollback.
func (r *RootMove) Rollback() { r.PrevScore = r.Score }

// SortRootMoves orders moves best-first: higher score wins, ties broken by
// higher previous score.
func SortRootMoves(moves []RootMove) {
	sort.SliceStable(moves, func(i, j int) bool {
		if moves[i].Score != moves[j].Score {
			return moves[i].Score > moves[j].Score
		}
		return moves[i].PrevScore > moves[j].PrevScore
	})
}

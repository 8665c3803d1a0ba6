package search

import "github.com/kestrelchess/core/position"

// Result is one worker's output from IterativeDeepen: the move list sorted
// best-first, and the depth the search reached before stopping.
type Result struct {
	Moves []RootMove
	Depth int
}

// IterativeDeepen runs successive full-width searches at increasing depth,
// each one seeded with the previous iteration's move ordering and narrowed
// around the previous score with an aspiration window, grounded on
// thread_search.rs's search_root: delta starts at 18 centipawns and widens
// by delta/4+5 on every fail-high/fail-low, snapping to the full
// (-Infinite, Infinite) window once a side has been widened past it.
//
// root is the position to search; rootMoves is the legal move list at that
// position (callers generate it once via movegen and wrap each with
// [NewRootMove]). maxDepth bounds the iteration; a zero or negative value
// means "until stopped". The caller arranges staggered starting depths and
// move-order perturbation across workers for Lazy-SMP (see the engine
// package); this function only knows about one search thread.
func (w *Worker) IterativeDeepen(root *position.Position, rootMoves []RootMove, startDepth, maxDepth int) Result {
	depth := startDepth
	if depth < 1 {
		depth = 1
	}
	lastDepth := 0

	for maxDepth <= 0 || depth <= maxDepth {
		if w.Stopped() {
			break
		}
		for i := range rootMoves {
			rootMoves[i].Rollback()
		}

		const initialDelta = Score(18)
		delta := initialDelta
		alpha, beta := -Infinite, Infinite
		if depth >= 5 && len(rootMoves) > 0 && rootMoves[0].PrevScore > -Infinite {
			alpha = clampScore(rootMoves[0].PrevScore - delta)
			beta = clampScore(rootMoves[0].PrevScore + delta)
		}

		for {
			w.searchRoot(root, rootMoves, depth, alpha, beta)
			SortRootMoves(rootMoves)
			if w.Stopped() {
				break
			}
			best := rootMoves[0].Score

			if best <= alpha {
				beta = clampScore((alpha + beta) / 2)
				alpha = clampScore(best - delta)
			} else if best >= beta {
				beta = clampScore(best + delta)
			} else {
				break
			}
			delta += delta/4 + 5
			if alpha <= -Infinite && beta >= Infinite {
				break
			}
		}

		if w.Stopped() {
			break
		}
		lastDepth = depth
		depth++
	}

	return Result{Moves: rootMoves, Depth: lastDepth}
}

func clampScore(s Score) Score {
	if s < -Infinite {
		return -Infinite
	}
	if s > Infinite {
		return Infinite
	}
	return s
}

package search

import (
	"github.com/kestrelchess/core/eval"
	"github.com/kestrelchess/core/movegen"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/ttable"
)

// maxPly bounds recursion depth against runaway check-extension chains.
const maxPly = 128

// Limits carries the stop signal and node budget a Worker checks between
// moves, grounded on thread_search.rs's self.stop AtomicBool probed inside
// the move loop rather than only between iterations.
type Limits struct {
	Stop  *boolFlag
	Nodes *uint64Flag
}

// Worker runs a single-threaded negamax search against a shared
// transposition table. One Worker exists per search thread; engine.Pool
// owns the fan-out across workers.
type Worker struct {
	TT      *ttable.Table
	Limits  Limits
	nodes   uint64
	killers [maxPly][2]piece.Move
}

// NewWorker returns a Worker bound to a transposition table shared across
// every worker in the pool.
func NewWorker(tt *ttable.Table) *Worker {
	return &Worker{TT: tt}
}

// Stopped reports whether the search should unwind immediately, either
// because the caller raised the stop flag or the node budget ran out.
func (w *Worker) Stopped() bool {
	if w.Limits.Stop != nil && w.Limits.Stop.Get() {
		return true
	}
	if w.Limits.Nodes != nil && w.nodes >= w.Limits.Nodes.Get() {
		return true
	}
	return false
}

// Nodes returns the number of nodes visited since the worker was created.
func (w *Worker) Nodes() uint64 { return w.nodes }

// searchRoot runs one full-width negamax search from pos to depth plies,
// updating each RootMove's Score in place and returning the best score
// found. Grounded on thread_search.rs's search_root: it loops the already-
// generated root move list instead of calling movegen again, so PV
// continuity survives from one iteration to the next.
func (w *Worker) searchRoot(pos *position.Position, moves []RootMove, depth int, alpha, beta Score) Score {
	best := -Infinite
	ttMove := piece.Move(0)
	if len(moves) > 0 {
		ttMove = moves[0].Move
	}

	plain := make([]piece.Move, len(moves))
	for i, rm := range moves {
		plain[i] = rm.Move
	}
	orderMoves(pos, plain, ttMove, [2]piece.Move{})

	searchedFirst := false
	for _, m := range plain {
		if w.Stopped() {
			break
		}
		idx := indexOfMove(moves, m)
		pos.MakeMove(m)
		w.nodes++
		var score Score
		if !searchedFirst {
			score = -w.search(pos, depth-1, -beta, -alpha, 1, true)
		} else {
			score = -w.search(pos, depth-1, -alpha-1, -alpha, 1, true)
			if score > alpha && score < beta {
				score = -w.search(pos, depth-1, -beta, -alpha, 1, true)
			}
		}
		pos.UnmakeMove(m)
		searchedFirst = true

		moves[idx].Insert(score, depth)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
	}
	return best
}

func indexOfMove(moves []RootMove, m piece.Move) int {
	for i := range moves {
		if moves[i].Move == m {
			return i
		}
	}
	return -1
}

// search is the interior negamax function: probes the transposition table,
// applies futility pruning at shallow depth when not in check, generates
// and orders moves, and recurses with a null-window scout search for all
// but the first child (PVS). Grounded on thread_search.rs's search: the TT
// probe/cutoff, static-eval futility skip, and PV/non-PV split are kept;
// generalized from pleco's Board/BitMove types to this module's
// position.Position/piece.Move.
func (w *Worker) search(pos *position.Position, depth int, alpha, beta Score, ply int, pv bool) Score {
	if w.Stopped() {
		return 0
	}
	if depth <= 0 {
		return w.quiescence(pos, alpha, beta, ply, 0)
	}
	if ply > 0 {
		if pos.IsRepetition() || pos.IsFiftyMoveDraw() || pos.IsInsufficientMaterial() {
			return Draw
		}
	}
	if ply >= maxPly {
		return Score(eval.Evaluate(pos))
	}

	origAlpha := alpha
	var ttMove piece.Move
	key := pos.Key()
	if entry, ok := w.TT.Probe(key); ok {
		ttMove = entry.Move
		if entry.Depth >= depth && ply > 0 {
			s := adjustMateForRetrieval(Score(entry.Score), ply)
			switch entry.Bound {
			case ttable.BoundExact:
				return s
			case ttable.BoundLower:
				if s >= beta {
					return s
				}
			case ttable.BoundUpper:
				if s <= alpha {
					return s
				}
			}
		}
	}

	inCheck := pos.InCheck()
	staticEval := Score(eval.Evaluate(pos))

	// Futility pruning: at shallow depth, if the static eval still reaches
	// beta after subtracting a generous margin, fail high without searching
	// the subtree.
	if !pv && !inCheck && depth <= 6 {
		margin := futilityMargin(depth)
		if staticEval-margin >= beta {
			return staticEval - margin
		}
	}

	var list piece.MoveList
	if inCheck {
		movegen.Generate(pos, movegen.Evasions, &list)
	} else {
		movegen.Generate(pos, movegen.NonEvasions, &list)
	}
	legal := list.Slice()
	if len(legal) == 0 {
		if inCheck {
			return MatedIn(ply)
		}
		return Draw
	}
	orderMoves(pos, legal, ttMove, w.killers[ply])

	best := -Infinite
	bestMove := legal[0]
	for i, m := range legal {
		pos.MakeMove(m)
		w.nodes++
		var score Score
		if i == 0 {
			score = -w.search(pos, depth-1, -beta, -alpha, ply+1, pv)
		} else {
			score = -w.search(pos, depth-1, -alpha-1, -alpha, ply+1, false)
			if score > alpha && score < beta {
				score = -w.search(pos, depth-1, -beta, -alpha, ply+1, pv)
			}
		}
		pos.UnmakeMove(m)

		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.Category() != piece.CategoryCapture && m.Category() != piece.CategoryPromotion {
				w.recordKiller(ply, m)
			}
			break
		}
	}
	bound := ttable.BoundExact
	if best <= origAlpha {
		bound = ttable.BoundUpper
	} else if best >= beta {
		bound = ttable.BoundLower
	}
	w.TT.Store(key, bound, depth, int16(adjustMateForStorage(best, ply)), int16(staticEval), bestMove)

	return best
}

func (w *Worker) recordKiller(ply int, m piece.Move) {
	if ply >= maxPly {
		return
	}
	if w.killers[ply][0] != m {
		w.killers[ply][1] = w.killers[ply][0]
		w.killers[ply][0] = m
	}
}

// quiescence extends the search along capture/check lines past the nominal
// depth limit to avoid the horizon effect, grounded on thread_search.rs's
// qsearch: captures and promotions always, every move while in check, and
// a recursion cap to keep runaway check sequences bounded.
func (w *Worker) quiescence(pos *position.Position, alpha, beta Score, ply, qdepth int) Score {
	if w.Stopped() {
		return 0
	}
	inCheck := pos.InCheck()
	standPat := Score(eval.Evaluate(pos))

	if !inCheck {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}
	if qdepth >= 32 || ply >= maxPly {
		return standPat
	}

	var list piece.MoveList
	if inCheck {
		movegen.Generate(pos, movegen.Evasions, &list)
	} else {
		movegen.Generate(pos, movegen.Captures, &list)
	}
	moves := list.Slice()

	best := standPat
	if inCheck {
		best = -Infinite
	}
	any := len(moves) > 0
	orderMoves(pos, moves, piece.Move(0), [2]piece.Move{})
	for _, m := range moves {
		pos.MakeMove(m)
		w.nodes++
		score := -w.quiescence(pos, -beta, -alpha, ply+1, qdepth+1)
		pos.UnmakeMove(m)

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	if inCheck && !any {
		return MatedIn(ply)
	}
	return best
}

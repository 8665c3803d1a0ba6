/*
Package engine coordinates a fixed pool of search workers over a shared
position and transposition table, implementing the Lazy-SMP scheme: every
worker searches the same tree independently but starts from a different
depth and skips some depths entirely, so the pool as a whole explores more
of the tree than any single worker could alone and the shared table lets
workers profit from each other's work.

Grounded on original_source/pleco_engine/src/threadpool/threads.rs's
MainThread/Thread split (set_stop/wait_for_finish/start_threads lifecycle)
and pleco_engine/src/pleco_searcher/thread_search.rs's literal SKIP_SIZE/
START_PLY staggering tables, generalized from pleco's OS-thread-plus-
condvar plumbing to golang.org/x/sync/errgroup's goroutine fan-out.
*/
package engine

import (
	"context"
	"runtime"
	"sort"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/kestrelchess/core/movegen"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/search"
	"github.com/kestrelchess/core/ttable"
)

var log = logging.MustGetLogger("engine")

// threadDist is the period of the Lazy-SMP staggering tables: a worker's
// starting depth and skip pattern are selected by worker_id % threadDist,
// so the schedule extends to any pool size without needing a longer table.
const threadDist = 20

// skipSize and startPly are copied verbatim from pleco's SKIP_SIZE/
// START_PLY: every fourth worker (roughly) searches a deeper slice of the
// tree than a plain iterative-deepening loop would reach in the same wall
// time, trading some redundant shallow work for broader coverage.
var (
	skipSize = [threadDist]int{1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4}
	startPly = [threadDist]int{0, 1, 0, 1, 2, 3, 0, 1, 2, 3, 4, 5, 0, 1, 2, 3, 4, 5, 6, 7}
)

// maxWorkers caps the pool size regardless of what the caller requests or
// GOMAXPROCS reports, since a search thread beyond a few hundred buys
// nothing but memory pressure on the shared table.
const maxWorkers = 256

// Pool owns a shared transposition table and a set of search.Worker
// instances, each running its own staggered iterative-deepening pass
// against the same root position.
type Pool struct {
	TT      *ttable.Table
	workers []*search.Worker
	stop    stopFlag
}

// stopFlag mirrors search's unexported boolFlag shape so Pool can hold one
// without search exporting its internal atomic wrapper type.
type stopFlag interface {
	Set(bool)
	Get() bool
}

// New builds a pool of n workers (clamped to [1, maxWorkers]; n <= 0 means
// "one per logical CPU") sharing a table sized ttBytes.
func New(n int, ttBytes uint64) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > maxWorkers {
		n = maxWorkers
	}
	tt := ttable.New(ttBytes)
	p := &Pool{TT: tt, workers: make([]*search.Worker, n)}
	for i := range p.workers {
		p.workers[i] = search.NewWorker(tt)
	}
	log.Infof("engine pool started with %d workers, table size %d bytes", n, tt.Size())
	return p
}

// BestMove is the pool's aggregate answer: the move the deepest-completing
// worker settled on, ties broken by score, grounded on threads.rs's
// per_thread.best_rootmove selection.
type BestMove struct {
	Move  piece.Move
	Score search.Score
	Depth int
}

// Search runs every worker against root to at most maxDepth plies (0 means
// run until Stop is called), aggregates their results, and returns the
// pool's consensus best move. The transposition table generation is
// advanced first so stale entries from a prior search age out naturally.
func (p *Pool) Search(ctx context.Context, root *position.Position, maxDepth int) BestMove {
	p.TT.NewGeneration()

	stop := search.NewBoolFlag()
	p.stop = stop

	var list piece.MoveList
	movegen.Generate(root, movegen.All, &list)
	base := list.Slice()
	baseMoves := make([]search.RootMove, len(base))
	for i, m := range base {
		baseMoves[i] = search.NewRootMove(m)
	}

	results := make([]search.Result, len(p.workers))
	g, gctx := errgroup.WithContext(ctx)

	// A cancelled context must interrupt a worker immediately, not just at
	// the next depth boundary runStaggered checks between iterations, so a
	// single goroutine raises the shared stop flag the moment ctx ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-gctx.Done():
			stop.Set(true)
		case <-done:
		}
	}()

	for i, w := range p.workers {
		i, w := i, w
		w.Limits.Stop = stop
		moves := make([]search.RootMove, len(baseMoves))
		copy(moves, baseMoves)
		shuffleForWorker(moves, i)

		g.Go(func() error {
			pos := root.Clone()
			start := startPly[i%threadDist] + 1
			skip := skipSize[i%threadDist]
			results[i] = runStaggered(w, pos, moves, start, skip, maxDepth, gctx, stop)
			return nil
		})
	}
	_ = g.Wait()

	return aggregateBest(results)
}

// Stop signals every running worker to unwind at the next safe point.
func (p *Pool) Stop() {
	if p.stop != nil {
		p.stop.Set(true)
	}
}

// runStaggered drives one worker's Lazy-SMP schedule: depths are searched
// in start, start+skip, start+2*skip, ... order rather than one-by-one, so
// a worker assigned a large skip spends its time on a sparser, deeper set
// of depths instead of retracing shallow ones every other worker already
// covers.
func runStaggered(w *search.Worker, pos *position.Position, moves []search.RootMove, start, skip, maxDepth int, ctx context.Context, stop stopFlag) search.Result {
	depth := start
	var last search.Result
	for maxDepth <= 0 || depth <= maxDepth {
		select {
		case <-ctx.Done():
			stop.Set(true)
		default:
		}
		if w.Stopped() {
			break
		}
		res := w.IterativeDeepen(pos, moves, depth, depth)
		if res.Depth == 0 {
			// stopped before this depth completed: keep the last
			// finished iteration's result.
			break
		}
		last = res
		depth += skip
	}
	return last
}

// shuffleForWorker perturbs the root move order deterministically by
// worker index so sibling workers don't all converge on an identical PV
// immediately; grounded on threads.rs's per_thread.replace_moves giving
// each RootMoveList its own ordering before search_root runs.
func shuffleForWorker(moves []search.RootMove, workerIdx int) {
	if workerIdx == 0 || len(moves) < 2 {
		return
	}
	offset := workerIdx % len(moves)
	rotated := make([]search.RootMove, len(moves))
	copy(rotated, moves[offset:])
	copy(rotated[len(moves)-offset:], moves[:offset])
	copy(moves, rotated)
}

// aggregateBest picks the deepest-completing worker's top move, breaking
// ties on score, mirroring threads.rs's best_rootmove.
func aggregateBest(results []search.Result) BestMove {
	var best BestMove
	haveBest := false
	sorted := append([]search.Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Depth != sorted[j].Depth {
			return sorted[i].Depth > sorted[j].Depth
		}
		if len(sorted[i].Moves) == 0 || len(sorted[j].Moves) == 0 {
			return len(sorted[i].Moves) > len(sorted[j].Moves)
		}
		return sorted[i].Moves[0].Score > sorted[j].Moves[0].Score
	})
	for _, r := range sorted {
		if len(r.Moves) == 0 {
			continue
		}
		best = BestMove{Move: r.Moves[0].Move, Score: r.Moves[0].Score, Depth: r.Depth}
		haveBest = true
		break
	}
	if !haveBest {
		return BestMove{}
	}
	return best
}

package uci

import (
	"context"
	"fmt"

	"github.com/kestrelchess/core/engine"
	"github.com/kestrelchess/core/position"
	"github.com/kestrelchess/core/timeman"
)

// defaultTTBytes is the transposition table size a freshly constructed
// Engine allocates before any "setoption" has changed it.
const defaultTTBytes = 64 << 20

// Engine wraps an engine.Pool with the position/go/stop/isready/setoption
// surface a UCI front end drives, grounded on treepeck-chego's uci.go
// serialization helpers plus pleco's parse.rs command shape — the pool
// lifecycle itself (threads, table) is engine.Pool's job, not this
// package's.
type Engine struct {
	pool    *engine.Pool
	pos     *position.Position
	ttBytes uint64
	workers int
}

// NewEngine returns an Engine with the standard starting position loaded
// and a pool sized for the host's CPU count.
func NewEngine() *Engine {
	e := &Engine{ttBytes: defaultTTBytes, pos: position.StartPosition()}
	e.pool = engine.New(0, e.ttBytes)
	return e
}

// SetPosition replaces the current position, grounded on the UCI
// "position [fen <fenstring> | startpos] moves <move1> ... <movei>"
// command: fenOrStartpos is either "startpos" or a FEN string, and moves
// is the (possibly empty) list of UCI moves to apply afterward.
func (e *Engine) SetPosition(fenOrStartpos string, moves []string) error {
	var pos *position.Position
	if fenOrStartpos == "startpos" || fenOrStartpos == "" {
		pos = position.StartPosition()
	} else {
		p, err := position.FromFEN(fenOrStartpos)
		if err != nil {
			return err
		}
		pos = p
	}
	for _, mv := range moves {
		m, ok := ParseMove(pos, mv)
		if !ok {
			return fmt.Errorf("uci: illegal move %q in position %s", mv, pos.FEN())
		}
		pos.MakeMove(m)
	}
	e.pos = pos
	return nil
}

// SetOption applies a UCI "setoption name <name> value <value>" command.
// Only Hash and Threads are recognized; both take effect on the next Go
// call since changing either mid-search would require tearing down and
// rebuilding the pool.
func (e *Engine) SetOption(name, value string) {
	switch name {
	case "Hash":
		var mb int
		if _, err := fmt.Sscanf(value, "%d", &mb); err == nil && mb > 0 {
			e.ttBytes = uint64(mb) << 20
			e.pool = engine.New(e.workers, e.ttBytes)
		}
	case "Threads":
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err == nil && n > 0 {
			e.workers = n
			e.pool = engine.New(e.workers, e.ttBytes)
		}
	}
}

// IsReady reports whether the engine can accept the next command
// immediately. This engine never blocks setup behind a background step,
// so it is always ready once constructed.
func (e *Engine) IsReady() bool { return e.pool != nil }

// Go runs a search under the given limits and returns the chosen move in
// UCI notation. white reports whether the side to move is White, used to
// pick the right half of the clock out of limits.
func (e *Engine) Go(ctx context.Context, limits GoLimits, white bool) string {
	maxDepth := limits.Depth

	runCtx := ctx
	var cancel context.CancelFunc
	if limits.MoveTime > 0 {
		runCtx, cancel = context.WithTimeout(ctx, limits.MoveTime)
		defer cancel()
	} else if !limits.Infinite {
		if clock, ok := limits.Clock(white); ok {
			budget := timeman.Compute(clock, e.pos.FullmoveNumber()*2)
			runCtx, cancel = context.WithTimeout(ctx, budget.Ideal)
			defer cancel()
		}
	}

	best := e.pool.Search(runCtx, e.pos, maxDepth)
	if best.Move.IsNull() {
		return "0000"
	}
	return Move2UCI(best.Move)
}

// Stop signals an in-progress Go call to return immediately.
func (e *Engine) Stop() { e.pool.Stop() }

// Position returns the engine's current position, mainly for tests and
// for "debug"-style introspection from a front end.
func (e *Engine) Position() *position.Position { return e.pos }

package uci

import (
	"strconv"
	"time"

	"github.com/kestrelchess/core/timeman"
)

// GoLimits is the parsed form of a UCI "go" command, grounded on pleco's
// PreLimits/UCITimer pair (original_source/pleco_engine/src/uci/parse.rs):
// clock state for both sides plus the handful of alternate search limits a
// GUI can request instead of (or alongside) a clock.
type GoLimits struct {
	WhiteTime, BlackTime time.Duration
	WhiteInc, BlackInc   time.Duration
	MovesToGo            int
	Depth                int
	Nodes                uint64
	MoveTime             time.Duration
	Infinite             bool
	SearchMoves          []string
}

// ParseGo tokenizes the arguments following "go" the way pleco's parse_time
// does: walk the token list, and whenever a keyword expects a value,
// consume the next token too.
func ParseGo(args []string) GoLimits {
	var limit GoLimits
	i := 0
	next := func() (string, bool) {
		if i+1 < len(args) {
			i++
			return args[i], true
		}
		return "", false
	}

	for i < len(args) {
		switch args[i] {
		case "infinite":
			limit.Infinite = true
		case "wtime":
			if v, ok := next(); ok {
				limit.WhiteTime = parseMillis(v)
			}
		case "btime":
			if v, ok := next(); ok {
				limit.BlackTime = parseMillis(v)
			}
		case "winc":
			if v, ok := next(); ok {
				limit.WhiteInc = parseMillis(v)
			}
		case "binc":
			if v, ok := next(); ok {
				limit.BlackInc = parseMillis(v)
			}
		case "movestogo":
			if v, ok := next(); ok {
				if n, err := strconv.Atoi(v); err == nil {
					limit.MovesToGo = n
				}
			}
		case "depth":
			if v, ok := next(); ok {
				if n, err := strconv.Atoi(v); err == nil {
					limit.Depth = n
				}
			}
		case "nodes":
			if v, ok := next(); ok {
				if n, err := strconv.ParseUint(v, 10, 64); err == nil {
					limit.Nodes = n
				}
			}
		case "movetime":
			if v, ok := next(); ok {
				limit.MoveTime = parseMillis(v)
			}
		case "searchmoves":
			for i+1 < len(args) && !isGoKeyword(args[i+1]) {
				i++
				limit.SearchMoves = append(limit.SearchMoves, args[i])
			}
		}
		i++
	}
	return limit
}

func isGoKeyword(s string) bool {
	switch s {
	case "searchmoves", "ponder", "wtime", "btime", "winc", "binc",
		"movestogo", "depth", "nodes", "mate", "movetime", "infinite":
		return true
	default:
		return false
	}
}

func parseMillis(s string) time.Duration {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}

// Clock extracts the side-to-move's clock state as a timeman.Clock, or
// false if the GUI gave no clock information at all (e.g. "go infinite"
// or "go movetime").
func (g GoLimits) Clock(white bool) (timeman.Clock, bool) {
	if white {
		if g.WhiteTime == 0 && g.WhiteInc == 0 && g.MovesToGo == 0 {
			return timeman.Clock{}, false
		}
		return timeman.Clock{Time: g.WhiteTime, Inc: g.WhiteInc, MovesToGo: g.MovesToGo}, true
	}
	if g.BlackTime == 0 && g.BlackInc == 0 && g.MovesToGo == 0 {
		return timeman.Clock{}, false
	}
	return timeman.Clock{Time: g.BlackTime, Inc: g.BlackInc, MovesToGo: g.MovesToGo}, true
}

//go:build chessdebug

package position

import "github.com/kestrelchess/core/piece"

// assertUnmakeMatches panics if the move passed to UnmakeMove is not the
// move that produced the current snapshot, catching make/unmake call-order
// bugs early in debug builds without paying for the check in release
// builds (search is on the hot path of every node).
func assertUnmakeMatches(p *Position, m piece.Move) {
	if p.top.move != m {
		panic("position: UnmakeMove called with a move that does not match the top snapshot")
	}
}

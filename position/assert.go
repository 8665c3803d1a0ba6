//go:build !chessdebug

package position

import "github.com/kestrelchess/core/piece"

// assertUnmakeMatches is a no-op in release builds; see assert_debug.go for
// the chessdebug-tagged version that actually checks the invariant.
func assertUnmakeMatches(p *Position, m piece.Move) {}

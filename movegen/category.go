/*
Package movegen generates pseudo-legal and strictly legal moves for a
position, parameterized by the category of move the caller wants: this
lets quiescence search ask only for captures, futility pruning skip quiet
moves entirely, and the main search ask for everything.

Grounded on treepeck-chego's movegen.go (genKingMoves/genPawnMoves/
genNormalMoves/genAttacks), generalized from its single "always generate
everything, filter legality by copy-make" approach to a category-
parameterized generator that uses position's precomputed pins/checkers
instead of copy-make, and to produce evasion-only lists when in check.
*/
package movegen

import "github.com/kestrelchess/core/piece"

// Category selects which subset of moves Generate produces.
type Category int

const (
	// NonEvasions generates every legal move for a side that is not in
	// check. Callers in check should use [Evasions] instead; if they pass
	// NonEvasions anyway, Generate still keeps only check-resolving moves.
	NonEvasions Category = iota
	// Evasions generates only moves that get the side to move out of
	// check: king moves, captures of the (single) checker, and blocks.
	Evasions
	// Captures generates capturing moves (including en passant and
	// capture-promotions) plus non-capturing promotions.
	Captures
	// Quiets generates only non-capturing, non-promoting moves.
	Quiets
	// QuietChecks generates non-capturing, non-promoting moves that give
	// check.
	QuietChecks
	// All generates every legal move regardless of check status,
	// dispatching to Evasions or NonEvasions internally as appropriate.
	All
)

func isCaptureOrPromotion(m piece.Move) bool {
	switch m.Category() {
	case piece.CategoryCapture, piece.CategoryPromotion:
		return true
	}
	return false
}

package movegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/position"
)

func perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list piece.MoveList
	Generate(pos, All, &list)
	if depth == 1 {
		return uint64(list.Len)
	}
	var nodes uint64
	for _, m := range list.Slice() {
		pos.MakeMove(m)
		nodes += perft(pos, depth-1)
		pos.UnmakeMove(m)
	}
	return nodes
}

func TestPerftStartPositionDepth1(t *testing.T) {
	pos := position.StartPosition()
	require.EqualValues(t, 20, perft(pos, 1))
}

func TestPerftStartPositionDepth2(t *testing.T) {
	pos := position.StartPosition()
	require.EqualValues(t, 400, perft(pos, 2))
}

func TestPerftStartPositionDepth3(t *testing.T) {
	pos := position.StartPosition()
	require.EqualValues(t, 8902, perft(pos, 3))
}

func TestKiwipetePerftDepth1(t *testing.T) {
	pos, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.EqualValues(t, 48, perft(pos, 1))
}

// TestPerftStartPositionDepth5 is the depth named by spec.md §8 scenario 1:
// deep enough that every capture, promotion, castle, and en-passant move on
// the board is not just generated but actually made and unmade many times
// over, so a make/unmake bug (rather than a generation bug) desyncs the
// node count instead of hiding behind the depth==1 leaf short-circuit.
func TestPerftStartPositionDepth5(t *testing.T) {
	pos := position.StartPosition()
	require.EqualValues(t, 4865609, perft(pos, 5))
}

// TestKiwipetePerftDepth4 is spec.md §8 scenario 2: the Kiwipete position
// exercises castling, en passant, and promotions far more densely per node
// than the start position, so this is the test most likely to catch an
// UnmakeMove bug the start-position perft alone would miss.
func TestKiwipetePerftDepth4(t *testing.T) {
	pos, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.EqualValues(t, 4085603, perft(pos, 4))
}

func TestEvasionsOnlyWhenInCheck(t *testing.T) {
	// Fool's mate position: white king in check from the black queen.
	pos, err := position.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	var all, evasions piece.MoveList
	Generate(pos, All, &all)
	Generate(pos, Evasions, &evasions)
	require.Equal(t, all.Len, evasions.Len, "All and Evasions should agree when in check")
	// This exact position is checkmate (the "fool's mate"): zero legal
	// replies is the correct answer, not a bug.
	require.Zero(t, all.Len, "expected checkmate (0 legal moves)")
}

func TestCapturesSubsetOfAll(t *testing.T) {
	pos := position.StartPosition()
	var all, captures piece.MoveList
	Generate(pos, All, &all)
	Generate(pos, Captures, &captures)
	for _, m := range captures.Slice() {
		require.Contains(t, all.Slice(), m, "every capture must also be generated under All")
	}
	require.Zero(t, captures.Len, "the start position has no legal captures")
}

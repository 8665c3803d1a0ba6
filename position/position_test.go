package position

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
)

func TestStartPositionFENRoundTrip(t *testing.T) {
	p := StartPosition()
	require.Equal(t, StartFEN, p.FEN())
}

func TestFromFENRejectsBadPlacement(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1")
	require.Error(t, err, "expected an error for a rank with only 7 squares")
	fe, ok := err.(*FENError)
	require.True(t, ok, "expected *FENError, got %T", err)
	require.Equal(t, ReasonRankSquareCount, fe.Reason)
}

func TestFromFENRejectsIllegalCheck(t *testing.T) {
	// Both kings adjacent with white to move and black's king attacked by
	// white's king is an impossible configuration.
	_, err := FromFEN("8/8/8/3k4/3K4/8/8/8 w - - 0 1")
	require.Error(t, err, "expected an illegal-check error for adjacent kings")
}

func TestMakeUnmakeRestoresFEN(t *testing.T) {
	p := StartPosition()
	before := p.FEN()

	m := piece.New(uint8(square.New(4, 1)), uint8(square.New(4, 3)), piece.CategoryQuiet) // e2e4
	p.MakeMove(m)
	require.NotEqual(t, before, p.FEN(), "FEN must change after a move")
	p.UnmakeMove(m)
	require.Equal(t, before, p.FEN())
}

func TestDoublePawnPushSetsEnPassant(t *testing.T) {
	p := StartPosition()
	m := piece.New(uint8(square.New(4, 1)), uint8(square.New(4, 3)), piece.CategoryQuiet)
	p.MakeMove(m)
	require.Equal(t, square.New(4, 2), p.EnPassant())
}

func TestCastlingRightsRevokedByKingMove(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := p.Castling()
	require.NotZero(t, before&piece.WhiteKingSide, "white kingside castling must be available before the king moves")
	require.NotZero(t, before&piece.WhiteQueenSide, "white queenside castling must be available before the king moves")

	m := piece.New(uint8(square.New(4, 0)), uint8(square.New(5, 0)), piece.CategoryQuiet) // Ke1-f1
	p.MakeMove(m)
	after := p.Castling()
	require.Zero(t, after&(piece.WhiteKingSide|piece.WhiteQueenSide), "a king move must revoke both white castling rights")
	require.Equal(t, before&(piece.BlackKingSide|piece.BlackQueenSide), after&(piece.BlackKingSide|piece.BlackQueenSide), "black's castling rights must be unaffected")
}

func TestInCheckDetection(t *testing.T) {
	p, err := FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	require.True(t, p.InCheck(), "white king should be in check from the h4 queen (fool's mate position)")
}

func TestZobristKeyChangesOnMove(t *testing.T) {
	p := StartPosition()
	before := p.Key()
	m := piece.New(uint8(square.New(4, 1)), uint8(square.New(4, 3)), piece.CategoryQuiet)
	p.MakeMove(m)
	require.NotEqual(t, before, p.Key(), "zobrist key must change after a move")
	p.UnmakeMove(m)
	require.Equal(t, before, p.Key(), "zobrist key must be restored exactly after unmake")
}

func TestMakeUnmakeRestoresFENOnCapture(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	before := p.FEN()
	beforeKey := p.Key()

	m := piece.New(uint8(square.New(4, 3)), uint8(square.New(3, 4)), piece.CategoryCapture) // e4xd5
	require.NotEqual(t, piece.ColoredNone, p.PieceAt(square.New(3, 4)), "d5 must be occupied by a black pawn for this test to exercise a capture")
	p.MakeMove(m)
	require.Equal(t, piece.Pawn, p.PieceAt(square.New(3, 4)).Kind(), "white pawn must now occupy d5")
	p.UnmakeMove(m)

	require.Equal(t, before, p.FEN())
	require.Equal(t, beforeKey, p.Key(), "zobrist key must be restored exactly after unmaking a capture")
	require.Equal(t, piece.Pawn, p.PieceAt(square.New(3, 4)).Kind(), "the captured black pawn must be resurrected on d5, not d4 or left empty")
	require.Equal(t, piece.Black, p.PieceAt(square.New(3, 4)).Side())
	require.Equal(t, piece.Pawn, p.PieceAt(square.New(4, 3)).Kind(), "the white pawn must be back on e4")
	require.Equal(t, piece.White, p.PieceAt(square.New(4, 3)).Side())
}

func TestMakeUnmakeRestoresFENOnEnPassant(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	before := p.FEN()
	beforeKey := p.Key()

	m := piece.New(uint8(square.New(4, 4)), uint8(square.New(3, 5)), piece.CategoryCapture) // e5xd6 e.p.
	p.MakeMove(m)
	require.Equal(t, piece.ColoredNone, p.PieceAt(square.New(3, 4)), "the captured black pawn on d5 must be removed by en passant")
	require.Equal(t, piece.Pawn, p.PieceAt(square.New(3, 5)).Kind(), "the white pawn must land on d6")
	p.UnmakeMove(m)

	require.Equal(t, before, p.FEN())
	require.Equal(t, beforeKey, p.Key(), "zobrist key must be restored exactly after unmaking an en-passant capture")
	require.Equal(t, piece.Pawn, p.PieceAt(square.New(3, 4)).Kind(), "the captured black pawn must be restored on d5, not d6")
	require.Equal(t, piece.Black, p.PieceAt(square.New(3, 4)).Side())
	require.Equal(t, piece.ColoredNone, p.PieceAt(square.New(3, 5)), "d6 must be empty again after unmaking the en-passant capture")
	require.Equal(t, piece.Pawn, p.PieceAt(square.New(4, 4)).Kind(), "the white pawn must be back on e5")
	require.Equal(t, piece.White, p.PieceAt(square.New(4, 4)).Side())
}

func TestMakeUnmakeRestoresFENOnCapturePromotion(t *testing.T) {
	p, err := FromFEN("rnbqkb1r/ppppppPp/8/8/8/8/PPPPPP1P/RNBQKBNR w KQkq - 0 5")
	require.NoError(t, err)
	before := p.FEN()
	beforeKey := p.Key()

	m := piece.NewPromotion(uint8(square.New(6, 6)), uint8(square.New(7, 7)), piece.PromoQueen) // g7xh8=Q
	p.MakeMove(m)
	require.Equal(t, piece.Queen, p.PieceAt(square.New(7, 7)).Kind(), "h8 must now hold a white queen")
	p.UnmakeMove(m)

	require.Equal(t, before, p.FEN())
	require.Equal(t, beforeKey, p.Key(), "zobrist key must be restored exactly after unmaking a capture-promotion")
	require.Equal(t, piece.Rook, p.PieceAt(square.New(7, 7)).Kind(), "the captured black rook must be restored on h8")
	require.Equal(t, piece.Black, p.PieceAt(square.New(7, 7)).Side())
	require.Equal(t, piece.Pawn, p.PieceAt(square.New(6, 6)).Kind(), "the white pawn must be back on g7")
	require.Equal(t, piece.White, p.PieceAt(square.New(6, 6)).Side())
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	p, err := FromFEN("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	require.NoError(t, err)
	require.True(t, p.IsInsufficientMaterial(), "bare kings must be insufficient material")
}

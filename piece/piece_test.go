package piece

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColoredPack(t *testing.T) {
	c := NewColored(Knight, Black)
	require.Equal(t, Knight, c.Kind())
	require.Equal(t, Black, c.Side())
	require.Equal(t, byte('n'), c.Symbol())
}

func TestColoredNoneSymbol(t *testing.T) {
	require.Equal(t, byte('.'), ColoredNone.Symbol())
}

func TestMoveRoundTrip(t *testing.T) {
	m := New(12, 28, CategoryQuiet)
	require.EqualValues(t, 12, m.Source())
	require.EqualValues(t, 28, m.Dest())
	require.Equal(t, CategoryQuiet, m.Category())
}

func TestMovePromotion(t *testing.T) {
	m := NewPromotion(52, 60, PromoQueen)
	require.Equal(t, CategoryPromotion, m.Category())
	require.Equal(t, PromoQueen, m.Promotion())
	require.Equal(t, Queen, m.Promotion().Kind())
}

func TestNullMove(t *testing.T) {
	require.True(t, Null.IsNull(), "Null must report IsNull")
	m := New(10, 20, CategoryQuiet)
	require.False(t, m.IsNull(), "normal move must not report IsNull")
}

func TestMoveListPushReset(t *testing.T) {
	var l MoveList
	l.Push(New(0, 1, CategoryQuiet))
	l.Push(New(1, 2, CategoryQuiet))
	require.Equal(t, 2, l.Len)
	require.Len(t, l.Slice(), 2)
	l.Reset()
	require.Zero(t, l.Len, "reset should zero length")
}

func TestCastlingRemovalMask(t *testing.T) {
	require.Equal(t, WhiteKingSide|WhiteQueenSide, RemovalMask(4), "e1 removal mask")
	require.Equal(t, WhiteQueenSide, RemovalMask(0), "a1 removal mask")
	require.Equal(t, BlackKingSide, RemovalMask(63), "h8 removal mask")
}

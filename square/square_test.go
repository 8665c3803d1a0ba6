package square

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAndComponents(t *testing.T) {
	s := New(4, 3) // e4
	require.Equal(t, 4, s.File())
	require.Equal(t, 3, s.Rank())
	require.Equal(t, "e4", s.String())
}

func TestFlipRank(t *testing.T) {
	a1 := New(0, 0)
	a8 := New(0, 7)
	require.Equal(t, a8, a1.FlipRank())
	require.Equal(t, a1, a8.FlipRank())
}

func TestDistance(t *testing.T) {
	e1 := New(4, 0)
	e8 := New(4, 7)
	require.Equal(t, 7, Distance(e1, e8))
	a1 := New(0, 0)
	h8 := New(7, 7)
	require.Equal(t, 7, Distance(a1, h8))
}

func TestParseRoundTrip(t *testing.T) {
	for _, name := range []string{"a1", "h8", "e4", "-"} {
		sq, ok := Parse(name)
		require.True(t, ok, "Parse(%q) failed", name)
		require.Equal(t, name, sq.String(), "round trip %q -> %v", name, sq)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, bad := range []string{"", "i1", "a9", "e44"} {
		_, ok := Parse(bad)
		require.False(t, ok, "Parse(%q) unexpectedly succeeded", bad)
	}
}

package ttable

import (
	"testing"

	"github.com/kestrelchess/core/piece"
)

func TestStoreThenProbeHit(t *testing.T) {
	tb := New(1 << 20)
	key := uint64(0xABCDEF1234)
	m := piece.New(12, 28, piece.CategoryQuiet)
	tb.Store(key, BoundExact, 6, 123, 100, m)

	e, ok := tb.Probe(key)
	if !ok {
		t.Fatal("expected a hit after store")
	}
	if e.Bound != BoundExact || e.Depth != 6 || e.Score != 123 || e.Move != m {
		t.Fatalf("got %+v, want bound=Exact depth=6 score=123 move=%v", e, m)
	}
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	tb := New(1 << 16)
	if _, ok := tb.Probe(0x1111); ok {
		t.Fatal("empty table must miss")
	}
}

func TestClearEmptiesTable(t *testing.T) {
	tb := New(1 << 16)
	key := uint64(42)
	tb.Store(key, BoundExact, 4, 1, 1, piece.New(0, 1, piece.CategoryQuiet))
	tb.Clear()
	if _, ok := tb.Probe(key); ok {
		t.Fatal("clear must remove all entries")
	}
}

func TestDeeperEntryReplacesShallower(t *testing.T) {
	tb := New(16 * clusterSize) // exactly one cluster
	m1 := piece.New(1, 2, piece.CategoryQuiet)
	m2 := piece.New(3, 4, piece.CategoryQuiet)

	// Fill the cluster with shallow entries on distinct key fragments.
	tb.Store(0, BoundExact, 1, 0, 0, m1)
	tb.Store(1, BoundExact, 1, 0, 0, m1)
	tb.Store(2, BoundExact, 1, 0, 0, m1)
	tb.Store(3, BoundExact, 1, 0, 0, m1)

	// A deep entry on a new key should evict one of the shallow ones.
	tb.Store(4, BoundExact, 10, 0, 50, m2)
	if e, ok := tb.Probe(4); !ok || e.Depth != 10 {
		t.Fatal("deep entry must be stored even when the cluster is full")
	}
}

func TestNewGenerationAdvancesCounter(t *testing.T) {
	tb := New(1 << 16)
	before := tb.generation.Load()
	tb.NewGeneration()
	if tb.generation.Load() != before+1 {
		t.Fatal("NewGeneration must increment the generation counter")
	}
}

package timeman

import (
	"testing"
	"time"
)

func TestComputeIdealNeverExceedsMax(t *testing.T) {
	c := Clock{Time: 120 * time.Second, Inc: 6 * time.Second, MovesToGo: 20}
	budget := Compute(c, 0)
	if budget.Ideal > budget.Max {
		t.Fatalf("ideal time %v exceeds max time %v", budget.Ideal, budget.Max)
	}
	if budget.Ideal <= 0 || budget.Max <= 0 {
		t.Fatalf("expected positive budgets, got ideal=%v max=%v", budget.Ideal, budget.Max)
	}
}

func TestComputeRespectsMinimumThinkingTime(t *testing.T) {
	c := Clock{Time: 5 * time.Millisecond}
	budget := Compute(c, 40)
	if budget.Ideal < minThinkingTime {
		t.Fatalf("ideal time %v below the minimum thinking time %v", budget.Ideal, minThinkingTime)
	}
}

func TestComputeScalesWithRemainingTime(t *testing.T) {
	short := Compute(Clock{Time: 10 * time.Second, MovesToGo: 30}, 20)
	long := Compute(Clock{Time: 300 * time.Second, MovesToGo: 30}, 20)
	if long.Ideal <= short.Ideal {
		t.Fatalf("expected more remaining time to produce a larger ideal budget: short=%v long=%v", short.Ideal, long.Ideal)
	}
}

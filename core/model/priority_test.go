package model

import (
	"math"
	"testing"
)

func TestScoreWeights(t *testing.T) {
	got := Score(2, 1, 1, 3, 20000)
	want := 5.0*2 + 4 + 3 + 2*3 + 0.5*20
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %.2f got %.2f", want, got)
	}
	if Score(0, 0, 0, 0, 0) != 0 {
		t.Fatalf("empty area must score zero")
	}
}

func TestPriorityBands(t *testing.T) {
	cases := []struct {
		score float64
		level int
	}{
		{25, PriorityCritical},
		{20, PriorityCritical},
		{19.99, PriorityHigh},
		{10, PriorityHigh},
		{9.99, PriorityMedium},
		{5, PriorityMedium},
		{4.99, PriorityLow},
		{0, PriorityLow},
	}
	for _, c := range cases {
		if got := PriorityForScore(c.score); got != c.level {
			t.Fatalf("score %.2f: expected P%d got P%d", c.score, c.level, got)
		}
	}
}

func TestPriorityMonotonic(t *testing.T) {
	prev := PriorityLow
	for s := 0.0; s <= 30; s += 0.25 {
		lvl := PriorityForScore(s)
		if lvl > prev {
			t.Fatalf("priority level rose from P%d to P%d at score %.2f", prev, lvl, s)
		}
		prev = lvl
	}
}

func TestMaxCutHours(t *testing.T) {
	if MaxCutHours(PriorityCritical) != 0 {
		t.Fatalf("critical areas must have zero cut budget")
	}
	if MaxCutHours(PriorityHigh) != 3 || MaxCutHours(PriorityMedium) != 6 || MaxCutHours(PriorityLow) != 12 {
		t.Fatalf("unexpected cut-hour budgets")
	}
}

func TestSheddable(t *testing.T) {
	if (Area{PriorityLevel: PriorityCritical}).Sheddable() {
		t.Fatalf("critical area must not be sheddable")
	}
	if !(Area{PriorityLevel: PriorityLow}).Sheddable() {
		t.Fatalf("low priority area must be sheddable")
	}
}

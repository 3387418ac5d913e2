package core

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewStats(start)

	s.Update(1, 100, start.Add(500*time.Millisecond))
	if s.AveragePopulation != 100 {
		t.Fatalf("first average = %f, want 100", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 0 {
		t.Fatalf("rate before second sample = %f", s.GenerationsPerSecond)
	}

	s.Update(2, 200, start.Add(time.Second))
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("average = %f, want 110", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-2) > 1e-9 {
		t.Fatalf("rate = %f, want 2", s.GenerationsPerSecond)
	}
	if s.Generation != 2 || s.Population != 200 {
		t.Fatalf("unexpected snapshot %+v", s)
	}
}

func TestStatsRestart(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewStats(start)
	s.Update(5, 40, start.Add(time.Second))
	s.Restart(70, start.Add(2*time.Second))
	if s.Generation != 0 || s.Population != 70 || s.AveragePopulation != 70 {
		t.Fatalf("restart left %+v", s)
	}
}

package scrape

import (
	"testing"
	"time"
)

func TestRunStats_Snapshot(t *testing.T) {
	s := NewRunStats(time.Hour)
	for _, ms := range []int64{100, 200, 300, 400} {
		s.Record(time.Duration(ms) * time.Millisecond)
	}

	snap := s.Snapshot()
	if snap.Count != 4 {
		t.Fatalf("expected 4 samples, got %d", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 400 {
		t.Errorf("expected min 100 max 400, got %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 250 {
		t.Errorf("expected avg 250, got %v", snap.AvgMs)
	}
	if snap.P50Ms != 250 {
		t.Errorf("expected p50 250, got %v", snap.P50Ms)
	}
}

func TestRunStats_EmptySnapshot(t *testing.T) {
	s := NewRunStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.MinMs != 0 || snap.P95Ms != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestRunStats_NegativeDurationClamped(t *testing.T) {
	s := NewRunStats(time.Hour)
	s.Record(-5 * time.Millisecond)
	snap := s.Snapshot()
	if snap.MinMs != 0 {
		t.Errorf("expected clamped 0, got %d", snap.MinMs)
	}
}

func TestPercentile_Interpolation(t *testing.T) {
	values := []int64{10, 20, 30, 40}
	if got := percentile(values, 50); got != 25 {
		t.Errorf("expected p50=25, got %v", got)
	}
	if got := percentile(values, 0); got != 10 {
		t.Errorf("expected p0=10, got %v", got)
	}
	if got := percentile(values, 100); got != 40 {
		t.Errorf("expected p100=40, got %v", got)
	}
}

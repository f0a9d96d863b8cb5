package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	got := Summarize(values)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mean", got.Mean, 5.5},
		{"std", got.Std, math.Sqrt(55.0 / 6.0)},
		{"p10", got.P10, 1},
		{"p50", got.P50, 5},
		{"p90", got.P90, 9},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	// Input order is preserved
	if values[0] != 10 {
		t.Errorf("Summarize modified its input: %v", values)
	}
}

func TestSummarizeSmall(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", got)
	}

	got := Summarize([]float64{3})
	if got.Mean != 3 || got.Std != 0 || got.P10 != 3 || got.P90 != 3 {
		t.Errorf("Summarize([3]) = %+v", got)
	}
}

func TestWindowStatsLogValue(t *testing.T) {
	s := WindowStats{WindowEndTick: 600, Behavior: "love", Vehicles: 5}
	attrs := s.LogValue().Group()

	found := map[string]bool{}
	for _, a := range attrs {
		found[a.Key] = true
	}
	for _, key := range []string{"window_end", "behavior", "vehicles", "speed_mean", "light_dist_p50"} {
		if !found[key] {
			t.Errorf("LogValue missing %q", key)
		}
	}
}

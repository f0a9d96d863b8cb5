package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64  `csv:"-"`
	WindowEndTick   int64  `csv:"window_end"`
	Behavior        string `csv:"behavior"`

	// Counts at window end
	Vehicles int `csv:"vehicles"`
	Sources  int `csv:"sources"`
	Samples  int `csv:"samples"` // vehicle-ticks sampled

	// Forward speed distribution
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Turning rate magnitude
	TurnMean float64 `csv:"turn_mean"`
	TurnStd  float64 `csv:"turn_std"`

	// Mean of the two capped sensor inputs
	StimulusMean float64 `csv:"stimulus_mean"`
	StimulusStd  float64 `csv:"stimulus_std"`

	// Distance to the nearest light
	LightDistMean float64 `csv:"light_dist_mean"`
	LightDistStd  float64 `csv:"light_dist_std"`
	LightDistP10  float64 `csv:"light_dist_p10"`
	LightDistP50  float64 `csv:"light_dist_p50"`
	LightDistP90  float64 `csv:"light_dist_p90"`

	StoppedFrac float64 `csv:"stopped_frac"`

	// Events during window
	SourcesAdded    int `csv:"sources_added"`
	SourcesEvicted  int `csv:"sources_evicted"`
	BehaviorChanges int `csv:"behavior_changes"`
	Resets          int `csv:"resets"`
}

// Summary is the distribution summary used for each sampled quantity.
type Summary struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Summarize computes mean, standard deviation, and empirical quantiles.
// Returns the zero Summary for an empty slice. Values are not modified.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if n < 2 || math.IsNaN(std) {
		std = 0
	}

	return Summary{
		Mean: mean,
		Std:  std,
		P10:  stat.Quantile(0.10, stat.LinInterp, sorted, nil),
		P50:  stat.Quantile(0.50, stat.LinInterp, sorted, nil),
		P90:  stat.Quantile(0.90, stat.LinInterp, sorted, nil),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.String("behavior", s.Behavior),
		slog.Int("vehicles", s.Vehicles),
		slog.Int("sources", s.Sources),
		slog.Int("samples", s.Samples),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("turn_mean", s.TurnMean),
		slog.Float64("turn_std", s.TurnStd),
		slog.Float64("stimulus_mean", s.StimulusMean),
		slog.Float64("stimulus_std", s.StimulusStd),
		slog.Float64("light_dist_mean", s.LightDistMean),
		slog.Float64("light_dist_std", s.LightDistStd),
		slog.Float64("light_dist_p10", s.LightDistP10),
		slog.Float64("light_dist_p50", s.LightDistP50),
		slog.Float64("light_dist_p90", s.LightDistP90),
		slog.Float64("stopped_frac", s.StoppedFrac),
		slog.Int("sources_added", s.SourcesAdded),
		slog.Int("sources_evicted", s.SourcesEvicted),
		slog.Int("behavior_changes", s.BehaviorChanges),
		slog.Int("resets", s.Resets),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

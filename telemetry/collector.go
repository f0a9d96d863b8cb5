package telemetry

import (
	"math"

	"github.com/pthm-cable/braitenberg/components"
	"github.com/pthm-cable/braitenberg/systems"
)

// stoppedSpeed is the forward speed below which a vehicle counts as stopped.
const stoppedSpeed = 1e-3

// Collector accumulates per-vehicle samples and events within tick windows
// and produces WindowStats.
type Collector struct {
	windowTicks     int64
	windowStartTick int64

	// Samples for current window
	speeds    []float64
	turns     []float64
	stimuli   []float64
	lightDist []float64
	stopped   int

	// Event counters for current window
	sourcesAdded    int
	sourcesEvicted  int
	behaviorChanges int
	resets          int
}

// NewCollector creates a new stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int64(windowTicks)}
}

// Sample records one tick's worth of vehicle state.
func (c *Collector) Sample(vehicles []systems.VehicleState, lights []systems.LightSample, p systems.Params) {
	for _, v := range vehicles {
		speed := v.Drive.Forward()
		c.speeds = append(c.speeds, speed)
		c.turns = append(c.turns, math.Abs(systems.AngularVelocity(v.Drive, p)))
		c.stimuli = append(c.stimuli, (v.Stimulus.Left+v.Stimulus.Right)/2)
		if d := systems.NearestLight(v.Position, lights); !math.IsInf(d, 1) {
			c.lightDist = append(c.lightDist, d)
		}
		if speed < stoppedSpeed {
			c.stopped++
		}
	}
}

// RecordSourceAdded records a light placement.
func (c *Collector) RecordSourceAdded() {
	c.sourcesAdded++
}

// RecordSourceEvicted records a light removed to make room.
func (c *Collector) RecordSourceEvicted() {
	c.sourcesEvicted++
}

// RecordBehaviorChange records a population switch.
func (c *Collector) RecordBehaviorChange() {
	c.behaviorChanges++
}

// RecordReset records a world reset.
func (c *Collector) RecordReset() {
	c.resets++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets the collector for the next window.
func (c *Collector) Flush(currentTick int64, behavior components.Behavior, vehicles, sources int) WindowStats {
	speed := Summarize(c.speeds)
	turn := Summarize(c.turns)
	stim := Summarize(c.stimuli)
	dist := Summarize(c.lightDist)

	var stoppedFrac float64
	if n := len(c.speeds); n > 0 {
		stoppedFrac = float64(c.stopped) / float64(n)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		Behavior:        behavior.String(),

		Vehicles: vehicles,
		Sources:  sources,
		Samples:  len(c.speeds),

		SpeedMean: speed.Mean,
		SpeedStd:  speed.Std,
		SpeedP10:  speed.P10,
		SpeedP50:  speed.P50,
		SpeedP90:  speed.P90,

		TurnMean: turn.Mean,
		TurnStd:  turn.Std,

		StimulusMean: stim.Mean,
		StimulusStd:  stim.Std,

		LightDistMean: dist.Mean,
		LightDistStd:  dist.Std,
		LightDistP10:  dist.P10,
		LightDistP50:  dist.P50,
		LightDistP90:  dist.P90,

		StoppedFrac: stoppedFrac,

		SourcesAdded:    c.sourcesAdded,
		SourcesEvicted:  c.sourcesEvicted,
		BehaviorChanges: c.behaviorChanges,
		Resets:          c.resets,
	}

	// Reset for next window, keeping buffer capacity
	c.windowStartTick = currentTick
	c.speeds = c.speeds[:0]
	c.turns = c.turns[:0]
	c.stimuli = c.stimuli[:0]
	c.lightDist = c.lightDist[:0]
	c.stopped = 0
	c.sourcesAdded = 0
	c.sourcesEvicted = 0
	c.behaviorChanges = 0
	c.resets = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int64 {
	return c.windowTicks
}

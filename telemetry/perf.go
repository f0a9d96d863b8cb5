package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase identifies a timed section of a simulation step.
type Phase uint8

const (
	PhaseWorld     Phase = iota // sensing, steering, integration
	PhaseTelemetry              // sampling and window flushes
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseWorld:
		return "world"
	case PhaseTelemetry:
		return "telemetry"
	}
	return "unknown"
}

type phaseTimes [phaseCount]time.Duration

// PerfCollector keeps the last N tick timings in a ring buffer.
// Not safe for concurrent use.
type PerfCollector struct {
	now func() time.Time

	ticks  []time.Duration
	phases []phaseTimes
	next   int
	filled int

	cur        phaseTimes
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector returns a collector averaging over window ticks.
// A window below 1 falls back to 60.
func NewPerfCollector(window int) *PerfCollector {
	return newPerfCollector(window, time.Now)
}

func newPerfCollector(window int, now func() time.Time) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		now:    now,
		ticks:  make([]time.Duration, window),
		phases: make([]phaseTimes, window),
	}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.cur = phaseTimes{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and opens ph.
func (p *PerfCollector) StartPhase(ph Phase) {
	t := p.now()
	p.closePhase(t)
	p.phase = ph
	p.phaseStart = t
	p.inPhase = true
}

func (p *PerfCollector) closePhase(t time.Time) {
	if p.inPhase {
		p.cur[p.phase] += t.Sub(p.phaseStart)
	}
}

// EndTick records the tick into the ring.
func (p *PerfCollector) EndTick() {
	t := p.now()
	p.closePhase(t)
	p.inPhase = false

	p.ticks[p.next] = t.Sub(p.tickStart)
	p.phases[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ticks)
	if p.filled < len(p.ticks) {
		p.filled++
	}
}

// RecordFrame marks a rendered frame. FPS comes from the gap between
// the last two calls.
func (p *PerfCollector) RecordFrame() {
	t := p.now()
	if !p.lastFrame.IsZero() {
		p.frame = t.Sub(p.lastFrame)
	}
	p.lastFrame = t
}

// PerfStats summarises the ring.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	P95TickDuration time.Duration
	TicksPerSecond  float64

	// Share of the average tick spent in each phase, in percent
	PhasePct [phaseCount]float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats summarises the ticks currently held in the ring.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{FrameDuration: p.frame}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	us := make([]float64, p.filled)
	var total time.Duration
	var perPhase phaseTimes
	for i := range p.filled {
		d := p.ticks[i]
		us[i] = float64(d.Microseconds())
		total += d
		for ph, pd := range p.phases[i] {
			perPhase[ph] += pd
		}
	}
	slices.Sort(us)

	s.AvgTickDuration = total / time.Duration(p.filled)
	s.MinTickDuration = time.Duration(us[0]) * time.Microsecond
	s.MaxTickDuration = time.Duration(us[len(us)-1]) * time.Microsecond
	s.P95TickDuration = time.Duration(stat.Quantile(0.95, stat.Empirical, us, nil)) * time.Microsecond
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	if total > 0 {
		for ph := range perPhase {
			s.PhasePct[ph] = float64(perPhase[ph]) / float64(total) * 100
		}
	}
	return s
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("p95_tick_us", s.P95TickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for ph := range phaseCount {
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", float64(int(s.PhasePct[ph]*10))/10))
	}
	return slog.GroupValue(attrs...)
}

// LogStats writes the summary at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "perf", s)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd    int64   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	P95TickUS    int64   `csv:"p95_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	WorldPct     float64 `csv:"world_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens s for the row ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		P95TickUS:    s.P95TickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		WorldPct:     s.PhasePct[PhaseWorld],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}

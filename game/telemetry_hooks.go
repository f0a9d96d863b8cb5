package game

import (
	"log/slog"

	"github.com/pthm-cable/braitenberg/telemetry"
)

// flushTelemetry closes the stats window when it is due.
func (g *Game) flushTelemetry() {
	tick := g.world.TickCount()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick, g.world.Behavior(), len(g.world.Vehicles()), len(g.world.Sources()))
	perfStats := g.perfCollector.Stats()

	g.lastStats = stats
	g.haveStats = true

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// LastStats returns the most recent flushed window, if any.
func (g *Game) LastStats() (telemetry.WindowStats, bool) {
	return g.lastStats, g.haveStats
}

package game

import "log/slog"

// logStartup records the parameters the run was started with.
func (g *Game) logStartup(opts Options) {
	p := g.world.Params()
	slog.Info("simulation started",
		"seed", opts.Seed,
		"headless", opts.Headless,
		"world_w", p.Bounds.Width,
		"world_h", p.Bounds.Height,
		"vehicles", len(g.world.Vehicles()),
		"behavior", g.world.Behavior().String(),
		"max_sources", g.world.MaxSources(),
		"steps_per_update", g.stepsPerUpdate,
		"output_dir", g.outputManager.Dir(),
	)
}

// logWorldState logs a one-line summary of the world.
func (g *Game) logWorldState() {
	slog.Info("world",
		"tick", g.world.TickCount(),
		"behavior", g.world.Behavior().String(),
		"vehicles", len(g.world.Vehicles()),
		"sources", len(g.world.Sources()),
		"paused", g.paused,
		"steps_per_update", g.stepsPerUpdate,
	)
}

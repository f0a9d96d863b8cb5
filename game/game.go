// Package game runs the simulation in a raylib window or headless.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/braitenberg/camera"
	"github.com/pthm-cable/braitenberg/config"
	"github.com/pthm-cable/braitenberg/telemetry"
	"github.com/pthm-cable/braitenberg/ui"
	"github.com/pthm-cable/braitenberg/world"
)

// Steps-per-update limits for the , and . keys.
const (
	minStepsPerUpdate = 1
	maxStepsPerUpdate = 10
)

// Options configures a Game.
type Options struct {
	Seed           int64
	LogStats       bool   // log window stats via slog
	OutputDir      string // CSV + config output; empty disables
	Headless       bool
	StepsPerUpdate int
}

// Game owns the world plus everything needed to show and record it.
type Game struct {
	cfg   *config.Config
	world *world.World

	// Telemetry
	events        *telemetry.EventLog
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	lastStats     telemetry.WindowStats
	haveStats     bool

	// Rendering (nil/zero when headless)
	headless     bool
	camera       *camera.Camera
	trail        rl.RenderTexture2D
	trailReady   bool
	hud          *ui.HUD
	panel        *ui.BehaviorPanel
	statsPanel   *ui.StatsPanel
	showStats    bool
	screenWidth  int32
	screenHeight int32

	// State
	paused         bool
	stepsPerUpdate int
}

// NewGameWithOptions creates a populated world and, unless headless, the
// GPU resources for drawing it. The raylib window must already be open
// in graphical mode.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	steps := opts.StepsPerUpdate
	if steps < minStepsPerUpdate {
		steps = minStepsPerUpdate
	}

	g := &Game{
		cfg:            cfg,
		world:          world.New(cfg, rand.New(rand.NewSource(opts.Seed))),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		screenWidth:    int32(cfg.Screen.Width),
		screenHeight:   int32(cfg.Screen.Height),
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("setting up output: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g.events = telemetry.NewEventLog(slog.Default(), g.collector, g.world.TickCount)
	g.world.Init()
	g.world.AddObserver(g.events)

	if !g.headless {
		g.camera = camera.New(float32(g.screenWidth), float32(g.screenHeight),
			float32(g.world.Width()), float32(g.world.Height()))
		g.trail = rl.LoadRenderTexture(g.screenWidth, g.screenHeight)
		g.hud = ui.NewHUD()
		g.panel = ui.NewBehaviorPanel(0, 0)
		g.statsPanel = ui.NewStatsPanel(0, 0, 220)
		g.layout()
	}

	g.logStartup(opts)
	return g, nil
}

// Update handles input and advances the simulation for one frame.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless advances StepsPerUpdate ticks without touching raylib.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs one simulation tick and samples telemetry.
func (g *Game) step() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseWorld)
	g.world.Tick()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.Sample(g.world.Vehicles(), g.world.Lights(), g.world.Params())
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// World returns the simulation state.
func (g *Game) World() *world.World {
	return g.world
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.world.TickCount()
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	if !g.headless {
		rl.UnloadRenderTexture(g.trail)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// layout positions the panels for the current screen size.
func (g *Game) layout() {
	bounds := g.panel.Bounds()
	g.panel.SetPosition(10, g.screenHeight-int32(bounds.Height)-35)
	g.statsPanel.SetPosition(g.screenWidth-230, 10)
}

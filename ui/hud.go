package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/braitenberg/components"
	"github.com/pthm-cable/braitenberg/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Behavior   components.Behavior
	Vehicles   int
	Sources    int
	MaxSources int
	Tick       int64
	Speed      int
	FPS        int32
	TPS        float64
	Paused     bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	h.renderer.DrawColorSwatch(10, 36, BehaviorColor(data.Behavior))
	rl.DrawText(
		fmt.Sprintf("%s x%d | Lights: %d/%d", data.Behavior.Label(), data.Vehicles, data.Sources, data.MaxSources),
		26, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d | TPS: %.0f", data.Tick, data.Speed, data.FPS, data.TPS),
		10, 55, 16, rl.LightGray,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 75, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// StatsPanel renders the most recent telemetry window.
type StatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewStatsPanel creates a new stats panel.
func NewStatsPanel(x, y, width int32) *StatsPanel {
	return &StatsPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (s *StatsPanel) SetPosition(x, y int32) {
	s.x = x
	s.y = y
}

// Draw renders the stats panel. maxSpeed scales the speed bar.
func (s *StatsPanel) Draw(stats telemetry.WindowStats, maxSpeed float64) {
	r := s.renderer
	padding := r.Theme.Padding
	inner := s.width - padding*2

	r.DrawPanel(s.x, s.y, s.width, r.Theme.LineHeight*8+padding*2)

	y := s.y + padding
	y = r.DrawSectionHeader(s.x+padding, y, fmt.Sprintf("Window %d-%d", stats.WindowStartTick, stats.WindowEndTick))

	var speedFrac float64
	if maxSpeed > 0 {
		speedFrac = stats.SpeedMean / maxSpeed
	}
	y = r.DrawBar(s.x+padding, y, "Speed", speedFrac, inner)
	y = r.DrawBar(s.x+padding, y, "Stopped", stats.StoppedFrac, inner)
	y = r.DrawLabelValue(s.x+padding, y, "Turn |w|", fmt.Sprintf("%.4f", stats.TurnMean))
	y = r.DrawLabelValue(s.x+padding, y, "Stimulus", fmt.Sprintf("%.2f", stats.StimulusMean))
	y = r.DrawLabelValue(s.x+padding, y, "Light dist", fmt.Sprintf("%.0f (p10 %.0f)", stats.LightDistMean, stats.LightDistP10))
	r.DrawLabelValue(s.x+padding, y, "Events", fmt.Sprintf("+%d -%d", stats.SourcesAdded, stats.SourcesEvicted))
}

// Package tui runs the simulation in a terminal using tcell.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/braitenberg/components"
	"github.com/pthm-cable/braitenberg/config"
	"github.com/pthm-cable/braitenberg/telemetry"
	"github.com/pthm-cable/braitenberg/world"
)

const statusLegend = "[click] light [f/a/l/e] behavior [r] reset [space] pause [q] quit"

// Glyphs
const (
	glyphVehicle = '●'
	glyphTrail   = '·'
	glyphSource  = '☀'
)

// behaviorRunes maps keys to behaviors: initials and selector order digits.
var behaviorRunes = map[rune]components.Behavior{
	'f': components.BehaviorFear,
	'a': components.BehaviorAggression,
	'l': components.BehaviorLove,
	'e': components.BehaviorExplorer,
	'1': components.BehaviorFear,
	'2': components.BehaviorAggression,
	'3': components.BehaviorLove,
	'4': components.BehaviorExplorer,
}

// App drives a world on a tcell screen. The world is only touched from the
// goroutine running Run.
type App struct {
	screen   tcell.Screen
	world    *world.World
	events   *telemetry.EventLog
	viewport Viewport
	trail    *Trail

	trailAlpha float64
	frame      time.Duration
	background tcell.Color
	paused     bool
	buttons    tcell.ButtonMask // mask of the previous mouse event
}

// New wraps an initialised screen and an initialised world.
func New(screen tcell.Screen, w *world.World, cfg *config.Config, logger *slog.Logger) *App {
	fps := cfg.TUI.FPS
	if fps < 1 {
		fps = 30
	}
	bg := cfg.Render.Background

	a := &App{
		screen:     screen,
		world:      w,
		trailAlpha: cfg.Render.TrailAlpha,
		frame:      time.Second / time.Duration(fps),
		background: tcell.NewRGBColor(int32(bg[0]), int32(bg[1]), int32(bg[2])),
		trail:      NewTrail(0, 0),
	}
	a.events = telemetry.NewEventLog(logger, nil, w.TickCount)
	w.AddObserver(a.events)

	screen.EnableMouse()
	a.resize()
	return a
}

// Run steps and draws the world until ctx is cancelled or the user quits.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if !a.paused {
				a.world.Tick()
			}
			a.draw()
		}
	}
}

// handleEvent applies one input event. It returns false to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		r := ev.Rune()
		if b, ok := behaviorRunes[r]; ok {
			a.world.SetBehavior(b)
			return true
		}
		switch r {
		case 'q':
			return false
		case 'r':
			a.world.Reset()
		case ' ':
			a.paused = !a.paused
		}

	case *tcell.EventMouse:
		// Held buttons repeat on motion; only the press adds a light
		pressed := ev.Buttons()&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
		a.buttons = ev.Buttons()
		if !pressed {
			return true
		}
		col, row := ev.Position()
		if col < a.viewport.Cols && row < a.viewport.Rows {
			x, y := a.viewport.ToWorld(col, row)
			a.world.AddSource(x, y)
		}

	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}

	return true
}

// resize fits the viewport to the screen, leaving one row for status.
func (a *App) resize() {
	cols, rows := a.screen.Size()
	rows--
	if rows < 0 {
		rows = 0
	}
	a.viewport = Viewport{Cols: cols, Rows: rows, WorldW: a.world.Width(), WorldH: a.world.Height()}
	a.trail.Resize(cols, rows)
}

func (a *App) draw() {
	base := tcell.StyleDefault.Background(a.background)
	a.screen.Fill(' ', base)

	a.trail.Decay(a.trailAlpha)
	for _, v := range a.world.Vehicles() {
		if col, row, ok := a.viewport.ToCell(v.Position.X, v.Position.Y); ok {
			a.trail.Mark(col, row, v.Vehicle.Behavior)
		}
	}

	cols, rows := a.trail.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			v, b := a.trail.At(col, row)
			if v == 0 {
				continue
			}
			glyph := glyphTrail
			if v == 1 {
				glyph = glyphVehicle
			}
			a.screen.SetContent(col, row, glyph, nil, base.Foreground(fade(b, v, a.background)))
		}
	}

	for _, s := range a.world.Sources() {
		if col, row, ok := a.viewport.ToCell(s.X, s.Y); ok {
			a.screen.SetContent(col, row, glyphSource, nil, base.Foreground(tcell.ColorYellow).Bold(true))
		}
	}

	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawStatus() {
	status := fmt.Sprintf(" %s x%d | lights %d/%d | tick %d",
		a.world.Behavior().Label(), len(a.world.Vehicles()),
		len(a.world.Sources()), a.world.MaxSources(), a.world.TickCount())
	if a.paused {
		status += " | PAUSED"
	}
	if last, ok := a.events.Last(); ok {
		status += " | " + last.Type.String()
	}
	status += " | " + statusLegend

	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	cols, _ := a.screen.Size()
	row := a.viewport.Rows
	col := 0
	for _, r := range status {
		if col >= cols {
			break
		}
		a.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// fade blends a behavior colour toward the background by intensity v.
func fade(b components.Behavior, v float64, bg tcell.Color) tcell.Color {
	r, g, bl := b.RGB()
	br, bgG, bb := bg.RGB()
	mix := func(c uint8, base int32) int32 {
		return int32(math.Round(float64(base) + (float64(c)-float64(base))*v))
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bgG), mix(bl, bb))
}

package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/braitenberg/systems"
	"github.com/pthm-cable/braitenberg/ui"
	"github.com/pthm-cable/braitenberg/world"
)

const controlsLegend = "[Click] light  [1-4] behavior  [R] reset  [Space] pause  [,/.] speed  [S] stats  [L] log"

var (
	letterboxColor = rl.Color{R: 0, G: 0, B: 0, A: 255}
	sensorColor    = rl.Color{R: 0x00, G: 0xff, B: 0x00, A: 255}
	wheelColor     = rl.Color{R: 0x88, G: 0x88, B: 0x88, A: 255}
	glowInner      = rl.Color{R: 0xff, G: 0xff, B: 0x66, A: 160}
	glowOuter      = rl.Color{R: 0xff, G: 0xff, B: 0x00, A: 0}
)

const (
	wheelLength = 10
	wheelWidth  = 4
	glowScale   = 3 // glow radius in source radii
)

// Draw renders the game.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	g.drawTrail()

	rl.BeginDrawing()
	rl.ClearBackground(letterboxColor)

	// Render textures are stored upside down
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(g.trail.Texture.Width), Height: -float32(g.trail.Texture.Height)}
	rl.DrawTextureRec(g.trail.Texture, src, rl.Vector2{}, rl.White)

	g.drawUI()

	rl.EndDrawing()
}

// drawTrail fades the persistent surface by one overlay and draws the
// current frame on top, leaving translucent motion trails.
func (g *Game) drawTrail() {
	rl.BeginTextureMode(g.trail)
	if !g.trailReady {
		rl.ClearBackground(letterboxColor)
		g.trailReady = true
	}

	// Only the world area fades; the letterbox stays flat
	x, y, w, h := g.camera.WorldRect()
	alpha := uint8(math.Round(g.cfg.Render.TrailAlpha * 255))
	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, g.background(alpha))

	rl.BeginScissorMode(int32(x), int32(y), int32(w), int32(h))
	for _, s := range g.world.Sources() {
		g.drawSource(s)
	}
	p := g.world.Params()
	for _, v := range g.world.Vehicles() {
		g.drawVehicle(v, p)
	}
	rl.EndScissorMode()

	rl.EndTextureMode()
}

func (g *Game) background(alpha uint8) rl.Color {
	bg := g.cfg.Render.Background
	return rl.Color{R: uint8(bg[0]), G: uint8(bg[1]), B: uint8(bg[2]), A: alpha}
}

// screenPositions returns where something at a world point appears,
// including wrapped copies near the edges when wraps is set.
func (g *Game) screenPositions(x, y, radius float64, wraps bool) []rl.Vector2 {
	var out []rl.Vector2
	for _, p := range g.camera.DrawPositions(float32(x), float32(y), float32(radius), wraps) {
		out = append(out, rl.Vector2{X: p.X, Y: p.Y})
	}
	return out
}

// drawSource renders a light as a yellow disc with a soft glow.
func (g *Game) drawSource(s world.Source) {
	r := float32(s.Radius) * g.camera.Scale
	for _, at := range g.screenPositions(s.X, s.Y, s.Radius*glowScale, false) {
		rl.DrawCircleGradient(int32(at.X), int32(at.Y), r*glowScale, glowInner, glowOuter)
		rl.DrawCircleV(at, r, rl.Yellow)
	}
}

// drawVehicle renders the body, both sensors, and both wheels.
func (g *Game) drawVehicle(v systems.VehicleState, p systems.Params) {
	scale := g.camera.Scale
	heading := v.Heading.Angle
	deg := float32(heading * 180 / math.Pi)

	length := float32(g.cfg.Render.VehicleLength) * scale
	width := float32(g.cfg.Render.VehicleWidth) * scale
	sr := float32(g.cfg.Render.SensorRadius) * scale
	color := ui.BehaviorColor(v.Vehicle.Behavior)

	// Sensor offsets from the centre, in screen units
	left, right := systems.SensorPositions(v.Position, heading, p)
	ls := rl.Vector2{X: float32(left.X-v.Position.X) * scale, Y: float32(left.Y-v.Position.Y) * scale}
	rs := rl.Vector2{X: float32(right.X-v.Position.X) * scale, Y: float32(right.Y-v.Position.Y) * scale}

	// Wheels sit at the middle of each long side
	side := rl.Vector2{X: float32(-math.Sin(heading)), Y: float32(math.Cos(heading))}
	wl := wheelLength * scale
	ww := wheelWidth * scale

	reach := math.Max(g.cfg.Render.VehicleLength, p.SensorOffset+g.cfg.Render.SensorRadius)
	for _, at := range g.screenPositions(v.Position.X, v.Position.Y, reach, true) {
		for _, sign := range []float32{-1, 1} {
			wc := rl.Vector2Add(at, rl.Vector2Scale(side, sign*width/2))
			rl.DrawRectanglePro(
				rl.Rectangle{X: wc.X, Y: wc.Y, Width: wl, Height: ww},
				rl.Vector2{X: wl / 2, Y: ww / 2},
				deg, wheelColor,
			)
		}

		rl.DrawRectanglePro(
			rl.Rectangle{X: at.X, Y: at.Y, Width: length, Height: width},
			rl.Vector2{X: length / 2, Y: width / 2},
			deg, color,
		)

		rl.DrawCircleV(rl.Vector2Add(at, ls), sr, sensorColor)
		rl.DrawCircleV(rl.Vector2Add(at, rs), sr, sensorColor)
	}
}

// drawUI renders the HUD, behavior panel, and optional stats panel.
func (g *Game) drawUI() {
	perf := g.perfCollector.Stats()
	g.hud.Draw(ui.HUDData{
		Title:      g.cfg.Screen.Title,
		Behavior:   g.world.Behavior(),
		Vehicles:   len(g.world.Vehicles()),
		Sources:    len(g.world.Sources()),
		MaxSources: g.world.MaxSources(),
		Tick:       g.world.TickCount(),
		Speed:      g.stepsPerUpdate,
		FPS:        rl.GetFPS(),
		TPS:        perf.TicksPerSecond,
		Paused:     g.paused,
	})
	g.hud.DrawControls(g.screenHeight, controlsLegend)

	switch action, chosen := g.panel.Draw(g.world.Behavior()); action {
	case ui.ActionSelect:
		g.world.SetBehavior(chosen)
	case ui.ActionReset:
		g.world.Reset()
	}

	if g.showStats {
		if stats, ok := g.LastStats(); ok {
			g.statsPanel.Draw(stats, g.world.Params().MaxSpeed)
		}
	}
}

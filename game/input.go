package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/braitenberg/components"
)

// behaviorKeys maps number keys to behaviors in selector order.
var behaviorKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour}

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > minStepsPerUpdate {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	for i, key := range behaviorKeys {
		if rl.IsKeyPressed(key) {
			g.world.SetBehavior(components.Behavior(i))
		}
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.world.Reset()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.showStats = !g.showStats
	}
	if rl.IsKeyPressed(rl.KeyL) {
		g.logWorldState()
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		if !g.panel.Contains(mouse) {
			if x, y, ok := g.screenToWorld(mouse); ok {
				g.world.AddSource(x, y)
			}
		}
	}
}

// handleResize checks for window resize and rebuilds the trail surface.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	rl.UnloadRenderTexture(g.trail)
	g.trail = rl.LoadRenderTexture(w, h)
	g.trailReady = false
	g.camera.Resize(float32(w), float32(h))
	g.layout()
}

func (g *Game) screenToWorld(p rl.Vector2) (x, y float64, ok bool) {
	wx, wy, ok := g.camera.ScreenToWorld(p.X, p.Y)
	return float64(wx), float64(wy), ok
}

func (g *Game) worldToScreen(x, y float64) rl.Vector2 {
	sx, sy := g.camera.WorldToScreen(float32(x), float32(y))
	return rl.Vector2{X: sx, Y: sy}
}

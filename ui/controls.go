package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/braitenberg/components"
)

// Action is what the user asked for through the behavior panel.
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionReset
)

const descriptionLines = 3

// BehaviorPanel renders one toggle per behavior plus a Reset button,
// with the selected behavior's description underneath.
type BehaviorPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewBehaviorPanel creates a panel with its top-left corner at (x, y).
func NewBehaviorPanel(x, y int32) *BehaviorPanel {
	return &BehaviorPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition moves the panel.
func (p *BehaviorPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Bounds returns the screen rectangle covered by the panel.
func (p *BehaviorPanel) Bounds() rl.Rectangle {
	return PanelBounds(p.x, p.y, p.renderer.Theme)
}

// Contains reports whether a screen point falls on the panel, so clicks
// there are not treated as light placements.
func (p *BehaviorPanel) Contains(pt rl.Vector2) bool {
	return rl.CheckCollisionPointRec(pt, p.Bounds())
}

// Draw renders the panel and returns the action triggered this frame.
// For ActionSelect the chosen behavior is returned as well.
func (p *BehaviorPanel) Draw(active components.Behavior) (Action, components.Behavior) {
	th := p.renderer.Theme
	b := p.Bounds()
	p.renderer.DrawPanel(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height))

	action := ActionNone
	chosen := active

	rects := ButtonRects(p.x, p.y, th)
	for i, beh := range components.Behaviors() {
		on := beh == active
		if gui.Toggle(rects[i], beh.Label(), on) && !on {
			action = ActionSelect
			chosen = beh
		}
		// Colour key under each toggle
		r := rects[i]
		rl.DrawRectangle(int32(r.X), int32(r.Y+r.Height)+2, int32(r.Width), 3, BehaviorColor(beh))
	}
	if gui.Button(rects[len(rects)-1], "Reset") {
		action = ActionReset
	}

	textY := p.y + th.Padding + th.ButtonHeight + 10
	p.renderer.DrawWrapped(p.x+th.Padding, textY, active.Description(), int32(b.Width)-2*th.Padding, th.LabelColor)

	return action, chosen
}

// ButtonRects lays out one rectangle per behavior followed by the Reset button.
func ButtonRects(x, y int32, th Theme) []rl.Rectangle {
	n := int32(components.BehaviorCount) + 1
	rects := make([]rl.Rectangle, n)
	for i := int32(0); i < n; i++ {
		rects[i] = rl.Rectangle{
			X:      float32(x + th.Padding + i*(th.ButtonWidth+th.Padding/2)),
			Y:      float32(y + th.Padding),
			Width:  float32(th.ButtonWidth),
			Height: float32(th.ButtonHeight),
		}
	}
	return rects
}

// PanelBounds returns the rectangle a behavior panel at (x, y) occupies.
func PanelBounds(x, y int32, th Theme) rl.Rectangle {
	n := int32(components.BehaviorCount) + 1
	width := 2*th.Padding + n*th.ButtonWidth + (n-1)*(th.Padding/2)
	height := 2*th.Padding + th.ButtonHeight + 10 + descriptionLines*th.LineHeight
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(height)}
}

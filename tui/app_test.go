package tui

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/braitenberg/components"
	"github.com/pthm-cable/braitenberg/config"
	"github.com/pthm-cable/braitenberg/world"
)

func init() {
	config.MustInit("")
}

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	w := world.New(config.Cfg(), rand.New(rand.NewSource(1)))
	w.Init()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return New(screen, w, config.Cfg(), logger), screen
}

func TestAppViewportLeavesStatusRow(t *testing.T) {
	a, _ := newTestApp(t)
	if a.viewport.Cols != 80 || a.viewport.Rows != 24 {
		t.Errorf("viewport = %dx%d, want 80x24", a.viewport.Cols, a.viewport.Rows)
	}
}

func TestAppKeys(t *testing.T) {
	a, _ := newTestApp(t)

	tests := []struct {
		r    rune
		want components.Behavior
	}{
		{'a', components.BehaviorAggression},
		{'l', components.BehaviorLove},
		{'e', components.BehaviorExplorer},
		{'1', components.BehaviorFear},
		{'3', components.BehaviorLove},
	}
	for _, tt := range tests {
		if !a.handleEvent(tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone)) {
			t.Fatalf("key %q quit the app", tt.r)
		}
		if a.world.Behavior() != tt.want {
			t.Errorf("after %q behavior = %v, want %v", tt.r, a.world.Behavior(), tt.want)
		}
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !a.paused {
		t.Error("space did not pause")
	}

	a.world.AddSource(1, 1)
	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if len(a.world.Sources()) != 1 || a.world.Behavior() != components.BehaviorFear {
		t.Errorf("after reset: %d sources, behavior %v", len(a.world.Sources()), a.world.Behavior())
	}

	if a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q did not quit")
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc did not quit")
	}
}

func TestAppMouseAddsSource(t *testing.T) {
	a, screen := newTestApp(t)

	a.handleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	sources := a.world.Sources()
	if len(sources) != 2 {
		t.Fatalf("got %d sources after click, want 2", len(sources))
	}
	x, y := a.viewport.ToWorld(10, 5)
	if last := sources[len(sources)-1]; last.X != x || last.Y != y {
		t.Errorf("source at (%v, %v), want (%v, %v)", last.X, last.Y, x, y)
	}

	// Clicks on the status row and button releases are ignored
	a.handleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(10, 24, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(10, 24, tcell.ButtonNone, tcell.ModNone))
	if len(a.world.Sources()) != 2 {
		t.Errorf("got %d sources, want 2", len(a.world.Sources()))
	}

	a.draw()
	if r, _, _, _ := screen.GetContent(10, 5); r != glyphSource {
		t.Errorf("cell (10, 5) = %q, want source glyph", r)
	}
}

func TestAppDragAddsOneSource(t *testing.T) {
	a, _ := newTestApp(t)
	before := len(a.world.Sources())

	a.handleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone))
	if got := len(a.world.Sources()); got != before+1 {
		t.Fatalf("got %d sources after press and drag, want %d", got, before+1)
	}

	// A second press after release adds another
	a.handleEvent(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(20, 8, tcell.Button1, tcell.ModNone))
	if got := len(a.world.Sources()); got != before+2 {
		t.Errorf("got %d sources after second click, want %d", got, before+2)
	}
}

func TestAppDrawsVehiclesAndStatus(t *testing.T) {
	a, screen := newTestApp(t)
	a.draw()

	for _, v := range a.world.Vehicles() {
		col, row, ok := a.viewport.ToCell(v.Position.X, v.Position.Y)
		if !ok {
			t.Fatalf("vehicle %d off screen", v.Vehicle.ID)
		}
		r, _, _, _ := screen.GetContent(col, row)
		if r != glyphVehicle && r != glyphSource {
			t.Errorf("cell (%d, %d) = %q, want vehicle glyph", col, row, r)
		}
	}

	var status []rune
	for col := 0; col < 6; col++ {
		r, _, _, _ := screen.GetContent(col, 24)
		status = append(status, r)
	}
	if string(status) != " Fear " {
		t.Errorf("status row starts %q, want \" Fear \"", string(status))
	}
}

func TestAppResize(t *testing.T) {
	a, screen := newTestApp(t)
	screen.SetSize(40, 10)
	a.handleEvent(tcell.NewEventResize(40, 10))

	if a.viewport.Cols != 40 || a.viewport.Rows != 9 {
		t.Errorf("viewport = %dx%d, want 40x9", a.viewport.Cols, a.viewport.Rows)
	}
	if cols, rows := a.trail.Size(); cols != 40 || rows != 9 {
		t.Errorf("trail = %dx%d, want 40x9", cols, rows)
	}
}

func TestFade(t *testing.T) {
	bg := tcell.NewRGBColor(34, 34, 34)

	full := fade(components.BehaviorFear, 1, bg)
	if r, g, b := full.RGB(); r != 0xff || g != 0x44 || b != 0x44 {
		t.Errorf("fade at 1 = (%d, %d, %d), want fear colour", r, g, b)
	}

	none := fade(components.BehaviorFear, 0, bg)
	if r, g, b := none.RGB(); r != 34 || g != 34 || b != 34 {
		t.Errorf("fade at 0 = (%d, %d, %d), want background", r, g, b)
	}
}

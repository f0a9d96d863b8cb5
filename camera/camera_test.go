package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNewFitsWorld(t *testing.T) {
	tests := []struct {
		name                    string
		vw, vh, ww, wh          float32
		scale, offsetX, offsetY float32
	}{
		{"same size", 800, 600, 800, 600, 1, 0, 0},
		{"double", 1600, 1200, 800, 600, 2, 0, 0},
		{"wide window", 1200, 600, 800, 600, 1, 200, 0},
		{"tall window", 800, 800, 800, 600, 1, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(tt.vw, tt.vh, tt.ww, tt.wh)
			if !near(cam.Scale, tt.scale) || !near(cam.OffsetX, tt.offsetX) || !near(cam.OffsetY, tt.offsetY) {
				t.Errorf("scale/offset = %v (%v, %v), want %v (%v, %v)",
					cam.Scale, cam.OffsetX, cam.OffsetY, tt.scale, tt.offsetX, tt.offsetY)
			}
		})
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 800, 600)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},
		{300, 100},
		{900, 700},
	}

	for _, tc := range testCases {
		wx, wy, ok := cam.ScreenToWorld(tc.sx, tc.sy)
		if !ok {
			t.Errorf("(%v, %v) should be inside the world", tc.sx, tc.sy)
			continue
		}
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestScreenToWorldLetterbox(t *testing.T) {
	cam := New(1200, 600, 800, 600)
	if _, _, ok := cam.ScreenToWorld(100, 300); ok {
		t.Error("point in left letterbox should be outside the world")
	}
	if _, _, ok := cam.ScreenToWorld(1100, 300); ok {
		t.Error("point in right letterbox should be outside the world")
	}
}

func TestGhostPositions(t *testing.T) {
	cam := New(800, 600, 800, 600)

	if g := cam.GhostPositions(400, 300, 10); len(g) != 0 {
		t.Errorf("centre ghosts = %v, want none", g)
	}

	g := cam.GhostPositions(795, 300, 10)
	if len(g) != 1 || !near(g[0].X, -5) || !near(g[0].Y, 300) {
		t.Errorf("right edge ghosts = %v, want [(-5, 300)]", g)
	}

	g = cam.GhostPositions(3, 2, 10)
	if len(g) != 3 {
		t.Fatalf("corner ghosts = %v, want 3", g)
	}
	if !near(g[2].X, 803) || !near(g[2].Y, 602) {
		t.Errorf("diagonal ghost = %v, want (803, 602)", g[2])
	}
}

func TestDrawPositions(t *testing.T) {
	cam := New(800, 600, 800, 600)

	// Lights do not wrap: only the primary position even at an edge
	got := cam.DrawPositions(3, 300, 30, false)
	if len(got) != 1 || !near(got[0].X, 3) || !near(got[0].Y, 300) {
		t.Errorf("non-wrapping positions = %v, want [(3, 300)]", got)
	}

	got = cam.DrawPositions(3, 300, 30, true)
	if len(got) != 2 || !near(got[0].X, 3) || !near(got[1].X, 803) {
		t.Errorf("wrapping positions = %v, want [(3, 300) (803, 300)]", got)
	}
}

func TestResize(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.Resize(400, 300)
	if !near(cam.Scale, 0.5) {
		t.Errorf("scale after resize = %v, want 0.5", cam.Scale)
	}
	x, y, w, h := cam.WorldRect()
	if !near(x, 0) || !near(y, 0) || !near(w, 400) || !near(h, 300) {
		t.Errorf("WorldRect = (%v, %v, %v, %v)", x, y, w, h)
	}
}

package tui

import (
	"math"
	"testing"

	"github.com/pthm-cable/braitenberg/components"
)

func TestViewportToCell(t *testing.T) {
	v := Viewport{Cols: 80, Rows: 24, WorldW: 800, WorldH: 600}

	tests := []struct {
		name     string
		x, y     float64
		col, row int
		ok       bool
	}{
		{"origin", 0, 0, 0, 0, true},
		{"centre", 400, 300, 40, 12, true},
		{"inside last cell", 799.9, 599.9, 79, 23, true},
		{"right edge", 800, 600, 79, 23, true},
		{"negative", -1, 10, -1, 0, false},
		{"beyond", 900, 10, 90, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := v.ToCell(tt.x, tt.y)
			if ok != tt.ok || (ok && (col != tt.col || row != tt.row)) {
				t.Errorf("ToCell(%v, %v) = (%d, %d, %v), want (%d, %d, %v)",
					tt.x, tt.y, col, row, ok, tt.col, tt.row, tt.ok)
			}
		})
	}
}

func TestViewportEmpty(t *testing.T) {
	v := Viewport{WorldW: 800, WorldH: 600}
	if _, _, ok := v.ToCell(10, 10); ok {
		t.Error("ToCell on a zero-size viewport should report !ok")
	}
}

func TestViewportRoundtrip(t *testing.T) {
	v := Viewport{Cols: 37, Rows: 19, WorldW: 800, WorldH: 600}
	for col := 0; col < v.Cols; col++ {
		for row := 0; row < v.Rows; row++ {
			x, y := v.ToWorld(col, row)
			gotCol, gotRow, ok := v.ToCell(x, y)
			if !ok || gotCol != col || gotRow != row {
				t.Fatalf("cell (%d, %d) -> (%v, %v) -> (%d, %d, %v)", col, row, x, y, gotCol, gotRow, ok)
			}
		}
	}
}

func TestTrailDecay(t *testing.T) {
	tr := NewTrail(4, 3)
	tr.Mark(1, 2, components.BehaviorLove)

	v, b := tr.At(1, 2)
	if v != 1 || b != components.BehaviorLove {
		t.Fatalf("At after Mark = (%v, %v), want (1, love)", v, b)
	}

	tr.Decay(0.3)
	if v, _ := tr.At(1, 2); math.Abs(v-0.7) > 1e-12 {
		t.Errorf("after one decay = %v, want 0.7", v)
	}

	// 0.7^9 < 0.05, so the cell is gone within ten frames
	for i := 0; i < 9; i++ {
		tr.Decay(0.3)
	}
	if v, _ := tr.At(1, 2); v != 0 {
		t.Errorf("after ten decays = %v, want 0", v)
	}
}

func TestTrailBounds(t *testing.T) {
	tr := NewTrail(2, 2)
	tr.Mark(-1, 0, components.BehaviorFear)
	tr.Mark(2, 0, components.BehaviorFear)
	tr.Mark(0, 5, components.BehaviorFear)

	for col := 0; col < 2; col++ {
		for row := 0; row < 2; row++ {
			if v, _ := tr.At(col, row); v != 0 {
				t.Errorf("cell (%d, %d) = %v after out-of-range marks", col, row, v)
			}
		}
	}
	if v, _ := tr.At(9, 9); v != 0 {
		t.Errorf("At out of range = %v, want 0", v)
	}

	tr.Mark(1, 1, components.BehaviorFear)
	tr.Resize(3, 3)
	if cols, rows := tr.Size(); cols != 3 || rows != 3 {
		t.Errorf("Size() = %dx%d, want 3x3", cols, rows)
	}
	if v, _ := tr.At(1, 1); v != 0 {
		t.Errorf("Resize kept intensity %v", v)
	}
}

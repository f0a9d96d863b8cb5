package tui

import (
	"math"

	"github.com/pthm-cable/braitenberg/components"
)

// Viewport maps world coordinates onto a grid of terminal cells.
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

// ToCell returns the cell containing world point (x, y).
// ok is false when the point falls outside the grid.
func (v Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0, false
	}
	col = int(math.Floor(x / v.WorldW * float64(v.Cols)))
	row = int(math.Floor(y / v.WorldH * float64(v.Rows)))
	// x == WorldW is a valid wrapped position; keep it on the last column
	if col == v.Cols && x <= v.WorldW {
		col = v.Cols - 1
	}
	if row == v.Rows && y <= v.WorldH {
		row = v.Rows - 1
	}
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
	return col, row, ok
}

// ToWorld returns the world point at the centre of a cell.
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) / float64(v.Cols) * v.WorldW
	y = (float64(row) + 0.5) / float64(v.Rows) * v.WorldH
	return x, y
}

// minIntensity is where a fading trail cell is dropped.
const minIntensity = 0.05

// Trail is the terminal version of the translucent overlay: each cell a
// vehicle passes over lights up and then fades a little every frame.
type Trail struct {
	cols, rows int
	intensity  []float64
	behavior   []components.Behavior
}

// NewTrail creates an empty trail for a cols x rows grid.
func NewTrail(cols, rows int) *Trail {
	t := &Trail{}
	t.Resize(cols, rows)
	return t
}

// Resize discards all trail state and adopts a new grid size.
func (t *Trail) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	t.cols, t.rows = cols, rows
	t.intensity = make([]float64, cols*rows)
	t.behavior = make([]components.Behavior, cols*rows)
}

// Mark lights a cell at full intensity in the colour of b.
func (t *Trail) Mark(col, row int, b components.Behavior) {
	if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
		return
	}
	i := row*t.cols + col
	t.intensity[i] = 1
	t.behavior[i] = b
}

// Decay fades every cell by alpha, the same blend the overlay applies.
func (t *Trail) Decay(alpha float64) {
	keep := 1 - alpha
	for i, v := range t.intensity {
		v *= keep
		if v < minIntensity {
			v = 0
		}
		t.intensity[i] = v
	}
}

// At returns the intensity and behavior of a cell.
func (t *Trail) At(col, row int) (float64, components.Behavior) {
	if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
		return 0, 0
	}
	i := row*t.cols + col
	return t.intensity[i], t.behavior[i]
}

// Size returns the grid dimensions.
func (t *Trail) Size() (cols, rows int) {
	return t.cols, t.rows
}

package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/braitenberg/components"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		size float64
		want float64
	}{
		{"inside", 400, 800, 400},
		{"zero edge", 0, 800, 0},
		{"far edge", 800, 800, 800},
		{"just below zero", -0.001, 800, 800},
		{"just past edge", 800.001, 800, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.v, tt.size); got != tt.want {
				t.Errorf("Wrap(%v, %v) = %v, want %v", tt.v, tt.size, got, tt.want)
			}
		})
	}
}

func TestAngularVelocity(t *testing.T) {
	tests := []struct {
		name  string
		drive components.Drive
		want  float64
	}{
		{"straight", components.Drive{Left: 2, Right: 2}, 0},
		{"left faster", components.Drive{Left: 4, Right: 1}, 3.0 / 30},
		{"right faster", components.Drive{Left: 1, Right: 4}, -3.0 / 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngularVelocity(tt.drive, testParams); !approx(got, tt.want) {
				t.Errorf("AngularVelocity(%+v) = %v, want %v", tt.drive, got, tt.want)
			}
		})
	}
}

func TestIntegrate(t *testing.T) {
	pos := components.Position{X: 100, Y: 100}
	heading := components.Heading{Angle: math.Pi / 2}

	Integrate(&pos, &heading, components.Drive{Left: 3, Right: 1}, testParams)

	// Forward speed 2 along the starting heading (+y)
	if !approx(pos.X, 100) || !approx(pos.Y, 102) {
		t.Errorf("position = %+v, want {100 102}", pos)
	}
	if !approx(heading.Angle, math.Pi/2+2.0/30) {
		t.Errorf("heading = %v, want %v", heading.Angle, math.Pi/2+2.0/30)
	}
}

func TestWrapPositionKeepsHeading(t *testing.T) {
	pos := components.Position{X: 2, Y: 300}
	heading := components.Heading{Angle: math.Pi}
	drive := components.Drive{Left: 4, Right: 4}

	Integrate(&pos, &heading, drive, testParams)
	if pos.X >= 0 {
		t.Fatalf("expected integration to leave the world, x = %v", pos.X)
	}
	WrapPosition(&pos, testParams.Bounds)

	if pos.X != testParams.Bounds.Width {
		t.Errorf("x = %v, want %v after wrapping", pos.X, testParams.Bounds.Width)
	}
	if heading.Angle != math.Pi {
		t.Errorf("heading changed to %v by wrap", heading.Angle)
	}
}

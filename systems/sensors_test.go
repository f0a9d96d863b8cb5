package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/braitenberg/components"
	"github.com/pthm-cable/braitenberg/config"
)

var testParams Params

func init() {
	config.MustInit("")
	testParams = ParamsFromConfig(config.Cfg())
}

const eps = 1e-9

func TestSensorPositions(t *testing.T) {
	pos := components.Position{X: 100, Y: 100}
	left, right := SensorPositions(pos, 0, testParams)

	d := 15 / math.Sqrt2
	wantLeft := r2.Vec{X: 100 + d, Y: 100 - d}
	wantRight := r2.Vec{X: 100 + d, Y: 100 + d}

	if r2.Norm(r2.Sub(left, wantLeft)) > eps {
		t.Errorf("left sensor = %v, want %v", left, wantLeft)
	}
	if r2.Norm(r2.Sub(right, wantRight)) > eps {
		t.Errorf("right sensor = %v, want %v", right, wantRight)
	}

	// Both sensors sit SensorOffset from the centre for any heading
	for _, h := range []float64{0, 1, math.Pi, -2.5, 7} {
		l, r := SensorPositions(pos, h, testParams)
		centre := r2.Vec{X: pos.X, Y: pos.Y}
		if math.Abs(r2.Norm(r2.Sub(l, centre))-15) > eps || math.Abs(r2.Norm(r2.Sub(r, centre))-15) > eps {
			t.Errorf("heading %v: sensors not at offset 15", h)
		}
	}
}

func TestStimulationInverseSquare(t *testing.T) {
	lights := []LightSample{{Pos: r2.Vec{X: 100, Y: 0}, Intensity: 10000}}

	got := Stimulation(r2.Vec{X: 0, Y: 0}, lights, 5)
	if math.Abs(got-1) > eps {
		t.Errorf("Stimulation at distance 100 = %v, want 1", got)
	}

	got = Stimulation(r2.Vec{X: 0, Y: 0}, append(lights, LightSample{Pos: r2.Vec{X: 0, Y: 200}, Intensity: 10000}), 5)
	if math.Abs(got-1.25) > eps {
		t.Errorf("Stimulation from two lights = %v, want 1.25", got)
	}
}

func TestStimulationCap(t *testing.T) {
	lights := []LightSample{{Pos: r2.Vec{X: 10, Y: 10}, Intensity: 10000}}

	tests := []struct {
		name string
		at   r2.Vec
	}{
		{"near", r2.Vec{X: 11, Y: 10}},
		{"very near", r2.Vec{X: 10.0001, Y: 10}},
		{"coincident", r2.Vec{X: 10, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stimulation(tt.at, lights, 5)
			if got != 5 {
				t.Errorf("Stimulation = %v, want cap 5", got)
			}
		})
	}
}

func TestStimulationNoLights(t *testing.T) {
	if got := Stimulation(r2.Vec{}, nil, 5); got != 0 {
		t.Errorf("Stimulation with no lights = %v, want 0", got)
	}
}

func TestComputeStimulusSymmetricAhead(t *testing.T) {
	// Light on the forward axis: both sensors are the same distance away.
	lights := []LightSample{{Pos: r2.Vec{X: 100, Y: 100}, Intensity: 10000}}
	stim := ComputeStimulus(components.Position{X: 90, Y: 100}, 0, lights, testParams)

	if math.Abs(stim.Left-stim.Right) > eps {
		t.Errorf("left %v != right %v for light dead ahead", stim.Left, stim.Right)
	}
	if stim.Left != 5 {
		t.Errorf("stimulus 10 units from a 10000 light = %v, want capped 5", stim.Left)
	}
}

func TestNearestLight(t *testing.T) {
	lights := []LightSample{
		{Pos: r2.Vec{X: 10, Y: 0}},
		{Pos: r2.Vec{X: 0, Y: 3}},
	}
	if got := NearestLight(components.Position{}, lights); got != 3 {
		t.Errorf("NearestLight = %v, want 3", got)
	}
	if got := NearestLight(components.Position{}, nil); !math.IsInf(got, 1) {
		t.Errorf("NearestLight with no lights = %v, want +Inf", got)
	}
}

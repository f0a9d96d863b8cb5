package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/braitenberg/components"
)

// LightSample is the part of a light source the sensors can see.
type LightSample struct {
	Pos       r2.Vec
	Intensity float64
}

// SensorPositions returns the world positions of the left and right sensors.
// With y growing downward, heading-SensorAngle is the vehicle's left.
func SensorPositions(pos components.Position, heading float64, p Params) (left, right r2.Vec) {
	centre := r2.Vec{X: pos.X, Y: pos.Y}
	la := heading - p.SensorAngle
	ra := heading + p.SensorAngle
	left = r2.Add(centre, r2.Scale(p.SensorOffset, r2.Vec{X: math.Cos(la), Y: math.Sin(la)}))
	right = r2.Add(centre, r2.Scale(p.SensorOffset, r2.Vec{X: math.Cos(ra), Y: math.Sin(ra)}))
	return left, right
}

// Stimulation sums inverse-square intensity from every light at a point,
// saturating at inputCap. A light exactly on the point saturates immediately.
func Stimulation(at r2.Vec, lights []LightSample, inputCap float64) float64 {
	var sum float64
	for _, l := range lights {
		d2 := r2.Norm2(r2.Sub(l.Pos, at))
		if d2 == 0 {
			return inputCap
		}
		sum += l.Intensity / d2
	}
	return math.Min(sum, inputCap)
}

// ComputeStimulus reads both sensors of a vehicle.
func ComputeStimulus(pos components.Position, heading float64, lights []LightSample, p Params) components.Stimulus {
	left, right := SensorPositions(pos, heading, p)
	return components.Stimulus{
		Left:  Stimulation(left, lights, p.InputCap),
		Right: Stimulation(right, lights, p.InputCap),
	}
}

// NearestLight returns the distance from pos to the closest light,
// or +Inf when there are none.
func NearestLight(pos components.Position, lights []LightSample) float64 {
	best := math.Inf(1)
	at := r2.Vec{X: pos.X, Y: pos.Y}
	for _, l := range lights {
		if d := r2.Norm(r2.Sub(l.Pos, at)); d < best {
			best = d
		}
	}
	return best
}

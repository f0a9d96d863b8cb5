// Package systems contains the per-tick update rules for the simulation.
package systems

import (
	"math"

	"github.com/pthm-cable/braitenberg/components"
)

// AngularVelocity returns the heading change per tick for a pair of wheel speeds.
// A faster left wheel swings the vehicle toward its right (positive angle on a
// y-down screen), so the left sensor side is the one it turns away from.
func AngularVelocity(d components.Drive, p Params) float64 {
	return (d.Left - d.Right) / p.Wheelbase()
}

// Integrate advances position and heading by one Euler step.
// Position moves along the heading held at the start of the tick.
func Integrate(pos *components.Position, heading *components.Heading, d components.Drive, p Params) {
	v := d.Forward()
	pos.X += math.Cos(heading.Angle) * v
	pos.Y += math.Sin(heading.Angle) * v
	heading.Angle += AngularVelocity(d, p)
}

// Wrap teleports a coordinate that left [0, size] to the opposite edge.
func Wrap(v, size float64) float64 {
	if v < 0 {
		return size
	}
	if v > size {
		return 0
	}
	return v
}

// WrapPosition applies Wrap to both axes. Heading is untouched.
func WrapPosition(pos *components.Position, b Bounds) {
	pos.X = Wrap(pos.X, b.Width)
	pos.Y = Wrap(pos.Y, b.Height)
}

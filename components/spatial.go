package components

// Position represents an entity's world position.
type Position struct {
	X, Y float64
}

// Heading represents a vehicle's direction of travel in radians.
// It is not normalized; trig functions wrap it implicitly.
type Heading struct {
	Angle float64
}

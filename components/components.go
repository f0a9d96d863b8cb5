// Package components defines ECS components for the simulation.
package components

// Behavior selects how a vehicle's two sensors are wired to its two wheels.
// The set is closed; values outside it have undefined behavior in the systems.
type Behavior uint8

const (
	BehaviorFear       Behavior = iota // Uncrossed, excitatory
	BehaviorAggression                 // Crossed, excitatory
	BehaviorLove                       // Uncrossed, inhibitory
	BehaviorExplorer                   // Crossed, inhibitory

	BehaviorCount = iota
)

// Vehicle holds identity and wiring for a Braitenberg vehicle.
// Behavior never changes after the entity is created.
type Vehicle struct {
	ID       uint32
	Behavior Behavior
}

// Drive holds the wheel speeds computed on the last tick, in [0, MaxSpeed].
type Drive struct {
	Left, Right float64
}

// Forward returns the forward speed of a differential drive.
func (d Drive) Forward() float64 {
	return (d.Left + d.Right) / 2
}

// Stimulus holds the capped sensor readings from the last tick.
type Stimulus struct {
	Left, Right float64
}

// Light is a stationary point light source.
type Light struct {
	Seq       uint64  // insertion order; lowest is evicted first
	Radius    float64 // display only
	Intensity float64
}

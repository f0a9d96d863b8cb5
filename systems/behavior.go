package systems

import "github.com/pthm-cable/braitenberg/components"

// Wiring describes how sensors connect to wheels.
// Crossed sends each sensor to the opposite wheel; Inhibitory subtracts
// the signal from MaxSpeed instead of driving the wheel with it.
type Wiring struct {
	Crossed    bool
	Inhibitory bool
}

// wirings is indexed by Behavior; its length keeps the table exhaustive.
var wirings = [components.BehaviorCount]Wiring{
	components.BehaviorFear:       {Crossed: false, Inhibitory: false},
	components.BehaviorAggression: {Crossed: true, Inhibitory: false},
	components.BehaviorLove:       {Crossed: false, Inhibitory: true},
	components.BehaviorExplorer:   {Crossed: true, Inhibitory: true},
}

// WiringFor returns the wiring of a behavior. Panics on an invalid behavior.
func WiringFor(b components.Behavior) Wiring {
	return wirings[b]
}

// MotorOutput maps sensor readings to unclamped wheel speeds.
func MotorOutput(b components.Behavior, stim components.Stimulus, p Params) (vl, vr float64) {
	w := wirings[b]

	toLeft, toRight := stim.Left, stim.Right
	if w.Crossed {
		toLeft, toRight = toRight, toLeft
	}

	vl = p.Gain * toLeft
	vr = p.Gain * toRight
	if w.Inhibitory {
		vl = p.MaxSpeed - vl
		vr = p.MaxSpeed - vr
	}
	return vl, vr
}

// WheelSpeeds maps sensor readings to wheel speeds clamped to [0, MaxSpeed].
// The clamp also applies to excitatory wirings: a capped input times Gain
// can exceed MaxSpeed.
func WheelSpeeds(b components.Behavior, stim components.Stimulus, p Params) components.Drive {
	vl, vr := MotorOutput(b, stim, p)
	return components.Drive{
		Left:  clampFloat(vl, 0, p.MaxSpeed),
		Right: clampFloat(vr, 0, p.MaxSpeed),
	}
}

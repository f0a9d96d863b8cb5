package systems

import "github.com/pthm-cable/braitenberg/config"

// Bounds represents the simulation bounds.
type Bounds struct {
	Width, Height float64
}

// Params holds the constants read on every vehicle update.
// They are tuned for visual effect and come from config.
type Params struct {
	SensorOffset float64 // sensor distance from centre; wheelbase is twice this
	SensorAngle  float64 // radians either side of heading
	InputCap     float64 // per-sensor stimulation ceiling
	Gain         float64 // wheel speed per unit stimulation
	MaxSpeed     float64 // wheel speed ceiling and inhibitory baseline
	Bounds       Bounds
}

// ParamsFromConfig builds Params from a loaded configuration.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		SensorOffset: cfg.Sensors.Offset,
		SensorAngle:  cfg.Derived.SensorAngle,
		InputCap:     cfg.Sensors.InputCap,
		Gain:         cfg.Motor.Gain,
		MaxSpeed:     cfg.Motor.MaxSpeed,
		Bounds: Bounds{
			Width:  cfg.Derived.WorldW,
			Height: cfg.Derived.WorldH,
		},
	}
}

// Wheelbase returns the distance between the two wheels.
func (p Params) Wheelbase() float64 {
	return 2 * p.SensorOffset
}

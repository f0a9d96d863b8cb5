// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/braitenberg/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen" toml:"screen"`
	World      WorldConfig      `yaml:"world" toml:"world"`
	Sensors    SensorsConfig    `yaml:"sensors" toml:"sensors"`
	Motor      MotorConfig      `yaml:"motor" toml:"motor"`
	Sources    SourcesConfig    `yaml:"sources" toml:"sources"`
	Population PopulationConfig `yaml:"population" toml:"population"`
	Render     RenderConfig     `yaml:"render" toml:"render"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" toml:"telemetry"`
	TUI        TUIConfig        `yaml:"tui" toml:"tui"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-" toml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	TargetFPS int    `yaml:"target_fps" toml:"target_fps"`
	Title     string `yaml:"title" toml:"title"`
}

// WorldConfig holds simulation world dimensions.
type WorldConfig struct {
	Width  int `yaml:"width" toml:"width"`   // 0 = use screen width
	Height int `yaml:"height" toml:"height"` // 0 = use screen height
}

// SensorsConfig describes where the two light sensors sit on a vehicle.
type SensorsConfig struct {
	Offset   float64 `yaml:"offset" toml:"offset"`       // distance from vehicle centre
	AngleDeg float64 `yaml:"angle_deg" toml:"angle_deg"` // either side of heading
	InputCap float64 `yaml:"input_cap" toml:"input_cap"` // stimulation ceiling
}

// MotorConfig holds the sensor-to-wheel coupling.
type MotorConfig struct {
	Gain     float64 `yaml:"gain" toml:"gain"`
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
}

// SourcesConfig holds light source parameters.
type SourcesConfig struct {
	Intensity float64 `yaml:"intensity" toml:"intensity"`
	Radius    float64 `yaml:"radius" toml:"radius"` // display only
	MaxCount  int     `yaml:"max_count" toml:"max_count"`
}

// PopulationConfig holds vehicle population parameters.
type PopulationConfig struct {
	Vehicles        int                 `yaml:"vehicles" toml:"vehicles"`
	DefaultBehavior components.Behavior `yaml:"default_behavior" toml:"default_behavior"`
}

// RenderConfig holds cosmetic drawing parameters shared by the front-ends.
type RenderConfig struct {
	TrailAlpha    float64 `yaml:"trail_alpha" toml:"trail_alpha"`
	VehicleLength float64 `yaml:"vehicle_length" toml:"vehicle_length"`
	VehicleWidth  float64 `yaml:"vehicle_width" toml:"vehicle_width"`
	SensorRadius  float64 `yaml:"sensor_radius" toml:"sensor_radius"`
	Background    []int   `yaml:"background" toml:"background"` // RGB
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window" toml:"stats_window"` // ticks per window
	PerfWindow  int `yaml:"perf_window" toml:"perf_window"`
}

// TUIConfig holds terminal front-end parameters.
type TUIConfig struct {
	FPS int `yaml:"fps" toml:"fps"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SensorAngle float64 // Sensors.AngleDeg in radians
	WorldW      float64 // Effective world width
	WorldH      float64 // Effective world height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML or TOML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.SensorAngle = c.Sensors.AngleDeg * math.Pi / 180

	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)
}

// Validate reports every configuration value that would break the simulation.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Derived.WorldW > 0 && c.Derived.WorldH > 0, "world size must be positive, got %vx%v", c.Derived.WorldW, c.Derived.WorldH)
	check(c.Sensors.Offset > 0, "sensors.offset must be positive, got %v", c.Sensors.Offset)
	check(c.Sensors.InputCap > 0, "sensors.input_cap must be positive, got %v", c.Sensors.InputCap)
	check(c.Motor.MaxSpeed > 0, "motor.max_speed must be positive, got %v", c.Motor.MaxSpeed)
	check(c.Sources.Intensity > 0, "sources.intensity must be positive, got %v", c.Sources.Intensity)
	check(c.Sources.MaxCount > 0, "sources.max_count must be positive, got %d", c.Sources.MaxCount)
	check(c.Population.Vehicles >= 0, "population.vehicles must not be negative, got %d", c.Population.Vehicles)
	check(c.Population.DefaultBehavior.Valid(), "population.default_behavior is not a known behavior")
	check(c.Render.TrailAlpha >= 0 && c.Render.TrailAlpha <= 1, "render.trail_alpha must be in [0,1], got %v", c.Render.TrailAlpha)
	check(len(c.Render.Background) == 3, "render.background must have 3 components, got %d", len(c.Render.Background))

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

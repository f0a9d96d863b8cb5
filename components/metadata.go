package components

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBehavior is returned when a behavior name is not recognised.
var ErrUnknownBehavior = errors.New("unknown behavior")

// String returns the canonical lower-case name for a Behavior.
func (b Behavior) String() string {
	names := BehaviorNames()
	if int(b) < len(names) {
		return names[b]
	}
	return fmt.Sprintf("Behavior(%d)", uint8(b))
}

// Valid reports whether b is one of the defined behaviors.
func (b Behavior) Valid() bool {
	return b < BehaviorCount
}

// Label returns the display name used on buttons.
func (b Behavior) Label() string {
	s := b.String()
	if !b.Valid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Description returns a one-sentence explanation of the wiring.
func (b Behavior) Description() string {
	switch b {
	case BehaviorFear:
		return `"Fear": Sensors connected directly to same-side wheels. Gets faster closer to light, turning away from it.`
	case BehaviorAggression:
		return `"Aggression": Crossed connections. Gets faster closer to light, turning towards it (Ramming speed!).`
	case BehaviorLove:
		return `"Love": Inhibitory connections. Slows down closer to light, turning towards it and stopping (Adoringly).`
	case BehaviorExplorer:
		return `"Explorer": Crossed inhibitory. Slows down closer to light, turning away from it (Prefers the dark).`
	}
	return ""
}

// RGB returns the display colour for vehicles of this behavior.
func (b Behavior) RGB() (r, g, bl uint8) {
	switch b {
	case BehaviorFear:
		return 0xff, 0x44, 0x44
	case BehaviorAggression:
		return 0xff, 0x88, 0x00
	case BehaviorLove:
		return 0xff, 0x69, 0xb4
	case BehaviorExplorer:
		return 0x44, 0x44, 0xff
	}
	return 0xcc, 0xcc, 0xcc
}

// BehaviorNames returns the names of all behaviors.
// The order matches the Behavior constants.
func BehaviorNames() []string {
	return []string{"fear", "aggression", "love", "explorer"}
}

// Behaviors returns every behavior in declaration order.
func Behaviors() []Behavior {
	out := make([]Behavior, BehaviorCount)
	for i := range out {
		out[i] = Behavior(i)
	}
	return out
}

// ParseBehavior converts a name (case-insensitive) into a Behavior.
func ParseBehavior(s string) (Behavior, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range BehaviorNames() {
		if n == name {
			return Behavior(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownBehavior, s)
}

// MarshalText implements encoding.TextMarshaler so config files can name behaviors.
func (b Behavior) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBehavior, uint8(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Behavior) UnmarshalText(text []byte) error {
	parsed, err := ParseBehavior(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

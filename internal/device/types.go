package device

import (
	"fmt"
	"strings"
)

// Kind classifies a device model.
type Kind string

// Kind constants.
const (
	KindLight   Kind = "light"
	KindShutter Kind = "shutter"
	KindSensor  Kind = "sensor"
)

// AllKinds returns all valid kind values.
func AllKinds() []Kind {
	return []Kind{KindLight, KindShutter, KindSensor}
}

// State holds a device state snapshot as a JSON-ready map.
//
// Examples:
//   - Light: {"on": true}
//   - Shutter: {"position": 50}
//   - Sensor: {"value": 21.5} or {"value": null}
type State map[string]any

// Device is the contract shared by all device models. The registry never
// depends on it — handles stay opaque there — but controllers and the
// store do.
type Device interface {
	// Name returns the friendly device name.
	Name() string

	// Kind returns the device classification.
	Kind() Kind

	// Location returns the device location, or "" when unset.
	Location() string

	// Status returns a short human-readable status token
	// (e.g. "ON", "CLOSED", "VALUE_21.5").
	Status() string

	// State returns a snapshot of the mutable state. The returned map is
	// a copy; mutating it does not affect the device.
	State() State

	// ApplyState applies a snapshot previously produced by State.
	// Returns ErrInvalidState when required keys are missing or mistyped.
	ApplyState(State) error
}

// Switchable is implemented by devices that can be switched on and off.
type Switchable interface {
	TurnOn()
	TurnOff()
	Toggle()
	IsOn() bool
}

// Positionable is implemented by devices with a 0-100 position.
type Positionable interface {
	Open()
	Close()
	SetPosition(position int) error
	Position() int
}

// Measurable is implemented by devices that report a numeric reading.
type Measurable interface {
	// Value returns the current reading; ok is false when no reading has
	// been recorded yet.
	Value() (value float64, ok bool)
	UpdateValue(value float64)
	ResetValue()
}

// maxNameLength bounds device names; matches the store's column intent.
const maxNameLength = 100

// ValidateName checks if a device name is valid.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	return nil
}

// ValidateKind checks if a kind is valid.
func ValidateKind(kind Kind) error {
	switch kind {
	case KindLight, KindShutter, KindSensor:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}

// stateNumber coerces a JSON-decoded numeric value. SQLite round-trips
// state through encoding/json, which decodes numbers as float64, while
// in-process snapshots may carry int.
func stateNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

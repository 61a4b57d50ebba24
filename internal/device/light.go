package device

import (
	"fmt"
	"strings"
	"sync"
)

// Light models an on/off lighting device (lamps, spots, LED strips).
// Implements Switchable.
type Light struct {
	mu       sync.Mutex
	name     string
	location string
	on       bool
}

// NewLight creates a Light in the off state.
func NewLight(name, location string) (*Light, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Light{
		name:     strings.TrimSpace(name),
		location: location,
	}, nil
}

// Name returns the friendly device name.
func (l *Light) Name() string { return l.name }

// Kind returns KindLight.
func (l *Light) Kind() Kind { return KindLight }

// Location returns the device location.
func (l *Light) Location() string { return l.location }

// TurnOn switches the light on.
func (l *Light) TurnOn() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
}

// TurnOff switches the light off.
func (l *Light) TurnOff() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
}

// Toggle inverts the current on/off state.
func (l *Light) Toggle() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = !l.on
}

// IsOn reports whether the light is on.
func (l *Light) IsOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

// Status returns "ON" or "OFF".
func (l *Light) Status() string {
	if l.IsOn() {
		return "ON"
	}
	return "OFF"
}

// State returns a snapshot of the light's state.
func (l *Light) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return State{"on": l.on}
}

// ApplyState applies a snapshot. The "on" key must be a boolean.
func (l *Light) ApplyState(s State) error {
	on, ok := s["on"].(bool)
	if !ok {
		return fmt.Errorf(`%w: light state requires boolean "on"`, ErrInvalidState)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = on
	return nil
}

func (l *Light) String() string {
	return fmt.Sprintf("Light(name=%s, status=%s)", l.name, l.Status())
}

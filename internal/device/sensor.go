package device

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Sensor models a read-only measuring device (temperature, humidity,
// presence counters). It starts with no reading. Implements Measurable.
type Sensor struct {
	mu       sync.Mutex
	name     string
	location string
	value    *float64
}

// NewSensor creates a Sensor with no recorded reading.
func NewSensor(name, location string) (*Sensor, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Sensor{
		name:     strings.TrimSpace(name),
		location: location,
	}, nil
}

// Name returns the friendly device name.
func (s *Sensor) Name() string { return s.name }

// Kind returns KindSensor.
func (s *Sensor) Kind() Kind { return KindSensor }

// Location returns the device location.
func (s *Sensor) Location() string { return s.location }

// UpdateValue records a new reading.
func (s *Sensor) UpdateValue(value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = &value
}

// ResetValue discards the current reading.
func (s *Sensor) ResetValue() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = nil
}

// Value returns the current reading; ok is false when none is recorded.
func (s *Sensor) Value() (value float64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value == nil {
		return 0, false
	}
	return *s.value, true
}

// HasValue reports whether a reading has been recorded.
func (s *Sensor) HasValue() bool {
	_, ok := s.Value()
	return ok
}

// Status returns "VALUE_<reading>" or "NO_VALUE".
func (s *Sensor) Status() string {
	v, ok := s.Value()
	if !ok {
		return "NO_VALUE"
	}
	return "VALUE_" + strconv.FormatFloat(v, 'g', -1, 64)
}

// State returns a snapshot of the sensor's state. The "value" key is nil
// when no reading is recorded.
func (s *Sensor) State() State {
	v, ok := s.Value()
	if !ok {
		return State{"value": nil}
	}
	return State{"value": v}
}

// ApplyState applies a snapshot. The "value" key must be present; nil
// resets the reading, a number records one.
func (s *Sensor) ApplyState(st State) error {
	raw, ok := st["value"]
	if !ok {
		return fmt.Errorf(`%w: sensor state requires "value"`, ErrInvalidState)
	}
	if raw == nil {
		s.ResetValue()
		return nil
	}
	n, ok := stateNumber(raw)
	if !ok {
		return fmt.Errorf(`%w: sensor "value" must be numeric or null`, ErrInvalidState)
	}
	s.UpdateValue(n)
	return nil
}

func (s *Sensor) String() string {
	return fmt.Sprintf("Sensor(name=%s, status=%s)", s.name, s.Status())
}

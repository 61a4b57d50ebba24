package device

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// Shutter position bounds, in percent open.
const (
	PositionClosed = 0
	PositionOpen   = 100
)

// Shutter models a roller shutter or blind with a 0-100 position
// (0 = fully closed, 100 = fully open). Implements Positionable.
type Shutter struct {
	mu       sync.Mutex
	name     string
	location string
	position int
}

// NewShutter creates a Shutter in the fully closed position.
func NewShutter(name, location string) (*Shutter, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Shutter{
		name:     strings.TrimSpace(name),
		location: location,
		position: PositionClosed,
	}, nil
}

// Name returns the friendly device name.
func (s *Shutter) Name() string { return s.name }

// Kind returns KindShutter.
func (s *Shutter) Kind() Kind { return KindShutter }

// Location returns the device location.
func (s *Shutter) Location() string { return s.location }

// Open moves the shutter to the fully open position.
func (s *Shutter) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = PositionOpen
}

// Close moves the shutter to the fully closed position.
func (s *Shutter) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = PositionClosed
}

// SetPosition moves the shutter to the given position.
// Returns ErrInvalidPosition when position is outside 0-100.
func (s *Shutter) SetPosition(position int) error {
	if position < PositionClosed || position > PositionOpen {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = position
	return nil
}

// Position returns the current position in percent open.
func (s *Shutter) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// IsOpen reports whether the shutter is open at all (position > 0).
func (s *Shutter) IsOpen() bool {
	return s.Position() > PositionClosed
}

// Status returns "CLOSED", "OPEN" or "PARTIAL".
func (s *Shutter) Status() string {
	switch s.Position() {
	case PositionClosed:
		return "CLOSED"
	case PositionOpen:
		return "OPEN"
	default:
		return "PARTIAL"
	}
}

// State returns a snapshot of the shutter's state.
func (s *Shutter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{"position": s.position}
}

// ApplyState applies a snapshot. The "position" key must be a whole
// number within 0-100; JSON round-trips deliver it as float64. A
// fractional position is rejected rather than rounded so a corrupt
// row surfaces instead of drifting.
func (s *Shutter) ApplyState(st State) error {
	raw, ok := st["position"]
	if !ok {
		return fmt.Errorf(`%w: shutter state requires "position"`, ErrInvalidState)
	}
	n, ok := stateNumber(raw)
	if !ok {
		return fmt.Errorf(`%w: shutter "position" must be numeric`, ErrInvalidState)
	}
	if n != math.Trunc(n) {
		return fmt.Errorf(`%w: shutter "position" must be a whole number, got %v`, ErrInvalidState, n)
	}
	return s.SetPosition(int(n))
}

func (s *Shutter) String() string {
	return fmt.Sprintf("Shutter(name=%s, position=%d, status=%s)", s.name, s.Position(), s.Status())
}

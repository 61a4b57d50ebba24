package device

import (
	"errors"
	"strings"
	"testing"
)

func TestNewLight(t *testing.T) {
	t.Run("starts off", func(t *testing.T) {
		l, err := NewLight("Living Room Lamp", "living-room")
		if err != nil {
			t.Fatalf("NewLight() error = %v", err)
		}
		if l.IsOn() {
			t.Error("IsOn() = true for new light, want false")
		}
		if l.Kind() != KindLight {
			t.Errorf("Kind() = %q, want %q", l.Kind(), KindLight)
		}
		if l.Location() != "living-room" {
			t.Errorf("Location() = %q, want %q", l.Location(), "living-room")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		if _, err := NewLight("  ", ""); !errors.Is(err, ErrInvalidName) {
			t.Errorf("NewLight() error = %v, want ErrInvalidName", err)
		}
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		if _, err := NewLight(strings.Repeat("x", maxNameLength+1), ""); !errors.Is(err, ErrInvalidName) {
			t.Errorf("NewLight() error = %v, want ErrInvalidName", err)
		}
	})
}

func TestLight_Switching(t *testing.T) {
	l, err := NewLight("Lamp", "")
	if err != nil {
		t.Fatalf("NewLight() error = %v", err)
	}

	l.TurnOn()
	if !l.IsOn() {
		t.Error("IsOn() = false after TurnOn, want true")
	}
	if l.Status() != "ON" {
		t.Errorf("Status() = %q, want ON", l.Status())
	}

	l.TurnOff()
	if l.IsOn() {
		t.Error("IsOn() = true after TurnOff, want false")
	}
	if l.Status() != "OFF" {
		t.Errorf("Status() = %q, want OFF", l.Status())
	}

	l.Toggle()
	if !l.IsOn() {
		t.Error("IsOn() = false after Toggle from off, want true")
	}
	l.Toggle()
	if l.IsOn() {
		t.Error("IsOn() = true after Toggle from on, want false")
	}
}

func TestLight_State(t *testing.T) {
	l, _ := NewLight("Lamp", "")
	l.TurnOn()

	t.Run("snapshot round-trips", func(t *testing.T) {
		snap := l.State()
		other, _ := NewLight("Copy", "")
		if err := other.ApplyState(snap); err != nil {
			t.Fatalf("ApplyState() error = %v", err)
		}
		if !other.IsOn() {
			t.Error("IsOn() = false after applying on-state, want true")
		}
	})

	t.Run("snapshot is independent", func(t *testing.T) {
		snap := l.State()
		snap["on"] = false
		if !l.IsOn() {
			t.Error("mutating the snapshot changed the device")
		}
	})

	t.Run("rejects missing on key", func(t *testing.T) {
		if err := l.ApplyState(State{"level": 50}); !errors.Is(err, ErrInvalidState) {
			t.Errorf("ApplyState() error = %v, want ErrInvalidState", err)
		}
	})
}

func TestShutter_Positioning(t *testing.T) {
	s, err := NewShutter("Bedroom Shutter", "bedroom")
	if err != nil {
		t.Fatalf("NewShutter() error = %v", err)
	}

	if s.Position() != PositionClosed {
		t.Errorf("Position() = %d for new shutter, want %d", s.Position(), PositionClosed)
	}
	if s.Status() != "CLOSED" {
		t.Errorf("Status() = %q, want CLOSED", s.Status())
	}

	s.Open()
	if s.Position() != PositionOpen || s.Status() != "OPEN" {
		t.Errorf("after Open: Position() = %d, Status() = %q, want 100/OPEN", s.Position(), s.Status())
	}
	if !s.IsOpen() {
		t.Error("IsOpen() = false after Open, want true")
	}

	if err := s.SetPosition(50); err != nil {
		t.Fatalf("SetPosition(50) error = %v", err)
	}
	if s.Status() != "PARTIAL" {
		t.Errorf("Status() = %q at position 50, want PARTIAL", s.Status())
	}

	s.Close()
	if s.IsOpen() {
		t.Error("IsOpen() = true after Close, want false")
	}

	t.Run("rejects out-of-range positions", func(t *testing.T) {
		for _, p := range []int{-1, 101, 500} {
			if err := s.SetPosition(p); !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("SetPosition(%d) error = %v, want ErrInvalidPosition", p, err)
			}
		}
		if s.Position() != PositionClosed {
			t.Errorf("Position() = %d after rejected sets, want unchanged %d", s.Position(), PositionClosed)
		}
	})
}

func TestShutter_State(t *testing.T) {
	s, _ := NewShutter("Shutter", "")
	if err := s.SetPosition(75); err != nil {
		t.Fatalf("SetPosition() error = %v", err)
	}

	t.Run("accepts JSON-decoded float positions", func(t *testing.T) {
		other, _ := NewShutter("Copy", "")
		if err := other.ApplyState(State{"position": float64(75)}); err != nil {
			t.Fatalf("ApplyState() error = %v", err)
		}
		if other.Position() != 75 {
			t.Errorf("Position() = %d, want 75", other.Position())
		}
	})

	t.Run("rejects fractional position", func(t *testing.T) {
		other, _ := NewShutter("Copy", "")
		if err := other.ApplyState(State{"position": 50.7}); !errors.Is(err, ErrInvalidState) {
			t.Errorf("ApplyState() error = %v, want ErrInvalidState", err)
		}
		if other.Position() != PositionClosed {
			t.Errorf("Position() = %d after rejected apply, want unchanged %d", other.Position(), PositionClosed)
		}
	})

	t.Run("rejects non-numeric position", func(t *testing.T) {
		if err := s.ApplyState(State{"position": "half"}); !errors.Is(err, ErrInvalidState) {
			t.Errorf("ApplyState() error = %v, want ErrInvalidState", err)
		}
	})

	t.Run("rejects out-of-range position", func(t *testing.T) {
		if err := s.ApplyState(State{"position": 150}); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("ApplyState() error = %v, want ErrInvalidPosition", err)
		}
	})
}

func TestSensor_Readings(t *testing.T) {
	s, err := NewSensor("Hallway Temp", "hallway")
	if err != nil {
		t.Fatalf("NewSensor() error = %v", err)
	}

	if s.HasValue() {
		t.Error("HasValue() = true for new sensor, want false")
	}
	if s.Status() != "NO_VALUE" {
		t.Errorf("Status() = %q, want NO_VALUE", s.Status())
	}

	s.UpdateValue(21.5)
	v, ok := s.Value()
	if !ok || v != 21.5 {
		t.Errorf("Value() = (%v, %v), want (21.5, true)", v, ok)
	}
	if s.Status() != "VALUE_21.5" {
		t.Errorf("Status() = %q, want VALUE_21.5", s.Status())
	}

	s.ResetValue()
	if s.HasValue() {
		t.Error("HasValue() = true after ResetValue, want false")
	}
}

func TestSensor_State(t *testing.T) {
	s, _ := NewSensor("Sensor", "")

	t.Run("nil value resets", func(t *testing.T) {
		s.UpdateValue(3)
		if err := s.ApplyState(State{"value": nil}); err != nil {
			t.Fatalf("ApplyState() error = %v", err)
		}
		if s.HasValue() {
			t.Error("HasValue() = true after applying null value, want false")
		}
	})

	t.Run("numeric value records", func(t *testing.T) {
		if err := s.ApplyState(State{"value": 42.0}); err != nil {
			t.Fatalf("ApplyState() error = %v", err)
		}
		if v, ok := s.Value(); !ok || v != 42 {
			t.Errorf("Value() = (%v, %v), want (42, true)", v, ok)
		}
	})

	t.Run("rejects missing value key", func(t *testing.T) {
		if err := s.ApplyState(State{}); !errors.Is(err, ErrInvalidState) {
			t.Errorf("ApplyState() error = %v, want ErrInvalidState", err)
		}
	})

	t.Run("rejects non-numeric value", func(t *testing.T) {
		if err := s.ApplyState(State{"value": "warm"}); !errors.Is(err, ErrInvalidState) {
			t.Errorf("ApplyState() error = %v, want ErrInvalidState", err)
		}
	})
}

func TestValidateKind(t *testing.T) {
	for _, k := range AllKinds() {
		if err := ValidateKind(k); err != nil {
			t.Errorf("ValidateKind(%q) error = %v, want nil", k, err)
		}
	}
	if err := ValidateKind("toaster"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("ValidateKind(toaster) error = %v, want ErrInvalidKind", err)
	}
}

func TestCapabilityAssertions(t *testing.T) {
	light, _ := NewLight("Lamp", "")
	shutter, _ := NewShutter("Shutter", "")
	sensor, _ := NewSensor("Sensor", "")

	devices := []Device{light, shutter, sensor}

	for _, d := range devices {
		_, switchable := d.(Switchable)
		_, positionable := d.(Positionable)
		_, measurable := d.(Measurable)

		switch d.Kind() {
		case KindLight:
			if !switchable || positionable || measurable {
				t.Errorf("light capabilities = (%v, %v, %v), want (true, false, false)", switchable, positionable, measurable)
			}
		case KindShutter:
			if switchable || !positionable || measurable {
				t.Errorf("shutter capabilities = (%v, %v, %v), want (false, true, false)", switchable, positionable, measurable)
			}
		case KindSensor:
			if switchable || positionable || !measurable {
				t.Errorf("sensor capabilities = (%v, %v, %v), want (false, false, true)", switchable, positionable, measurable)
			}
		}
	}
}

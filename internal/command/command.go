// Package command wraps controller operations as named, deferred
// actions. Commands let schedulers and automation rules hold a device
// action as a value and run it later without knowing the device kind.
package command

import (
	"context"
	"fmt"

	"github.com/domus-home/domus-core/internal/controller"
)

// Command is a deferred device action. Execute may be called any number
// of times; each call re-resolves the device, so a command outlives
// device removal and then fails with the controller's lookup error.
type Command interface {
	// Name returns a short identifier for logging ("turn_on", "open").
	Name() string

	// Execute runs the action against the live device.
	Execute(ctx context.Context) error
}

// TurnOn switches a device on.
type TurnOn struct {
	Lights   *controller.LightController
	DeviceID string
}

func (c *TurnOn) Name() string { return "turn_on" }

func (c *TurnOn) Execute(ctx context.Context) error {
	if err := c.Lights.TurnOn(ctx, c.DeviceID); err != nil {
		return fmt.Errorf("%s %q: %w", c.Name(), c.DeviceID, err)
	}
	return nil
}

// TurnOff switches a device off.
type TurnOff struct {
	Lights   *controller.LightController
	DeviceID string
}

func (c *TurnOff) Name() string { return "turn_off" }

func (c *TurnOff) Execute(ctx context.Context) error {
	if err := c.Lights.TurnOff(ctx, c.DeviceID); err != nil {
		return fmt.Errorf("%s %q: %w", c.Name(), c.DeviceID, err)
	}
	return nil
}

// Toggle inverts a device's on/off state.
type Toggle struct {
	Lights   *controller.LightController
	DeviceID string
}

func (c *Toggle) Name() string { return "toggle" }

func (c *Toggle) Execute(ctx context.Context) error {
	if _, err := c.Lights.Toggle(ctx, c.DeviceID); err != nil {
		return fmt.Errorf("%s %q: %w", c.Name(), c.DeviceID, err)
	}
	return nil
}

// Open moves a shutter to the fully open position.
type Open struct {
	Shutters *controller.ShutterController
	DeviceID string
}

func (c *Open) Name() string { return "open" }

func (c *Open) Execute(ctx context.Context) error {
	if err := c.Shutters.Open(ctx, c.DeviceID); err != nil {
		return fmt.Errorf("%s %q: %w", c.Name(), c.DeviceID, err)
	}
	return nil
}

// Close moves a shutter to the fully closed position.
type Close struct {
	Shutters *controller.ShutterController
	DeviceID string
}

func (c *Close) Name() string { return "close" }

func (c *Close) Execute(ctx context.Context) error {
	if err := c.Shutters.Close(ctx, c.DeviceID); err != nil {
		return fmt.Errorf("%s %q: %w", c.Name(), c.DeviceID, err)
	}
	return nil
}

// SetPosition moves a shutter to a fixed 0-100 position.
type SetPosition struct {
	Shutters *controller.ShutterController
	DeviceID string
	Position int
}

func (c *SetPosition) Name() string { return "set_position" }

func (c *SetPosition) Execute(ctx context.Context) error {
	if err := c.Shutters.SetPosition(ctx, c.DeviceID, c.Position); err != nil {
		return fmt.Errorf("%s %q: %w", c.Name(), c.DeviceID, err)
	}
	return nil
}

// Sequence runs commands in order, stopping at the first failure.
type Sequence struct {
	Label    string
	Commands []Command
}

func (s *Sequence) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return "sequence"
}

func (s *Sequence) Execute(ctx context.Context) error {
	for _, cmd := range s.Commands {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cmd.Execute(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	return nil
}

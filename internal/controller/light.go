package controller

import (
	"context"
	"fmt"

	"github.com/domus-home/domus-core/internal/device"
)

// LightController adds switching operations on top of DeviceController.
// Its verbs work on any Switchable device, not only lights.
type LightController struct {
	*DeviceController
}

// NewLightController creates a light controller sharing the given base.
func NewLightController(base *DeviceController) *LightController {
	return &LightController{DeviceController: base}
}

// CreateLight creates, registers and persists a new light in the off
// state, returning its id.
func (c *LightController) CreateLight(ctx context.Context, name, location string) (string, error) {
	light, err := device.NewLight(name, location)
	if err != nil {
		return "", err
	}
	return c.register(ctx, light)
}

// TurnOn switches the device on.
func (c *LightController) TurnOn(ctx context.Context, id string) error {
	dev, sw, err := c.switchable(id)
	if err != nil {
		return err
	}
	sw.TurnOn()
	return c.persistState(ctx, id, dev)
}

// TurnOff switches the device off.
func (c *LightController) TurnOff(ctx context.Context, id string) error {
	dev, sw, err := c.switchable(id)
	if err != nil {
		return err
	}
	sw.TurnOff()
	return c.persistState(ctx, id, dev)
}

// Toggle inverts the on/off state and returns the new state.
func (c *LightController) Toggle(ctx context.Context, id string) (bool, error) {
	dev, sw, err := c.switchable(id)
	if err != nil {
		return false, err
	}
	sw.Toggle()
	return sw.IsOn(), c.persistState(ctx, id, dev)
}

// IsOn reports whether the device is on.
func (c *LightController) IsOn(id string) (bool, error) {
	_, sw, err := c.switchable(id)
	if err != nil {
		return false, err
	}
	return sw.IsOn(), nil
}

func (c *LightController) switchable(id string) (device.Device, device.Switchable, error) {
	dev, err := c.Device(id)
	if err != nil {
		return nil, nil, err
	}
	sw, ok := dev.(device.Switchable)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q (%s) is not switchable", ErrNotSupported, id, dev.Kind())
	}
	return dev, sw, nil
}

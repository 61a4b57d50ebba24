package controller

import (
	"context"
	"fmt"

	"github.com/domus-home/domus-core/internal/device"
)

// ShutterController adds positioning operations on top of
// DeviceController. Its verbs work on any Positionable device.
type ShutterController struct {
	*DeviceController
}

// NewShutterController creates a shutter controller sharing the given
// base.
func NewShutterController(base *DeviceController) *ShutterController {
	return &ShutterController{DeviceController: base}
}

// CreateShutter creates, registers and persists a new shutter in the
// fully closed position, returning its id.
func (c *ShutterController) CreateShutter(ctx context.Context, name, location string) (string, error) {
	shutter, err := device.NewShutter(name, location)
	if err != nil {
		return "", err
	}
	return c.register(ctx, shutter)
}

// Open moves the device to the fully open position.
func (c *ShutterController) Open(ctx context.Context, id string) error {
	dev, pos, err := c.positionable(id)
	if err != nil {
		return err
	}
	pos.Open()
	return c.persistState(ctx, id, dev)
}

// Close moves the device to the fully closed position.
func (c *ShutterController) Close(ctx context.Context, id string) error {
	dev, pos, err := c.positionable(id)
	if err != nil {
		return err
	}
	pos.Close()
	return c.persistState(ctx, id, dev)
}

// SetPosition moves the device to the given 0-100 position.
func (c *ShutterController) SetPosition(ctx context.Context, id string, position int) error {
	dev, pos, err := c.positionable(id)
	if err != nil {
		return err
	}
	if err := pos.SetPosition(position); err != nil {
		return err
	}
	return c.persistState(ctx, id, dev)
}

// Position returns the device's current 0-100 position.
func (c *ShutterController) Position(id string) (int, error) {
	_, pos, err := c.positionable(id)
	if err != nil {
		return 0, err
	}
	return pos.Position(), nil
}

func (c *ShutterController) positionable(id string) (device.Device, device.Positionable, error) {
	dev, err := c.Device(id)
	if err != nil {
		return nil, nil, err
	}
	pos, ok := dev.(device.Positionable)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q (%s) is not positionable", ErrNotSupported, id, dev.Kind())
	}
	return dev, pos, nil
}

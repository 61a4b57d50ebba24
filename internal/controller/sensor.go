package controller

import (
	"context"
	"fmt"

	"github.com/domus-home/domus-core/internal/device"
)

// SensorController adds reading operations on top of DeviceController.
// Its verbs work on any Measurable device.
type SensorController struct {
	*DeviceController
}

// NewSensorController creates a sensor controller sharing the given
// base.
func NewSensorController(base *DeviceController) *SensorController {
	return &SensorController{DeviceController: base}
}

// CreateSensor creates, registers and persists a new sensor with no
// reading, returning its id.
func (c *SensorController) CreateSensor(ctx context.Context, name, location string) (string, error) {
	sensor, err := device.NewSensor(name, location)
	if err != nil {
		return "", err
	}
	return c.register(ctx, sensor)
}

// UpdateValue records a new reading for the device.
func (c *SensorController) UpdateValue(ctx context.Context, id string, value float64) error {
	dev, m, err := c.measurable(id)
	if err != nil {
		return err
	}
	m.UpdateValue(value)
	return c.persistState(ctx, id, dev)
}

// ResetValue discards the device's current reading.
func (c *SensorController) ResetValue(ctx context.Context, id string) error {
	dev, m, err := c.measurable(id)
	if err != nil {
		return err
	}
	m.ResetValue()
	return c.persistState(ctx, id, dev)
}

// Value returns the device's current reading; ok is false when none is
// recorded.
func (c *SensorController) Value(id string) (value float64, ok bool, err error) {
	_, m, err := c.measurable(id)
	if err != nil {
		return 0, false, err
	}
	value, ok = m.Value()
	return value, ok, nil
}

func (c *SensorController) measurable(id string) (device.Device, device.Measurable, error) {
	dev, err := c.Device(id)
	if err != nil {
		return nil, nil, err
	}
	m, ok := dev.(device.Measurable)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q (%s) is not measurable", ErrNotSupported, id, dev.Kind())
	}
	return dev, m, nil
}

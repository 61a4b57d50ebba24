package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/domus-home/domus-core/internal/device"
	"github.com/domus-home/domus-core/internal/registry"
)

// Logger defines the logging interface used by controllers.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Announcer receives device lifecycle notifications. Implementations
// must not block; announcements happen on the caller's goroutine after
// the registry and store have been updated.
type Announcer interface {
	DeviceRegistered(id string, dev device.Device)
	DeviceUnregistered(id string)
	DeviceStateChanged(id string, dev device.Device)
}

// DeviceController provides kind-agnostic device operations over the
// shared registry and the persistent store.
type DeviceController struct {
	registry  *registry.Registry
	store     device.Store
	logger    Logger
	announcer Announcer
}

// NewDeviceController creates a controller over the given registry and
// store. The store may be nil for purely in-memory operation.
func NewDeviceController(reg *registry.Registry, store device.Store) *DeviceController {
	return &DeviceController{
		registry: reg,
		store:    store,
		logger:   noopLogger{},
	}
}

// SetLogger sets the logger for the controller.
func (c *DeviceController) SetLogger(logger Logger) {
	c.logger = logger
}

// SetAnnouncer sets the lifecycle announcer. Pass nil to disable.
func (c *DeviceController) SetAnnouncer(a Announcer) {
	c.announcer = a
}

// register stores a new model in the registry and the store. On a store
// failure the registry entry is rolled back so the two never diverge.
func (c *DeviceController) register(ctx context.Context, dev device.Device) (string, error) {
	id := c.registry.Register(dev)

	if c.store != nil {
		if err := c.store.Save(ctx, device.Snapshot(id, dev)); err != nil {
			c.registry.Unregister(id)
			return "", fmt.Errorf("persisting device %q: %w", dev.Name(), err)
		}
	}

	c.logger.Info("device created",
		"id", id,
		"name", dev.Name(),
		"kind", dev.Kind(),
	)
	if c.announcer != nil {
		c.announcer.DeviceRegistered(id, dev)
	}
	return id, nil
}

// Device returns the model registered under id.
func (c *DeviceController) Device(id string) (device.Device, error) {
	handle, err := c.registry.Get(id)
	if err != nil {
		return nil, err
	}
	dev, ok := handle.(device.Device)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotDevice, id, handle)
	}
	return dev, nil
}

// Devices returns a snapshot of all registered device models, keyed by
// id. Foreign handles are skipped.
func (c *DeviceController) Devices() map[string]device.Device {
	devices := make(map[string]device.Device)
	for id, handle := range c.registry.List() {
		if dev, ok := handle.(device.Device); ok {
			devices[id] = dev
		}
	}
	return devices
}

// DevicesByKind returns the registered devices of the given kind.
func (c *DeviceController) DevicesByKind(kind device.Kind) map[string]device.Device {
	devices := make(map[string]device.Device)
	for id, dev := range c.Devices() {
		if dev.Kind() == kind {
			devices[id] = dev
		}
	}
	return devices
}

// DevicesByLocation returns the registered devices at the given
// location.
func (c *DeviceController) DevicesByLocation(location string) map[string]device.Device {
	devices := make(map[string]device.Device)
	for id, dev := range c.Devices() {
		if dev.Location() == location {
			devices[id] = dev
		}
	}
	return devices
}

// Status returns the short status token for the device under id.
func (c *DeviceController) Status(id string) (string, error) {
	dev, err := c.Device(id)
	if err != nil {
		return "", err
	}
	return dev.Status(), nil
}

// UpdateState applies a state snapshot to the live device and persists
// it. The live model is updated first; a store failure leaves the model
// changed and surfaces the error.
func (c *DeviceController) UpdateState(ctx context.Context, id string, state device.State) error {
	dev, err := c.Device(id)
	if err != nil {
		return err
	}
	if err := dev.ApplyState(state); err != nil {
		return err
	}
	return c.persistState(ctx, id, dev)
}

// Remove unregisters the device and deletes its snapshot. Removing an
// unknown id is not an error.
func (c *DeviceController) Remove(ctx context.Context, id string) error {
	removed := c.registry.Unregister(id)

	if c.store != nil {
		if err := c.store.Delete(ctx, id); err != nil && !errors.Is(err, device.ErrNotFound) {
			return fmt.Errorf("deleting device %q: %w", id, err)
		}
	}

	if removed {
		c.logger.Info("device removed", "id", id)
		if c.announcer != nil {
			c.announcer.DeviceUnregistered(id)
		}
	}
	return nil
}

// Summary returns one human-readable line per registered device,
// keyed by id.
func (c *DeviceController) Summary() map[string]string {
	summary := make(map[string]string)
	for id, dev := range c.Devices() {
		summary[id] = fmt.Sprintf("%s (%s): %s", dev.Name(), dev.Kind(), dev.Status())
	}
	return summary
}

// Count returns the number of registered devices.
func (c *DeviceController) Count() int {
	return c.registry.Count()
}

// Hydrate restores persisted devices into the registry under their
// original ids. Snapshots that fail to rebuild are skipped with a
// warning so one corrupt row cannot block startup. Returns the number
// of devices restored.
func (c *DeviceController) Hydrate(ctx context.Context) (int, error) {
	if c.store == nil {
		return 0, nil
	}

	records, err := c.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading device snapshots: %w", err)
	}

	restored := 0
	for i := range records {
		rec := &records[i]
		dev, err := rec.Rehydrate()
		if err != nil {
			c.logger.Warn("skipping unrestorable device",
				"id", rec.ID,
				"kind", rec.Kind,
				"error", err,
			)
			continue
		}
		if !c.registry.Adopt(rec.ID, dev) {
			c.logger.Warn("device id already registered, skipping", "id", rec.ID)
			continue
		}
		restored++
	}

	c.logger.Info("devices restored", "count", restored, "snapshots", len(records))
	return restored, nil
}

// persistState writes the device's current state to the store and
// notifies the announcer.
func (c *DeviceController) persistState(ctx context.Context, id string, dev device.Device) error {
	if c.store != nil {
		if err := c.store.UpdateState(ctx, id, dev.State()); err != nil {
			return fmt.Errorf("persisting state for %q: %w", id, err)
		}
	}
	if c.announcer != nil {
		c.announcer.DeviceStateChanged(id, dev)
	}
	return nil
}

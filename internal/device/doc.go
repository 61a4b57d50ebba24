// Package device provides the device models for Domus Core.
//
// Devices are small stateful models (Light, Shutter, Sensor) that expose
// their behaviour through capability interfaces:
//
//   - Switchable: on/off devices (lights)
//   - Positionable: devices with a 0-100 position (shutters, blinds)
//   - Measurable: devices reporting a numeric reading (sensors)
//
// Callers that need a specific behaviour assert the capability rather
// than inspecting the model's structure:
//
//	if s, ok := dev.(device.Switchable); ok {
//	    s.TurnOn()
//	}
//
// All models are safe for concurrent use; each guards its mutable state
// with its own mutex.
//
// The package also defines the Store, the persistent snapshot collaborator
// backed by SQLite. The in-memory registry never depends on the Store;
// controllers keep the two in sync.
package device

// Package controller implements the device service layer.
//
// Controllers sit between callers and the shared registry: they create
// device models, register them, keep the persistent store in sync with
// live state, and notify an optional announcer about lifecycle events.
// DeviceController covers kind-agnostic operations; LightController,
// ShutterController and SensorController add the kind-specific verbs.
//
// Controllers are safe for concurrent use. Registry access is guarded
// by the registry's own lock and device mutations by each model's lock;
// controllers hold no locks of their own.
package controller

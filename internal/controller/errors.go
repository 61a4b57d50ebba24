package controller

import "errors"

// Sentinel errors returned by controllers. Registry lookups that miss
// surface the registry's own not-found error; these cover the cases the
// service layer adds on top.
var (
	// ErrNotSupported indicates the device does not implement the
	// capability an operation requires (e.g. toggling a sensor).
	ErrNotSupported = errors.New("controller: operation not supported by device")

	// ErrNotDevice indicates a registry handle is not a device model.
	// Controllers only register models, so this points at a foreign
	// handle registered by other code.
	ErrNotDevice = errors.New("controller: handle is not a device")
)

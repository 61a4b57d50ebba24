package device

import "errors"

// Domain errors for the device package.
//
// Check with errors.Is():
//
//	if errors.Is(err, device.ErrNotFound) {
//	    // handle not found case
//	}
var (
	// ErrInvalidName is returned when a device name is empty or too long.
	ErrInvalidName = errors.New("device: invalid name")

	// ErrInvalidKind is returned when a kind value is not recognised.
	ErrInvalidKind = errors.New("device: invalid kind")

	// ErrInvalidPosition is returned when a shutter position is outside 0-100.
	ErrInvalidPosition = errors.New("device: position out of range")

	// ErrInvalidState is returned when a state snapshot cannot be applied.
	ErrInvalidState = errors.New("device: invalid state")

	// ErrNotFound is returned by the Store when a device id does not exist.
	ErrNotFound = errors.New("device: not found")

	// ErrExists is returned by the Store when saving a duplicate id.
	ErrExists = errors.New("device: already exists")
)

package registry

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel for lookups of unregistered device ids.
// Check with errors.Is:
//
//	if errors.Is(err, registry.ErrNotFound) {
//	    // handle missing device
//	}
var ErrNotFound = errors.New("registry: device not found")

// NotFoundError reports a Get for a device id that is not registered.
// It carries the requested id for diagnostics.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: device %q not found", e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match a *NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

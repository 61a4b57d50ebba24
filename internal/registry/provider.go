package registry

import "github.com/domus-home/domus-core/internal/singleton"

// shared is the process-wide registry provider. The factory cannot fail,
// so Shared swallows the always-nil error.
var shared = singleton.New(func() (*Registry, error) {
	return New(), nil
})

// Shared returns the process-wide registry, constructing it on first
// access. Safe under concurrent first access from any number of
// goroutines: exactly one registry is built and all callers observe it.
//
// Shared belongs at the composition root; code below main should take a
// *Registry by injection.
func Shared() *Registry {
	r, _ := shared.Get()
	return r
}

// ResetShared drops the process-wide registry so the next Shared call
// builds a fresh instance. Test isolation only.
func ResetShared() {
	shared.Reset()
}

// HasShared reports whether the process-wide registry has been built,
// without building one.
func HasShared() bool {
	return shared.Has()
}

// PeekShared returns the process-wide registry without building one. The
// second return value is false when no instance exists.
func PeekShared() (*Registry, bool) {
	return shared.Peek()
}

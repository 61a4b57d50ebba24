// Package singleton provides a generic single-instance provider.
//
// A Provider guarantees that at most one live instance of its type exists,
// no matter how many goroutines race on first access. It is a plain
// factory-and-cache with an explicit lock rather than a sync.Once, because
// the instance must be resettable for test isolation: Reset returns the
// provider to its uninitialised state and the next Get builds a fresh
// instance.
//
// # Usage
//
//	provider := singleton.New(func() (*Registry, error) {
//	    return NewRegistry(), nil
//	})
//
//	reg, err := provider.Get() // constructs on first call
//	same, _ := provider.Get()  // same instance forever after
//
// Keep providers at the composition root. Code below main should receive
// the instance by injection, not reach for a provider.
package singleton

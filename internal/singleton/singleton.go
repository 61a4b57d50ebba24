package singleton

import (
	"sync"
	"sync/atomic"
)

// Provider manages at most one live instance of T.
//
// Get follows the double-checked locking pattern: the fast path is a
// lock-free atomic load, and the mutex is only taken when construction
// may be required. All methods are safe for concurrent use.
type Provider[T any] struct {
	mu       sync.Mutex
	instance atomic.Pointer[T]
	factory  func() (*T, error)
}

// New creates a Provider that builds its instance with factory on first
// Get. The factory must return a non-nil instance or an error.
func New[T any](factory func() (*T, error)) *Provider[T] {
	return &Provider[T]{factory: factory}
}

// Get returns the current instance, constructing it if none exists.
//
// When multiple goroutines race on first access, exactly one runs the
// factory; the rest block until construction completes and observe the
// same instance. A factory error propagates to the caller that triggered
// construction and nothing is committed, so a later Get retries the
// factory.
func (p *Provider[T]) Get() (*T, error) {
	// Fast path: instance already published.
	if inst := p.instance.Load(); inst != nil {
		return inst, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Re-check: another goroutine may have constructed while we waited.
	if inst := p.instance.Load(); inst != nil {
		return inst, nil
	}

	inst, err := p.factory()
	if err != nil {
		return nil, err
	}
	p.instance.Store(inst)
	return inst, nil
}

// Reset drops the stored instance, if any. The next Get constructs a
// fresh one. Intended for test isolation, not normal operation.
func (p *Provider[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.instance.Store(nil)
}

// Has reports whether an instance currently exists. It never constructs.
func (p *Provider[T]) Has() bool {
	return p.instance.Load() != nil
}

// Peek returns the current instance without constructing one. The second
// return value is false when no instance exists.
func (p *Provider[T]) Peek() (*T, bool) {
	inst := p.instance.Load()
	return inst, inst != nil
}

package registry

import (
	"sync"

	"github.com/google/uuid"
)

// Handle is an opaque, caller-owned device value. The registry stores
// handles by reference and never inspects their structure; callers keep
// their own references and manage the handle's lifetime.
type Handle = any

// Logger defines the logging interface used by the Registry.
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

// Registry is the shared store of currently-known devices.
//
// All public methods are thread-safe: the id→handle map is guarded by a
// single read-write mutex, and every operation holds it for the duration
// of the map access. Operations are pure memory mutations and complete
// in bounded time; none block on I/O.
type Registry struct {
	mu      sync.RWMutex
	devices map[string]Handle
	logger  Logger

	// initialized guards against re-running constructor logic when the
	// construction path is re-entered through the shared provider.
	initialized bool
}

// New creates an empty device registry.
func New() *Registry {
	r := &Registry{}
	r.init()
	return r
}

// init sets up internal state exactly once.
func (r *Registry) init() {
	if r.initialized {
		return
	}
	r.devices = make(map[string]Handle)
	r.logger = noopLogger{}
	r.initialized = true
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register stores handle under a freshly generated device id and returns
// the id. The id is a 128-bit random value in canonical UUID form,
// unique within the registry's lifetime. Register always succeeds; the
// registry imposes no structural contract on the handle.
func (r *Registry) Register(handle Handle) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := newID()
	for {
		// Random collisions are vanishingly unlikely; re-roll anyway so a
		// returned id is never silently overwritten.
		if _, exists := r.devices[id]; !exists {
			break
		}
		id = newID()
	}
	r.devices[id] = handle

	r.logger.Debug("device registered", "id", id, "count", len(r.devices))
	return id
}

// Adopt stores handle under a caller-supplied id, used when restoring
// devices from the persistent store so they keep their original ids.
// Returns false without modifying the registry if the id is already
// present. Normal registration goes through Register.
func (r *Registry) Adopt(id string, handle Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.devices[id]; exists {
		return false
	}
	r.devices[id] = handle

	r.logger.Debug("device adopted", "id", id, "count", len(r.devices))
	return true
}

// Get returns the handle registered under id. The returned handle is the
// exact value passed at registration (identity preserved, not a copy).
// Returns a *NotFoundError carrying the id when it is absent; callers
// that expect absence should use TryGet or Exists instead.
func (r *Registry) Get(id string) (Handle, error) {
	r.mu.RLock()
	handle, ok := r.devices[id]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return handle, nil
}

// TryGet is the non-failing variant of Get. The second return value
// reports whether the id was present.
func (r *Registry) TryGet(id string) (Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, ok := r.devices[id]
	return handle, ok
}

// Unregister removes the entry for id if present. It reports whether an
// entry was removed; unregistering an absent id is not an error, so the
// call is idempotent.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[id]; !ok {
		return false
	}
	delete(r.devices, id)

	r.logger.Debug("device unregistered", "id", id, "count", len(r.devices))
	return true
}

// Exists reports whether id is currently registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.devices[id]
	return ok
}

// Count returns the number of registered devices.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

// List returns a defensive copy of the full id→handle mapping, taken as
// a snapshot at a single instant. Mutating the returned map never
// affects the registry. Handles themselves are shared references, not
// copies.
func (r *Registry) List() map[string]Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]Handle, len(r.devices))
	for id, handle := range r.devices {
		snapshot[id] = handle
	}
	return snapshot
}

// Clear removes every entry. Used for test and reset scenarios, not
// normal operation.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.devices)
	r.devices = make(map[string]Handle)

	r.logger.Debug("registry cleared", "removed", removed)
}

// newID returns a fresh 128-bit random device id in canonical UUID form.
func newID() string {
	return uuid.New().String()
}

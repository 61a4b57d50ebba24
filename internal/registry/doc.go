// Package registry provides the shared in-memory device registry for
// Domus Core.
//
// The registry is the single runtime catalogue of live devices. It maps
// opaque device ids to caller-owned handles and exposes register,
// lookup, enumerate and remove operations, all safe for concurrent use
// from any goroutine. Handles are stored and returned by reference; the
// registry never inspects their structure and takes no ownership of
// their lifetime.
//
// # Shared instance
//
// One registry is shared process-wide through a singleton provider:
//
//	reg := registry.Shared() // built on first access, same instance after
//
// Shared is safe under concurrent first access: exactly one registry is
// constructed and every caller observes it. ResetShared, HasShared and
// PeekShared exist for test isolation only; production code receives the
// registry by injection from the composition root.
//
// # Error contract
//
// Get is the only operation that fails on a missing id, returning a
// *NotFoundError (matching ErrNotFound via errors.Is). Existence-style
// queries — TryGet, Exists, Unregister — report absence through their
// return values and never fail.
package registry

// Package state implements the lifecycle every remote operation goes
// through: pending sets loading and clears the previous error, fulfilled
// replaces the data wholesale, rejected stores a normalized message string.
// Errors live in state as data; no operation lets a raw failure escape to
// the caller unnormalized.
package state

import "sync"

// Snapshot is the externally visible value of a Resource at one instant.
// Data is fully replaced on fulfillment, never merged. For mutations the
// data is the server's human-readable detail string. StatusCode is kept
// where the UI branches on it (403 activation prompts). Zero values mean
// unset.
type Snapshot[T any] struct {
	Data       T
	Loading    bool
	Error      string
	StatusCode int
}

// Resource is one async operation slot. It is re-entrant: starting again
// while a call is in flight is allowed and whichever settlement lands last
// wins, the same last-write policy the web client has (stale-overwrite
// race included).
type Resource[T any] struct {
	mu      sync.Mutex
	initial T
	snap    Snapshot[T]
}

func NewResource[T any](initial T) *Resource[T] {
	return &Resource[T]{
		initial: initial,
		snap:    Snapshot[T]{Data: initial},
	}
}

// Pending marks the operation in flight and clears the previous outcome.
func (r *Resource[T]) Pending() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Loading = true
	r.snap.Error = ""
	r.snap.StatusCode = 0
}

// Fulfill stores the payload, replacing the previous data entirely.
func (r *Resource[T]) Fulfill(data T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Loading = false
	r.snap.Data = data
	r.snap.Error = ""
}

// FulfillCode stores the payload together with the HTTP status code.
func (r *Resource[T]) FulfillCode(data T, statusCode int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Loading = false
	r.snap.Data = data
	r.snap.StatusCode = statusCode
	r.snap.Error = ""
}

// Reject stores the normalized error message.
func (r *Resource[T]) Reject(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Loading = false
	r.snap.Error = msg
}

// RejectCode stores the message together with the HTTP status.
func (r *Resource[T]) RejectCode(msg string, statusCode int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Loading = false
	r.snap.Error = msg
	r.snap.StatusCode = statusCode
}

// Reset returns the resource to its exact initial value. Resetting an
// already-reset resource is a no-op.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = Snapshot[T]{Data: r.initial}
}

// Snapshot returns the current value.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Loading reports whether an operation is in flight.
func (r *Resource[T]) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap.Loading
}

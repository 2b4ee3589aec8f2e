// Package state provides thread-safe state management for barnview.
//
// # Overview
//
// This package implements the coordination point where polling updates meet
// UI rendering: a mutex-protected Store holding the latest controller
// snapshot, and a Cache enforcing the freshness window so that repeated
// reads within one render cycle cost at most one network call.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Scheduler):           Consumer (UI):
//	┌─────────────────┐            ┌─────────────────┐
//	│ cache.Refresh() │            │                 │
//	│ FetchTrend()    │            │                 │
//	│      ↓          │            │                 │
//	│ store.Set*()    │───────────→│ store.Snapshot()│
//	│      ↓          │  (mutex)   │      ↓          │
//	│  repeat...      │            │  render UI      │
//	└─────────────────┘            └─────────────────┘
//
// # Update Semantics
//
// SetStatus keeps the previous data on error and records the failure:
//
//	store.SetStatus(status, nil)  // replace status, reset failure count
//	store.SetStatus(nil, err)     // keep status, record error, count failure
//
// This ensures the UI always has the most recent successful snapshot to
// display while still being able to distinguish "connection lost" from
// "no new data yet". The trend half updates independently so a partial
// failure renders the successful half normally.
//
// # Freshness Window
//
// Cache.Status serves the stored value while the last successful fetch is
// younger than the window (normally the refresh interval). Cache.Refresh
// bypasses the window; the scheduler uses it for the post-command re-poll.
// A failed fetch returns the error to the caller and never overwrites the
// stored status.
//
// # Concurrency Model
//
// Store uses a readers-writer lock held only during copy operations, never
// during network I/O or rendering. Snapshots are returned by value with the
// trend series deep-copied, so the UI can never mutate shared state. Cache
// serializes fetches with its own mutex so concurrent consumers cannot
// double-poll within one window.
package state

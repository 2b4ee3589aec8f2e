// Package app provides the orchestration layer for barnview.
//
// # Overview
//
// This package wires together configuration, polling, state management, and
// the UI. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
//  1. Load configuration from ~/.config/barnview/config.toml
//  2. Load user preferences (theme, remembered host)
//  3. Initialize the controller HTTP client
//  4. Open the diagnostic log file
//  5. Create the shared state.Store and freshness Cache
//  6. Run one cycle to populate the store, then launch the scheduler
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Scheduler
//
// The Scheduler alternates between idle and refreshing. A cycle fetches
// status (through the freshness cache) and trend concurrently, waits for
// both, and publishes to the store. Besides the fixed tick the scheduler
// accepts an immediate-refresh signal: after a successful command the UI
// calls RequestRefresh, the scheduler waits out the settle delay so the
// controller can apply the command, then runs one forced cycle that
// bypasses the freshness window. A failed command does not signal; the
// natural cadence absorbs it.
//
// No cycle failure stops the loop. Connection errors are logged and
// surfaced through the store; the next tick retries.
package app

// Package chamber provides an HTTP client for the curing chamber controller API.
//
// # Overview
//
// This package defines the API client for communicating with the embedded
// controller that regulates the curing chamber (temperature, humidity, fans,
// heaters, vent servo). It handles HTTP communication, JSON decoding, field
// normalization, and the typed command set.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the controller API schema, plus
//     normalization and display formatting
//   - errors.go: The error taxonomy callers branch on
//
// # Client Usage
//
// Create a client using the controller host from configuration:
//
//	client, err := chamber.NewClient("192.168.1.77:5050")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	status, err := client.FetchStatus(ctx)
//	trend, err := client.FetchTrend(ctx)
//	err = client.Send(ctx, chamber.CmdServo, chamber.ServoPayload{Angle: 90})
//
// # API Endpoints
//
//   - GET /api/status: Current controller snapshot
//   - GET /api/trend_data: Parallel history arrays for charting
//   - POST /api/{mode,reset,stage,servo,fan1_toggle,fan2_toggle,
//     heater1_toggle,heater2_toggle}: Control commands, pass/fail only
//
// # Normalization
//
// Every wire field is optional. Absent numerics and booleans decode to zero
// values; absent mode/stage strings become "N/A". Derived strings (uptime,
// setpoint countdown) are computed once at fetch time from the payload
// itself, never from the wall clock, so a snapshot renders identically on
// every redraw.
//
// # Error Handling
//
// The client distinguishes three recoverable error classes:
//
//   - ConnectionError: Timeout, refused connection, non-success GET status.
//     The refresh loop surfaces it and retries on its normal cadence.
//   - MalformedTrendError: Trend payload violating the parallel-array shape.
//     Only the chart widget degrades; status display is unaffected.
//   - CommandRejectedError: Non-2xx response to a command POST. Surfaced as
//     a transient notification, never retried.
//
// A trend endpoint with no history yet returns (nil, nil): an expected
// empty state, not an error.
package chamber

package chamber

import "fmt"

// ConnectionError reports a failed request against the controller: timeout,
// refused connection, or a non-success status on a GET. All three are
// equivalent for control flow; the poll loop keeps its normal cadence.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("controller unreachable at %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// MalformedTrendError reports a trend payload that violates the
// parallel-array shape. Recoverable: only the chart widget degrades.
type MalformedTrendError struct {
	Reason string
}

func (e *MalformedTrendError) Error() string {
	return "malformed trend data: " + e.Reason
}

// CommandRejectedError reports a non-success status on a command POST.
type CommandRejectedError struct {
	Command    Command
	StatusCode int
}

func (e *CommandRejectedError) Error() string {
	return fmt.Sprintf("command %q rejected with status %d", e.Command, e.StatusCode)
}

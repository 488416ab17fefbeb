package sim

import "errors"

var (
	// ErrInvalidInput reports a process set or policy parameter that cannot be simulated:
	// non-positive burst, negative arrival, non-positive quantum.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput reports that no processes were supplied.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnreachableState reports an engine defect: unfinished processes remain but
	// nothing can be dispatched, or the dispatch watchdog tripped.
	ErrUnreachableState = errors.New("unreachable simulator state")
)

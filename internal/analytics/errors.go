package analytics

import "errors"

// Contract-violation errors. These indicate a caller bug, not bad data:
// missing or zero metric data is a valid "no activity" state and flows
// through the pipeline as zeros instead of raising.
var (
	// ErrEmptyRange is returned when a series range ends before it starts.
	ErrEmptyRange = errors.New("range end precedes range start")

	// ErrEmptyInput is returned when an aggregate is requested over zero
	// elements. Callers must special-case zero-day windows.
	ErrEmptyInput = errors.New("empty input")
)

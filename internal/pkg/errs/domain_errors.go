package errs

import "errors"

// Error taxonomy shared by the use case and transport layers
var (
	// Input errors
	ErrInvalidCandidate = errors.New("invalid candidate")
	ErrInvalidRange     = errors.New("invalid date range")
	ErrInvalidInput     = errors.New("invalid input")

	// Data source errors
	ErrRepositoryUnavailable = errors.New("repository unavailable")

	// Coordination signals; never rendered as a failure
	ErrStaleResultDiscarded = errors.New("stale result discarded")
	ErrCoordinatorClosed    = errors.New("query coordinator closed")
)

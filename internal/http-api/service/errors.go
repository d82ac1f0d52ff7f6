package service

import "errors"

// Service-level error taxonomy. Handlers translate these to HTTP statuses;
// anything not listed here surfaces as a generic backend failure.
var (
	// ErrNotFound covers both genuinely absent records and records the
	// caller is not allowed to know exist (unpublished levels).
	ErrNotFound = errors.New("not found")
	// ErrForbidden means an authorization check failed; no side effect
	// happened.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidFilter means the search filter combination was rejected
	// before any query executed.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrNameInUse means the requested display name is already taken.
	ErrNameInUse = errors.New("display name already in use")
)

package services

import "errors"

// Shared service errors. Controllers map these onto the response
// envelope; anything unrecognized is treated as rejected input.
var (
	ErrForbidden = errors.New("forbidden")
	ErrDenied    = errors.New("denied")
	ErrConflict  = errors.New("invalid_or_conflict")

	// ErrAlreadyPaid is informational: the order is already in its
	// target state and the caller's mutation was a no-op.
	ErrAlreadyPaid = errors.New("order already paid")
)

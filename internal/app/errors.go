package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrMissingConfig is returned before any upstream call when the sheet id
	// or api key is not configured. Its message is part of the response contract.
	ErrMissingConfig = errors.New("Missing env vars") //nolint:staticcheck // response contract

	// ErrNoReader means credentials are set but no values reader was wired.
	ErrNoReader = errors.New("sheets reader not configured")
)

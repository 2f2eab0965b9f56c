package checker

import "errors"

// Error constants.
var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNotSorted        = errors.New("leaderboard is not sorted by points")
	ErrInconsistent     = errors.New("leaderboard responses differ")
	ErrAllFailed        = errors.New("every leaderboard request failed")
)

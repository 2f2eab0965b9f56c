package sheets

import (
	"errors"
	"fmt"
)

// Kind tags the way a Sheets read failed.
type Kind int

// Failure kinds.
const (
	KindNetwork Kind = iota + 1
	KindParse
	KindUpstreamStatus
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindUpstreamStatus:
		return "upstream_status"
	default:
		return "unknown"
	}
}

// ErrRequestFailed is the message surfaced for any non-success status from the API.
var ErrRequestFailed = errors.New("Sheets API request failed") //nolint:staticcheck // message is part of the response contract

// Error is returned by Client.ReadValues.
type Error struct {
	Kind Kind
	// StatusCode is the upstream HTTP status for KindUpstreamStatus.
	StatusCode int
	Err        error
}

// Error returns the message clients see: the fixed request-failed text for
// upstream status failures, the cause otherwise.
func (e *Error) Error() string {
	if e.Kind == KindUpstreamStatus {
		return ErrRequestFailed.Error()
	}
	if e.Err == nil {
		return fmt.Sprintf("sheets %s error", e.Kind)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches ErrRequestFailed for upstream status failures.
func (e *Error) Is(target error) bool {
	return target == ErrRequestFailed && e.Kind == KindUpstreamStatus
}

// KindOf returns the Kind of a Sheets error, or 0 when err is not one.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

package connection

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the connection package.
var (
	ErrNetworkUnreachable = errors.New("could not reach network")
	ErrServerStatus       = errors.New("server error")
	ErrInvalidResponse    = errors.New("invalid API response")
	ErrRateLimited        = errors.New("rate limit exceeded")
)

// StatusError is returned when the timetable service answers with a non-2xx status.
type StatusError struct {
	Code int
	Text string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Server Error: HTTP %d (%s)", e.Code, e.Text)
}

// Is makes errors.Is(err, ErrServerStatus) hold for any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrServerStatus
}

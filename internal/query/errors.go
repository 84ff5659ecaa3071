package query

import (
	"errors"

	"fahrplan/pkg/datemath"
)

// Domain-specific errors for the query package.
var (
	ErrMissingRequiredField = errors.New(`"from" and "to" arguments must be present`)
	ErrConflictingTimeSpec  = errors.New("you can't specify both departure *and* arrival time")
	ErrUnsupportedLanguage  = errors.New("unsupported language")

	ErrUnparseableTime = datemath.ErrUnparseableTime
	ErrUnparseableDate = datemath.ErrUnparseableDate
)

package datemath

import "errors"

var (
	ErrUnparseableTime = errors.New("time string could not be parsed")
	ErrUnparseableDate = errors.New("date string could not be parsed")
)

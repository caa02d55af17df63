package get_day_slots

import "errors"

var (
	// ErrSpaceNotFound is returned when the space does not exist.
	ErrSpaceNotFound = errors.New("space not found")

	// ErrInvalidInput is returned on malformed request fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected use case failures.
	ErrInternal = errors.New("usecase: internal error")
)

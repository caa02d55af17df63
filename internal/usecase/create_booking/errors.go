package create_booking

import "errors"

var (
	// ErrSpaceNotFound is returned when the space does not exist.
	ErrSpaceNotFound = errors.New("space not found")

	// ErrSpaceNotAvailable is returned when the space is deactivated.
	ErrSpaceNotAvailable = errors.New("space is not available for booking")

	// ErrCapacityExceeded is returned when the expected headcount does
	// not fit the space.
	ErrCapacityExceeded = errors.New("expected count exceeds space capacity")

	// ErrDateBlocked is returned when the date is administratively
	// blocked for the space or campus-wide.
	ErrDateBlocked = errors.New("date is blocked for this space")

	// ErrSlotConflict is returned when the interval overlaps an
	// existing pending or approved booking.
	ErrSlotConflict = errors.New("time slot conflicts with an existing booking")

	// ErrInvalidDate is returned when the booking date is in the past
	// or unreasonably far out.
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidTimeRange is returned when the end does not follow the
	// start or the interval is too short.
	ErrInvalidTimeRange = errors.New("invalid booking time range")

	// ErrInvalidInput is returned on malformed request fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected use case failures.
	ErrInternal = errors.New("usecase: internal error")
)

package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the caller may not see or
	// change the booking.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking is past or already
	// decided against.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrAlreadyDecided is returned when a staff decision targets a
	// non-pending booking.
	ErrAlreadyDecided = errors.New("only pending bookings can be decided")

	// ErrSlotConflict is returned when a reschedule target overlaps an
	// existing booking.
	ErrSlotConflict = errors.New("time slot conflicts with an existing booking")

	// ErrInvalidStatus is returned on an unknown status value.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned on malformed request fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)

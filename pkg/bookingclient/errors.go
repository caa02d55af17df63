package bookingclient

import "errors"

var (
	// ErrNotFound is returned on a 404 from the service.
	ErrNotFound = errors.New("bookingclient: not found")

	// ErrBadRequest is returned on a 400 from the service.
	ErrBadRequest = errors.New("bookingclient: bad request")

	// ErrInternal is returned on transport failures and unexpected
	// status codes.
	ErrInternal = errors.New("bookingclient: internal error")
)

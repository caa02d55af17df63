package blockeddate

import "errors"

var (
	// ErrBlockNotFound is returned when the blocked date does not exist.
	ErrBlockNotFound = errors.New("blockeddate.repository: blocked date not found")

	// ErrAlreadyBlocked is returned when the date is already blocked
	// for the same scope (space or campus-wide).
	ErrAlreadyBlocked = errors.New("blockeddate.repository: date already blocked")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("blockeddate.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails.
	ErrExecQuery = errors.New("blockeddate.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("blockeddate.repository: failed to scan row")
)

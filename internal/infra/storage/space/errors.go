package space

import "errors"

var (
	// ErrSpaceNotFound is returned when the space does not exist.
	ErrSpaceNotFound = errors.New("space.repository: space not found")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("space.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails.
	ErrExecQuery = errors.New("space.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("space.repository: failed to scan row")
)

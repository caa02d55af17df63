package recommend_space

import "errors"

var (
	// ErrInternal is returned on unexpected use case failures.
	// A requirement nothing fits is a normal result, not an error.
	ErrInternal = errors.New("usecase: internal error")
)

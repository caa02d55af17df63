package spaces

import "errors"

var (
	ErrSpaceNotFound  = errors.New("spaces.service: space not found")
	ErrBlockNotFound  = errors.New("spaces.service: blocked date not found")
	ErrAlreadyBlocked = errors.New("spaces.service: date already blocked")
	ErrAccessDenied   = errors.New("spaces.service: access denied")
	ErrInvalidInput   = errors.New("spaces.service: invalid input")
	ErrInternal       = errors.New("spaces.service: internal error")
)

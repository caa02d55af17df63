package recommend_space

import (
	"context"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
)

// SpaceRepository is the candidate source.
// The returned order is the enumeration order ties break on.
type SpaceRepository interface {
	ListActive(ctx context.Context) ([]*domain.Space, error)
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

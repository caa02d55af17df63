package get_day_slots

import (
	"context"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
)

// BookingRepository lists the bookings of a space.
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// SpaceRepository resolves the requested space.
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
}

// BlockedDateRepository checks administrative blocks.
type BlockedDateRepository interface {
	IsBlocked(ctx context.Context, spaceID int64, date time.Time) (bool, error)
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

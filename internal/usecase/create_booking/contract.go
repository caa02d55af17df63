package create_booking

import (
	"context"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

// BookingRepository is the booking persistence contract.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// CountOverlapping counts active bookings strictly overlapping the
	// interval; touching boundaries do not conflict.
	CountOverlapping(ctx context.Context, spaceID int64, date time.Time, start, end types.TimeString, excludeID *int64) (int, error)
}

// SpaceRepository resolves the requested space.
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
}

// BlockedDateRepository checks administrative blocks.
type BlockedDateRepository interface {
	IsBlocked(ctx context.Context, spaceID int64, date time.Time) (bool, error)
}

// Notifier delivers best-effort notifications; it must never fail the
// booking flow.
type Notifier interface {
	NotifyStaffBestEffort(ctx context.Context, message string)
}

// AuditLog records actions best-effort.
type AuditLog interface {
	Insert(ctx context.Context, userID int64, action string) error
}

// TransactionManager wraps the conflict check and insert so two
// concurrent requests cannot both pass the check.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swapped out in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

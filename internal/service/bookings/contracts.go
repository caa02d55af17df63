package bookings

import (
	"context"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

// BookingRepository is the booking persistence contract.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	CountOverlapping(ctx context.Context, spaceID int64, date time.Time, start, end types.TimeString, excludeID *int64) (int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, rejectionReason *string) error
	Cancel(ctx context.Context, id int64, reason string) error
	Reschedule(ctx context.Context, id int64, date time.Time, start, end types.TimeString, status domain.BookingStatus, decidedBy int64) error
	GetExpirable(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	MarkExpired(ctx context.Context, id int64, reason string) error
}

// Notifier delivers best-effort notifications.
type Notifier interface {
	NotifyUserBestEffort(ctx context.Context, userID int64, message string)
	NotifyStaffBestEffort(ctx context.Context, message string)
}

// AuditLog records actions best-effort.
type AuditLog interface {
	Insert(ctx context.Context, userID int64, action string) error
}

// TimeProvider supplies the current time (swapped out in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract of the service.
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

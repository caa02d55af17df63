package spaces

import (
	"context"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
)

// SpaceRepository is the space persistence contract.
type SpaceRepository interface {
	ListActive(ctx context.Context) ([]*domain.Space, error)
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
}

// BlockedDateRepository is the blocked date persistence contract.
type BlockedDateRepository interface {
	ListForSpace(ctx context.Context, spaceID int64, from time.Time) ([]*domain.BlockedDate, error)
	ListAll(ctx context.Context) ([]*domain.BlockedDate, error)
	Create(ctx context.Context, block *domain.BlockedDate) (*domain.BlockedDate, error)
	Delete(ctx context.Context, id int64) error
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

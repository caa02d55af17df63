package audit

import (
	"context"

	auditRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/audit"
)

// AuditRepository reads the append-only action log.
type AuditRepository interface {
	ListRecent(ctx context.Context, limit uint64) ([]*auditRepo.Entry, error)
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

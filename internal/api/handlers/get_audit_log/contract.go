package get_audit_log

import (
	"context"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/audit"
)

type AuditService interface {
	ListRecent(ctx context.Context, caller audit.Caller, limit uint64) (*audit.ActionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
)

var (
	ErrAccessDenied = errors.New("audit.service: access denied")
	ErrInternal     = errors.New("audit.service: internal error")
)

const defaultLimit = 50

// Caller identifies who is asking.
type Caller struct {
	UserID int64
	Role   string
}

// ActionResponse is one logged action.
type ActionResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActionListResponse is the recent activity feed.
type ActionListResponse struct {
	Actions []ActionResponse `json:"actions"`
}

// Service exposes the action log for the staff dashboard.
type Service struct {
	auditRepo AuditRepository
	logger    Logger
}

// NewService creates an audit service.
func NewService(auditRepo AuditRepository, logger Logger) *Service {
	return &Service{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// ListRecent returns the newest actions, capped at limit (a zero limit
// applies the default). Staff only.
func (s *Service) ListRecent(ctx context.Context, caller Caller, limit uint64) (*ActionListResponse, error) {
	if !domain.IsStaffRole(caller.Role) {
		s.logger.Warn("ListRecent: access denied for user=%d role=%q", caller.UserID, caller.Role)
		return nil, ErrAccessDenied
	}

	if limit == 0 {
		limit = defaultLimit
	}

	entries, err := s.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("ListRecent: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRecent - repository error: %v", ErrInternal, err)
	}

	actions := make([]ActionResponse, 0, len(entries))
	for _, e := range entries {
		actions = append(actions, ActionResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			Action:    e.Action,
			CreatedAt: e.CreatedAt,
		})
	}

	return &ActionListResponse{Actions: actions}, nil
}

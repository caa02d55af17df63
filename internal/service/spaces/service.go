package spaces

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	blockedRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/blockeddate"
	spaceRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/space"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/spaces/models"
)

// Service exposes the space catalog and blocked date administration.
type Service struct {
	spaceRepo       SpaceRepository
	blockedDateRepo BlockedDateRepository
	auditLog        AuditLog
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates a spaces service.
func NewService(
	spaceRepo SpaceRepository,
	blockedDateRepo BlockedDateRepository,
	auditLog AuditLog,
	logger Logger,
) *Service {
	return &Service{
		spaceRepo:       spaceRepo,
		blockedDateRepo: blockedDateRepo,
		auditLog:        auditLog,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List returns all bookable spaces.
func (s *Service) List(ctx context.Context) (*models.SpaceListResponse, error) {
	spaces, err := s.spaceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpaceList(spaces), nil
}

// GetByID returns one space.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("GetByID: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetByID: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpace(space), nil
}

// UnavailableDates returns the future dates on which the space cannot
// be booked, combining per-space and campus-wide blocks.
func (s *Service) UnavailableDates(ctx context.Context, spaceID int64) (*models.UnavailableDatesResponse, error) {
	if _, err := s.GetByID(ctx, spaceID); err != nil {
		return nil, err
	}

	// The column is DATE, so compare from midnight: a wall-clock value
	// would exclude blocks on the current day.
	now := s.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	blocks, err := s.blockedDateRepo.ListForSpace(ctx, spaceID, from)
	if err != nil {
		s.logger.Error("UnavailableDates: repository error for space id=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: UnavailableDates - repository error: %v", ErrInternal, err)
	}

	// Global and per-space blocks can land on the same date.
	seen := make(map[string]struct{}, len(blocks))
	dates := make([]string, 0, len(blocks))
	for _, b := range blocks {
		date := b.Date.Format(domain.DateFormat)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}

	return &models.UnavailableDatesResponse{SpaceID: spaceID, Dates: dates}, nil
}

// ListBlocks returns all configured blocks for the staff dashboard.
func (s *Service) ListBlocks(ctx context.Context, caller models.Caller) (*models.BlockedDateListResponse, error) {
	if !caller.IsStaff() {
		s.logger.Warn("ListBlocks: access denied for user=%d role=%q", caller.UserID, caller.Role)
		return nil, ErrAccessDenied
	}

	blocks, err := s.blockedDateRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDateList(blocks), nil
}

// AddBlock blocks a date for one space, or campus-wide when SpaceID is
// nil. Staff only.
func (s *Service) AddBlock(ctx context.Context, req *models.AddBlockRequest) (*models.BlockedDateResponse, error) {
	if !req.Caller.IsStaff() {
		s.logger.Warn("AddBlock: access denied for user=%d role=%q", req.Caller.UserID, req.Caller.Role)
		return nil, ErrAccessDenied
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	if req.SpaceID != nil {
		if _, err := s.GetByID(ctx, *req.SpaceID); err != nil {
			return nil, err
		}
	}

	created, err := s.blockedDateRepo.Create(ctx, &domain.BlockedDate{
		SpaceID: req.SpaceID,
		Date:    req.Date,
		Reason:  req.Reason,
	})
	if err != nil {
		if errors.Is(err, blockedRepo.ErrAlreadyBlocked) {
			s.logger.Warn("AddBlock: date %s already blocked", req.Date.Format(domain.DateFormat))
			return nil, ErrAlreadyBlocked
		}
		s.logger.Error("AddBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddBlock - repository error: %v", ErrInternal, err)
	}

	scope := "all spaces"
	if req.SpaceID != nil {
		scope = fmt.Sprintf("space %d", *req.SpaceID)
	}
	s.audit(ctx, req.Caller.UserID, fmt.Sprintf("Blocked %s on %s: %s",
		scope, req.Date.Format(domain.DateFormat), req.Reason))

	s.logger.Info("AddBlock: block id=%d created by user=%d", created.ID, req.Caller.UserID)
	return models.FromDomainBlockedDate(created), nil
}

// RemoveBlock lifts a block. Staff only.
func (s *Service) RemoveBlock(ctx context.Context, req *models.RemoveBlockRequest) error {
	if !req.Caller.IsStaff() {
		s.logger.Warn("RemoveBlock: access denied for user=%d role=%q", req.Caller.UserID, req.Caller.Role)
		return ErrAccessDenied
	}

	if err := s.blockedDateRepo.Delete(ctx, req.BlockID); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockNotFound) {
			s.logger.Warn("RemoveBlock: block id=%d not found", req.BlockID)
			return ErrBlockNotFound
		}
		s.logger.Error("RemoveBlock: repository error for block id=%d: %v", req.BlockID, err)
		return fmt.Errorf("%w: RemoveBlock - repository error: %v", ErrInternal, err)
	}

	s.audit(ctx, req.Caller.UserID, fmt.Sprintf("Removed blocked date %d", req.BlockID))

	s.logger.Info("RemoveBlock: block id=%d removed by user=%d", req.BlockID, req.Caller.UserID)
	return nil
}

func (s *Service) audit(ctx context.Context, userID int64, action string) {
	if err := s.auditLog.Insert(ctx, userID, action); err != nil {
		s.logger.Error("audit log write failed: %v", err)
	}
}

package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	spaceRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/space"
)

// UseCase creates booking requests.
type UseCase struct {
	bookingRepo     BookingRepository
	spaceRepo       SpaceRepository
	blockedDateRepo BlockedDateRepository
	notifier        Notifier
	auditLog        AuditLog
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the booking creation use case.
func NewUseCase(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	blockedDateRepo BlockedDateRepository,
	notifier Notifier,
	auditLog AuditLog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		spaceRepo:       spaceRepo,
		blockedDateRepo: blockedDateRepo,
		notifier:        notifier,
		auditLog:        auditLog,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the booking flow. The conflict check and the insert run
// inside one serializable transaction so that two concurrent requests
// for overlapping intervals cannot both succeed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, space=%d, date=%s, time=%s-%s, count=%d",
		req.UserID, req.SpaceID, req.Date.Format(domain.DateFormat),
		req.StartTime, req.EndTime, req.ExpectedCount)

	// 1. Field validation.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Date validation against the current time.
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Resolve the space.
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CreateBooking: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	if !space.IsActive {
		uc.logger.Warn("CreateBooking: space id=%d is inactive", req.SpaceID)
		return nil, ErrSpaceNotAvailable
	}

	// 4. Capacity gate: the server-side twin of the recommender's
	// eligibility rule.
	if !space.CanSeat(req.ExpectedCount) {
		uc.logger.Warn("CreateBooking: count=%d exceeds capacity=%d of space id=%d",
			req.ExpectedCount, space.Capacity, space.ID)
		return nil, fmt.Errorf("%w: space holds %d", ErrCapacityExceeded, space.Capacity)
	}

	// 5. Blocked date check (space-specific and campus-wide).
	blocked, err := uc.blockedDateRepo.IsBlocked(ctx, req.SpaceID, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: blocked date check failed: %v", err)
		return nil, fmt.Errorf("%w: blocked date check: %v", ErrInternal, err)
	}
	if blocked {
		uc.logger.Warn("CreateBooking: date %s is blocked for space id=%d",
			req.Date.Format(domain.DateFormat), req.SpaceID)
		return nil, ErrDateBlocked
	}

	// 6. Conflict check + insert, atomically.
	booking := &domain.Booking{
		SpaceID:       req.SpaceID,
		UserID:        req.UserID,
		BookingDate:   req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		ExpectedCount: req.ExpectedCount,
		Purpose:       req.Purpose,
		Status:        domain.StatusPending,
		SpaceName:     space.Name,
		SpaceCapacity: space.Capacity,
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.CountOverlapping(
			txCtx, req.SpaceID, req.Date, req.StartTime, req.EndTime, nil)
		if err != nil {
			return fmt.Errorf("%w: conflict check: %v", ErrInternal, err)
		}
		if overlapping > 0 {
			return ErrSlotConflict
		}

		_, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			uc.logger.Warn("CreateBooking: slot conflict for space id=%d on %s %s-%s",
				req.SpaceID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return nil, ErrSlotConflict
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	// 7. Best-effort side effects: staff heads-up and audit trail.
	uc.notifier.NotifyStaffBestEffort(ctx, fmt.Sprintf(
		"New booking request for %s on %s %s-%s (%d people)",
		space.Name, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.ExpectedCount))

	if err := uc.auditLog.Insert(ctx, req.UserID, fmt.Sprintf(
		"Submitted booking request %d for %s on %s",
		booking.ID, space.Name, req.Date.Format(domain.DateFormat))); err != nil {
		uc.logger.Error("CreateBooking: audit log write failed: %v", err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d for user=%d", booking.ID, req.UserID)

	return &Response{
		ID:            booking.ID,
		SpaceID:       booking.SpaceID,
		SpaceName:     booking.SpaceName,
		UserID:        booking.UserID,
		Date:          booking.BookingDate,
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		ExpectedCount: booking.ExpectedCount,
		Purpose:       booking.Purpose,
		Status:        string(booking.Status),
		CreatedAt:     booking.CreatedAt,
	}, nil
}

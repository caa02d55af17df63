package get_day_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	spaceRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/space"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/ptr"
)

// UseCase reports one space's occupied intervals for a date.
// Clients render the result as a day timetable next to the booking form.
type UseCase struct {
	bookingRepo     BookingRepository
	spaceRepo       SpaceRepository
	blockedDateRepo BlockedDateRepository
	logger          Logger
}

// NewUseCase creates the day-slots use case.
func NewUseCase(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	blockedDateRepo BlockedDateRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		spaceRepo:       spaceRepo,
		blockedDateRepo: blockedDateRepo,
		logger:          logger,
	}
}

// Execute validates the request and collects the day schedule.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("GetDaySlots: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	blocked, err := uc.blockedDateRepo.IsBlocked(ctx, req.SpaceID, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: blocked date check failed: %v", err)
		return nil, fmt.Errorf("%w: blocked date check: %v", ErrInternal, err)
	}

	filter := domain.BookingsFilter{
		SpaceID:   ptr.Ptr(req.SpaceID),
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	intervals := toIntervals(bookings)

	uc.logger.Info("GetDaySlots: space=%d date=%s intervals=%d blocked=%t",
		req.SpaceID, req.Date.Format(domain.DateFormat), len(intervals), blocked)

	return &Response{
		SpaceID:   req.SpaceID,
		Date:      req.Date,
		Blocked:   blocked,
		Intervals: intervals,
	}, nil
}

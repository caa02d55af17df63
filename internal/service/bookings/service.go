package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	bookingRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/booking"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/bookings/models"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/ptr"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

// Service handles booking reads and lifecycle transitions past
// creation: cancel by the requester, approve/reject/reschedule by staff.
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	auditLog     AuditLog
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a bookings service.
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	auditLog AuditLog,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		auditLog:     auditLog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID returns a booking. Requesters see their own bookings; staff
// see everything.
func (s *Service) GetByID(ctx context.Context, id int64, caller models.Caller) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, caller.UserID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != caller.UserID && !caller.IsStaff() {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings returns one user's booking history, optionally
// narrowed by status. Users read their own history; staff read anyone's.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: target=%d caller=%d status=%v",
		req.TargetUserID, req.Caller.UserID, req.Status)

	if req.TargetUserID != req.Caller.UserID && !req.Caller.IsStaff() {
		s.logger.Warn("GetUserBookings: access denied for user=%d to history of user=%d",
			req.Caller.UserID, req.TargetUserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.TargetUserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.TargetUserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetAllWithFilter returns bookings for the staff dashboard with
// optional space, period and status filters.
func (s *Service) GetAllWithFilter(ctx context.Context, req *models.GetAdminBookingsRequest) (*models.BookingListResponse, error) {
	if !req.Caller.IsStaff() {
		s.logger.Warn("GetAllWithFilter: access denied for user=%d role=%q", req.Caller.UserID, req.Caller.Role)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAllWithFilter: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAllWithFilter: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllWithFilter - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllWithFilter: fetched %d bookings for user=%d", len(bookings), req.Caller.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel withdraws a booking on behalf of its requester. Only future
// pending or approved bookings can be withdrawn.
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: booking id=%d by user=%d", req.BookingID, req.Caller.UserID)

	booking, err := s.getBooking(ctx, "Cancel", req.BookingID)
	if err != nil {
		return err
	}

	if booking.UserID != req.Caller.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.Caller.UserID, req.BookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled(s.timeProvider.Now()) {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled (status=%s)", req.BookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, req.BookingID, req.Reason); err != nil {
		s.logger.Error("Cancel: repository error for booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.notifier.NotifyStaffBestEffort(ctx, fmt.Sprintf(
		"Booking for %s on %s was cancelled by the requester. Reason: %s",
		booking.SpaceName, booking.BookingDate.Format(domain.DateFormat), req.Reason))

	s.audit(ctx, req.Caller.UserID, fmt.Sprintf("Cancelled booking %d for %s", booking.ID, booking.SpaceName))

	s.logger.Info("Cancel: booking id=%d cancelled", req.BookingID)
	return nil
}

// Decide approves or rejects a pending booking on behalf of staff.
func (s *Service) Decide(ctx context.Context, req *models.DecideBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Decide: booking id=%d approve=%t by user=%d", req.BookingID, req.Approve, req.Caller.UserID)

	if !req.Caller.IsStaff() {
		s.logger.Warn("Decide: access denied for user=%d role=%q", req.Caller.UserID, req.Caller.Role)
		return nil, ErrAccessDenied
	}

	booking, err := s.getBooking(ctx, "Decide", req.BookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeDecided() {
		s.logger.Warn("Decide: booking id=%d is not pending (status=%s)", req.BookingID, booking.Status)
		return nil, ErrAlreadyDecided
	}

	status := domain.StatusApproved
	var rejectionReason *string
	if !req.Approve {
		status = domain.StatusRejected
		rejectionReason = ptr.Ptr(req.Reason)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, req.BookingID, status, req.Caller.UserID, rejectionReason); err != nil {
		s.logger.Error("Decide: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
	}

	date := booking.BookingDate.Format(domain.DateFormat)
	if req.Approve {
		s.notifier.NotifyUserBestEffort(ctx, booking.UserID, fmt.Sprintf(
			"Your booking for %s on %s has been APPROVED.", booking.SpaceName, date))
		s.audit(ctx, req.Caller.UserID, fmt.Sprintf("Approved booking %d", booking.ID))
	} else {
		s.notifier.NotifyUserBestEffort(ctx, booking.UserID, fmt.Sprintf(
			"Your booking for %s on %s has been REJECTED. Reason: %s", booking.SpaceName, date, req.Reason))
		s.audit(ctx, req.Caller.UserID, fmt.Sprintf("Rejected booking %d", booking.ID))
	}

	return s.GetByID(ctx, req.BookingID, req.Caller)
}

// Reschedule moves a booking to a new date and interval on behalf of
// staff. The target interval must not conflict with other active
// bookings of the space; the booking itself is excluded from the
// check. A rejected booking becomes approved when staff reschedule it.
func (s *Service) Reschedule(ctx context.Context, req *models.RescheduleBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Reschedule: booking id=%d by user=%d to %s %s-%s",
		req.BookingID, req.Caller.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if !req.Caller.IsStaff() {
		s.logger.Warn("Reschedule: access denied for user=%d role=%q", req.Caller.UserID, req.Caller.Role)
		return nil, ErrAccessDenied
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time", ErrInvalidInput)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time", ErrInvalidInput)
	}
	if !end.IsAfter(start) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "Reschedule", req.BookingID)
	if err != nil {
		return nil, err
	}

	overlapping, err := s.bookingRepo.CountOverlapping(
		ctx, booking.SpaceID, req.Date, start, end, &booking.ID)
	if err != nil {
		s.logger.Error("Reschedule: conflict check failed for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Reschedule - conflict check: %v", ErrInternal, err)
	}
	if overlapping > 0 {
		s.logger.Warn("Reschedule: conflict for booking id=%d on %s %s-%s",
			req.BookingID, req.Date.Format(domain.DateFormat), start, end)
		return nil, ErrSlotConflict
	}

	// Staff moving a rejected booking implies approving it.
	status := booking.Status
	if status == domain.StatusRejected {
		status = domain.StatusApproved
	}

	if err := s.bookingRepo.Reschedule(ctx, req.BookingID, req.Date, start, end, status, req.Caller.UserID); err != nil {
		s.logger.Error("Reschedule: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	s.notifier.NotifyUserBestEffort(ctx, booking.UserID, fmt.Sprintf(
		"Your booking for %s has been RESCHEDULED to %s %s-%s.",
		booking.SpaceName, req.Date.Format(domain.DateFormat), start, end))

	s.audit(ctx, req.Caller.UserID, fmt.Sprintf("Rescheduled booking %d to %s %s-%s",
		booking.ID, req.Date.Format(domain.DateFormat), start, end))

	return s.GetByID(ctx, req.BookingID, req.Caller)
}

// ExpireOverdue rejects pending bookings whose approval deadline
// passed and notifies each requester. A booking decided by staff
// between the scan and the update is left alone. Returns the number
// of bookings expired.
func (s *Service) ExpireOverdue(ctx context.Context) (int, error) {
	overdue, err := s.bookingRepo.GetExpirable(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ExpireOverdue: repository error: %v", err)
		return 0, fmt.Errorf("%w: ExpireOverdue - repository error: %v", ErrInternal, err)
	}

	count := 0
	for _, booking := range overdue {
		reason := fmt.Sprintf("Not approved within the %d-hour window", domain.ApprovalWindowHours)
		if err := s.bookingRepo.MarkExpired(ctx, booking.ID, reason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Info("ExpireOverdue: booking id=%d decided concurrently, skipping", booking.ID)
				continue
			}
			s.logger.Error("ExpireOverdue: repository error for booking id=%d: %v", booking.ID, err)
			return count, fmt.Errorf("%w: ExpireOverdue - repository error: %v", ErrInternal, err)
		}

		s.notifier.NotifyUserBestEffort(ctx, booking.UserID, fmt.Sprintf(
			"Your booking for %s on %s has EXPIRED: it was not approved within the %d-hour window.",
			booking.SpaceName, booking.BookingDate.Format(domain.DateFormat), domain.ApprovalWindowHours))

		s.audit(ctx, booking.UserID, fmt.Sprintf("Booking %d for %s auto-expired", booking.ID, booking.SpaceName))

		s.logger.Warn("ExpireOverdue: booking id=%d for user=%d expired", booking.ID, booking.UserID)
		count++
	}

	return count, nil
}

func (s *Service) getBooking(ctx context.Context, method string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

func (s *Service) audit(ctx context.Context, userID int64, action string) {
	if err := s.auditLog.Insert(ctx, userID, action); err != nil {
		s.logger.Error("audit log write failed: %v", err)
	}
}

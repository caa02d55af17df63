package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	bookingRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/booking"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/bookings/models"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	overlapCount int
	overlapErr   error
	expirable    []*domain.Booking // overrides the deadline scan

	updatedStatus   *domain.BookingStatus
	cancelledID     *int64
	rescheduledID   *int64
	rescheduledDate time.Time
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString, _ *int64) (int, error) {
	return f.overlapCount, f.overlapErr
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, decidedBy int64, rejectionReason *string) error {
	f.updatedStatus = &status
	if b, ok := f.bookings[id]; ok {
		b.Status = status
		b.DecidedBy = &decidedBy
		b.RejectionReason = rejectionReason
	}
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = &id
	if b, ok := f.bookings[id]; ok {
		b.Status = domain.StatusCancelled
		b.CancellationReason = &reason
	}
	return nil
}

func (f *fakeBookingRepo) Reschedule(_ context.Context, id int64, date time.Time, start, end types.TimeString, status domain.BookingStatus, decidedBy int64) error {
	f.rescheduledID = &id
	f.rescheduledDate = date
	if b, ok := f.bookings[id]; ok {
		b.BookingDate = date
		b.StartTime = start
		b.EndTime = end
		b.Status = status
		b.DecidedBy = &decidedBy
	}
	return nil
}

func (f *fakeBookingRepo) GetExpirable(_ context.Context, now time.Time) ([]*domain.Booking, error) {
	if f.expirable != nil {
		return f.expirable, nil
	}
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.IsOverdue(now) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) MarkExpired(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok || b.Status != domain.StatusPending {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusRejected
	b.AutoExpired = true
	b.RejectionReason = &reason
	return nil
}

type fakeNotifier struct {
	userMessages  []string
	staffMessages []string
}

func (f *fakeNotifier) NotifyUserBestEffort(_ context.Context, _ int64, message string) {
	f.userMessages = append(f.userMessages, message)
}

func (f *fakeNotifier) NotifyStaffBestEffort(_ context.Context, message string) {
	f.staffMessages = append(f.staffMessages, message)
}

type fakeAuditLog struct {
	actions []string
}

func (f *fakeAuditLog) Insert(_ context.Context, _ int64, action string) error {
	f.actions = append(f.actions, action)
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testBooking(t *testing.T, id, userID int64, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:            id,
		SpaceID:       3,
		UserID:        userID,
		BookingDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:     mustTime(t, "10:00"),
		EndTime:       mustTime(t, "12:00"),
		ExpectedCount: 40,
		Purpose:       "Department seminar",
		Status:        status,
		SpaceName:     "Conference Room",
		SpaceCapacity: 45,
	}
}

func newTestService(repo *fakeBookingRepo, notifier *fakeNotifier, audit *fakeAuditLog) *Service {
	svc := NewService(repo, notifier, audit, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)}
	return svc
}

func TestGetByID_Owner(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusPending))
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	resp, err := svc.GetByID(context.Background(), 1, models.Caller{UserID: 7, Role: "faculty"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Conference Room", resp.SpaceName)
}

func TestGetByID_OtherUserDenied(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusPending))
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	_, err := svc.GetByID(context.Background(), 1, models.Caller{UserID: 8, Role: "faculty"})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_StaffSeesAll(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusPending))
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	resp, err := svc.GetByID(context.Background(), 1, models.Caller{UserID: 8, Role: "admin"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.UserID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeNotifier{}, &fakeAuditLog{})

	_, err := svc.GetByID(context.Background(), 99, models.Caller{UserID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusApproved))
	notifier := &fakeNotifier{}
	audit := &fakeAuditLog{}
	svc := newTestService(repo, notifier, audit)

	err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 7, Role: "faculty"},
		Reason:    "event postponed",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.cancelledID)
	assert.Equal(t, int64(1), *repo.cancelledID)
	require.Len(t, notifier.staffMessages, 1)
	assert.Contains(t, notifier.staffMessages[0], "event postponed")
	assert.Len(t, audit.actions, 1)
}

func TestCancel_NotOwner(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusApproved))
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 8, Role: "admin"},
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.cancelledID)
}

func TestCancel_AlreadyRejected(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusRejected))
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 7},
	})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_PastBooking(t *testing.T) {
	booking := testBooking(t, 1, 7, domain.StatusApproved)
	booking.BookingDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeBookingRepo(booking), &fakeNotifier{}, &fakeAuditLog{})

	err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 7},
	})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestDecide_Approve(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusPending))
	notifier := &fakeNotifier{}
	audit := &fakeAuditLog{}
	svc := newTestService(repo, notifier, audit)

	resp, err := svc.Decide(context.Background(), &models.DecideBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 2, Role: "admin"},
		Approve:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	require.Len(t, notifier.userMessages, 1)
	assert.Contains(t, notifier.userMessages[0], "APPROVED")
	assert.Len(t, audit.actions, 1)
}

func TestDecide_Reject(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusPending))
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, &fakeAuditLog{})

	resp, err := svc.Decide(context.Background(), &models.DecideBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 2, Role: "receptionist"},
		Approve:   false,
		Reason:    "maintenance scheduled",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "maintenance scheduled", *resp.RejectionReason)
	require.Len(t, notifier.userMessages, 1)
	assert.Contains(t, notifier.userMessages[0], "REJECTED")
}

func TestDecide_NotStaff(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusPending))
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	_, err := svc.Decide(context.Background(), &models.DecideBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 7, Role: "faculty"},
		Approve:   true,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDecide_AlreadyDecided(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusApproved))
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	_, err := svc.Decide(context.Background(), &models.DecideBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 2, Role: "admin"},
		Approve:   true,
	})

	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestReschedule(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusApproved))
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, &fakeAuditLog{})

	newDate := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	resp, err := svc.Reschedule(context.Background(), &models.RescheduleBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 2, Role: "admin"},
		Date:      newDate,
		StartTime: "14:00",
		EndTime:   "16:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-09-12", resp.Date)
	assert.Equal(t, "14:00", resp.StartTime)
	require.Len(t, notifier.userMessages, 1)
	assert.Contains(t, notifier.userMessages[0], "RESCHEDULED")
}

func TestReschedule_RejectedBecomesApproved(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusRejected))
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	resp, err := svc.Reschedule(context.Background(), &models.RescheduleBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 2, Role: "admin"},
		Date:      time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "16:00",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
}

func TestReschedule_Conflict(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusApproved))
	repo.overlapCount = 1
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	_, err := svc.Reschedule(context.Background(), &models.RescheduleBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 2, Role: "admin"},
		Date:      time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "16:00",
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, repo.rescheduledID)
}

func TestReschedule_InvalidTimeRange(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusApproved))
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	_, err := svc.Reschedule(context.Background(), &models.RescheduleBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 2, Role: "admin"},
		Date:      time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime: "16:00",
		EndTime:   "14:00",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReschedule_NotStaff(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(t, 1, 7, domain.StatusApproved))
	svc := newTestService(repo, &fakeNotifier{}, &fakeAuditLog{})

	_, err := svc.Reschedule(context.Background(), &models.RescheduleBookingRequest{
		BookingID: 1,
		Caller:    models.Caller{UserID: 7, Role: "faculty"},
		Date:      time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "16:00",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	pending := testBooking(t, 1, 7, domain.StatusPending)
	approved := testBooking(t, 2, 7, domain.StatusApproved)
	other := testBooking(t, 3, 8, domain.StatusPending)
	svc := newTestService(newFakeBookingRepo(pending, approved, other), &fakeNotifier{}, &fakeAuditLog{})

	status := "pending"
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		TargetUserID: 7,
		Caller:       models.Caller{UserID: 7},
		Status:       &status,
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetUserBookings_OtherUserDenied(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeNotifier{}, &fakeAuditLog{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		TargetUserID: 7,
		Caller:       models.Caller{UserID: 8, Role: "faculty"},
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetAllWithFilter_StaffOnly(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeNotifier{}, &fakeAuditLog{})

	_, err := svc.GetAllWithFilter(context.Background(), &models.GetAdminBookingsRequest{
		Caller: models.Caller{UserID: 7, Role: "faculty"},
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExpireOverdue_RejectsAndNotifies(t *testing.T) {
	overdue := testBooking(t, 1, 7, domain.StatusPending)
	overdue.ApprovalDeadline = time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	fresh := testBooking(t, 2, 8, domain.StatusPending)
	fresh.ApprovalDeadline = time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(overdue, fresh)
	notifier := &fakeNotifier{}
	audit := &fakeAuditLog{}
	svc := newTestService(repo, notifier, audit)

	count, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, domain.StatusRejected, overdue.Status)
	assert.True(t, overdue.AutoExpired)
	require.NotNil(t, overdue.RejectionReason)
	assert.Contains(t, *overdue.RejectionReason, "24-hour window")
	require.Len(t, notifier.userMessages, 1)
	assert.Contains(t, notifier.userMessages[0], "EXPIRED")
	assert.Len(t, audit.actions, 1)

	assert.Equal(t, domain.StatusPending, fresh.Status)
	assert.False(t, fresh.AutoExpired)
}

func TestExpireOverdue_ConcurrentDecisionSkipped(t *testing.T) {
	decided := testBooking(t, 1, 7, domain.StatusApproved)
	repo := newFakeBookingRepo(decided)
	repo.expirable = []*domain.Booking{decided}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, &fakeAuditLog{})

	count, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, domain.StatusApproved, decided.Status)
	assert.Empty(t, notifier.userMessages)
}

func TestGetAllWithFilter_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeNotifier{}, &fakeAuditLog{})

	bad := "unknown"
	_, err := svc.GetAllWithFilter(context.Background(), &models.GetAdminBookingsRequest{
		Caller: models.Caller{UserID: 2, Role: "admin"},
		Status: &bad,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

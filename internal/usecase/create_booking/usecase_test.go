package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	spaceRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/space"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

type fakeBookingRepo struct {
	overlapping int
	created     *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = 101
	b.CreatedAt = time.Now()
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) CountOverlapping(ctx context.Context, spaceID int64, date time.Time, start, end types.TimeString, excludeID *int64) (int, error) {
	return f.overlapping, nil
}

type fakeSpaceRepo struct {
	space *domain.Space
}

func (f *fakeSpaceRepo) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	if f.space == nil || f.space.ID != id {
		return nil, spaceRepo.ErrSpaceNotFound
	}
	return f.space, nil
}

type fakeBlockedRepo struct {
	blocked bool
}

func (f *fakeBlockedRepo) IsBlocked(ctx context.Context, spaceID int64, date time.Time) (bool, error) {
	return f.blocked, nil
}

type fakeNotifier struct {
	staffMessages []string
}

func (f *fakeNotifier) NotifyStaffBestEffort(ctx context.Context, message string) {
	f.staffMessages = append(f.staffMessages, message)
}

type fakeAudit struct {
	entries []string
}

func (f *fakeAudit) Insert(ctx context.Context, userID int64, action string) error {
	f.entries = append(f.entries, action)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, spaces *fakeSpaceRepo, blocked *fakeBlockedRepo, notifier *fakeNotifier, audit *fakeAudit) *UseCase {
	uc := NewUseCase(bookings, spaces, blocked, notifier, audit, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)}
	return uc
}

func activeSpace() *domain.Space {
	return &domain.Space{ID: 1, Name: "Main Auditorium", Type: domain.TypeHall, Capacity: 50, IsActive: true}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	bookings := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	audit := &fakeAudit{}
	uc := newTestUseCase(bookings, &fakeSpaceRepo{space: activeSpace()}, &fakeBlockedRepo{}, notifier, audit)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Main Auditorium", resp.SpaceName)

	require.NotNil(t, bookings.created)
	assert.Equal(t, 50, bookings.created.SpaceCapacity)

	require.Len(t, notifier.staffMessages, 1)
	assert.Contains(t, notifier.staffMessages[0], "Main Auditorium")
	assert.Len(t, audit.entries, 1)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: activeSpace()}, &fakeBlockedRepo{}, &fakeNotifier{}, &fakeAudit{})

	req := validRequest()
	req.ExpectedCount = 51

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_ExactCapacityFits(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: activeSpace()}, &fakeBlockedRepo{}, &fakeNotifier{}, &fakeAudit{})

	req := validRequest()
	req.ExpectedCount = 50

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_BlockedDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: activeSpace()}, &fakeBlockedRepo{blocked: true}, &fakeNotifier{}, &fakeAudit{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateBlocked)
}

func TestExecute_SlotConflict(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := newTestUseCase(&fakeBookingRepo{overlapping: 1}, &fakeSpaceRepo{space: activeSpace()}, &fakeBlockedRepo{}, notifier, &fakeAudit{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, notifier.staffMessages, "conflicting booking must not notify staff")
}

func TestExecute_SpaceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{}, &fakeBlockedRepo{}, &fakeNotifier{}, &fakeAudit{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_InactiveSpace(t *testing.T) {
	space := activeSpace()
	space.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: space}, &fakeBlockedRepo{}, &fakeNotifier{}, &fakeAudit{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSpaceNotAvailable)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: activeSpace()}, &fakeBlockedRepo{}, &fakeNotifier{}, &fakeAudit{})

	req := validRequest()
	req.Date = time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/dbmetrics"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/psqlbuilder"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

// Repository provides access to booking records.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"space_id",
	"user_id",
	"booking_date",
	"start_time",
	"end_time",
	"expected_count",
	"purpose",
	"status",
	"space_name",
	"space_capacity",
	"approval_deadline",
	"auto_expired",
	"decided_by",
	"rejection_reason",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create inserts a new booking and fills in its generated fields.
// When the context carries an open transaction it is used, which is how
// the create-booking use case pairs the insert with its conflict check.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"space_id",
			"user_id",
			"booking_date",
			"start_time",
			"end_time",
			"expected_count",
			"purpose",
			"status",
			"space_name",
			"space_capacity",
		).
		Values(
			booking.SpaceID,
			booking.UserID,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.ExpectedCount,
			booking.Purpose,
			booking.Status,
			booking.SpaceName,
			booking.SpaceCapacity,
		).
		Suffix("RETURNING id, approval_deadline, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ApprovalDeadline,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID returns a booking by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetByID - iterate rows: %v", ErrScanRow, err)
		}
		return nil, ErrBookingNotFound
	}

	return scanBooking(rows)
}

// GetByUserID returns a user's bookings, newest event first.
// A non-nil status narrows the result.
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC", "created_at DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, "GetByUserID", query, args)
}

// GetWithFilter returns bookings matching an admin listing filter,
// newest event first within a day by start time.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date DESC", "start_time ASC")

	if filter.SpaceID != nil {
		builder = builder.Where(squirrel.Eq{"space_id": *filter.SpaceID})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		builder = builder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, "GetWithFilter", query, args)
}

// CountOverlapping counts active bookings of a space on a date whose
// interval strictly overlaps [start, end). Touching boundaries do not
// conflict. excludeID skips one booking, used when rescheduling it.
func (r *Repository) CountOverlapping(
	ctx context.Context,
	spaceID int64,
	date time.Time,
	start, end types.TimeString,
	excludeID *int64,
) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"space_id": spaceID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - execute select: %v", ErrExecQuery, err)
	}

	return count, nil
}

// UpdateStatus applies a staff decision to a booking.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.BookingStatus,
	decidedBy int64,
	rejectionReason *string,
) error {
	if status != domain.StatusApproved && status != domain.StatusRejected {
		return fmt.Errorf("%w: UpdateStatus - %s", ErrInvalidStatus, status)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("decided_by", decidedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if rejectionReason != nil {
		builder = builder.Set("rejection_reason", *rejectionReason)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(res, "UpdateStatus")
}

// Cancel marks a booking cancelled by its requester.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(res, "Cancel")
}

// Reschedule moves a booking to a new date and interval.
func (r *Repository) Reschedule(
	ctx context.Context,
	id int64,
	date time.Time,
	start, end types.TimeString,
	status domain.BookingStatus,
	decidedBy int64,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", date).
		Set("start_time", start).
		Set("end_time", end).
		Set("status", status).
		Set("decided_by", decidedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(res, "Reschedule")
}

// GetExpirable returns pending bookings whose approval deadline passed
// and that have not been auto-expired yet, oldest deadline first.
func (r *Repository) GetExpirable(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Eq{"auto_expired": false}).
		Where(squirrel.Lt{"approval_deadline": now}).
		OrderBy("approval_deadline ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetExpirable - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, "GetExpirable", query, args)
}

// MarkExpired rejects a pending booking that missed its approval
// deadline. The status guard makes a concurrent staff decision win:
// an already-decided booking reports ErrBookingNotFound.
func (r *Repository) MarkExpired(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusRejected).
		Set("auto_expired", true).
		Set("rejection_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkExpired - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkExpired - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(res, "MarkExpired")
}

func (r *Repository) queryBookings(
	ctx context.Context,
	executor DBExecutor,
	method string,
	query string,
	args []interface{},
) ([]*domain.Booking, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, method, err)
	}

	return bookings, nil
}

func checkAffected(res sql.Result, method string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, method, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var decidedBy sql.NullInt64
	var rejectionReason, cancellationReason sql.NullString
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.SpaceID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.ExpectedCount,
		&booking.Purpose,
		&booking.Status,
		&booking.SpaceName,
		&booking.SpaceCapacity,
		&booking.ApprovalDeadline,
		&booking.AutoExpired,
		&decidedBy,
		&rejectionReason,
		&cancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking: %v", ErrScanRow, err)
	}

	if decidedBy.Valid {
		booking.DecidedBy = &decidedBy.Int64
	}
	if rejectionReason.Valid {
		booking.RejectionReason = &rejectionReason.String
	}
	if cancellationReason.Valid {
		booking.CancellationReason = &cancellationReason.String
	}
	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

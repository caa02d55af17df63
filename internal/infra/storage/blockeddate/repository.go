package blockeddate

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/dbmetrics"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/psqlbuilder"
)

// DBExecutor is the query surface the repository runs against.
type DBExecutor = dbmetrics.DBExecutor

// Repository provides access to blocked dates.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a blocked-date repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var blockedDateColumns = []string{
	"id",
	"space_id",
	"date",
	"reason",
	"created_at",
}

// ListForSpace returns blocks affecting a space from a given date on:
// blocks scoped to the space itself plus campus-wide blocks.
func (r *Repository) ListForSpace(ctx context.Context, spaceID int64, from time.Time) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedDateColumns...).
		From("blocked_dates").
		Where(squirrel.Or{
			squirrel.Eq{"space_id": spaceID},
			squirrel.Eq{"space_id": nil},
		}).
		Where(squirrel.GtOrEq{"date": from}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForSpace - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBlocks(ctx, executor, "ListForSpace", query, args)
}

// ListAll returns every block, newest date first.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedDateColumns...).
		From("blocked_dates").
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBlocks(ctx, executor, "ListAll", query, args)
}

// IsBlocked reports whether the date is blocked for the space,
// either specifically or campus-wide.
func (r *Repository) IsBlocked(ctx context.Context, spaceID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("blocked_dates").
		Where(squirrel.Or{
			squirrel.Eq{"space_id": spaceID},
			squirrel.Eq{"space_id": nil},
		}).
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsBlocked - execute select: %v", ErrExecQuery, err)
	}

	return count > 0, nil
}

// Create inserts a block after checking the same scope is not blocked
// already. spaceID nil blocks all spaces.
func (r *Repository) Create(ctx context.Context, block *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dupQuery, dupArgs, err := psqlbuilder.Select("COUNT(*)").
		From("blocked_dates").
		Where(squirrel.Eq{"space_id": block.SpaceID}).
		Where(squirrel.Eq{"date": block.Date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build duplicate check: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, dupQuery, dupArgs...).Scan(&count); err != nil {
		return nil, fmt.Errorf("%w: Create - execute duplicate check: %v", ErrExecQuery, err)
	}
	if count > 0 {
		return nil, ErrAlreadyBlocked
	}

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("space_id", "date", "reason").
		Values(block.SpaceID, block.Date, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	block.CreatedAt = createdAt.Time

	return block, nil
}

// Delete removes a block by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

func (r *Repository) queryBlocks(
	ctx context.Context,
	executor DBExecutor,
	method string,
	query string,
	args []interface{},
) ([]*domain.BlockedDate, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var block domain.BlockedDate
		var spaceID sql.NullInt64
		var createdAt sql.NullTime

		if err := rows.Scan(&block.ID, &spaceID, &block.Date, &block.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		if spaceID.Valid {
			block.SpaceID = &spaceID.Int64
		}
		block.CreatedAt = createdAt.Time

		blocks = append(blocks, &block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, method, err)
	}

	return blocks, nil
}

// Package audit is an append-only action log: who did what, when.
// Entries are written best-effort alongside state changes and listed
// on the admin dashboard.
package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/dbmetrics"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("audit.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails.
	ErrExecQuery = errors.New("audit.repository: failed to execute query")
)

// Entry is one recorded action.
type Entry struct {
	ID        int64
	UserID    int64
	Action    string
	CreatedAt time.Time
}

// Repository appends and lists audit entries.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an audit repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert appends an entry.
func (r *Repository) Insert(ctx context.Context, userID int64, action string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("audit_log").
		Columns("user_id", "action").
		Values(userID, action).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListRecent returns the newest limit entries.
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]*Entry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "action", "created_at").
		From("audit_log").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*Entry, 0)
	for rows.Next() {
		var entry Entry
		var createdAt sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %v", ErrExecQuery, err)
		}
		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - iterate rows: %v", ErrExecQuery, err)
	}

	return entries, nil
}

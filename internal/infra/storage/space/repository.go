package space

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/dbmetrics"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/psqlbuilder"
)

// Repository provides access to spaces and their facilities.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a space repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var spaceColumns = []string{
	"id",
	"name",
	"type",
	"location",
	"capacity",
	"description",
	"managed_by",
	"is_active",
	"created_at",
	"updated_at",
}

// ListActive returns all active spaces ordered by id.
// The order is stable: it is the enumeration order the recommender's
// tie-breaking relies on.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		space, err := scanSpace(rows)
		if err != nil {
			return nil, err
		}
		spaces = append(spaces, space)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - iterate rows: %v", ErrScanRow, err)
	}

	if err := r.attachFacilities(ctx, spaces); err != nil {
		return nil, err
	}

	return spaces, nil
}

// GetByID returns one space with its facilities.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("spaces").
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
		return nil, ErrSpaceNotFound
	}

	space, err := scanSpace(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachFacilities(ctx, []*domain.Space{space}); err != nil {
		return nil, err
	}

	return space, nil
}

// attachFacilities fills in the facility lists for the given spaces.
func (r *Repository) attachFacilities(ctx context.Context, spaces []*domain.Space) error {
	if len(spaces) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]int64, len(spaces))
	byID := make(map[int64]*domain.Space, len(spaces))
	for i, s := range spaces {
		ids[i] = s.ID
		byID[s.ID] = s
		s.Facilities = make([]domain.Facility, 0)
	}

	query, args, err := psqlbuilder.Select(
		"sf.space_id",
		"f.id",
		"f.name",
	).
		From("space_facilities sf").
		Join("facilities f ON f.id = sf.facility_id").
		Where(squirrel.Eq{"sf.space_id": ids}).
		OrderBy("f.name ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachFacilities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachFacilities - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var spaceID int64
		var facility domain.Facility
		if err := rows.Scan(&spaceID, &facility.ID, &facility.Name); err != nil {
			return fmt.Errorf("%w: attachFacilities - scan row: %v", ErrScanRow, err)
		}
		if s, ok := byID[spaceID]; ok {
			s.Facilities = append(s.Facilities, facility)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachFacilities - iterate rows: %v", ErrScanRow, err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpace(row rowScanner) (*domain.Space, error) {
	var space domain.Space
	var managedBy sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&space.ID,
		&space.Name,
		&space.Type,
		&space.Location,
		&space.Capacity,
		&space.Description,
		&managedBy,
		&space.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpaceNotFound
		}
		return nil, fmt.Errorf("%w: scanSpace: %v", ErrScanRow, err)
	}

	if managedBy.Valid {
		space.ManagedBy = &managedBy.Int64
	}
	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}

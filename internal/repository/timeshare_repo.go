package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"timeshare_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// TimeshareRepository defines operations for timeshare data
type TimeshareRepository interface {
	Create(ctx context.Context, timeshare *model.Timeshare) error
	FindByID(ctx context.Context, id int) (*model.Timeshare, error)
	FindAll(ctx context.Context, filters model.TimeshareFilters) ([]model.Timeshare, error)
	Update(ctx context.Context, timeshare *model.Timeshare) error
	Delete(ctx context.Context, id int) error

	// Status lookup table
	CreateStatus(ctx context.Context, status *model.TimeshareStatus) error
	FindAllStatuses(ctx context.Context) ([]model.TimeshareStatus, error)
}

type timeshareRepository struct {
	db DB
}

// NewTimeshareRepository creates a new TimeshareRepository
func NewTimeshareRepository(db DB) TimeshareRepository {
	return &timeshareRepository{db: db}
}

// Create inserts a new timeshare into the database
func (r *timeshareRepository) Create(ctx context.Context, t *model.Timeshare) error {
	sql := `INSERT INTO timeshares (name, description, price, start_date, end_date, status_id, place_id, room_id, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		t.Name, t.Description, t.Price, t.StartDate, t.EndDate, t.StatusID, t.PlaceID, t.RoomID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create timeshare: %w", err)
	}
	return nil
}

// FindByID retrieves a timeshare by its ID
func (r *timeshareRepository) FindByID(ctx context.Context, id int) (*model.Timeshare, error) {
	t := &model.Timeshare{}
	sql := `SELECT id, name, description, price, start_date, end_date, status_id, place_id, room_id, created_at, updated_at
            FROM timeshares WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.Price, &t.StartDate, &t.EndDate,
		&t.StatusID, &t.PlaceID, &t.RoomID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find timeshare by ID: %w", err)
	}
	return t, nil
}

// FindAll retrieves timeshares with optional filters
func (r *timeshareRepository) FindAll(ctx context.Context, filters model.TimeshareFilters) ([]model.Timeshare, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, name, description, price, start_date, end_date, status_id, place_id, room_id, created_at, updated_at
                               FROM timeshares WHERE 1=1`)
	args := []interface{}{}
	argCount := 1

	if filters.PlaceID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND place_id = $%d", argCount))
		args = append(args, *filters.PlaceID)
		argCount++
	}
	if filters.StatusID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND status_id = $%d", argCount))
		args = append(args, *filters.StatusID)
		argCount++
	}
	if filters.StartDate != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND start_date >= $%d", argCount))
		args = append(args, *filters.StartDate)
		argCount++
	}
	if filters.EndDate != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND end_date <= $%d", argCount))
		args = append(args, *filters.EndDate)
	}

	queryBuilder.WriteString(" ORDER BY start_date, name")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeshares: %w", err)
	}
	defer rows.Close()

	var timeshares []model.Timeshare
	for rows.Next() {
		var t model.Timeshare
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.Price, &t.StartDate, &t.EndDate,
			&t.StatusID, &t.PlaceID, &t.RoomID, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timeshare row: %w", err)
		}
		timeshares = append(timeshares, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timeshare rows: %w", err)
	}
	return timeshares, nil
}

// Update modifies an existing timeshare
func (r *timeshareRepository) Update(ctx context.Context, t *model.Timeshare) error {
	sql := `UPDATE timeshares SET name = $2, description = $3, price = $4, start_date = $5, end_date = $6,
            status_id = $7, place_id = $8, room_id = $9, updated_at = NOW()
            WHERE id = $1 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql,
		t.ID, t.Name, t.Description, t.Price, t.StartDate, t.EndDate, t.StatusID, t.PlaceID, t.RoomID,
	).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update timeshare: %w", err)
	}
	return nil
}

// Delete removes a timeshare by its ID
func (r *timeshareRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM timeshares WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timeshare: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateStatus inserts a new timeshare status lookup value
func (r *timeshareRepository) CreateStatus(ctx context.Context, status *model.TimeshareStatus) error {
	sql := `INSERT INTO timeshare_statuses (name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, status.Name).Scan(&status.ID); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create timeshare status: %w", err)
	}
	return nil
}

// FindAllStatuses retrieves every timeshare status
func (r *timeshareRepository) FindAllStatuses(ctx context.Context) ([]model.TimeshareStatus, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM timeshare_statuses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeshare statuses: %w", err)
	}
	defer rows.Close()

	var statuses []model.TimeshareStatus
	for rows.Next() {
		var s model.TimeshareStatus
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan status row: %w", err)
		}
		statuses = append(statuses, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status rows: %w", err)
	}
	return statuses, nil
}

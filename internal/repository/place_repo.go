package repository

import (
	"context"
	"errors"
	"fmt"

	"timeshare_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// PlaceRepository defines operations for place data
type PlaceRepository interface {
	Create(ctx context.Context, place *model.Place) error
	FindByID(ctx context.Context, id int) (*model.Place, error)
	FindAll(ctx context.Context) ([]model.Place, error)
	Update(ctx context.Context, place *model.Place) error
	Delete(ctx context.Context, id int) error
}

type placeRepository struct {
	db DB
}

// NewPlaceRepository creates a new PlaceRepository
func NewPlaceRepository(db DB) PlaceRepository {
	return &placeRepository{db: db}
}

// Create inserts a new place into the database
func (r *placeRepository) Create(ctx context.Context, p *model.Place) error {
	sql := `INSERT INTO places (name, location, created_at, updated_at)
            VALUES ($1, $2, NOW(), NOW()) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, p.Name, p.Location).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

// FindByID retrieves a place by its ID
func (r *placeRepository) FindByID(ctx context.Context, id int) (*model.Place, error) {
	p := &model.Place{}
	sql := `SELECT id, name, location, created_at, updated_at FROM places WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&p.ID, &p.Name, &p.Location, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find place by ID: %w", err)
	}
	return p, nil
}

// FindAll retrieves every place
func (r *placeRepository) FindAll(ctx context.Context) ([]model.Place, error) {
	sql := `SELECT id, name, location, created_at, updated_at FROM places ORDER BY name`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	var places []model.Place
	for rows.Next() {
		var p model.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan place row: %w", err)
		}
		places = append(places, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating place rows: %w", err)
	}
	return places, nil
}

// Update modifies an existing place
func (r *placeRepository) Update(ctx context.Context, p *model.Place) error {
	sql := `UPDATE places SET name = $2, location = $3, updated_at = NOW() WHERE id = $1 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, p.ID, p.Name, p.Location).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update place: %w", err)
	}
	return nil
}

// Delete removes a place by its ID
func (r *placeRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

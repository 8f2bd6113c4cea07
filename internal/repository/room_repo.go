package repository

import (
	"context"
	"errors"
	"fmt"

	"timeshare_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// RoomRepository defines operations for room data
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id int) (*model.Room, error)
	FindByPlace(ctx context.Context, placeID int) ([]model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id int) error
}

type roomRepository struct {
	db DB
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db DB) RoomRepository {
	return &roomRepository{db: db}
}

// Create inserts a new room into the database
func (r *roomRepository) Create(ctx context.Context, room *model.Room) error {
	sql := `INSERT INTO rooms (room_number, capacity, place_id, created_at, updated_at)
            VALUES ($1, $2, $3, NOW(), NOW()) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, room.RoomNumber, room.Capacity, room.PlaceID).
		Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// FindByID retrieves a room by its ID
func (r *roomRepository) FindByID(ctx context.Context, id int) (*model.Room, error) {
	room := &model.Room{}
	sql := `SELECT id, room_number, capacity, place_id, created_at, updated_at FROM rooms WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&room.ID, &room.RoomNumber, &room.Capacity, &room.PlaceID, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find room by ID: %w", err)
	}
	return room, nil
}

// FindByPlace retrieves all rooms belonging to a place
func (r *roomRepository) FindByPlace(ctx context.Context, placeID int) ([]model.Room, error) {
	sql := `SELECT id, room_number, capacity, place_id, created_at, updated_at
            FROM rooms WHERE place_id = $1 ORDER BY room_number`
	rows, err := r.db.Query(ctx, sql, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms by place: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.Capacity, &room.PlaceID, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}
	return rooms, nil
}

// Update modifies an existing room
func (r *roomRepository) Update(ctx context.Context, room *model.Room) error {
	sql := `UPDATE rooms SET room_number = $2, capacity = $3, place_id = $4, updated_at = NOW()
            WHERE id = $1 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, room.ID, room.RoomNumber, room.Capacity, room.PlaceID).Scan(&room.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update room: %w", err)
	}
	return nil
}

// Delete removes a room by its ID
func (r *roomRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

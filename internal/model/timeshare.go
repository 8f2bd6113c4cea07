package model

import "time"

// Place represents a resort location where timeshares are offered
type Place struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Room represents a bookable room within a place
type Room struct {
	ID         int       `json:"id"`
	RoomNumber string    `json:"room_number"`
	Capacity   int       `json:"capacity"`
	PlaceID    int       `json:"place_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TimeshareStatus is a lookup value for the lifecycle of a timeshare
type TimeshareStatus struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Timeshare represents a timeshare offering tied to a place and room
type Timeshare struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"` // Pointer for optional field
	Price       int64     `json:"price"`                 // In smallest currency unit
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	StatusID    int       `json:"status_id"`
	PlaceID     int       `json:"place_id"`
	RoomID      *int      `json:"room_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePlaceRequest is used for creating a new place
type CreatePlaceRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// UpdatePlaceRequest allows partial updates of a place
type UpdatePlaceRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}

// CreateRoomRequest is used for creating a new room
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,gt=0"`
	PlaceID    int    `json:"place_id" binding:"required"`
}

// UpdateRoomRequest allows partial updates of a room
type UpdateRoomRequest struct {
	RoomNumber *string `json:"room_number,omitempty"`
	Capacity   *int    `json:"capacity,omitempty" binding:"omitempty,gt=0"`
	PlaceID    *int    `json:"place_id,omitempty"`
}

// CreateTimeshareRequest is used for creating a new timeshare
type CreateTimeshareRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description *string   `json:"description"`
	Price       int64     `json:"price" binding:"required,gt=0"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	StatusID    int       `json:"status_id" binding:"required"`
	PlaceID     int       `json:"place_id" binding:"required"`
	RoomID      *int      `json:"room_id"`
}

// UpdateTimeshareRequest allows partial updates of a timeshare
type UpdateTimeshareRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *int64     `json:"price,omitempty" binding:"omitempty,gt=0"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	StatusID    *int       `json:"status_id,omitempty"`
	PlaceID     *int       `json:"place_id,omitempty"`
	RoomID      *int       `json:"room_id,omitempty"`
}

// TimeshareFilters contains filter parameters for timeshare listing
type TimeshareFilters struct {
	PlaceID   *int
	StatusID  *int
	StartDate *time.Time
	EndDate   *time.Time
}

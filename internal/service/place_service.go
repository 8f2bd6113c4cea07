package service

import (
	"context"
	"errors"
	"fmt"

	"timeshare_manager/internal/model"
	"timeshare_manager/internal/repository"
)

var (
	ErrPlaceNotFound = errors.New("place not found")
	ErrRoomNotFound  = errors.New("room not found")
)

// PlaceService defines operations for places and their rooms
type PlaceService interface {
	CreatePlace(ctx context.Context, req model.CreatePlaceRequest) (*model.Place, error)
	GetPlaceByID(ctx context.Context, id int) (*model.Place, error)
	GetPlaces(ctx context.Context) ([]model.Place, error)
	UpdatePlace(ctx context.Context, id int, req model.UpdatePlaceRequest) (*model.Place, error)
	DeletePlace(ctx context.Context, id int) error

	CreateRoom(ctx context.Context, req model.CreateRoomRequest) (*model.Room, error)
	GetRoomsByPlace(ctx context.Context, placeID int) ([]model.Room, error)
	UpdateRoom(ctx context.Context, id int, req model.UpdateRoomRequest) (*model.Room, error)
	DeleteRoom(ctx context.Context, id int) error
}

type placeService struct {
	placeRepo repository.PlaceRepository
	roomRepo  repository.RoomRepository
}

// NewPlaceService creates a new PlaceService
func NewPlaceService(placeRepo repository.PlaceRepository, roomRepo repository.RoomRepository) PlaceService {
	return &placeService{placeRepo: placeRepo, roomRepo: roomRepo}
}

func (s *placeService) CreatePlace(ctx context.Context, req model.CreatePlaceRequest) (*model.Place, error) {
	place := &model.Place{Name: req.Name, Location: req.Location}
	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, fmt.Errorf("failed to create place in repo: %w", err)
	}
	return place, nil
}

func (s *placeService) GetPlaceByID(ctx context.Context, id int) (*model.Place, error) {
	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find place by ID: %w", err)
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}
	return place, nil
}

func (s *placeService) GetPlaces(ctx context.Context) ([]model.Place, error) {
	places, err := s.placeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	return places, nil
}

func (s *placeService) UpdatePlace(ctx context.Context, id int, req model.UpdatePlaceRequest) (*model.Place, error) {
	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find place for update: %w", err)
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}

	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.Location != nil {
		place.Location = *req.Location
	}

	if err := s.placeRepo.Update(ctx, place); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to update place: %w", err)
	}
	return place, nil
}

func (s *placeService) DeletePlace(ctx context.Context, id int) error {
	if err := s.placeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlaceNotFound
		}
		return fmt.Errorf("failed to delete place: %w", err)
	}
	return nil
}

func (s *placeService) CreateRoom(ctx context.Context, req model.CreateRoomRequest) (*model.Room, error) {
	place, err := s.placeRepo.FindByID(ctx, req.PlaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to check room's place: %w", err)
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}

	room := &model.Room{RoomNumber: req.RoomNumber, Capacity: req.Capacity, PlaceID: req.PlaceID}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room in repo: %w", err)
	}
	return room, nil
}

func (s *placeService) GetRoomsByPlace(ctx context.Context, placeID int) ([]model.Room, error) {
	rooms, err := s.roomRepo.FindByPlace(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *placeService) UpdateRoom(ctx context.Context, id int, req model.UpdateRoomRequest) (*model.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find room for update: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.PlaceID != nil {
		room.PlaceID = *req.PlaceID
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

func (s *placeService) DeleteRoom(ctx context.Context, id int) error {
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

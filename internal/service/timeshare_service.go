package service

import (
	"context"
	"errors"
	"fmt"

	"timeshare_manager/internal/model"
	"timeshare_manager/internal/repository"
)

var (
	ErrTimeshareNotFound = errors.New("timeshare not found")
	ErrStatusExists      = errors.New("timeshare status already exists")
	ErrInvalidDateRange  = errors.New("end date must be after start date")
)

// TimeshareService defines operations for timeshare records
type TimeshareService interface {
	CreateTimeshare(ctx context.Context, req model.CreateTimeshareRequest) (*model.Timeshare, error)
	GetTimeshareByID(ctx context.Context, id int) (*model.Timeshare, error)
	GetTimeshares(ctx context.Context, filters model.TimeshareFilters) ([]model.Timeshare, error)
	UpdateTimeshare(ctx context.Context, id int, req model.UpdateTimeshareRequest) (*model.Timeshare, error)
	DeleteTimeshare(ctx context.Context, id int) error

	CreateStatus(ctx context.Context, name string) (*model.TimeshareStatus, error)
	GetStatuses(ctx context.Context) ([]model.TimeshareStatus, error)
}

type timeshareService struct {
	repo repository.TimeshareRepository
}

// NewTimeshareService creates a new TimeshareService
func NewTimeshareService(repo repository.TimeshareRepository) TimeshareService {
	return &timeshareService{repo: repo}
}

func (s *timeshareService) CreateTimeshare(ctx context.Context, req model.CreateTimeshareRequest) (*model.Timeshare, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	timeshare := &model.Timeshare{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StatusID:    req.StatusID,
		PlaceID:     req.PlaceID,
		RoomID:      req.RoomID,
	}

	if err := s.repo.Create(ctx, timeshare); err != nil {
		return nil, fmt.Errorf("failed to create timeshare in repo: %w", err)
	}
	return timeshare, nil
}

func (s *timeshareService) GetTimeshareByID(ctx context.Context, id int) (*model.Timeshare, error) {
	timeshare, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find timeshare by ID: %w", err)
	}
	if timeshare == nil {
		return nil, ErrTimeshareNotFound
	}
	return timeshare, nil
}

func (s *timeshareService) GetTimeshares(ctx context.Context, filters model.TimeshareFilters) ([]model.Timeshare, error) {
	timeshares, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeshares: %w", err)
	}
	return timeshares, nil
}

func (s *timeshareService) UpdateTimeshare(ctx context.Context, id int, req model.UpdateTimeshareRequest) (*model.Timeshare, error) {
	timeshare, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find timeshare for update: %w", err)
	}
	if timeshare == nil {
		return nil, ErrTimeshareNotFound
	}

	if req.Name != nil {
		timeshare.Name = *req.Name
	}
	if req.Description != nil {
		timeshare.Description = req.Description
	}
	if req.Price != nil {
		timeshare.Price = *req.Price
	}
	if req.StartDate != nil {
		timeshare.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		timeshare.EndDate = *req.EndDate
	}
	if req.StatusID != nil {
		timeshare.StatusID = *req.StatusID
	}
	if req.PlaceID != nil {
		timeshare.PlaceID = *req.PlaceID
	}
	if req.RoomID != nil {
		timeshare.RoomID = req.RoomID
	}

	if !timeshare.EndDate.After(timeshare.StartDate) {
		return nil, ErrInvalidDateRange
	}

	if err := s.repo.Update(ctx, timeshare); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTimeshareNotFound
		}
		return nil, fmt.Errorf("failed to update timeshare: %w", err)
	}
	return timeshare, nil
}

func (s *timeshareService) DeleteTimeshare(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTimeshareNotFound
		}
		return fmt.Errorf("failed to delete timeshare: %w", err)
	}
	return nil
}

func (s *timeshareService) CreateStatus(ctx context.Context, name string) (*model.TimeshareStatus, error) {
	status := &model.TimeshareStatus{Name: name}
	if err := s.repo.CreateStatus(ctx, status); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrStatusExists
		}
		return nil, fmt.Errorf("failed to create timeshare status: %w", err)
	}
	return status, nil
}

func (s *timeshareService) GetStatuses(ctx context.Context) ([]model.TimeshareStatus, error) {
	statuses, err := s.repo.FindAllStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeshare statuses: %w", err)
	}
	return statuses, nil
}

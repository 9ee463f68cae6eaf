package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
	"github.com/clubgrid/clubgrid-backend/internal/scope"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrBadEventTime  = errors.New("start_at and end_at must be RFC3339 timestamps")
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

type EventFilter struct {
	City  string
	Page  int
	Limit int
}

func (s *EventService) List(f EventFilter) ([]models.Event, int64, error) {
	query := s.db.Model(&models.Event{})
	if f.City != "" {
		query = query.Where("LOWER(location_city) = LOWER(?)", f.City)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	if err := query.Order("start_at DESC").Scopes(scope.Paginate(f.Page, f.Limit)).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (s *EventService) Get(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Create(req *dto.CreateEventRequest) (*models.Event, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return nil, ErrBadEventTime
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		return nil, ErrBadEventTime
	}
	if endAt.Before(startAt) {
		return nil, dto.NewValidationError("end_at must not be before start_at")
	}

	event := models.Event{
		ID:          uuid.New(),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		StartAt:     startAt,
		EndAt:       endAt,
		Location: models.EventLocation{
			Venue:     req.Location.Venue,
			Address:   req.Location.Address,
			City:      req.Location.City,
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		},
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

func (s *EventService) Update(id uuid.UUID, req *dto.UpdateEventRequest) (*models.Event, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Subtitle != nil {
		updates["subtitle"] = *req.Subtitle
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartAt != nil {
		startAt, err := time.Parse(time.RFC3339, *req.StartAt)
		if err != nil {
			return nil, ErrBadEventTime
		}
		updates["start_at"] = startAt
	}
	if req.EndAt != nil {
		endAt, err := time.Parse(time.RFC3339, *req.EndAt)
		if err != nil {
			return nil, ErrBadEventTime
		}
		updates["end_at"] = endAt
	}
	if req.Location != nil {
		updates["location_venue"] = req.Location.Venue
		updates["location_address"] = req.Location.Address
		updates["location_city"] = req.Location.City
		updates["location_latitude"] = req.Location.Latitude
		updates["location_longitude"] = req.Location.Longitude
	}

	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.Event{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEventNotFound
	}
	return s.Get(id)
}

func (s *EventService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
)

var (
	ErrCityNotFound    = errors.New("city not found")
	ErrCityNameTaken   = errors.New("a city with this name already exists")
	ErrChapterNotFound = errors.New("chapter not found")
	ErrCityRefInvalid  = errors.New("referenced city does not exist")
)

type CityService struct {
	db *gorm.DB
}

func NewCityService(db *gorm.DB) *CityService {
	return &CityService{db: db}
}

func (s *CityService) List() ([]models.City, error) {
	var cities []models.City
	if err := s.db.Order("name ASC").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (s *CityService) Get(id uuid.UUID) (*models.City, error) {
	var city models.City
	if err := s.db.First(&city, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (s *CityService) Create(req *dto.CreateCityRequest) (*models.City, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)

	var existing models.City
	if err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&existing).Error; err == nil {
		return nil, ErrCityNameTaken
	}

	city := models.City{
		ID:     uuid.New(),
		Name:   name,
		Status: defaultStatus(req.Status),
	}

	if err := s.db.Create(&city).Error; err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}
	return &city, nil
}

func (s *CityService) Update(id uuid.UUID, req *dto.UpdateCityRequest) (*models.City, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		var existing models.City
		if err := s.db.Where("LOWER(name) = LOWER(?) AND id <> ?", name, id).First(&existing).Error; err == nil {
			return nil, ErrCityNameTaken
		}
		updates["name"] = name
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.City{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCityNotFound
	}
	return s.Get(id)
}

// Delete removes a city. Chapters referencing it are not cascaded; the
// dashboard hides them once their city is gone.
func (s *CityService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.City{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCityNotFound
	}
	return nil
}

func defaultStatus(s string) string {
	if s == "" {
		return "active"
	}
	return s
}

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

type ChapterService struct {
	db *gorm.DB
}

func NewChapterService(db *gorm.DB) *ChapterService {
	return &ChapterService{db: db}
}

func (s *ChapterService) List() ([]models.Chapter, error) {
	var chapters []models.Chapter
	if err := s.db.Order("name ASC").Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

// ListByCity returns the chapters of one city, the feed for the dependent
// city → chapter dropdowns.
func (s *ChapterService) ListByCity(cityID uuid.UUID) ([]models.Chapter, error) {
	var chapters []models.Chapter
	if err := s.db.Where("city_id = ?", cityID).Order("name ASC").Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func (s *ChapterService) Get(id uuid.UUID) (*models.Chapter, error) {
	var chapter models.Chapter
	if err := s.db.First(&chapter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, err
	}
	return &chapter, nil
}

func (s *ChapterService) Create(req *dto.CreateChapterRequest) (*models.Chapter, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		return nil, ErrCityRefInvalid
	}

	var city models.City
	if err := s.db.First(&city, "id = ?", cityID).Error; err != nil {
		return nil, ErrCityRefInvalid
	}

	chapter := models.Chapter{
		ID:     uuid.New(),
		Name:   strings.TrimSpace(req.Name),
		CityID: cityID,
		Status: defaultStatus(req.Status),
	}

	if err := s.db.Create(&chapter).Error; err != nil {
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}
	return &chapter, nil
}

func (s *ChapterService) Update(id uuid.UUID, req *dto.UpdateChapterRequest) (*models.Chapter, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.CityID != nil {
		cityID, err := uuid.Parse(*req.CityID)
		if err != nil {
			return nil, ErrCityRefInvalid
		}
		var city models.City
		if err := s.db.First(&city, "id = ?", cityID).Error; err != nil {
			return nil, ErrCityRefInvalid
		}
		updates["city_id"] = cityID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.Chapter{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrChapterNotFound
	}
	return s.Get(id)
}

func (s *ChapterService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Chapter{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChapterNotFound
	}
	return nil
}

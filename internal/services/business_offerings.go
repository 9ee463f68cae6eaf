package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
)

var ErrOfferingNotFound = errors.New("business service not found")

func (s *BusinessService) ListServices() ([]models.BusinessService, error) {
	var offerings []models.BusinessService
	if err := s.db.Order("created_at ASC").Find(&offerings).Error; err != nil {
		return nil, err
	}
	return offerings, nil
}

func (s *BusinessService) ListServicesByBusiness(businessID uuid.UUID) ([]models.BusinessService, error) {
	var offerings []models.BusinessService
	if err := s.db.Where("business_id = ?", businessID).Order("created_at ASC").Find(&offerings).Error; err != nil {
		return nil, err
	}
	return offerings, nil
}

func (s *BusinessService) CreateService(req *dto.CreateBusinessServiceRequest) (*models.BusinessService, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return nil, ErrBusinessNotFound
	}
	var business models.Business
	if err := s.db.First(&business, "id = ?", businessID).Error; err != nil {
		return nil, ErrBusinessNotFound
	}

	offering := models.BusinessService{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       strings.TrimSpace(req.Name),
	}
	if err := s.db.Create(&offering).Error; err != nil {
		return nil, err
	}
	return &offering, nil
}

func (s *BusinessService) UpdateService(id uuid.UUID, req *dto.UpdateBusinessServiceRequest) (*models.BusinessService, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Name == nil {
		var offering models.BusinessService
		if err := s.db.First(&offering, "id = ?", id).Error; err != nil {
			return nil, ErrOfferingNotFound
		}
		return &offering, nil
	}

	result := s.db.Model(&models.BusinessService{}).Where("id = ?", id).Update("name", strings.TrimSpace(*req.Name))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrOfferingNotFound
	}

	var offering models.BusinessService
	if err := s.db.First(&offering, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &offering, nil
}

func (s *BusinessService) DeleteService(id uuid.UUID) error {
	result := s.db.Delete(&models.BusinessService{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOfferingNotFound
	}
	return nil
}

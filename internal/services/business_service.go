package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrBusinessExists   = errors.New("user already has a business profile")
	ErrUserRefInvalid   = errors.New("referenced user does not exist")
)

// MediaUploader turns data-URI payloads into public URLs. Satisfied by
// storage.Uploader.
type MediaUploader interface {
	Upload(ctx context.Context, prefix, dataURI string) (string, error)
}

type BusinessService struct {
	db       *gorm.DB
	uploader MediaUploader
}

func NewBusinessService(db *gorm.DB, uploader MediaUploader) *BusinessService {
	return &BusinessService{db: db, uploader: uploader}
}

func (s *BusinessService) List() ([]models.Business, error) {
	var businesses []models.Business
	if err := s.db.Order("name ASC").Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}

func (s *BusinessService) Get(id uuid.UUID) (*models.Business, error) {
	var business models.Business
	if err := s.db.First(&business, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}

// Create is the onboarding final submit. Embedded data-URI media is uploaded
// to object storage first; stored fields only ever hold URLs.
func (s *BusinessService) Create(ctx context.Context, req *dto.CreateBusinessRequest) (*models.Business, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, ErrUserRefInvalid
	}
	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		return nil, ErrCityRefInvalid
	}
	chapterID, err := uuid.Parse(req.ChapterID)
	if err != nil {
		return nil, ErrChapterNotFound
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserRefInvalid
	}

	var existing models.Business
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, ErrBusinessExists
	}

	business := models.Business{
		ID:          uuid.New(),
		UserID:      userID,
		CityID:      cityID,
		ChapterID:   chapterID,
		Name:        strings.TrimSpace(req.Name),
		Tagline:     req.Tagline,
		Description: req.Description,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Website:     req.Website,
		Hometown:    mapAddress(req.Hometown),
		Residence:   mapAddress(req.Residence),
		Office:      mapAddress(req.Office),
	}

	if business.ProfilePicture, err = s.resolveMedia(ctx, "profile-pictures", req.ProfilePicture); err != nil {
		return nil, err
	}
	if business.Logo, err = s.resolveMedia(ctx, "logos", req.Logo); err != nil {
		return nil, err
	}
	if business.CardFront, err = s.resolveMedia(ctx, "cards", req.CardFront); err != nil {
		return nil, err
	}
	if business.CardBack, err = s.resolveMedia(ctx, "cards", req.CardBack); err != nil {
		return nil, err
	}

	portfolio := make([]string, 0, len(req.Portfolio))
	for _, item := range req.Portfolio {
		url, err := s.resolveMedia(ctx, "portfolio", item)
		if err != nil {
			return nil, err
		}
		if url != "" {
			portfolio = append(portfolio, url)
		}
	}
	if raw, err := json.Marshal(portfolio); err == nil {
		business.Portfolio = datatypes.JSON(raw)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&business).Error; err != nil {
			return err
		}
		for _, name := range splitServices(req.Services) {
			svc := models.BusinessService{
				ID:         uuid.New(),
				BusinessID: business.ID,
				Name:       name,
			}
			if err := tx.Create(&svc).Error; err != nil {
				return err
			}
		}
		// Profile submission moves the account out of pending.
		return tx.Model(&models.User{}).
			Where("id = ? AND account_status = ?", userID, "pending").
			Update("account_status", "approved").Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	return &business, nil
}

func (s *BusinessService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBusinessRequest) (*models.Business, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.CityID != nil {
		cityID, err := uuid.Parse(*req.CityID)
		if err != nil {
			return nil, ErrCityRefInvalid
		}
		updates["city_id"] = cityID
	}
	if req.ChapterID != nil {
		chapterID, err := uuid.Parse(*req.ChapterID)
		if err != nil {
			return nil, ErrChapterNotFound
		}
		updates["chapter_id"] = chapterID
	}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Tagline != nil {
		updates["tagline"] = *req.Tagline
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Mobile != nil {
		updates["mobile"] = *req.Mobile
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Hometown != nil {
		applyAddress(updates, "hometown_", *req.Hometown)
	}
	if req.Residence != nil {
		applyAddress(updates, "residence_", *req.Residence)
	}
	if req.Office != nil {
		applyAddress(updates, "office_", *req.Office)
	}

	for field, value := range map[string]*string{
		"profile_picture": req.ProfilePicture,
		"logo":            req.Logo,
		"card_front":      req.CardFront,
		"card_back":       req.CardBack,
	} {
		if value == nil {
			continue
		}
		url, err := s.resolveMedia(ctx, "media", *value)
		if err != nil {
			return nil, err
		}
		updates[field] = url
	}

	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.Business{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrBusinessNotFound
	}
	return s.Get(id)
}

func (s *BusinessService) Delete(id uuid.UUID) error {
	var business models.Business
	if err := s.db.First(&business, "id = ?", id).Error; err != nil {
		return ErrBusinessNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_id = ?", id).Delete(&models.BusinessService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&business).Error
	})
}

// resolveMedia uploads data URIs and passes URLs through untouched. A value
// that is neither yields an empty string.
func (s *BusinessService) resolveMedia(ctx context.Context, prefix, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if strings.HasPrefix(value, "data:") {
		if s.uploader == nil {
			return "", errors.New("media upload not configured")
		}
		return s.uploader.Upload(ctx, prefix, value)
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value, nil
	}
	return "", nil
}

func mapAddress(p dto.AddressPayload) models.Address {
	return models.Address{
		Address:   p.Address,
		City:      p.City,
		District:  p.District,
		Pincode:   p.Pincode,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

func applyAddress(updates map[string]interface{}, prefix string, p dto.AddressPayload) {
	updates[prefix+"address"] = p.Address
	updates[prefix+"city"] = p.City
	updates[prefix+"district"] = p.District
	updates[prefix+"pincode"] = p.Pincode
	updates[prefix+"latitude"] = p.Latitude
	updates[prefix+"longitude"] = p.Longitude
}

func splitServices(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

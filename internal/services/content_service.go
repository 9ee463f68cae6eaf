package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
)

var ErrUnknownContentSlug = errors.New("unknown content page")

var knownSlugs = map[string]string{
	models.SlugPrivacyPolicy:      "Privacy Policy",
	models.SlugTermsAndConditions: "Terms and Conditions",
	models.SlugRuleBook:           "Rule Book",
}

// ContentService manages the singleton HTML content documents. Pages are
// upserted by slug, never multiply created.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// Get returns the page for a slug. A page that was never written comes back
// as an empty default rather than an error.
func (s *ContentService) Get(slug string) (*models.ContentPage, error) {
	title, ok := knownSlugs[slug]
	if !ok {
		return nil, ErrUnknownContentSlug
	}

	var page models.ContentPage
	if err := s.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.ContentPage{Slug: slug, Title: title, Status: "active"}, nil
		}
		return nil, err
	}
	return &page, nil
}

func (s *ContentService) Upsert(slug string, req *dto.UpsertContentRequest) (*models.ContentPage, error) {
	title, ok := knownSlugs[slug]
	if !ok {
		return nil, ErrUnknownContentSlug
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	page := models.ContentPage{
		ID:      uuid.New(),
		Slug:    slug,
		Title:   title,
		Content: req.Content,
		Status:  defaultStatus(req.Status),
	}
	if req.Title != "" {
		page.Title = req.Title
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "content", "status", "updated_at"}),
	}).Create(&page).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert content page: %w", err)
	}

	return s.Get(slug)
}

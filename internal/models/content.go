package models

import (
	"time"

	"github.com/google/uuid"
)

// Content page slugs. Each is a singleton: upserted, never multiply created.
const (
	SlugPrivacyPolicy      = "privacy-policy"
	SlugTermsAndConditions = "terms-and-conditions"
	SlugRuleBook           = "rule-book"
)

// ContentPage is a slug-keyed HTML content document (privacy policy, terms
// and conditions, rule book).
type ContentPage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug      string    `gorm:"size:50;not null;uniqueIndex" json:"slug"`
	Title     string    `gorm:"size:255" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Status    string    `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventLocation is the nested venue block of an Event.
type EventLocation struct {
	Venue     string  `gorm:"size:255" json:"venue"`
	Address   string  `gorm:"size:500" json:"address"`
	City      string  `gorm:"size:100" json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Event is a club-wide event, independent of chapters and attendance tracking.
type Event struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Subtitle    string         `gorm:"size:255" json:"subtitle"`
	Description string         `gorm:"type:text" json:"description"`
	StartAt     time.Time      `gorm:"not null;index" json:"start_at"`
	EndAt       time.Time      `gorm:"not null" json:"end_at"`
	Location    EventLocation  `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Chapter is a local sub-group of a City. Every chapter belongs to exactly
// one city; the city must exist at creation time.
type Chapter struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CityID    uuid.UUID `gorm:"type:uuid;not null;index" json:"city_id"`
	Status    string    `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	City      City      `gorm:"foreignKey:CityID" json:"-"`
}

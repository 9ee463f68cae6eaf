package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Address is the repeated address block used for hometown, residence and
// office addresses on a business profile.
type Address struct {
	Address   string  `gorm:"size:500" json:"address"`
	City      string  `gorm:"size:100" json:"city"`
	District  string  `gorm:"size:100" json:"district"`
	Pincode   string  `gorm:"size:10" json:"pincode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Business is the commercial profile attached to a member. Exactly one per
// user; its presence is what makes a member's profile "completed".
type Business struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CityID      uuid.UUID `gorm:"type:uuid;not null;index" json:"city_id"`
	ChapterID   uuid.UUID `gorm:"type:uuid;not null;index" json:"chapter_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Tagline     string    `gorm:"size:255" json:"tagline"`
	Description string    `gorm:"type:text" json:"description"`
	Email       string    `gorm:"size:255" json:"email"`
	Mobile      string    `gorm:"size:20" json:"mobile"`
	Website     string    `gorm:"size:255" json:"website"`

	Hometown  Address `gorm:"embedded;embeddedPrefix:hometown_" json:"hometown"`
	Residence Address `gorm:"embedded;embeddedPrefix:residence_" json:"residence"`
	Office    Address `gorm:"embedded;embeddedPrefix:office_" json:"office"`

	// Media fields hold public object-storage URLs after upload.
	ProfilePicture string         `gorm:"size:500" json:"profile_picture"`
	Logo           string         `gorm:"size:500" json:"logo"`
	CardFront      string         `gorm:"size:500" json:"card_front"`
	CardBack       string         `gorm:"size:500" json:"card_back"`
	Portfolio      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"portfolio"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BusinessService is a single free-text service offering of a business.
type BusinessService struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

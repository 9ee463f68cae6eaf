package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a club member or admin account. Created at onboarding step 1;
// the commercial profile (Business) arrives later and is linked back here.
type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName     string         `gorm:"size:100;not null" json:"first_name"`
	LastName      string         `gorm:"size:100" json:"last_name"`
	Email         string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Mobile        string         `gorm:"size:20" json:"mobile"`
	DateOfBirth   *time.Time     `json:"date_of_birth,omitempty"`
	Password      string         `gorm:"not null" json:"-"`
	Role          string         `gorm:"size:20;default:'member'" json:"role"`
	AccountStatus string         `gorm:"size:20;default:'pending'" json:"account_status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

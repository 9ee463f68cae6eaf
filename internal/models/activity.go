package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessExchange records business value passed from one member to another.
type BusinessExchange struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GiverID     uuid.UUID `gorm:"type:uuid;not null;index" json:"giver_id"`
	ReceiverID  uuid.UUID `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Amount      float64   `gorm:"not null;check:amount >= 0" json:"amount"`
	Notes       string    `gorm:"size:500" json:"notes"`
	ExchangedAt time.Time `gorm:"not null;index" json:"exchanged_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReferencePass records an introduction/lead passed between members.
type ReferencePass struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GiverID    uuid.UUID `gorm:"type:uuid;not null;index" json:"giver_id"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Notes      string    `gorm:"size:500" json:"notes"`
	PassedAt   time.Time `gorm:"not null;index" json:"passed_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// PersonalMeeting records a one-to-one between two members, counted as an
// activity metric distinct from scheduled chapter meetings.
type PersonalMeeting struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID     uuid.UUID `gorm:"type:uuid;not null;index" json:"member_id"`
	WithMemberID uuid.UUID `gorm:"type:uuid;not null;index" json:"with_member_id"`
	Notes        string    `gorm:"size:500" json:"notes"`
	MetAt        time.Time `gorm:"not null;index" json:"met_at"`
	CreatedAt    time.Time `json:"created_at"`
}

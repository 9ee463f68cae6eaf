package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meeting is a scheduled chapter meeting. Attendance is tracked through
// MeetingAttendance join records, never inline.
type Meeting struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	CityID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"city_id"`
	ChapterID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"chapter_id"`
	Date        time.Time      `gorm:"not null;index" json:"date"`
	StartTime   string         `gorm:"size:5" json:"start_time"`
	EndTime     string         `gorm:"size:5" json:"end_time"`
	Address     string         `gorm:"size:500" json:"address"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Description string         `gorm:"type:text" json:"description"`
	Status      string         `gorm:"size:20;default:'scheduled'" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// QRPayload is the string encoded into the meeting check-in QR code. It is
// derived, never stored.
func (m *Meeting) QRPayload() string {
	return "clubgrid://meeting/" + m.ID.String() + "?date=" + m.Date.Format("2006-01-02")
}

// MeetingAttendance links a member to a meeting. One record per member per
// meeting; Present=false records an excused/marked absence.
type MeetingAttendance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MeetingID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_meeting_user" json:"meeting_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_meeting_user" json:"user_id"`
	Present    bool      `gorm:"default:true" json:"present"`
	AttendedAt time.Time `gorm:"not null" json:"attended_at"`
	CreatedAt  time.Time `json:"created_at"`

	Meeting Meeting `gorm:"foreignKey:MeetingID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

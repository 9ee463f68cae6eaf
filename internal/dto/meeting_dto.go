package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMeetingRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	CityID      string  `json:"city_id" validate:"required,uuid"`
	ChapterID   string  `json:"chapter_id" validate:"required,uuid"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     string  `json:"end_time" validate:"omitempty,datetime=15:04"`
	Address     string  `json:"address" validate:"omitempty,max=500"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type UpdateMeetingRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	CityID      *string  `json:"city_id" validate:"omitempty,uuid"`
	ChapterID   *string  `json:"chapter_id" validate:"omitempty,uuid"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string  `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     *string  `json:"end_time" validate:"omitempty,datetime=15:04"`
	Address     *string  `json:"address" validate:"omitempty,max=500"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type MeetingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	CityID      uuid.UUID `json:"city_id"`
	ChapterID   uuid.UUID `json:"chapter_id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	QRPayload   string    `json:"qr_payload"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MeetingListResponse struct {
	Success      bool              `json:"success"`
	Data         []MeetingResponse `json:"data"`
	TotalRecords int64             `json:"total_records"`
	TotalPages   int               `json:"total_pages"`
	Page         int               `json:"page"`
	Limit        int               `json:"limit"`
}

type CreateAttendanceRequest struct {
	MeetingID  string `json:"meeting_id" validate:"required,uuid"`
	UserID     string `json:"user_id" validate:"required,uuid"`
	Present    *bool  `json:"present"`
	AttendedAt string `json:"attended_at" validate:"omitempty"`
}

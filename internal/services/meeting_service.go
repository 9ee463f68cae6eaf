package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
	"github.com/clubgrid/clubgrid-backend/internal/scope"
)

var (
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrDuplicateCheckin = errors.New("attendance already recorded for this member")
	ErrAttendeeNotFound = errors.New("attendee user not found")
	ErrBadMeetingDate   = errors.New("date must be YYYY-MM-DD")
)

const upcomingMeetingsCap = 10

type MeetingService struct {
	db *gorm.DB
}

func NewMeetingService(db *gorm.DB) *MeetingService {
	return &MeetingService{db: db}
}

// MeetingFilter narrows the list server-side; every list view filters and
// paginates on the server rather than shipping the full collection.
type MeetingFilter struct {
	CityID    *uuid.UUID
	ChapterID *uuid.UUID
	Status    string
	Page      int
	Limit     int
}

func (s *MeetingService) List(f MeetingFilter) (*dto.MeetingListResponse, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	query := s.db.Model(&models.Meeting{}).
		Scopes(scope.ByCity(f.CityID), scope.ByChapter(f.ChapterID))
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var meetings []models.Meeting
	if err := query.Order("date DESC").Scopes(scope.Paginate(f.Page, f.Limit)).Find(&meetings).Error; err != nil {
		return nil, err
	}

	resp := &dto.MeetingListResponse{
		Success:      true,
		Data:         make([]dto.MeetingResponse, len(meetings)),
		TotalRecords: total,
		TotalPages:   int(math.Ceil(float64(total) / float64(f.Limit))),
		Page:         f.Page,
		Limit:        f.Limit,
	}
	for i := range meetings {
		resp.Data[i] = mapMeetingToResponse(&meetings[i])
	}
	return resp, nil
}

func (s *MeetingService) Get(id uuid.UUID) (*dto.MeetingResponse, error) {
	meeting, err := s.get(id)
	if err != nil {
		return nil, err
	}
	resp := mapMeetingToResponse(meeting)
	return &resp, nil
}

func (s *MeetingService) get(id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

func (s *MeetingService) Create(req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		return nil, ErrCityRefInvalid
	}
	chapterID, err := uuid.Parse(req.ChapterID)
	if err != nil {
		return nil, ErrChapterNotFound
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrBadMeetingDate
	}

	meeting := models.Meeting{
		ID:          uuid.New(),
		Title:       req.Title,
		CityID:      cityID,
		ChapterID:   chapterID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
		Status:      req.Status,
	}
	if meeting.Status == "" {
		meeting.Status = "scheduled"
	}

	if err := s.db.Create(&meeting).Error; err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	resp := mapMeetingToResponse(&meeting)
	return &resp, nil
}

func (s *MeetingService) Update(id uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
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
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, ErrBadMeetingDate
		}
		updates["date"] = date
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.Meeting{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrMeetingNotFound
	}
	return s.Get(id)
}

func (s *MeetingService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Meeting{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMeetingNotFound
	}
	return nil
}

// Upcoming returns the next scheduled meetings from today onward, soonest
// first, capped for the dashboard card.
func (s *MeetingService) Upcoming(now time.Time) ([]dto.MeetingResponse, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var meetings []models.Meeting
	err := s.db.Where("date >= ? AND status = ?", today, "scheduled").
		Order("date ASC").Limit(upcomingMeetingsCap).Find(&meetings).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.MeetingResponse, len(meetings))
	for i := range meetings {
		out[i] = mapMeetingToResponse(&meetings[i])
	}
	return out, nil
}

// QRPayload returns the derived check-in payload for a meeting.
func (s *MeetingService) QRPayload(id uuid.UUID) (string, error) {
	meeting, err := s.get(id)
	if err != nil {
		return "", err
	}
	return meeting.QRPayload(), nil
}

func (s *MeetingService) RecordAttendance(req *dto.CreateAttendanceRequest) (*models.MeetingAttendance, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	meetingID, err := uuid.Parse(req.MeetingID)
	if err != nil {
		return nil, ErrMeetingNotFound
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, ErrAttendeeNotFound
	}

	if _, err := s.get(meetingID); err != nil {
		return nil, err
	}
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrAttendeeNotFound
	}

	var existing models.MeetingAttendance
	if err := s.db.Where("meeting_id = ? AND user_id = ?", meetingID, userID).First(&existing).Error; err == nil {
		return nil, ErrDuplicateCheckin
	}

	attendance := models.MeetingAttendance{
		ID:         uuid.New(),
		MeetingID:  meetingID,
		UserID:     userID,
		Present:    true,
		AttendedAt: time.Now(),
	}
	if req.Present != nil {
		attendance.Present = *req.Present
	}
	if req.AttendedAt != "" {
		if at, err := time.Parse(time.RFC3339, req.AttendedAt); err == nil {
			attendance.AttendedAt = at
		}
	}

	if err := s.db.Create(&attendance).Error; err != nil {
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}
	return &attendance, nil
}

func (s *MeetingService) TotalAttendances(meetingID uuid.UUID) (int64, error) {
	if _, err := s.get(meetingID); err != nil {
		return 0, err
	}
	var total int64
	err := s.db.Model(&models.MeetingAttendance{}).
		Where("meeting_id = ? AND present = ?", meetingID, true).Count(&total).Error
	return total, err
}

// ExportAttendanceCSV renders the attendance sheet of one meeting. A deleted
// meeting yields ErrMeetingNotFound, never stale rows.
func (s *MeetingService) ExportAttendanceCSV(meetingID uuid.UUID) ([]byte, string, error) {
	meeting, err := s.get(meetingID)
	if err != nil {
		return nil, "", err
	}

	type row struct {
		FirstName    string
		LastName     string
		Mobile       string
		BusinessName string
		Present      bool
		AttendedAt   time.Time
	}
	var rows []row
	err = s.db.Model(&models.MeetingAttendance{}).
		Select("users.first_name, users.last_name, users.mobile, businesses.name AS business_name, meeting_attendances.present, meeting_attendances.attended_at").
		Joins("JOIN users ON users.id = meeting_attendances.user_id").
		Joins("LEFT JOIN businesses ON businesses.user_id = users.id AND businesses.deleted_at IS NULL").
		Where("meeting_attendances.meeting_id = ?", meetingID).
		Order("users.first_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Name", "Mobile", "Business", "Status", "Checked In At"})
	for _, r := range rows {
		name := r.FirstName
		if r.LastName != "" {
			name += " " + r.LastName
		}
		status := "P"
		if !r.Present {
			status = "A"
		}
		_ = w.Write([]string{name, r.Mobile, r.BusinessName, status, r.AttendedAt.Format(time.RFC3339)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("attendance-%s.csv", meeting.Date.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func mapMeetingToResponse(m *models.Meeting) dto.MeetingResponse {
	return dto.MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		CityID:      m.CityID,
		ChapterID:   m.ChapterID,
		Date:        m.Date.Format("2006-01-02"),
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Address:     m.Address,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Description: m.Description,
		Status:      m.Status,
		QRPayload:   m.QRPayload(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

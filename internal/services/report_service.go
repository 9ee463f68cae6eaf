package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
	"github.com/clubgrid/clubgrid-backend/internal/reports"
	"github.com/clubgrid/clubgrid-backend/internal/scope"
)

// ReportService builds the two read-only admin reports: the member ×
// meeting-date attendance matrix and the member × metric chapter summary.
type ReportService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db, now: time.Now}
}

// member is the filtered member set both reports iterate over, in stable
// input order (business creation order).
type member struct {
	UserID       uuid.UUID
	Name         string
	Mobile       string
	BusinessName string
}

// resolveMembers maps city/chapter names to the member set. An unset filter
// means no restriction; a name that matches nothing yields zero rows.
func (s *ReportService) resolveMembers(city, chapter string) ([]member, *uuid.UUID, *uuid.UUID, error) {
	var cityID, chapterID *uuid.UUID

	if city != "" {
		var c models.City
		if err := s.db.Where("LOWER(name) = LOWER(?)", city).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []member{}, nil, nil, nil
			}
			return nil, nil, nil, err
		}
		cityID = &c.ID
	}
	if chapter != "" {
		var ch models.Chapter
		if err := s.db.Where("LOWER(name) = LOWER(?)", chapter).First(&ch).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []member{}, nil, nil, nil
			}
			return nil, nil, nil, err
		}
		chapterID = &ch.ID
	}

	type row struct {
		UserID       uuid.UUID
		FirstName    string
		LastName     string
		Mobile       string
		BusinessName string
	}
	var rows []row
	err := s.db.Model(&models.Business{}).
		Select("businesses.user_id, users.first_name, users.last_name, users.mobile, businesses.name AS business_name").
		Joins("JOIN users ON users.id = businesses.user_id AND users.deleted_at IS NULL").
		Scopes(scope.ByCity(cityID), scope.ByChapter(chapterID)).
		Order("businesses.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, nil, err
	}

	members := make([]member, len(rows))
	for i, r := range rows {
		name := r.FirstName
		if r.LastName != "" {
			name += " " + r.LastName
		}
		members[i] = member{UserID: r.UserID, Name: name, Mobile: r.Mobile, BusinessName: r.BusinessName}
	}
	return members, cityID, chapterID, nil
}

// AttendanceReport produces the member × meeting-date pivot.
func (s *ReportService) AttendanceReport(q dto.ReportQuery) (*dto.AttendanceReportResponse, error) {
	q.Page, q.Limit = reports.Normalize(q.Page, q.Limit)
	rng := reports.ResolveRange(q.DateRange, s.now())

	members, cityID, chapterID, err := s.resolveMembers(q.City, q.Chapter)
	if err != nil {
		return nil, err
	}

	var meetings []models.Meeting
	err = s.db.Scopes(scope.ByCity(cityID), scope.ByChapter(chapterID), scope.InRange("date", rng.Start, rng.End)).
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}

	// No meetings in range means an empty report, not a member list of blanks.
	if len(meetings) == 0 {
		return &dto.AttendanceReportResponse{
			Success:      true,
			Data:         []dto.AttendanceRow{},
			MeetingDates: []string{},
			Page:         q.Page,
			Limit:        q.Limit,
		}, nil
	}

	meetingDate := make(map[uuid.UUID]string, len(meetings))
	meetingIDs := make([]uuid.UUID, 0, len(meetings))
	for _, m := range meetings {
		meetingDate[m.ID] = m.Date.Format("2006-01-02")
		meetingIDs = append(meetingIDs, m.ID)
	}

	var records []models.MeetingAttendance
	if len(meetingIDs) > 0 {
		if err := s.db.Where("meeting_id IN ?", meetingIDs).Find(&records).Error; err != nil {
			return nil, err
		}
	}

	// Columns: dates with at least one attendance record, ascending.
	dateSet := make(map[string]bool)
	cells := make(map[uuid.UUID]map[string]string)
	for _, rec := range records {
		date := meetingDate[rec.MeetingID]
		dateSet[date] = true
		if cells[rec.UserID] == nil {
			cells[rec.UserID] = make(map[string]string)
		}
		if rec.Present {
			cells[rec.UserID][date] = "P"
		} else {
			cells[rec.UserID][date] = "A"
		}
	}
	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	rows := make([]dto.AttendanceRow, len(members))
	for i, m := range members {
		row := dto.AttendanceRow{
			UserID:       m.UserID,
			Name:         m.Name,
			Mobile:       m.Mobile,
			BusinessName: m.BusinessName,
			Cells:        map[string]string{},
		}
		if c, ok := cells[m.UserID]; ok {
			row.Cells = c
		}
		rows[i] = row
	}

	sortAttendanceRows(rows, q.SortBy, q.SortOrder)
	pageRows, total, pages := reports.Page(rows, q.Page, q.Limit)

	return &dto.AttendanceReportResponse{
		Success:      true,
		Data:         pageRows,
		MeetingDates: dates,
		TotalRecords: total,
		TotalPages:   pages,
		Page:         q.Page,
		Limit:        q.Limit,
	}, nil
}

// ChapterReport produces the per-member activity summary over the range.
func (s *ReportService) ChapterReport(q dto.ReportQuery) (*dto.ChapterReportResponse, error) {
	q.Page, q.Limit = reports.Normalize(q.Page, q.Limit)
	rng := reports.ResolveRange(q.DateRange, s.now())

	members, cityID, chapterID, err := s.resolveMembers(q.City, q.Chapter)
	if err != nil {
		return nil, err
	}

	refsGiven, refsReceived, err := s.referenceCounts(rng)
	if err != nil {
		return nil, err
	}
	valueGiven, valueReceived, err := s.exchangeSums(rng)
	if err != nil {
		return nil, err
	}
	oneToOnes, err := s.personalMeetingCounts(rng)
	if err != nil {
		return nil, err
	}
	absences, err := s.absenceCounts(rng, cityID, chapterID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ChapterReportRow, len(members))
	for i, m := range members {
		rows[i] = dto.ChapterReportRow{
			UserID:             m.UserID,
			Name:               m.Name,
			Mobile:             m.Mobile,
			BusinessName:       m.BusinessName,
			ReferencesReceived: refsReceived[m.UserID],
			ReferencesGiven:    refsGiven[m.UserID],
			ValueReceived:      valueReceived[m.UserID],
			ValueGiven:         valueGiven[m.UserID],
			OneToOnes:          oneToOnes[m.UserID],
			Absences:           absences[m.UserID],
		}
	}

	sortChapterRows(rows, q.SortBy, q.SortOrder)
	pageRows, total, pages := reports.Page(rows, q.Page, q.Limit)

	return &dto.ChapterReportResponse{
		Success:      true,
		Data:         pageRows,
		TotalRecords: total,
		TotalPages:   pages,
		Page:         q.Page,
		Limit:        q.Limit,
	}, nil
}

type countRow struct {
	UserID uuid.UUID
	N      int64
}

type sumRow struct {
	UserID uuid.UUID
	Total  float64
}

func (s *ReportService) referenceCounts(rng reports.DateRange) (given, received map[uuid.UUID]int64, err error) {
	given = make(map[uuid.UUID]int64)
	received = make(map[uuid.UUID]int64)

	var rows []countRow
	err = s.db.Model(&models.ReferencePass{}).
		Select("giver_id AS user_id, COUNT(*) AS n").
		Scopes(scope.InRange("passed_at", rng.Start, rng.End)).
		Group("giver_id").Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	for _, r := range rows {
		given[r.UserID] = r.N
	}

	rows = nil
	err = s.db.Model(&models.ReferencePass{}).
		Select("receiver_id AS user_id, COUNT(*) AS n").
		Scopes(scope.InRange("passed_at", rng.Start, rng.End)).
		Group("receiver_id").Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	for _, r := range rows {
		received[r.UserID] = r.N
	}
	return given, received, nil
}

func (s *ReportService) exchangeSums(rng reports.DateRange) (given, received map[uuid.UUID]float64, err error) {
	given = make(map[uuid.UUID]float64)
	received = make(map[uuid.UUID]float64)

	var rows []sumRow
	err = s.db.Model(&models.BusinessExchange{}).
		Select("giver_id AS user_id, COALESCE(SUM(amount), 0) AS total").
		Scopes(scope.InRange("exchanged_at", rng.Start, rng.End)).
		Group("giver_id").Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	for _, r := range rows {
		given[r.UserID] = r.Total
	}

	rows = nil
	err = s.db.Model(&models.BusinessExchange{}).
		Select("receiver_id AS user_id, COALESCE(SUM(amount), 0) AS total").
		Scopes(scope.InRange("exchanged_at", rng.Start, rng.End)).
		Group("receiver_id").Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	for _, r := range rows {
		received[r.UserID] = r.Total
	}
	return given, received, nil
}

func (s *ReportService) personalMeetingCounts(rng reports.DateRange) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)

	var meetings []models.PersonalMeeting
	err := s.db.Scopes(scope.InRange("met_at", rng.Start, rng.End)).Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	// Both parties get credit for a one-to-one.
	for _, m := range meetings {
		counts[m.MemberID]++
		counts[m.WithMemberID]++
	}
	return counts, nil
}

func (s *ReportService) absenceCounts(rng reports.DateRange, cityID, chapterID *uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)

	var rows []countRow
	err := s.db.Model(&models.MeetingAttendance{}).
		Select("meeting_attendances.user_id AS user_id, COUNT(*) AS n").
		Joins("JOIN meetings ON meetings.id = meeting_attendances.meeting_id AND meetings.deleted_at IS NULL").
		Where("meeting_attendances.present = ?", false).
		Scopes(
			scope.InRange("meetings.date", rng.Start, rng.End),
			scope.ByCity(cityID),
			scope.ByChapter(chapterID),
		).
		Group("meeting_attendances.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.UserID] = r.N
	}
	return counts, nil
}

func sortAttendanceRows(rows []dto.AttendanceRow, sortBy, sortOrder string) {
	desc := strings.EqualFold(sortOrder, "desc")
	key := func(r dto.AttendanceRow) string {
		switch sortBy {
		case "name":
			return strings.ToLower(r.Name)
		case "mobile":
			return r.Mobile
		default:
			// Unknown sort keys fall back to the default.
			return strings.ToLower(r.BusinessName)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return key(rows[i]) > key(rows[j])
		}
		return key(rows[i]) < key(rows[j])
	})
}

func sortChapterRows(rows []dto.ChapterReportRow, sortBy, sortOrder string) {
	desc := strings.EqualFold(sortOrder, "desc")

	var numeric func(r dto.ChapterReportRow) float64
	switch sortBy {
	case "references_received":
		numeric = func(r dto.ChapterReportRow) float64 { return float64(r.ReferencesReceived) }
	case "references_given":
		numeric = func(r dto.ChapterReportRow) float64 { return float64(r.ReferencesGiven) }
	case "business_value_received":
		numeric = func(r dto.ChapterReportRow) float64 { return r.ValueReceived }
	case "business_value_given":
		numeric = func(r dto.ChapterReportRow) float64 { return r.ValueGiven }
	case "one_to_one_meetings":
		numeric = func(r dto.ChapterReportRow) float64 { return float64(r.OneToOnes) }
	case "absences":
		numeric = func(r dto.ChapterReportRow) float64 { return float64(r.Absences) }
	}

	if numeric != nil {
		sort.SliceStable(rows, func(i, j int) bool {
			if desc {
				return numeric(rows[i]) > numeric(rows[j])
			}
			return numeric(rows[i]) < numeric(rows[j])
		})
		return
	}

	key := func(r dto.ChapterReportRow) string {
		switch sortBy {
		case "name":
			return strings.ToLower(r.Name)
		default:
			return strings.ToLower(r.BusinessName)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return key(rows[i]) > key(rows[j])
		}
		return key(rows[i]) < key(rows[j])
	})
}


package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
)

type reportFixture struct {
	svc     *ReportService
	city    models.City
	chapter models.Chapter
	asha    models.User
	ravi    models.User
	meet1   models.Meeting
	meet2   models.Meeting
}

// setupReportData seeds two members with businesses in one chapter and two
// meetings a week apart. "Now" is pinned to 2025-06-18.
func setupReportData(t *testing.T) (*reportFixture, func(time.Time)) {
	db := testDB(t)
	svc := NewReportService(db)

	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	setNow := func(tm time.Time) { svc.now = func() time.Time { return tm } }

	city := seedCity(t, db, "Mumbai")
	chapter := seedChapter(t, db, city.ID, "Andheri")
	asha := seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")
	ravi := seedUser(t, db, "Ravi", "ravi@example.com", "s3cretpass")
	seedBusiness(t, db, asha.ID, city.ID, chapter.ID, "Asha Designs")
	seedBusiness(t, db, ravi.ID, city.ID, chapter.ID, "Ravi Motors")

	meet1 := seedMeeting(t, db, city.ID, chapter.ID, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	meet2 := seedMeeting(t, db, city.ID, chapter.ID, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC))

	seedAttendance(t, db, meet1.ID, asha.ID, true)
	seedAttendance(t, db, meet1.ID, ravi.ID, false)
	seedAttendance(t, db, meet2.ID, asha.ID, true)

	return &reportFixture{
		svc:     svc,
		city:    city,
		chapter: chapter,
		asha:    asha,
		ravi:    ravi,
		meet1:   meet1,
		meet2:   meet2,
	}, setNow
}

func TestAttendanceReportPivot(t *testing.T) {
	f, _ := setupReportData(t)

	resp, err := f.svc.AttendanceReport(dto.ReportQuery{DateRange: "This Month"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"2025-06-02", "2025-06-09"}, resp.MeetingDates)
	require.Len(t, resp.Data, 2)

	rows := map[string]dto.AttendanceRow{}
	for _, r := range resp.Data {
		rows[r.Name] = r
	}
	assert.Equal(t, "P", rows["Asha"].Cells["2025-06-02"])
	assert.Equal(t, "P", rows["Asha"].Cells["2025-06-09"])
	assert.Equal(t, "A", rows["Ravi"].Cells["2025-06-02"])
	_, has := rows["Ravi"].Cells["2025-06-09"]
	assert.False(t, has, "no record means blank cell")
}

func TestAttendanceReportDateRangeLimitsColumns(t *testing.T) {
	f, setNow := setupReportData(t)

	// With "now" on the meeting week, This Week covers only the second meeting.
	setNow(time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC))
	resp, err := f.svc.AttendanceReport(dto.ReportQuery{DateRange: "This Week"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-09"}, resp.MeetingDates)
}

func TestAttendanceReportUnknownFilterYieldsEmptySet(t *testing.T) {
	f, _ := setupReportData(t)

	resp, err := f.svc.AttendanceReport(dto.ReportQuery{City: "Atlantis"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data)
	assert.Equal(t, int64(0), resp.TotalRecords)
}

func TestAttendanceReportEmptyRange(t *testing.T) {
	f, _ := setupReportData(t)

	resp, err := f.svc.AttendanceReport(dto.ReportQuery{DateRange: "Yesterday"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.MeetingDates)
	assert.Empty(t, resp.Data)
	assert.Equal(t, int64(0), resp.TotalRecords)
}

func TestAttendanceReportSortAndUnknownKeyFallback(t *testing.T) {
	f, _ := setupReportData(t)

	resp, err := f.svc.AttendanceReport(dto.ReportQuery{SortBy: "name", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Ravi", resp.Data[0].Name)

	// Unknown sortBy falls back to business_name ascending.
	fallback, err := f.svc.AttendanceReport(dto.ReportQuery{SortBy: "shoe_size"})
	require.NoError(t, err)
	assert.Equal(t, "Asha Designs", fallback.Data[0].BusinessName)
	assert.Equal(t, "Ravi Motors", fallback.Data[1].BusinessName)
}

func TestAttendanceReportPaginationConcatenation(t *testing.T) {
	f, _ := setupReportData(t)

	full, err := f.svc.AttendanceReport(dto.ReportQuery{})
	require.NoError(t, err)

	var combined []dto.AttendanceRow
	for page := 1; ; page++ {
		resp, err := f.svc.AttendanceReport(dto.ReportQuery{Page: page, Limit: 1})
		require.NoError(t, err)
		combined = append(combined, resp.Data...)
		if page >= resp.TotalPages {
			break
		}
	}
	assert.Equal(t, full.Data, combined)
	assert.Equal(t, full.TotalRecords, int64(len(combined)))
}

func TestChapterReportAggregates(t *testing.T) {
	f, _ := setupReportData(t)
	db := f.svc.db

	mid := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.ReferencePass{
		ID: uuid.New(), GiverID: f.asha.ID, ReceiverID: f.ravi.ID, PassedAt: mid,
	}).Error)
	require.NoError(t, db.Create(&models.BusinessExchange{
		ID: uuid.New(), GiverID: f.asha.ID, ReceiverID: f.ravi.ID, Amount: 12000, ExchangedAt: mid,
	}).Error)
	require.NoError(t, db.Create(&models.BusinessExchange{
		ID: uuid.New(), GiverID: f.ravi.ID, ReceiverID: f.asha.ID, Amount: 3000, ExchangedAt: mid,
	}).Error)
	require.NoError(t, db.Create(&models.PersonalMeeting{
		ID: uuid.New(), MemberID: f.asha.ID, WithMemberID: f.ravi.ID, MetAt: mid,
	}).Error)

	resp, err := f.svc.ChapterReport(dto.ReportQuery{DateRange: "This Month", Chapter: "Andheri"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	rows := map[string]dto.ChapterReportRow{}
	for _, r := range resp.Data {
		rows[r.Name] = r
	}

	asha := rows["Asha"]
	assert.Equal(t, int64(1), asha.ReferencesGiven)
	assert.Equal(t, int64(0), asha.ReferencesReceived)
	assert.Equal(t, float64(12000), asha.ValueGiven)
	assert.Equal(t, float64(3000), asha.ValueReceived)
	assert.Equal(t, int64(1), asha.OneToOnes)
	assert.Equal(t, int64(0), asha.Absences)

	ravi := rows["Ravi"]
	assert.Equal(t, int64(1), ravi.ReferencesReceived)
	assert.Equal(t, float64(12000), ravi.ValueReceived)
	// Both parties get one-to-one credit.
	assert.Equal(t, int64(1), ravi.OneToOnes)
	assert.Equal(t, int64(1), ravi.Absences)
}

func TestChapterReportNumericSort(t *testing.T) {
	f, _ := setupReportData(t)
	db := f.svc.db

	mid := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.BusinessExchange{
		ID: uuid.New(), GiverID: f.ravi.ID, ReceiverID: f.asha.ID, Amount: 9000, ExchangedAt: mid,
	}).Error)

	resp, err := f.svc.ChapterReport(dto.ReportQuery{SortBy: "business_value_given", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Ravi", resp.Data[0].Name)
	assert.Equal(t, float64(9000), resp.Data[0].ValueGiven)
}

func TestReportEchoesEffectiveLimit(t *testing.T) {
	f, _ := setupReportData(t)

	// Zero limit falls back to the default, and the payload says so.
	resp, err := f.svc.AttendanceReport(dto.ReportQuery{DateRange: "This Month"})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 1, resp.Page)

	chResp, err := f.svc.ChapterReport(dto.ReportQuery{Limit: 9999, Page: -3})
	require.NoError(t, err)
	assert.Equal(t, 20, chResp.Limit)
	assert.Equal(t, 1, chResp.Page)
}

// A failing name lookup must propagate, not masquerade as an empty report.
func TestReportFilterLookupFaultPropagates(t *testing.T) {
	f, _ := setupReportData(t)

	sqlDB, err := f.svc.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = f.svc.AttendanceReport(dto.ReportQuery{City: "Mumbai"})
	require.Error(t, err)

	_, err = f.svc.ChapterReport(dto.ReportQuery{Chapter: "Andheri"})
	require.Error(t, err)
}

package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
)

func TestMeetingListFiltersServerSide(t *testing.T) {
	db := testDB(t)
	svc := NewMeetingService(db)

	mumbai := seedCity(t, db, "Mumbai")
	pune := seedCity(t, db, "Pune")
	andheri := seedChapter(t, db, mumbai.ID, "Andheri")
	kothrud := seedChapter(t, db, pune.ID, "Kothrud")

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seedMeeting(t, db, mumbai.ID, andheri.ID, day)
	seedMeeting(t, db, mumbai.ID, andheri.ID, day.AddDate(0, 0, 7))
	seedMeeting(t, db, pune.ID, kothrud.ID, day)

	all, err := svc.List(MeetingFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.TotalRecords)

	mumbaiOnly, err := svc.List(MeetingFilter{CityID: &mumbai.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), mumbaiOnly.TotalRecords)
	assert.Len(t, mumbaiOnly.Data, 2)

	paged, err := svc.List(MeetingFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, paged.Data, 1)
	assert.Equal(t, 2, paged.TotalPages)
}

func TestMeetingQRPayloadIsDerived(t *testing.T) {
	db := testDB(t)
	svc := NewMeetingService(db)

	city := seedCity(t, db, "Mumbai")
	chapter := seedChapter(t, db, city.ID, "Andheri")
	meeting := seedMeeting(t, db, city.ID, chapter.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	payload, err := svc.QRPayload(meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "clubgrid://meeting/"+meeting.ID.String()+"?date=2025-06-01", payload)

	_, err = svc.QRPayload(uuid.New())
	assert.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestRecordAttendanceRejectsDuplicateCheckin(t *testing.T) {
	db := testDB(t)
	svc := NewMeetingService(db)

	city := seedCity(t, db, "Mumbai")
	chapter := seedChapter(t, db, city.ID, "Andheri")
	meeting := seedMeeting(t, db, city.ID, chapter.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	user := seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")

	att, err := svc.RecordAttendance(&dto.CreateAttendanceRequest{
		MeetingID: meeting.ID.String(),
		UserID:    user.ID.String(),
	})
	require.NoError(t, err)
	assert.True(t, att.Present)

	_, err = svc.RecordAttendance(&dto.CreateAttendanceRequest{
		MeetingID: meeting.ID.String(),
		UserID:    user.ID.String(),
	})
	assert.ErrorIs(t, err, ErrDuplicateCheckin)

	_, err = svc.RecordAttendance(&dto.CreateAttendanceRequest{
		MeetingID: meeting.ID.String(),
		UserID:    uuid.New().String(),
	})
	assert.ErrorIs(t, err, ErrAttendeeNotFound)
}

func TestTotalAttendancesCountsPresentOnly(t *testing.T) {
	db := testDB(t)
	svc := NewMeetingService(db)

	city := seedCity(t, db, "Mumbai")
	chapter := seedChapter(t, db, city.ID, "Andheri")
	meeting := seedMeeting(t, db, city.ID, chapter.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	a := seedUser(t, db, "A", "a@example.com", "s3cretpass")
	b := seedUser(t, db, "B", "b@example.com", "s3cretpass")
	seedAttendance(t, db, meeting.ID, a.ID, true)
	seedAttendance(t, db, meeting.ID, b.ID, false)

	total, err := svc.TotalAttendances(meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestExportAttendanceCSV(t *testing.T) {
	db := testDB(t)
	svc := NewMeetingService(db)

	city := seedCity(t, db, "Mumbai")
	chapter := seedChapter(t, db, city.ID, "Andheri")
	meeting := seedMeeting(t, db, city.ID, chapter.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	user := seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")
	seedBusiness(t, db, user.ID, city.ID, chapter.ID, "Asha Designs")
	seedAttendance(t, db, meeting.ID, user.ID, true)

	data, filename, err := svc.ExportAttendanceCSV(meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "attendance-2025-06-01.csv", filename)

	csv := string(data)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[1], "Asha")
	assert.Contains(t, lines[1], "Asha Designs")
	assert.Contains(t, lines[1], ",P,")
}

func TestExportAttendanceAfterDeleteReturnsNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewMeetingService(db)

	city := seedCity(t, db, "Mumbai")
	chapter := seedChapter(t, db, city.ID, "Andheri")
	meeting := seedMeeting(t, db, city.ID, chapter.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	user := seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")
	seedAttendance(t, db, meeting.ID, user.ID, true)

	require.NoError(t, svc.Delete(meeting.ID))

	_, _, err := svc.ExportAttendanceCSV(meeting.ID)
	assert.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestUpcomingMeetingsSortedAndCapped(t *testing.T) {
	db := testDB(t)
	svc := NewMeetingService(db)

	city := seedCity(t, db, "Mumbai")
	chapter := seedChapter(t, db, city.ID, "Andheri")

	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	seedMeeting(t, db, city.ID, chapter.ID, now.AddDate(0, 0, -7)) // past, excluded
	for i := 0; i < 12; i++ {
		seedMeeting(t, db, city.ID, chapter.ID, now.AddDate(0, 0, i+1))
	}

	out, err := svc.Upcoming(now)
	require.NoError(t, err)
	require.Len(t, out, 10)
	assert.Equal(t, "2025-06-19", out[0].Date)
	assert.True(t, out[0].Date < out[9].Date)
}

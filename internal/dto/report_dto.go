package dto

import "github.com/google/uuid"

// ReportQuery carries the shared reporting filters. City and chapter are
// names, not ids; empty means no restriction.
type ReportQuery struct {
	DateRange string
	City      string
	Chapter   string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// AttendanceRow is one member row of the attendance matrix. Cells maps a
// meeting date (2006-01-02) to "P", "A", or is absent when the member has no
// record for that date.
type AttendanceRow struct {
	UserID       uuid.UUID         `json:"user_id"`
	Name         string            `json:"name"`
	Mobile       string            `json:"mobile"`
	BusinessName string            `json:"business_name"`
	Cells        map[string]string `json:"cells"`
}

type AttendanceReportResponse struct {
	Success      bool            `json:"success"`
	Data         []AttendanceRow `json:"data"`
	MeetingDates []string        `json:"meeting_dates"`
	TotalRecords int64           `json:"total_records"`
	TotalPages   int             `json:"total_pages"`
	Page         int             `json:"page"`
	Limit        int             `json:"limit"`
}

// ChapterReportRow is one member row of the chapter performance report.
type ChapterReportRow struct {
	UserID             uuid.UUID `json:"user_id"`
	Name               string    `json:"name"`
	Mobile             string    `json:"mobile"`
	BusinessName       string    `json:"business_name"`
	ReferencesReceived int64     `json:"references_received"`
	ReferencesGiven    int64     `json:"references_given"`
	ValueReceived      float64   `json:"business_value_received"`
	ValueGiven         float64   `json:"business_value_given"`
	OneToOnes          int64     `json:"one_to_one_meetings"`
	Absences           int64     `json:"absences"`
}

type ChapterReportResponse struct {
	Success      bool               `json:"success"`
	Data         []ChapterReportRow `json:"data"`
	TotalRecords int64              `json:"total_records"`
	TotalPages   int                `json:"total_pages"`
	Page         int                `json:"page"`
	Limit        int                `json:"limit"`
}

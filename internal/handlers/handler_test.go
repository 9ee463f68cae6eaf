package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
	"github.com/clubgrid/clubgrid-backend/internal/services"
)

func testApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.City{},
		&models.Chapter{},
		&models.User{},
		&models.Business{},
		&models.BusinessService{},
		&models.Meeting{},
		&models.MeetingAttendance{},
		&models.BusinessExchange{},
		&models.ReferencePass{},
		&models.PersonalMeeting{},
		&models.ContentPage{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return fiber.New(), db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
}

func TestCityEndpoints(t *testing.T) {
	app, db := testApp(t)
	h := NewCityHandler(services.NewCityService(db))
	app.Get("/api/cities", h.List)
	app.Post("/api/cities", h.Create)
	app.Delete("/api/cities/:id", h.Delete)

	resp := doJSON(t, app, http.MethodPost, "/api/cities", map[string]string{"name": "Mumbai"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var city models.City
	decode(t, resp, &city)
	assert.Equal(t, "Mumbai", city.Name)

	// Duplicate name conflicts.
	resp = doJSON(t, app, http.MethodPost, "/api/cities", map[string]string{"name": "mumbai"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Missing name fails validation.
	resp = doJSON(t, app, http.MethodPost, "/api/cities", map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/cities", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list struct {
		Success bool          `json:"success"`
		Data    []models.City `json:"data"`
	}
	decode(t, resp, &list)
	assert.True(t, list.Success)
	assert.Len(t, list.Data, 1)

	resp = doJSON(t, app, http.MethodDelete, "/api/cities/"+city.ID.String(), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodDelete, "/api/cities/"+city.ID.String(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestContentEndpointsRepeatableReads(t *testing.T) {
	app, db := testApp(t)
	h := NewContentHandler(services.NewContentService(db))
	app.Get("/api/rule-book", h.GetRuleBook)
	app.Put("/api/rule-book", h.UpdateRuleBook)

	readBody := func() string {
		resp := doJSON(t, app, http.MethodGet, "/api/rule-book", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(raw)
	}

	first := readBody()
	assert.Equal(t, first, readBody(), "reads without a write must be identical")

	resp := doJSON(t, app, http.MethodPut, "/api/rule-book", map[string]string{"content": "<h1>Rules</h1>"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	after := readBody()
	assert.NotEqual(t, first, after)
	assert.Contains(t, after, "<h1>Rules</h1>")
	assert.Equal(t, after, readBody())
}

func TestReportEndpointQueryParsing(t *testing.T) {
	app, db := testApp(t)
	h := NewReportHandler(services.NewReportService(db))
	app.Get("/api/attendance-reports", h.AttendanceReport)

	resp := doJSON(t, app, http.MethodGet, "/api/attendance-reports?dateRange=This+Month&page=0&limit=9999", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report struct {
		Success      bool     `json:"success"`
		MeetingDates []string `json:"meeting_dates"`
		Page         int      `json:"page"`
		Limit        int      `json:"limit"`
	}
	decode(t, resp, &report)
	assert.True(t, report.Success)
	assert.Empty(t, report.MeetingDates)
	assert.Equal(t, 1, report.Page)
	assert.Equal(t, 20, report.Limit)
}

// A database fault during a create must surface as a generic 500. Only
// client-input problems come back as 400 with a message.
func TestCreateUserDatabaseFault(t *testing.T) {
	app, db := testApp(t)
	h := NewUserHandler(services.NewUserService(db))
	app.Post("/api/users", h.Create)

	// Short password is a client fault.
	resp := doJSON(t, app, http.MethodPost, "/api/users", map[string]string{
		"first_name": "Asha",
		"email":      "asha@example.com",
		"password":   "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp = doJSON(t, app, http.MethodPost, "/api/users", map[string]string{
		"first_name": "Asha",
		"last_name":  "Patil",
		"email":      "asha@example.com",
		"mobile":     "9876543210",
		"password":   "secret123",
	})
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "Failed to create user", body.Message)
	assert.NotContains(t, body.Message, "sql")
}

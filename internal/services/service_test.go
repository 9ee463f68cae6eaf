package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clubgrid/clubgrid-backend/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
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
		&models.Event{},
		&models.BusinessExchange{},
		&models.ReferencePass{},
		&models.PersonalMeeting{},
		&models.ContentPage{},
		&models.RefreshToken{},
		&models.SystemLog{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedCity(t *testing.T, db *gorm.DB, name string) models.City {
	t.Helper()
	city := models.City{ID: uuid.New(), Name: name, Status: "active"}
	if err := db.Create(&city).Error; err != nil {
		t.Fatalf("seed city: %v", err)
	}
	return city
}

func seedChapter(t *testing.T, db *gorm.DB, cityID uuid.UUID, name string) models.Chapter {
	t.Helper()
	chapter := models.Chapter{ID: uuid.New(), Name: name, CityID: cityID, Status: "active"}
	if err := db.Create(&chapter).Error; err != nil {
		t.Fatalf("seed chapter: %v", err)
	}
	return chapter
}

func seedUser(t *testing.T, db *gorm.DB, first, email, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		ID:            uuid.New(),
		FirstName:     first,
		Email:         email,
		Mobile:        "9876543210",
		Password:      string(hash),
		Role:          "member",
		AccountStatus: "pending",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedBusiness(t *testing.T, db *gorm.DB, userID, cityID, chapterID uuid.UUID, name string) models.Business {
	t.Helper()
	business := models.Business{
		ID:        uuid.New(),
		UserID:    userID,
		CityID:    cityID,
		ChapterID: chapterID,
		Name:      name,
	}
	if err := db.Create(&business).Error; err != nil {
		t.Fatalf("seed business: %v", err)
	}
	return business
}

func seedMeeting(t *testing.T, db *gorm.DB, cityID, chapterID uuid.UUID, date time.Time) models.Meeting {
	t.Helper()
	meeting := models.Meeting{
		ID:        uuid.New(),
		Title:     "Weekly Meeting",
		CityID:    cityID,
		ChapterID: chapterID,
		Date:      date,
		Status:    "scheduled",
	}
	if err := db.Create(&meeting).Error; err != nil {
		t.Fatalf("seed meeting: %v", err)
	}
	return meeting
}

func seedAttendance(t *testing.T, db *gorm.DB, meetingID, userID uuid.UUID, present bool) models.MeetingAttendance {
	t.Helper()
	att := models.MeetingAttendance{
		ID:         uuid.New(),
		MeetingID:  meetingID,
		UserID:     userID,
		Present:    present,
		AttendedAt: time.Now(),
	}
	if err := db.Create(&att).Error; err != nil {
		t.Fatalf("seed attendance: %v", err)
	}
	return att
}

package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
)

func TestUserCreateHashesPasswordAndDefaultsRole(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	user, err := svc.Create(&dto.CreateUserRequest{
		FirstName:   "Asha",
		LastName:    "Patel",
		Email:       "asha@example.com",
		Mobile:      "9876543210",
		DateOfBirth: "1990-04-12",
		Password:    "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "member", user.Role)
	assert.NotEqual(t, "s3cretpass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cretpass")))
	require.NotNil(t, user.DateOfBirth)
	assert.Equal(t, "1990-04-12", user.DateOfBirth.Format("2006-01-02"))
}

func TestUserCreateRejectsDuplicateEmailAndShortPassword(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")

	_, err := svc.Create(&dto.CreateUserRequest{
		FirstName: "Other",
		Email:     "asha@example.com",
		Password:  "s3cretpass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Create(&dto.CreateUserRequest{
		FirstName: "Short",
		Email:     "short@example.com",
		Password:  "short",
	})
	assert.Error(t, err)
}

func TestUserListDerivesBusinessProfileStatus(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	city := seedCity(t, db, "Mumbai")
	chapter := seedChapter(t, db, city.ID, "Andheri")
	withBiz := seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")
	withoutBiz := seedUser(t, db, "Ravi", "ravi@example.com", "s3cretpass")
	seedBusiness(t, db, withBiz.ID, city.ID, chapter.ID, "Asha Designs")

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := map[string]dto.UserListItem{}
	for _, it := range items {
		byID[it.ID.String()] = it
	}
	assert.Equal(t, "completed", byID[withBiz.ID.String()].BusinessProfileStatus)
	assert.Equal(t, "Asha Designs", byID[withBiz.ID.String()].BusinessName)
	assert.Equal(t, "pending", byID[withoutBiz.ID.String()].BusinessProfileStatus)
}

func TestUserDeleteCascadesBusinessAndTokens(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	city := seedCity(t, db, "Mumbai")
	chapter := seedChapter(t, db, city.ID, "Andheri")
	user := seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")
	business := seedBusiness(t, db, user.ID, city.ID, chapter.ID, "Asha Designs")

	offering := models.BusinessService{ID: uuid.New(), BusinessID: business.ID, Name: "Branding"}
	require.NoError(t, db.Create(&offering).Error)
	token := models.RefreshToken{ID: uuid.New(), UserID: user.ID, TokenHash: "h", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, db.Create(&token).Error)

	require.NoError(t, svc.Delete(user.ID))

	var userCount, bizCount, offeringCount, tokenCount int64
	db.Model(&models.User{}).Where("id = ?", user.ID).Count(&userCount)
	db.Model(&models.Business{}).Where("user_id = ?", user.ID).Count(&bizCount)
	db.Model(&models.BusinessService{}).Where("business_id = ?", business.ID).Count(&offeringCount)
	db.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Count(&tokenCount)
	assert.Zero(t, userCount)
	assert.Zero(t, bizCount)
	assert.Zero(t, offeringCount)
	assert.Zero(t, tokenCount)

	assert.ErrorIs(t, svc.Delete(user.ID), ErrUserNotFound)
}

func TestUserChangePasswordVerifiesOld(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	user := seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")

	err := svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		OldPassword: "wrongpass",
		NewPassword: "newpassword",
	})
	assert.ErrorIs(t, err, ErrWrongOldPassword)

	err = svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		OldPassword: "s3cretpass",
		NewPassword: "newpassword",
	})
	require.NoError(t, err)

	var updated models.User
	require.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword")))
}

func TestUpcomingBirthdaysWindowAndOrder(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	set := func(u models.User, dob time.Time) {
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", u.ID).Update("date_of_birth", dob).Error)
	}

	soon := seedUser(t, db, "Soon", "soon@example.com", "s3cretpass")
	set(soon, time.Date(1990, 6, 20, 0, 0, 0, 0, time.UTC))
	today := seedUser(t, db, "Today", "today@example.com", "s3cretpass")
	set(today, time.Date(1985, 6, 18, 0, 0, 0, 0, time.UTC))
	// Birthday already passed this year; next occurrence is out of the window.
	passed := seedUser(t, db, "Passed", "passed@example.com", "s3cretpass")
	set(passed, time.Date(1992, 6, 1, 0, 0, 0, 0, time.UTC))
	// Year boundary does not matter, only month/day proximity.
	edge := seedUser(t, db, "Edge", "edge@example.com", "s3cretpass")
	set(edge, time.Date(1970, 7, 17, 0, 0, 0, 0, time.UTC))
	seedUser(t, db, "NoDOB", "nodob@example.com", "s3cretpass")

	out, err := svc.UpcomingBirthdays(now)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Today", out[0].Name)
	assert.Equal(t, 0, out[0].DaysAway)
	assert.Equal(t, "Soon", out[1].Name)
	assert.Equal(t, "Edge", out[2].Name)
	assert.Equal(t, "2025-07-17", out[2].NextBirthday)
}

func TestTotalMembersCountsMemberRoleOnly(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	seedUser(t, db, "A", "a@example.com", "s3cretpass")
	seedUser(t, db, "B", "b@example.com", "s3cretpass")
	admin := seedUser(t, db, "Admin", "admin@example.com", "s3cretpass")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", admin.ID).Update("role", "admin").Error)

	total, err := svc.TotalMembers()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

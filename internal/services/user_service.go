package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrWrongOldPassword = errors.New("old password is incorrect")
)

const birthdayWindowDays = 30

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create is onboarding step 1: identity plus credentials. The business
// profile follows as a separate call once the remaining wizard steps finish.
func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Password:  string(hash),
		Role:      "member",
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err == nil {
			user.DateOfBirth = &dob
		}
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// List returns all users annotated with the derived business-profile status.
// The status is computed from the presence of a Business row, never stored.
func (s *UserService) List() ([]dto.UserListItem, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	var businesses []models.Business
	if err := s.db.Select("id", "user_id", "name").Find(&businesses).Error; err != nil {
		return nil, err
	}
	byUser := make(map[uuid.UUID]string, len(businesses))
	for _, b := range businesses {
		byUser[b.UserID] = b.Name
	}

	items := make([]dto.UserListItem, len(users))
	for i, u := range users {
		item := dto.UserListItem{
			UserResponse:          mapUserToResponse(&u),
			BusinessProfileStatus: "pending",
			CreatedAt:             u.CreatedAt.Format(time.RFC3339),
		}
		if u.DateOfBirth != nil {
			item.DateOfBirth = u.DateOfBirth.Format("2006-01-02")
		}
		if name, ok := byUser[u.ID]; ok {
			item.BusinessProfileStatus = "completed"
			item.BusinessName = name
		}
		items[i] = item
	}
	return items, nil
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		var existing models.User
		if err := s.db.Where("email = ? AND id <> ?", *req.Email, id).First(&existing).Error; err == nil {
			return nil, ErrEmailTaken
		}
		updates["email"] = *req.Email
	}
	if req.Mobile != nil {
		updates["mobile"] = *req.Mobile
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, dto.NewValidationError("date_of_birth must be YYYY-MM-DD")
		}
		updates["date_of_birth"] = dob
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.AccountStatus != nil {
		updates["account_status"] = *req.AccountStatus
	}

	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return s.Get(id)
}

// Delete removes a user and its dependents in one transaction, replacing the
// old two-call client-side cascade.
func (s *UserService) Delete(id uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return ErrUserNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var business models.Business
		if err := tx.Where("user_id = ?", id).First(&business).Error; err == nil {
			if err := tx.Where("business_id = ?", business.ID).Delete(&models.BusinessService{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&business).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func (s *UserService) ChangePassword(id uuid.UUID, req *dto.ChangePasswordRequest) error {
	if err := dto.Validate(req); err != nil {
		return err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Model(&user).Update("password", string(hash)).Error
}

func (s *UserService) TotalMembers() (int64, error) {
	var total int64
	err := s.db.Model(&models.User{}).Where("role = ?", "member").Count(&total).Error
	return total, err
}

// UpcomingBirthdays lists members whose birthday falls within the next 30
// days, year-agnostic, sorted by how soon the day comes around.
func (s *UserService) UpcomingBirthdays(now time.Time) ([]dto.UpcomingBirthday, error) {
	var users []models.User
	if err := s.db.Where("date_of_birth IS NOT NULL").Find(&users).Error; err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var out []dto.UpcomingBirthday
	for _, u := range users {
		if u.DateOfBirth == nil {
			continue
		}
		next := nextOccurrence(*u.DateOfBirth, today)
		days := int(next.Sub(today).Hours() / 24)
		if days > birthdayWindowDays {
			continue
		}
		out = append(out, dto.UpcomingBirthday{
			ID:           u.ID,
			Name:         u.FullName(),
			DateOfBirth:  u.DateOfBirth.Format("2006-01-02"),
			NextBirthday: next.Format("2006-01-02"),
			DaysAway:     days,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysAway < out[j].DaysAway })
	return out, nil
}

func nextOccurrence(dob, today time.Time) time.Time {
	next := time.Date(today.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, today.Location())
	if next.Before(today) {
		next = next.AddDate(1, 0, 0)
	}
	return next
}

package dto

import "github.com/google/uuid"

// CreateUserRequest is onboarding step 1: identity plus credentials. The
// business profile arrives later as a separate creation call.
type CreateUserRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Mobile      string `json:"mobile" validate:"omitempty,len=10,numeric"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"omitempty,oneof=user admin member"`
}

type UpdateUserRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,max=100"`
	LastName      *string `json:"last_name" validate:"omitempty,max=100"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Mobile        *string `json:"mobile" validate:"omitempty,len=10,numeric"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Role          *string `json:"role" validate:"omitempty,oneof=user admin member"`
	AccountStatus *string `json:"account_status" validate:"omitempty,oneof=active pending approved rejected inactive"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UserListItem is a user row with the derived profile-completion status.
type UserListItem struct {
	UserResponse
	DateOfBirth           string `json:"date_of_birth,omitempty"`
	BusinessProfileStatus string `json:"business_profile_status"`
	BusinessName          string `json:"business_name,omitempty"`
	CreatedAt             string `json:"created_at"`
}

type UpcomingBirthday struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DateOfBirth  string    `json:"date_of_birth"`
	NextBirthday string    `json:"next_birthday"`
	DaysAway     int       `json:"days_away"`
}

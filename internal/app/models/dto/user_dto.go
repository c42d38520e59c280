package dto

import (
	"time"

	"github.com/mertkaya/eduhub/internal/app/models"
)

// UserResponse represents user information returned by the API
type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUserResponse maps a user model to its transport representation
func NewUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		CreatedAt:   user.CreatedAt,
	}
	if user.Role != nil {
		resp.Role = string(user.Role.Name)
	}
	return resp
}

// NewUserResponseList maps a slice of user models
func NewUserResponseList(users []*models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}

// CreateUserRequest represents admin-side user creation data
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	RoleName    string `json:"roleName" binding:"required,oneof=ADMIN INSTRUCTOR STUDENT"`
}

// UpdateUserRequest represents a partial user update. Nil fields are left
// untouched. These pointer fields are the complete set of externally
// mutable user attributes.
type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Password    *string `json:"password,omitempty" binding:"omitempty,min=8"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	RoleName    *string `json:"roleName,omitempty" binding:"omitempty,oneof=ADMIN INSTRUCTOR STUDENT"`
}

// ApplyTo merges the set fields onto the user. Password and role are
// handled by the service since they need hashing and an admin check.
func (r *UpdateUserRequest) ApplyTo(user *models.User) {
	if r.Email != nil {
		user.Email = *r.Email
	}
	if r.PhoneNumber != nil {
		user.PhoneNumber = *r.PhoneNumber
	}
	if r.FirstName != nil {
		user.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		user.LastName = *r.LastName
	}
}

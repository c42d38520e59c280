package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email       string    `json:"email" db:"email" example:"user@example.com"`              // User's email address (unique)
	PhoneNumber string    `json:"phoneNumber" db:"phone_number" example:"+905551112233"`    // User's phone number (unique)
	Password    string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	FirstName   string    `json:"firstName" db:"first_name" example:"John"`                 // User's first name
	LastName    string    `json:"lastName" db:"last_name" example:"Doe"`                    // User's last name
	RoleID      int64     `json:"roleId" db:"role_id" example:"3"`                          // Reference to the user's role
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created

	Role *Role `json:"role,omitempty"` // Relation, no db tag
}

// HasRole reports whether the user's attached role matches name.
func (u *User) HasRole(name RoleName) bool {
	return u.Role != nil && u.Role.Name == name
}

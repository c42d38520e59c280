package models

// RoleName defines the closed set of role names.
type RoleName string

const (
	RoleAdmin      RoleName = "ADMIN"
	RoleInstructor RoleName = "INSTRUCTOR"
	RoleStudent    RoleName = "STUDENT"
)

// Role defines the role model based on the 'roles' table.
// The role name set is fixed; roles are seeded at startup and never
// created through the API.
type Role struct {
	ID   int64    `json:"id" db:"id" example:"1"`
	Name RoleName `json:"name" db:"name" example:"STUDENT"`
}

// IsValidRoleName reports whether name belongs to the closed role set.
func IsValidRoleName(name string) bool {
	switch RoleName(name) {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

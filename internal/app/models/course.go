package models

import "time"

// Course represents a course offered under a category, optionally taught
// by an instructor.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description,omitempty" db:"description"` // Nullable
	CategoryID   int64     `json:"categoryId" db:"category_id"`
	InstructorID *int64    `json:"instructorId,omitempty" db:"instructor_id"` // Nullable, must reference an INSTRUCTOR user
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Category   *CourseCategory `json:"category,omitempty"`
	Instructor *User           `json:"instructor,omitempty"`
}

package models

// CourseCategory represents a category that groups courses.
// A category cannot be deleted while any course still references it.
type CourseCategory struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

package dto

import (
	"time"

	"github.com/mertkaya/eduhub/internal/app/models"
)

// CourseResponse represents a course returned by the API. The detail view
// carries the category and instructor when loaded.
type CourseResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	CategoryID  int64             `json:"categoryId"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Instructor  *UserResponse     `json:"instructor,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NewCourseResponse maps a course model to its transport representation
func NewCourseResponse(course *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		CategoryID:  course.CategoryID,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
	if course.Category != nil {
		category := NewCategoryResponse(course.Category)
		resp.Category = &category
	}
	if course.Instructor != nil {
		instructor := NewUserResponse(course.Instructor)
		resp.Instructor = &instructor
	}
	return resp
}

// NewCourseResponseList maps a slice of course models
func NewCourseResponseList(courses []*models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}
	return responses
}

// CreateCourseRequest represents course creation data. The instructor is
// optional; when the caller is an instructor the field is overridden with
// the caller's own identity.
type CreateCourseRequest struct {
	Title        string  `json:"title" binding:"required,min=2,max=255"`
	Description  *string `json:"description,omitempty"`
	CategoryID   int64   `json:"categoryId" binding:"required,min=1"`
	InstructorID *int64  `json:"instructorId,omitempty" binding:"omitempty,min=1"`
}

// UpdateCourseRequest represents a partial course update. Nil fields are
// left untouched. These pointer fields are the complete set of externally
// mutable course attributes.
type UpdateCourseRequest struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,min=2,max=255"`
	Description  *string `json:"description,omitempty"`
	CategoryID   *int64  `json:"categoryId,omitempty" binding:"omitempty,min=1"`
	InstructorID *int64  `json:"instructorId,omitempty" binding:"omitempty,min=1"`
}

// ApplyTo merges the set fields onto the course.
func (r *UpdateCourseRequest) ApplyTo(course *models.Course) {
	if r.Title != nil {
		course.Title = *r.Title
	}
	if r.Description != nil {
		course.Description = r.Description
	}
	if r.CategoryID != nil {
		course.CategoryID = *r.CategoryID
	}
	if r.InstructorID != nil {
		course.InstructorID = r.InstructorID
	}
}

package dto

import (
	"time"

	"github.com/mertkaya/eduhub/internal/app/models"
)

// EnrollmentResponse represents an enrollment returned by the API. The
// detail view carries the enrolled user and the course (with instructor)
// when loaded.
type EnrollmentResponse struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"userId"`
	CourseID   int64           `json:"courseId"`
	EnrolledAt time.Time       `json:"enrolledAt"`
	Status     string          `json:"status"`
	Grade      *string         `json:"grade,omitempty"`
	User       *UserResponse   `json:"user,omitempty"`
	Course     *CourseResponse `json:"course,omitempty"`
}

// NewEnrollmentResponse maps an enrollment model to its transport representation
func NewEnrollmentResponse(enrollment *models.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:         enrollment.ID,
		UserID:     enrollment.UserID,
		CourseID:   enrollment.CourseID,
		EnrolledAt: enrollment.EnrolledAt,
		Status:     enrollment.Status,
		Grade:      enrollment.Grade,
	}
	if enrollment.User != nil {
		user := NewUserResponse(enrollment.User)
		resp.User = &user
	}
	if enrollment.Course != nil {
		course := NewCourseResponse(enrollment.Course)
		resp.Course = &course
	}
	return resp
}

// NewEnrollmentResponseList maps a slice of enrollment models
func NewEnrollmentResponseList(enrollments []*models.Enrollment) []EnrollmentResponse {
	responses := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, NewEnrollmentResponse(enrollment))
	}
	return responses
}

// CreateEnrollmentRequest represents enrollment creation data
type CreateEnrollmentRequest struct {
	UserID   int64 `json:"userId" binding:"required,min=1"`
	CourseID int64 `json:"courseId" binding:"required,min=1"`
}

// UpdateEnrollmentRequest represents a partial enrollment update. Status
// and grade are the only externally mutable fields.
type UpdateEnrollmentRequest struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=ENROLLED COMPLETED DROPPED"`
	Grade  *string `json:"grade,omitempty"`
}

// ApplyTo merges the set fields onto the enrollment.
func (r *UpdateEnrollmentRequest) ApplyTo(enrollment *models.Enrollment) {
	if r.Status != nil {
		enrollment.Status = *r.Status
	}
	if r.Grade != nil {
		enrollment.Grade = r.Grade
	}
}

package models

import "time"

// Enrollment status values. Status is mutable through updates; no workflow
// transitions are enforced.
const (
	EnrollmentStatusEnrolled  = "ENROLLED"
	EnrollmentStatusCompleted = "COMPLETED"
	EnrollmentStatusDropped   = "DROPPED"
)

// Enrollment links a user to a course. At most one enrollment exists per
// (user, course) pair.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
	Status     string    `json:"status" db:"status"`
	Grade      *string   `json:"grade,omitempty" db:"grade"` // Nullable

	// Relations (populated when needed)
	User   *User   `json:"user,omitempty"`
	Course *Course `json:"course,omitempty"`
}

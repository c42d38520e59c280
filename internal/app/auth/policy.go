// Package auth holds the per-operation authorization policy. Every
// role/ownership rule lives here as an explicit check taking the caller
// and the target resource, instead of role strings scattered through
// handler bodies.
package auth

import (
	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/pkg/apperrors"
)

// Caller is the authenticated principal attached to a request, sourced
// from validated token claims.
type Caller struct {
	ID    int64
	Email string
	Role  models.RoleName
}

// IsAdmin reports whether the caller holds the admin role
func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// IsInstructor reports whether the caller holds the instructor role
func (c Caller) IsInstructor() bool {
	return c.Role == models.RoleInstructor
}

// IsStudent reports whether the caller holds the student role
func (c Caller) IsStudent() bool {
	return c.Role == models.RoleStudent
}

// ownsCourse reports whether the caller is the course's instructor
func (c Caller) ownsCourse(course *models.Course) bool {
	return course != nil && course.InstructorID != nil && *course.InstructorID == c.ID
}

// --- Users ---

// CanListUsers allows admins to list accounts
func CanListUsers(caller Caller) error {
	if !caller.IsAdmin() {
		return apperrors.NewForbiddenError("only admins can list users")
	}
	return nil
}

// CanViewUser allows a caller to fetch their own account; admins may
// fetch any account
func CanViewUser(caller Caller, targetUserID int64) error {
	if caller.IsAdmin() || caller.ID == targetUserID {
		return nil
	}
	return apperrors.NewForbiddenError("you can only view your own account")
}

// CanCreateUser allows admins to create accounts
func CanCreateUser(caller Caller) error {
	if !caller.IsAdmin() {
		return apperrors.NewForbiddenError("only admins can create users")
	}
	return nil
}

// CanUpdateUser allows the account owner or an admin to update an account
func CanUpdateUser(caller Caller, targetUserID int64) error {
	if caller.IsAdmin() || caller.ID == targetUserID {
		return nil
	}
	return apperrors.NewForbiddenError("you can only update your own account")
}

// CanChangeRole allows admins to change an account's role
func CanChangeRole(caller Caller) error {
	if !caller.IsAdmin() {
		return apperrors.NewForbiddenError("only admins can change roles")
	}
	return nil
}

// CanDeleteUser allows admins to delete accounts
func CanDeleteUser(caller Caller) error {
	if !caller.IsAdmin() {
		return apperrors.NewForbiddenError("only admins can delete users")
	}
	return nil
}

// --- Courses ---

// CanCreateCourse allows admins and instructors to create courses
func CanCreateCourse(caller Caller) error {
	if caller.IsAdmin() || caller.IsInstructor() {
		return nil
	}
	return apperrors.NewForbiddenError("only admins and instructors can create courses")
}

// CanUpdateCourse allows admins; an instructor may only update a course
// they own
func CanUpdateCourse(caller Caller, course *models.Course) error {
	if caller.IsAdmin() {
		return nil
	}
	if caller.IsInstructor() && caller.ownsCourse(course) {
		return nil
	}
	return apperrors.NewForbiddenError("you can only update your own courses")
}

// CanDeleteCourse allows admins to delete courses
func CanDeleteCourse(caller Caller) error {
	if !caller.IsAdmin() {
		return apperrors.NewForbiddenError("only admins can delete courses")
	}
	return nil
}

// CanListOwnCourses allows instructors to list the courses they teach
func CanListOwnCourses(caller Caller) error {
	if !caller.IsInstructor() {
		return apperrors.NewForbiddenError("only instructors have their own course list")
	}
	return nil
}

// --- Categories ---

// CanManageCategories allows admins to create, update, and delete
// course categories
func CanManageCategories(caller Caller) error {
	if !caller.IsAdmin() {
		return apperrors.NewForbiddenError("only admins can manage course categories")
	}
	return nil
}

// --- Enrollments ---

// CanListEnrollments allows admins to list all enrollments
func CanListEnrollments(caller Caller) error {
	if !caller.IsAdmin() {
		return apperrors.NewForbiddenError("only admins can list all enrollments")
	}
	return nil
}

// CanViewEnrollment allows the enrolled user, the course's instructor,
// and admins to view an enrollment
func CanViewEnrollment(caller Caller, enrollment *models.Enrollment, course *models.Course) error {
	if caller.IsAdmin() {
		return nil
	}
	if enrollment != nil && enrollment.UserID == caller.ID {
		return nil
	}
	if caller.ownsCourse(course) {
		return nil
	}
	return apperrors.NewForbiddenError("you don't have access to this enrollment")
}

// CanEnrollUser restricts students to enrolling themselves; admins and
// instructors may enroll any account
func CanEnrollUser(caller Caller, targetUserID int64) error {
	if caller.IsStudent() && caller.ID != targetUserID {
		return apperrors.NewForbiddenError("students can only enroll themselves")
	}
	return nil
}

// CanUpdateEnrollment allows admins and the course's instructor to
// update an enrollment
func CanUpdateEnrollment(caller Caller, course *models.Course) error {
	if caller.IsAdmin() || caller.ownsCourse(course) {
		return nil
	}
	return apperrors.NewForbiddenError("only admins or the course instructor can update enrollments")
}

// CanDeleteEnrollment allows admins to delete enrollments
func CanDeleteEnrollment(caller Caller) error {
	if !caller.IsAdmin() {
		return apperrors.NewForbiddenError("only admins can delete enrollments")
	}
	return nil
}

// CanListEnrollmentsOfUser allows a user to list their own enrollments;
// admins may list anyone's
func CanListEnrollmentsOfUser(caller Caller, targetUserID int64) error {
	if caller.IsAdmin() || caller.ID == targetUserID {
		return nil
	}
	return apperrors.NewForbiddenError("you can only list your own enrollments")
}

// CanListEnrollmentsOfCourse allows admins and the course's instructor
// to list a course's enrollments
func CanListEnrollmentsOfCourse(caller Caller, course *models.Course) error {
	if caller.IsAdmin() || caller.ownsCourse(course) {
		return nil
	}
	return apperrors.NewForbiddenError("only admins or the course instructor can list course enrollments")
}

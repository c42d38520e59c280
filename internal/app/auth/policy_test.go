package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/pkg/apperrors"
)

var (
	admin      = Caller{ID: 1, Role: models.RoleAdmin}
	instructor = Caller{ID: 2, Role: models.RoleInstructor}
	student    = Caller{ID: 3, Role: models.RoleStudent}
)

func courseOwnedBy(instructorID int64) *models.Course {
	return &models.Course{ID: 10, Title: "Calculus I", CategoryID: 1, InstructorID: &instructorID}
}

func TestUserPolicies(t *testing.T) {
	tests := []struct {
		name    string
		check   func() error
		allowed bool
	}{
		{"admin lists users", func() error { return CanListUsers(admin) }, true},
		{"instructor lists users", func() error { return CanListUsers(instructor) }, false},
		{"student lists users", func() error { return CanListUsers(student) }, false},

		{"admin views anyone", func() error { return CanViewUser(admin, 3) }, true},
		{"student views self", func() error { return CanViewUser(student, 3) }, true},
		{"student views other", func() error { return CanViewUser(student, 2) }, false},
		{"instructor views self", func() error { return CanViewUser(instructor, 2) }, true},
		{"instructor views other", func() error { return CanViewUser(instructor, 3) }, false},

		{"admin creates users", func() error { return CanCreateUser(admin) }, true},
		{"instructor creates users", func() error { return CanCreateUser(instructor) }, false},

		{"admin updates anyone", func() error { return CanUpdateUser(admin, 3) }, true},
		{"student updates self", func() error { return CanUpdateUser(student, 3) }, true},
		{"student updates other", func() error { return CanUpdateUser(student, 2) }, false},

		{"admin changes roles", func() error { return CanChangeRole(admin) }, true},
		{"student changes roles", func() error { return CanChangeRole(student) }, false},

		{"admin deletes users", func() error { return CanDeleteUser(admin) }, true},
		{"instructor deletes users", func() error { return CanDeleteUser(instructor) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
			}
		})
	}
}

func TestCoursePolicies(t *testing.T) {
	ownCourse := courseOwnedBy(instructor.ID)
	otherCourse := courseOwnedBy(99)
	unassigned := &models.Course{ID: 11, Title: "Unassigned", CategoryID: 1}

	tests := []struct {
		name    string
		check   func() error
		allowed bool
	}{
		{"admin creates courses", func() error { return CanCreateCourse(admin) }, true},
		{"instructor creates courses", func() error { return CanCreateCourse(instructor) }, true},
		{"student creates courses", func() error { return CanCreateCourse(student) }, false},

		{"admin updates any course", func() error { return CanUpdateCourse(admin, otherCourse) }, true},
		{"instructor updates own course", func() error { return CanUpdateCourse(instructor, ownCourse) }, true},
		{"instructor updates other course", func() error { return CanUpdateCourse(instructor, otherCourse) }, false},
		{"instructor updates unassigned course", func() error { return CanUpdateCourse(instructor, unassigned) }, false},
		{"student updates course", func() error { return CanUpdateCourse(student, ownCourse) }, false},

		{"admin deletes courses", func() error { return CanDeleteCourse(admin) }, true},
		{"instructor deletes courses", func() error { return CanDeleteCourse(instructor) }, false},

		{"instructor lists own courses", func() error { return CanListOwnCourses(instructor) }, true},
		{"student lists own courses", func() error { return CanListOwnCourses(student) }, false},
		{"admin lists own courses", func() error { return CanListOwnCourses(admin) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
			}
		})
	}
}

func TestCategoryPolicies(t *testing.T) {
	assert.NoError(t, CanManageCategories(admin))
	assert.ErrorIs(t, CanManageCategories(instructor), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, CanManageCategories(student), apperrors.ErrPermissionDenied)
}

func TestEnrollmentPolicies(t *testing.T) {
	ownCourse := courseOwnedBy(instructor.ID)
	otherCourse := courseOwnedBy(99)
	studentEnrollment := &models.Enrollment{ID: 1, UserID: student.ID, CourseID: ownCourse.ID}
	otherEnrollment := &models.Enrollment{ID: 2, UserID: 99, CourseID: otherCourse.ID}

	tests := []struct {
		name    string
		check   func() error
		allowed bool
	}{
		{"admin lists enrollments", func() error { return CanListEnrollments(admin) }, true},
		{"instructor lists enrollments", func() error { return CanListEnrollments(instructor) }, false},

		{"admin views any enrollment", func() error { return CanViewEnrollment(admin, otherEnrollment, otherCourse) }, true},
		{"student views own enrollment", func() error { return CanViewEnrollment(student, studentEnrollment, ownCourse) }, true},
		{"student views other enrollment", func() error { return CanViewEnrollment(student, otherEnrollment, otherCourse) }, false},
		{"instructor views enrollment of own course", func() error { return CanViewEnrollment(instructor, studentEnrollment, ownCourse) }, true},
		{"instructor views enrollment of other course", func() error { return CanViewEnrollment(instructor, otherEnrollment, otherCourse) }, false},

		{"student enrolls self", func() error { return CanEnrollUser(student, student.ID) }, true},
		{"student enrolls other", func() error { return CanEnrollUser(student, 99) }, false},
		{"admin enrolls anyone", func() error { return CanEnrollUser(admin, 99) }, true},
		{"instructor enrolls anyone", func() error { return CanEnrollUser(instructor, 99) }, true},

		{"admin updates any enrollment", func() error { return CanUpdateEnrollment(admin, otherCourse) }, true},
		{"instructor updates enrollment of own course", func() error { return CanUpdateEnrollment(instructor, ownCourse) }, true},
		{"instructor updates enrollment of other course", func() error { return CanUpdateEnrollment(instructor, otherCourse) }, false},
		{"student updates enrollment", func() error { return CanUpdateEnrollment(student, ownCourse) }, false},

		{"admin deletes enrollments", func() error { return CanDeleteEnrollment(admin) }, true},
		{"instructor deletes enrollments", func() error { return CanDeleteEnrollment(instructor) }, false},

		{"student lists own enrollments", func() error { return CanListEnrollmentsOfUser(student, student.ID) }, true},
		{"student lists other's enrollments", func() error { return CanListEnrollmentsOfUser(student, 99) }, false},
		{"admin lists anyone's enrollments", func() error { return CanListEnrollmentsOfUser(admin, 99) }, true},

		{"admin lists course enrollments", func() error { return CanListEnrollmentsOfCourse(admin, otherCourse) }, true},
		{"instructor lists own course enrollments", func() error { return CanListEnrollmentsOfCourse(instructor, ownCourse) }, true},
		{"instructor lists other course enrollments", func() error { return CanListEnrollmentsOfCourse(instructor, otherCourse) }, false},
		{"student lists course enrollments", func() error { return CanListEnrollmentsOfCourse(student, ownCourse) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
			}
		})
	}
}

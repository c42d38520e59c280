package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaya/eduhub/internal/app/auth"
	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/pkg/apperrors"
)

func newEnrollmentServiceForTest() (*EnrollmentService, *fakeEnrollmentRepo, *fakeCourseRepo) {
	roleRepo := newFakeRoleRepo()
	userRepo := newFakeUserRepo(roleRepo)
	categoryRepo := newFakeCategoryRepo()
	courseRepo := newFakeCourseRepo()
	enrollmentRepo := newFakeEnrollmentRepo()

	userRepo.mustAddUser(&models.User{ID: 1, Email: "admin@example.com", PhoneNumber: "+905550000001", RoleID: 1, CreatedAt: time.Now()})
	userRepo.mustAddUser(&models.User{ID: 2, Email: "teach@example.com", PhoneNumber: "+905550000002", RoleID: 2, CreatedAt: time.Now()})
	userRepo.mustAddUser(&models.User{ID: 3, Email: "student@example.com", PhoneNumber: "+905550000003", RoleID: 3, CreatedAt: time.Now()})
	userRepo.mustAddUser(&models.User{ID: 5, Email: "student2@example.com", PhoneNumber: "+905550000005", RoleID: 3, CreatedAt: time.Now()})

	categoryRepo.mustAddCategory(&models.CourseCategory{ID: 1, Name: "Mathematics"})

	ownerID := int64(2)
	courseRepo.mustAddCourse(&models.Course{ID: 10, Title: "Calculus I", CategoryID: 1, InstructorID: &ownerID})

	svc := NewEnrollmentService(enrollmentRepo, courseRepo, userRepo, categoryRepo)
	return svc, enrollmentRepo, courseRepo
}

func TestCreateEnrollmentStudentSelfOnly(t *testing.T) {
	svc, _, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	// A student enrolls itself.
	enrollment, err := svc.CreateEnrollment(ctx, studentCaller, &dto.CreateEnrollmentRequest{UserID: 3, CourseID: 10})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusEnrolled, enrollment.Status)
	assert.False(t, enrollment.EnrolledAt.IsZero())
	assert.Nil(t, enrollment.Grade)

	// But not anyone else.
	_, err = svc.CreateEnrollment(ctx, studentCaller, &dto.CreateEnrollmentRequest{UserID: 5, CourseID: 10})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateEnrollmentAdminEnrollsAnyone(t *testing.T) {
	svc, _, _ := newEnrollmentServiceForTest()

	enrollment, err := svc.CreateEnrollment(context.Background(), adminCaller, &dto.CreateEnrollmentRequest{UserID: 5, CourseID: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), enrollment.UserID)
	require.NotNil(t, enrollment.Course)
	assert.Equal(t, "Calculus I", enrollment.Course.Title)
	require.NotNil(t, enrollment.User)
	assert.Equal(t, "student2@example.com", enrollment.User.Email)
}

func TestCreateEnrollmentRejectsDuplicatePair(t *testing.T) {
	svc, _, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateEnrollment(ctx, adminCaller, &dto.CreateEnrollmentRequest{UserID: 3, CourseID: 10})
	require.NoError(t, err)

	_, err = svc.CreateEnrollment(ctx, adminCaller, &dto.CreateEnrollmentRequest{UserID: 3, CourseID: 10})
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentAlreadyExists)
}

func TestCreateEnrollmentMissingReferences(t *testing.T) {
	svc, _, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateEnrollment(ctx, adminCaller, &dto.CreateEnrollmentRequest{UserID: 3, CourseID: 99})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.CreateEnrollment(ctx, adminCaller, &dto.CreateEnrollmentRequest{UserID: 99, CourseID: 10})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetEnrollmentByIDVisibility(t *testing.T) {
	svc, enrollmentRepo, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	enrollmentRepo.mustAddEnrollment(&models.Enrollment{ID: 1, UserID: 3, CourseID: 10, EnrolledAt: time.Now(), Status: models.EnrollmentStatusEnrolled})

	// The enrolled student sees it.
	enrollment, err := svc.GetEnrollmentByID(ctx, studentCaller, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), enrollment.UserID)

	// Another student does not.
	otherStudent := auth.Caller{ID: 5, Email: "student2@example.com", Role: models.RoleStudent}
	_, err = svc.GetEnrollmentByID(ctx, otherStudent, 1)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// The course's instructor sees it.
	_, err = svc.GetEnrollmentByID(ctx, instructorCaller, 1)
	require.NoError(t, err)

	// An unrelated instructor does not.
	otherInstructor := auth.Caller{ID: 4, Email: "teach2@example.com", Role: models.RoleInstructor}
	_, err = svc.GetEnrollmentByID(ctx, otherInstructor, 1)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateEnrollmentGrading(t *testing.T) {
	svc, enrollmentRepo, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	enrollmentRepo.mustAddEnrollment(&models.Enrollment{ID: 1, UserID: 3, CourseID: 10, EnrolledAt: time.Now(), Status: models.EnrollmentStatusEnrolled})

	grade := "AA"
	status := models.EnrollmentStatusCompleted

	// The course's instructor grades it.
	enrollment, err := svc.UpdateEnrollment(ctx, instructorCaller, 1, &dto.UpdateEnrollmentRequest{Status: &status, Grade: &grade})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusCompleted, enrollment.Status)
	require.NotNil(t, enrollment.Grade)
	assert.Equal(t, "AA", *enrollment.Grade)

	// Students cannot grade themselves.
	_, err = svc.UpdateEnrollment(ctx, studentCaller, 1, &dto.UpdateEnrollmentRequest{Grade: &grade})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// An unrelated instructor cannot either.
	otherInstructor := auth.Caller{ID: 4, Email: "teach2@example.com", Role: models.RoleInstructor}
	_, err = svc.UpdateEnrollment(ctx, otherInstructor, 1, &dto.UpdateEnrollmentRequest{Grade: &grade})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateEnrollmentMergesOnlyProvidedFields(t *testing.T) {
	svc, enrollmentRepo, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	grade := "BA"
	enrollmentRepo.mustAddEnrollment(&models.Enrollment{ID: 1, UserID: 3, CourseID: 10, EnrolledAt: time.Now(), Status: models.EnrollmentStatusEnrolled, Grade: &grade})

	status := models.EnrollmentStatusDropped
	enrollment, err := svc.UpdateEnrollment(ctx, adminCaller, 1, &dto.UpdateEnrollmentRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.EnrollmentStatusDropped, enrollment.Status)
	require.NotNil(t, enrollment.Grade)
	assert.Equal(t, "BA", *enrollment.Grade)
}

func TestDeleteEnrollmentAdminOnly(t *testing.T) {
	svc, enrollmentRepo, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	enrollmentRepo.mustAddEnrollment(&models.Enrollment{ID: 1, UserID: 3, CourseID: 10, EnrolledAt: time.Now(), Status: models.EnrollmentStatusEnrolled})

	err := svc.DeleteEnrollment(ctx, studentCaller, 1)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	err = svc.DeleteEnrollment(ctx, instructorCaller, 1)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteEnrollment(ctx, adminCaller, 1))

	err = svc.DeleteEnrollment(ctx, adminCaller, 1)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestGetEnrollmentsByCourseOwnership(t *testing.T) {
	svc, enrollmentRepo, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	enrollmentRepo.mustAddEnrollment(&models.Enrollment{ID: 1, UserID: 3, CourseID: 10, EnrolledAt: time.Now(), Status: models.EnrollmentStatusEnrolled})
	enrollmentRepo.mustAddEnrollment(&models.Enrollment{ID: 2, UserID: 5, CourseID: 10, EnrolledAt: time.Now(), Status: models.EnrollmentStatusEnrolled})

	enrollments, err := svc.GetEnrollmentsByCourse(ctx, instructorCaller, 10)
	require.NoError(t, err)
	assert.Len(t, enrollments, 2)

	otherInstructor := auth.Caller{ID: 4, Email: "teach2@example.com", Role: models.RoleInstructor}
	_, err = svc.GetEnrollmentsByCourse(ctx, otherInstructor, 10)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.GetEnrollmentsByCourse(ctx, adminCaller, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetEnrollmentsByUserSelfOrAdmin(t *testing.T) {
	svc, enrollmentRepo, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	enrollmentRepo.mustAddEnrollment(&models.Enrollment{ID: 1, UserID: 3, CourseID: 10, EnrolledAt: time.Now(), Status: models.EnrollmentStatusEnrolled})

	enrollments, err := svc.GetEnrollmentsByUser(ctx, studentCaller, 3)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)

	_, err = svc.GetEnrollmentsByUser(ctx, studentCaller, 5)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	enrollments, err = svc.GetEnrollmentsByUser(ctx, adminCaller, 3)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestGetMyEnrollments(t *testing.T) {
	svc, enrollmentRepo, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	enrollmentRepo.mustAddEnrollment(&models.Enrollment{ID: 1, UserID: 3, CourseID: 10, EnrolledAt: time.Now(), Status: models.EnrollmentStatusEnrolled})
	enrollmentRepo.mustAddEnrollment(&models.Enrollment{ID: 2, UserID: 5, CourseID: 10, EnrolledAt: time.Now(), Status: models.EnrollmentStatusEnrolled})

	enrollments, err := svc.GetMyEnrollments(ctx, studentCaller)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, int64(3), enrollments[0].UserID)
	require.NotNil(t, enrollments[0].Course)
	assert.Equal(t, "Calculus I", enrollments[0].Course.Title)
}

func TestGetAllEnrollmentsAdminOnly(t *testing.T) {
	svc, enrollmentRepo, _ := newEnrollmentServiceForTest()
	ctx := context.Background()

	enrollmentRepo.mustAddEnrollment(&models.Enrollment{ID: 1, UserID: 3, CourseID: 10, EnrolledAt: time.Now(), Status: models.EnrollmentStatusEnrolled})

	enrollments, err := svc.GetAllEnrollments(ctx, adminCaller)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)

	_, err = svc.GetAllEnrollments(ctx, instructorCaller)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	_, err = svc.GetAllEnrollments(ctx, studentCaller)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

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

func newCourseServiceForTest() (*CourseService, *fakeCourseRepo, *fakeUserRepo) {
	roleRepo := newFakeRoleRepo()
	userRepo := newFakeUserRepo(roleRepo)
	categoryRepo := newFakeCategoryRepo()
	courseRepo := newFakeCourseRepo()

	userRepo.mustAddUser(&models.User{ID: 1, Email: "admin@example.com", PhoneNumber: "+905550000001", RoleID: 1, CreatedAt: time.Now()})
	userRepo.mustAddUser(&models.User{ID: 2, Email: "teach@example.com", PhoneNumber: "+905550000002", RoleID: 2, CreatedAt: time.Now()})
	userRepo.mustAddUser(&models.User{ID: 3, Email: "student@example.com", PhoneNumber: "+905550000003", RoleID: 3, CreatedAt: time.Now()})
	userRepo.mustAddUser(&models.User{ID: 4, Email: "teach2@example.com", PhoneNumber: "+905550000004", RoleID: 2, CreatedAt: time.Now()})

	categoryRepo.mustAddCategory(&models.CourseCategory{ID: 1, Name: "Mathematics"})

	return NewCourseService(courseRepo, categoryRepo, userRepo), courseRepo, userRepo
}

func TestCreateCourseInstructorBecomesOwner(t *testing.T) {
	svc, _, _ := newCourseServiceForTest()

	// The request names another instructor; the caller's own ID wins.
	otherInstructor := int64(4)
	course, err := svc.CreateCourse(context.Background(), instructorCaller, &dto.CreateCourseRequest{
		Title:        "Calculus I",
		CategoryID:   1,
		InstructorID: &otherInstructor,
	})
	require.NoError(t, err)
	require.NotNil(t, course.InstructorID)
	assert.Equal(t, instructorCaller.ID, *course.InstructorID)
}

func TestCreateCourseAdminAssignsAnyInstructor(t *testing.T) {
	svc, _, _ := newCourseServiceForTest()

	instructorID := int64(4)
	course, err := svc.CreateCourse(context.Background(), adminCaller, &dto.CreateCourseRequest{
		Title:        "Linear Algebra",
		CategoryID:   1,
		InstructorID: &instructorID,
	})
	require.NoError(t, err)
	require.NotNil(t, course.InstructorID)
	assert.Equal(t, int64(4), *course.InstructorID)
	require.NotNil(t, course.Instructor)
	assert.Equal(t, "teach2@example.com", course.Instructor.Email)
}

func TestCreateCourseGuards(t *testing.T) {
	svc, _, _ := newCourseServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, studentCaller, &dto.CreateCourseRequest{Title: "X", CategoryID: 1})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.CreateCourse(ctx, adminCaller, &dto.CreateCourseRequest{Title: "X", CategoryID: 42})
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)

	missing := int64(99)
	_, err = svc.CreateCourse(ctx, adminCaller, &dto.CreateCourseRequest{Title: "X", CategoryID: 1, InstructorID: &missing})
	assert.ErrorIs(t, err, apperrors.ErrInstructorNotFound)

	student := int64(3)
	_, err = svc.CreateCourse(ctx, adminCaller, &dto.CreateCourseRequest{Title: "X", CategoryID: 1, InstructorID: &student})
	assert.ErrorIs(t, err, apperrors.ErrUserIsNotInstructor)
}

func TestCreateCourseWithoutInstructor(t *testing.T) {
	svc, _, _ := newCourseServiceForTest()

	course, err := svc.CreateCourse(context.Background(), adminCaller, &dto.CreateCourseRequest{
		Title:      "Self-paced Algebra",
		CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Nil(t, course.InstructorID)
	assert.Nil(t, course.Instructor)
}

func TestUpdateCourseOwnershipRules(t *testing.T) {
	svc, courseRepo, _ := newCourseServiceForTest()
	ctx := context.Background()

	ownerID := instructorCaller.ID
	courseRepo.mustAddCourse(&models.Course{ID: 10, Title: "Calculus I", CategoryID: 1, InstructorID: &ownerID})

	otherInstructor := auth.Caller{ID: 4, Email: "teach2@example.com", Role: models.RoleInstructor}
	newTitle := "Calculus I (revised)"

	_, err := svc.UpdateCourse(ctx, otherInstructor, 10, &dto.UpdateCourseRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.UpdateCourse(ctx, studentCaller, 10, &dto.UpdateCourseRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	course, err := svc.UpdateCourse(ctx, instructorCaller, 10, &dto.UpdateCourseRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, course.Title)

	// Admins may update any course.
	adminTitle := "Calculus I (final)"
	course, err = svc.UpdateCourse(ctx, adminCaller, 10, &dto.UpdateCourseRequest{Title: &adminTitle})
	require.NoError(t, err)
	assert.Equal(t, adminTitle, course.Title)
}

func TestUpdateCourseMergesOnlyProvidedFields(t *testing.T) {
	svc, courseRepo, _ := newCourseServiceForTest()
	ctx := context.Background()

	desc := "An introduction."
	ownerID := instructorCaller.ID
	courseRepo.mustAddCourse(&models.Course{ID: 10, Title: "Calculus I", Description: &desc, CategoryID: 1, InstructorID: &ownerID})

	newTitle := "Calculus II"
	course, err := svc.UpdateCourse(ctx, adminCaller, 10, &dto.UpdateCourseRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Calculus II", course.Title)
	require.NotNil(t, course.Description)
	assert.Equal(t, desc, *course.Description)
	assert.Equal(t, int64(1), course.CategoryID)
	require.NotNil(t, course.InstructorID)
	assert.Equal(t, ownerID, *course.InstructorID)
}

func TestUpdateCourseNotFound(t *testing.T) {
	svc, _, _ := newCourseServiceForTest()

	title := "Ghost"
	_, err := svc.UpdateCourse(context.Background(), adminCaller, 99, &dto.UpdateCourseRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestDeleteCourseAdminOnly(t *testing.T) {
	svc, courseRepo, _ := newCourseServiceForTest()
	ctx := context.Background()

	ownerID := instructorCaller.ID
	courseRepo.mustAddCourse(&models.Course{ID: 10, Title: "Calculus I", CategoryID: 1, InstructorID: &ownerID})

	// Even the owning instructor cannot delete.
	err := svc.DeleteCourse(ctx, instructorCaller, 10)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteCourse(ctx, adminCaller, 10))

	err = svc.DeleteCourse(ctx, adminCaller, 10)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetMyCourses(t *testing.T) {
	svc, courseRepo, _ := newCourseServiceForTest()
	ctx := context.Background()

	ownerID := instructorCaller.ID
	otherID := int64(4)
	courseRepo.mustAddCourse(&models.Course{ID: 10, Title: "Mine", CategoryID: 1, InstructorID: &ownerID})
	courseRepo.mustAddCourse(&models.Course{ID: 11, Title: "Theirs", CategoryID: 1, InstructorID: &otherID})

	courses, err := svc.GetMyCourses(ctx, instructorCaller)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Mine", courses[0].Title)

	_, err = svc.GetMyCourses(ctx, studentCaller)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestGetCourseByIDEnrichesRelations(t *testing.T) {
	svc, courseRepo, _ := newCourseServiceForTest()

	ownerID := instructorCaller.ID
	courseRepo.mustAddCourse(&models.Course{ID: 10, Title: "Calculus I", CategoryID: 1, InstructorID: &ownerID})

	course, err := svc.GetCourseByID(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, course.Category)
	assert.Equal(t, "Mathematics", course.Category.Name)
	require.NotNil(t, course.Instructor)
	assert.Equal(t, "teach@example.com", course.Instructor.Email)
}

func TestDeleteCourseWithEnrollmentsSucceeds(t *testing.T) {
	roleRepo := newFakeRoleRepo()
	userRepo := newFakeUserRepo(roleRepo)
	categoryRepo := newFakeCategoryRepo()
	courseRepo := newFakeCourseRepo()
	enrollmentRepo := newFakeEnrollmentRepo()
	courseRepo.enrollments = enrollmentRepo

	userRepo.mustAddUser(&models.User{ID: 2, Email: "teach@example.com", PhoneNumber: "+905550000002", RoleID: 2, CreatedAt: time.Now()})
	userRepo.mustAddUser(&models.User{ID: 3, Email: "student@example.com", PhoneNumber: "+905550000003", RoleID: 3, CreatedAt: time.Now()})
	categoryRepo.mustAddCategory(&models.CourseCategory{ID: 1, Name: "Mathematics"})

	ownerID := int64(2)
	courseRepo.mustAddCourse(&models.Course{ID: 10, Title: "Calculus I", CategoryID: 1, InstructorID: &ownerID})
	enrollmentRepo.mustAddEnrollment(&models.Enrollment{UserID: 3, CourseID: 10, Status: models.EnrollmentStatusEnrolled, EnrolledAt: time.Now()})

	svc := NewCourseService(courseRepo, categoryRepo, userRepo)
	ctx := context.Background()

	// Course deletion is unconditional; existing enrollments go with it.
	require.NoError(t, svc.DeleteCourse(ctx, adminCaller, 10))

	course, err := courseRepo.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, course)

	remaining, err := enrollmentRepo.GetByCourse(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

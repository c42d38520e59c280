package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mertkaya/eduhub/internal/app/auth"
	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/app/repositories"
	"github.com/mertkaya/eduhub/internal/pkg/apperrors"
)

// IEnrollmentService defines enrollment operations.
type IEnrollmentService interface {
	GetAllEnrollments(ctx context.Context, caller auth.Caller) ([]*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, caller auth.Caller, id int64) (*models.Enrollment, error)
	GetEnrollmentsByUser(ctx context.Context, caller auth.Caller, userID int64) ([]*models.Enrollment, error)
	GetEnrollmentsByCourse(ctx context.Context, caller auth.Caller, courseID int64) ([]*models.Enrollment, error)
	GetMyEnrollments(ctx context.Context, caller auth.Caller) ([]*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, caller auth.Caller, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, caller auth.Caller, id int64) error
}

// EnrollmentService handles course membership.
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	courseRepo     repositories.ICourseRepository
	userRepo       repositories.IUserRepository
	categoryRepo   repositories.ICategoryRepository
}

// NewEnrollmentService creates a new EnrollmentService instance.
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	courseRepo repositories.ICourseRepository,
	userRepo repositories.IUserRepository,
	categoryRepo repositories.ICategoryRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		categoryRepo:   categoryRepo,
	}
}

// GetAllEnrollments returns every enrollment. Admin only.
func (s *EnrollmentService) GetAllEnrollments(ctx context.Context, caller auth.Caller) ([]*models.Enrollment, error) {
	if err := auth.CanListEnrollments(caller); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichEnrollments(ctx, enrollments)
}

// GetEnrollmentByID returns one enrollment. Admins see all, students their
// own, instructors those of their courses.
func (s *EnrollmentService) GetEnrollmentByID(ctx context.Context, caller auth.Caller, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return nil, fmt.Errorf("fetching course: %w", err)
	}

	if err := auth.CanViewEnrollment(caller, enrollment, course); err != nil {
		return nil, err
	}

	if err := s.enrichEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// GetEnrollmentsByUser returns all enrollments of an account. Admins can
// query anyone, others only themselves.
func (s *EnrollmentService) GetEnrollmentsByUser(ctx context.Context, caller auth.Caller, userID int64) ([]*models.Enrollment, error) {
	if err := auth.CanListEnrollmentsOfUser(caller, userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	enrollments, err := s.enrollmentRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrichEnrollments(ctx, enrollments)
}

// GetEnrollmentsByCourse returns all enrollments of a course. Admins can
// query any course, instructors only their own.
func (s *EnrollmentService) GetEnrollmentsByCourse(ctx context.Context, caller auth.Caller, courseID int64) ([]*models.Enrollment, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("fetching course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if err := auth.CanListEnrollmentsOfCourse(caller, course); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.GetByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return s.enrichEnrollments(ctx, enrollments)
}

// GetMyEnrollments returns the caller's own enrollments.
func (s *EnrollmentService) GetMyEnrollments(ctx context.Context, caller auth.Caller) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetByUser(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return s.enrichEnrollments(ctx, enrollments)
}

// CreateEnrollment enrolls an account into a course. Students may only
// enroll themselves; admins and instructors may enroll any account. The
// (account, course) pair must be unique.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, caller auth.Caller, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	if err := auth.CanEnrollUser(caller, req.UserID); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("fetching course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	exists, err := s.enrollmentRepo.PairExists(ctx, req.UserID, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("checking enrollment uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEnrollmentAlreadyExists
	}

	enrollment := &models.Enrollment{
		UserID:     req.UserID,
		CourseID:   req.CourseID,
		EnrolledAt: time.Now().UTC(),
		Status:     models.EnrollmentStatusEnrolled,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	if err := s.enrichEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// UpdateEnrollment merges status and grade changes. Admins may update any
// enrollment, instructors those of their courses.
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return nil, fmt.Errorf("fetching course: %w", err)
	}

	if err := auth.CanUpdateEnrollment(caller, course); err != nil {
		return nil, err
	}

	req.ApplyTo(enrollment)

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	if err := s.enrichEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// DeleteEnrollment removes an enrollment. Admin only.
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, caller auth.Caller, id int64) error {
	if err := auth.CanDeleteEnrollment(caller); err != nil {
		return err
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching enrollment: %w", err)
	}
	if enrollment == nil {
		return apperrors.ErrEnrollmentNotFound
	}

	return s.enrollmentRepo.Delete(ctx, id)
}

func (s *EnrollmentService) enrichEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	user, err := s.userRepo.GetByID(ctx, enrollment.UserID)
	if err != nil {
		return fmt.Errorf("fetching user: %w", err)
	}
	enrollment.User = user

	course, err := s.courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return fmt.Errorf("fetching course: %w", err)
	}
	enrollment.Course = course

	if course == nil {
		return nil
	}

	category, err := s.categoryRepo.GetByID(ctx, course.CategoryID)
	if err != nil {
		return fmt.Errorf("fetching category: %w", err)
	}
	course.Category = category

	if course.InstructorID != nil {
		instructor, err := s.userRepo.GetByID(ctx, *course.InstructorID)
		if err != nil {
			return fmt.Errorf("fetching instructor: %w", err)
		}
		course.Instructor = instructor
	}
	return nil
}

func (s *EnrollmentService) enrichEnrollments(ctx context.Context, enrollments []*models.Enrollment) ([]*models.Enrollment, error) {
	for _, enrollment := range enrollments {
		if err := s.enrichEnrollment(ctx, enrollment); err != nil {
			return nil, err
		}
	}
	return enrollments, nil
}

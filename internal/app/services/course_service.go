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

// ICourseService defines course management operations.
type ICourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCoursesByCategory(ctx context.Context, categoryID int64) ([]*models.Course, error)
	GetCoursesByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error)
	GetMyCourses(ctx context.Context, caller auth.Caller) ([]*models.Course, error)
	CreateCourse(ctx context.Context, caller auth.Caller, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, caller auth.Caller, id int64) error
}

// CourseService handles course management.
type CourseService struct {
	courseRepo   repositories.ICourseRepository
	categoryRepo repositories.ICategoryRepository
	userRepo     repositories.IUserRepository
}

// NewCourseService creates a new CourseService instance.
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	categoryRepo repositories.ICategoryRepository,
	userRepo repositories.IUserRepository,
) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// GetAllCourses returns every course with category and instructor attached. Public.
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichCourses(ctx, courses)
}

// GetCourseByID returns one course with category and instructor attached. Public.
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	if err := s.enrichCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetCoursesByCategory returns courses in a category. Public.
func (s *CourseService) GetCoursesByCategory(ctx context.Context, categoryID int64) ([]*models.Course, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("fetching category: %w", err)
	}
	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}

	courses, err := s.courseRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.enrichCourses(ctx, courses)
}

// GetCoursesByInstructor returns courses taught by the given user. Public.
func (s *CourseService) GetCoursesByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	instructor, err := s.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("fetching instructor: %w", err)
	}
	if instructor == nil {
		return nil, apperrors.ErrInstructorNotFound
	}

	courses, err := s.courseRepo.GetByInstructor(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	return s.enrichCourses(ctx, courses)
}

// GetMyCourses returns the courses taught by the caller. Instructors only.
func (s *CourseService) GetMyCourses(ctx context.Context, caller auth.Caller) ([]*models.Course, error) {
	if err := auth.CanListOwnCourses(caller); err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.GetByInstructor(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return s.enrichCourses(ctx, courses)
}

// CreateCourse creates a course. Admins may assign any instructor; an
// instructor always becomes the instructor of the courses it creates,
// whatever the request says.
func (s *CourseService) CreateCourse(ctx context.Context, caller auth.Caller, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := auth.CanCreateCourse(caller); err != nil {
		return nil, err
	}

	instructorID := req.InstructorID
	if caller.IsInstructor() {
		own := caller.ID
		instructorID = &own
	}

	if err := s.checkCategoryExists(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkInstructor(ctx, instructorID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	course := &models.Course{
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		InstructorID: instructorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	if err := s.enrichCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// UpdateCourse merges the provided fields into an existing course. Admins
// may update any course, instructors only their own.
func (s *CourseService) UpdateCourse(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if err := auth.CanUpdateCourse(caller, course); err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if err := s.checkCategoryExists(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}
	if req.InstructorID != nil {
		if err := s.checkInstructor(ctx, req.InstructorID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(course)
	course.UpdatedAt = time.Now().UTC()

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	if err := s.enrichCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course. Admin only.
func (s *CourseService) DeleteCourse(ctx context.Context, caller auth.Caller, id int64) error {
	if err := auth.CanDeleteCourse(caller); err != nil {
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching course: %w", err)
	}
	if course == nil {
		return apperrors.ErrCourseNotFound
	}

	return s.courseRepo.Delete(ctx, id)
}

func (s *CourseService) checkCategoryExists(ctx context.Context, categoryID int64) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("fetching category: %w", err)
	}
	if category == nil {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// checkInstructor verifies the referenced user exists and holds the
// instructor role. A nil ID is allowed; the course is then unassigned.
func (s *CourseService) checkInstructor(ctx context.Context, instructorID *int64) error {
	if instructorID == nil {
		return nil
	}

	user, err := s.userRepo.GetByID(ctx, *instructorID)
	if err != nil {
		return fmt.Errorf("fetching instructor: %w", err)
	}
	if user == nil {
		return apperrors.ErrInstructorNotFound
	}
	if !user.HasRole(models.RoleInstructor) {
		return apperrors.ErrUserIsNotInstructor
	}
	return nil
}

func (s *CourseService) enrichCourse(ctx context.Context, course *models.Course) error {
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

func (s *CourseService) enrichCourses(ctx context.Context, courses []*models.Course) ([]*models.Course, error) {
	for _, course := range courses {
		if err := s.enrichCourse(ctx, course); err != nil {
			return nil, err
		}
	}
	return courses, nil
}

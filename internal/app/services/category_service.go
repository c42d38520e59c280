package services

import (
	"context"
	"fmt"

	"github.com/mertkaya/eduhub/internal/app/auth"
	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/app/repositories"
	"github.com/mertkaya/eduhub/internal/pkg/apperrors"
)

// ICategoryService defines course category operations.
type ICategoryService interface {
	GetAllCategories(ctx context.Context) ([]*models.CourseCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.CourseCategory, error)
	CreateCategory(ctx context.Context, caller auth.Caller, req *dto.CreateCategoryRequest) (*models.CourseCategory, error)
	UpdateCategory(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateCategoryRequest) (*models.CourseCategory, error)
	DeleteCategory(ctx context.Context, caller auth.Caller, id int64) error
}

// CategoryService handles course category management.
type CategoryService struct {
	categoryRepo repositories.ICategoryRepository
	courseRepo   repositories.ICourseRepository
}

// NewCategoryService creates a new CategoryService instance.
func NewCategoryService(categoryRepo repositories.ICategoryRepository, courseRepo repositories.ICourseRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		courseRepo:   courseRepo,
	}
}

// GetAllCategories returns every category. Public.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]*models.CourseCategory, error) {
	return s.categoryRepo.GetAll(ctx)
}

// GetCategoryByID returns one category. Public.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id int64) (*models.CourseCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching category: %w", err)
	}
	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}

// CreateCategory creates a category with a unique name. Admin only.
func (s *CategoryService) CreateCategory(ctx context.Context, caller auth.Caller, req *dto.CreateCategoryRequest) (*models.CourseCategory, error) {
	if err := auth.CanManageCategories(caller); err != nil {
		return nil, err
	}

	if err := s.checkNameFree(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	category := &models.CourseCategory{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category, keeping the name unique. Admin only.
func (s *CategoryService) UpdateCategory(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateCategoryRequest) (*models.CourseCategory, error) {
	if err := auth.CanManageCategories(caller); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching category: %w", err)
	}
	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}

	if req.Name != nil && *req.Name != category.Name {
		if err := s.checkNameFree(ctx, *req.Name, id); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(category)

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category that has no courses. Admin only.
func (s *CategoryService) DeleteCategory(ctx context.Context, caller auth.Caller, id int64) error {
	if err := auth.CanManageCategories(caller); err != nil {
		return err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching category: %w", err)
	}
	if category == nil {
		return apperrors.ErrCategoryNotFound
	}

	hasCourses, err := s.courseRepo.ExistsByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("checking category usage: %w", err)
	}
	if hasCourses {
		return apperrors.ErrCategoryHasCourses
	}

	return s.categoryRepo.Delete(ctx, id)
}

func (s *CategoryService) checkNameFree(ctx context.Context, name string, excludeID int64) error {
	taken, err := s.categoryRepo.NameExists(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("checking category name uniqueness: %w", err)
	}
	if taken {
		return apperrors.ErrCategoryAlreadyExists
	}
	return nil
}

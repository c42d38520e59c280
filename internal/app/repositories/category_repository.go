package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/pkg/apperrors"
	"github.com/mertkaya/eduhub/internal/pkg/dberrors"
)

// ICategoryRepository defines the storage port for course categories
type ICategoryRepository interface {
	Create(ctx context.Context, category *models.CourseCategory) error
	GetByID(ctx context.Context, id int64) (*models.CourseCategory, error)
	GetAll(ctx context.Context) ([]*models.CourseCategory, error)
	Update(ctx context.Context, category *models.CourseCategory) error
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
}

// CategoryRepository handles database operations for course categories
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

// Create inserts a new category
func (r *CategoryRepository) Create(ctx context.Context, category *models.CourseCategory) error {
	query := `
		INSERT INTO course_categories (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, category.Name).Scan(&category.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "course_categories_name_key") {
			return apperrors.ErrCategoryAlreadyExists
		}
		return fmt.Errorf("error creating category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by ID. Returns nil when absent.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.CourseCategory, error) {
	query := `
		SELECT id, name
		FROM course_categories
		WHERE id = $1
	`

	var category models.CourseCategory
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving category: %w", err)
	}

	return &category, nil
}

// GetAll retrieves all categories
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.CourseCategory, error) {
	query := `
		SELECT id, name
		FROM course_categories
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.CourseCategory
	for rows.Next() {
		var category models.CourseCategory
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// Update persists the category name
func (r *CategoryRepository) Update(ctx context.Context, category *models.CourseCategory) error {
	query := `
		UPDATE course_categories
		SET name = $1
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, category.Name, category.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "course_categories_name_key") {
			return apperrors.ErrCategoryAlreadyExists
		}
		return fmt.Errorf("error updating category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category by ID
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course_categories WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCategoryHasCourses
		}
		return fmt.Errorf("error deleting category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// NameExists checks name uniqueness. excludeID skips the category being
// updated; pass 0 on create.
func (r *CategoryRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM course_categories WHERE name = $1 AND id != $2)`,
		name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking category name existence: %w", err)
	}

	return exists, nil
}

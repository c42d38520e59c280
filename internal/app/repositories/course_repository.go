package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/pkg/apperrors"
)

// ICourseRepository defines the storage port for courses
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]*models.Course, error)
	GetByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	ExistsByCategory(ctx context.Context, categoryID int64) (bool, error)
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseSelectColumns = `
	id, title, description, category_id, instructor_id, created_at, updated_at
`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.CategoryID,
		&course.InstructorID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, description, category_id, instructor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Title, course.Description, course.CategoryID,
		course.InstructorID, course.CreatedAt, course.UpdatedAt,
	).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID. Returns nil when absent.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT ` + courseSelectColumns + `
		FROM courses
		WHERE id = $1
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT ` + courseSelectColumns + `
		FROM courses
		ORDER BY id
	`

	return r.queryCourses(ctx, query)
}

// GetByCategory retrieves all courses in a category
func (r *CourseRepository) GetByCategory(ctx context.Context, categoryID int64) ([]*models.Course, error) {
	query := `
		SELECT ` + courseSelectColumns + `
		FROM courses
		WHERE category_id = $1
		ORDER BY id
	`

	return r.queryCourses(ctx, query, categoryID)
}

// GetByInstructor retrieves all courses taught by an instructor
func (r *CourseRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	query := `
		SELECT ` + courseSelectColumns + `
		FROM courses
		WHERE instructor_id = $1
		ORDER BY id
	`

	return r.queryCourses(ctx, query, instructorID)
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update persists mutable course fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, category_id = $3, instructor_id = $4, updated_at = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Title, course.Description, course.CategoryID,
		course.InstructorID, course.UpdatedAt, course.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// ExistsByCategory checks whether any course references the category
func (r *CourseRepository) ExistsByCategory(ctx context.Context, categoryID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE category_id = $1)`,
		categoryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking courses by category: %w", err)
	}

	return exists, nil
}

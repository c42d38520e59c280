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

// IEnrollmentRepository defines the storage port for enrollments
type IEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error)
	GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
	PairExists(ctx context.Context, userID, courseID int64) (bool, error)
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

const enrollmentSelectColumns = `
	id, user_id, course_id, enrolled_at, status, grade
`

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := row.Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.CourseID,
		&enrollment.EnrolledAt,
		&enrollment.Status,
		&enrollment.Grade,
	)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Create inserts a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (user_id, course_id, enrolled_at, status, grade)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.UserID, enrollment.CourseID, enrollment.EnrolledAt,
		enrollment.Status, enrollment.Grade,
	).Scan(&enrollment.ID)
	if err != nil {
		// The table carries a single unique constraint (user_id, course_id).
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEnrollmentAlreadyExists
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment by ID. Returns nil when absent.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentSelectColumns + `
		FROM enrollments
		WHERE id = $1
	`

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// GetAll retrieves all enrollments
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentSelectColumns + `
		FROM enrollments
		ORDER BY id
	`

	return r.queryEnrollments(ctx, query)
}

// GetByUser retrieves all enrollments of a user
func (r *EnrollmentRepository) GetByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentSelectColumns + `
		FROM enrollments
		WHERE user_id = $1
		ORDER BY id
	`

	return r.queryEnrollments(ctx, query, userID)
}

// GetByCourse retrieves all enrollments in a course
func (r *EnrollmentRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentSelectColumns + `
		FROM enrollments
		WHERE course_id = $1
		ORDER BY id
	`

	return r.queryEnrollments(ctx, query, courseID)
}

func (r *EnrollmentRepository) queryEnrollments(ctx context.Context, query string, args ...interface{}) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Update persists mutable enrollment fields (status, grade)
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET status = $1, grade = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, enrollment.Status, enrollment.Grade, enrollment.ID)
	if err != nil {
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete removes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// PairExists checks whether the user already has an enrollment in the course
func (r *EnrollmentRepository) PairExists(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`,
		userID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

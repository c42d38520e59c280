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

// IUserRepository defines the storage port for users
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByRole(ctx context.Context, roleName string) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	PhoneExists(ctx context.Context, phone string, excludeID int64) (bool, error)
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userSelectColumns = `
	u.id, u.email, u.phone_number, u.password, u.first_name, u.last_name,
	u.role_id, u.created_at, r.id, r.name
`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var role models.Role
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PhoneNumber,
		&user.Password,
		&user.FirstName,
		&user.LastName,
		&user.RoleID,
		&user.CreatedAt,
		&role.ID,
		&role.Name,
	)
	if err != nil {
		return nil, err
	}
	user.Role = &role
	return &user, nil
}

// Create inserts a new user and returns its ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (email, phone_number, password, first_name, last_name, role_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		user.Email, user.PhoneNumber, user.Password,
		user.FirstName, user.LastName, user.RoleID, user.CreatedAt,
	).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_phone_number_key") {
			return 0, apperrors.ErrPhoneAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return id, nil
}

// GetByID retrieves a user with its role attached. Returns nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT ` + userSelectColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1
	`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email with its role attached. Returns nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT ` + userSelectColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.email = $1
	`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// GetAll retrieves all users with roles attached
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT ` + userSelectColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		ORDER BY u.id
	`

	return r.queryUsers(ctx, query)
}

// GetByRole retrieves all users holding the given role
func (r *UserRepository) GetByRole(ctx context.Context, roleName string) ([]*models.User, error) {
	query := `
		SELECT ` + userSelectColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE r.name = $1
		ORDER BY u.id
	`

	return r.queryUsers(ctx, query, roleName)
}

func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Update persists mutable user fields
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, phone_number = $2, password = $3, first_name = $4, last_name = $5, role_id = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		user.Email, user.PhoneNumber, user.Password,
		user.FirstName, user.LastName, user.RoleID, user.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_phone_number_key") {
			return apperrors.ErrPhoneAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// EmailExists checks email uniqueness. excludeID skips the user being
// updated; pass 0 on create.
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// PhoneExists checks phone number uniqueness. excludeID skips the user
// being updated; pass 0 on create.
func (r *UserRepository) PhoneExists(ctx context.Context, phone string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE phone_number = $1 AND id != $2)`,
		phone, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking phone existence: %w", err)
	}

	return exists, nil
}

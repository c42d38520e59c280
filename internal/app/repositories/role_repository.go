package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertkaya/eduhub/internal/app/models"
)

// IRoleRepository defines the storage port for roles
type IRoleRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
	GetAll(ctx context.Context) ([]*models.Role, error)
	EnsureRole(ctx context.Context, name models.RoleName) (int64, error)
}

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
	}
}

// GetByID retrieves a role by ID. Returns nil when absent.
func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		WHERE id = $1
	`

	var role models.Role
	err := r.db.QueryRow(ctx, query, id).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}

	return &role, nil
}

// GetByName retrieves a role by name. Returns nil when absent.
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		WHERE name = $1
	`

	var role models.Role
	err := r.db.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving role by name: %w", err)
	}

	return &role, nil
}

// GetAll retrieves all roles
func (r *RoleRepository) GetAll(ctx context.Context) ([]*models.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

// EnsureRole creates the role if it does not exist and returns its ID.
// Used by the startup seed; the role set is closed.
func (r *RoleRepository) EnsureRole(ctx context.Context, name models.RoleName) (int64, error) {
	query := `
		INSERT INTO roles (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, string(name)).Scan(&id); err != nil {
		return 0, fmt.Errorf("error ensuring role %s: %w", name, err)
	}

	return id, nil
}

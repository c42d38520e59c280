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
	pkgauth "github.com/mertkaya/eduhub/internal/pkg/auth"
)

// IUserService defines account management operations.
type IUserService interface {
	GetAllUsers(ctx context.Context, caller auth.Caller) ([]*models.User, error)
	GetUserByID(ctx context.Context, caller auth.Caller, id int64) (*models.User, error)
	GetUsersByRole(ctx context.Context, caller auth.Caller, roleName string) ([]*models.User, error)
	CreateUser(ctx context.Context, caller auth.Caller, req *dto.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, caller auth.Caller, id int64) error
}

// UserService handles account management.
type UserService struct {
	userRepo repositories.IUserRepository
	roleRepo repositories.IRoleRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repositories.IUserRepository, roleRepo repositories.IRoleRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// GetAllUsers returns every account. Admin only.
func (s *UserService) GetAllUsers(ctx context.Context, caller auth.Caller) ([]*models.User, error) {
	if err := auth.CanListUsers(caller); err != nil {
		return nil, err
	}
	return s.userRepo.GetAll(ctx)
}

// GetUserByID returns one account. Admins can read anyone, others only themselves.
func (s *UserService) GetUserByID(ctx context.Context, caller auth.Caller, id int64) (*models.User, error) {
	if err := auth.CanViewUser(caller, id); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// GetUsersByRole returns all accounts holding the given role. Admin only.
func (s *UserService) GetUsersByRole(ctx context.Context, caller auth.Caller, roleName string) ([]*models.User, error) {
	if err := auth.CanListUsers(caller); err != nil {
		return nil, err
	}

	if !models.IsValidRoleName(roleName) {
		return nil, apperrors.ErrRoleNotFound
	}

	role, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return nil, fmt.Errorf("fetching role: %w", err)
	}
	if role == nil {
		return nil, apperrors.ErrRoleNotFound
	}

	return s.userRepo.GetByRole(ctx, roleName)
}

// CreateUser creates an account with any role. Admin only.
func (s *UserService) CreateUser(ctx context.Context, caller auth.Caller, req *dto.CreateUserRequest) (*models.User, error) {
	if err := auth.CanCreateUser(caller); err != nil {
		return nil, err
	}

	role, err := s.roleRepo.GetByName(ctx, req.RoleName)
	if err != nil {
		return nil, fmt.Errorf("fetching role: %w", err)
	}
	if role == nil {
		return nil, apperrors.ErrRoleNotFound
	}

	if err := s.checkEmailFree(ctx, req.Email, 0); err != nil {
		return nil, err
	}
	if err := s.checkPhoneFree(ctx, req.PhoneNumber, 0); err != nil {
		return nil, err
	}

	hashedPassword, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    hashedPassword,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		RoleID:      role.ID,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser merges the provided fields into an existing account. Absent
// fields keep their stored values. Only admins may change the role.
func (s *UserService) UpdateUser(ctx context.Context, caller auth.Caller, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := auth.CanUpdateUser(caller, id); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.checkEmailFree(ctx, *req.Email, id); err != nil {
			return nil, err
		}
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != user.PhoneNumber {
		if err := s.checkPhoneFree(ctx, *req.PhoneNumber, id); err != nil {
			return nil, err
		}
	}

	if req.RoleName != nil {
		if user.Role == nil || string(user.Role.Name) != *req.RoleName {
			if err := auth.CanChangeRole(caller); err != nil {
				return nil, err
			}
			role, err := s.roleRepo.GetByName(ctx, *req.RoleName)
			if err != nil {
				return nil, fmt.Errorf("fetching role: %w", err)
			}
			if role == nil {
				return nil, apperrors.ErrRoleNotFound
			}
			user.RoleID = role.ID
		}
	}

	if req.Password != nil {
		hashedPassword, err := pkgauth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.Password = hashedPassword
	}

	req.ApplyTo(user)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, id)
}

// DeleteUser removes an account. Admin only.
func (s *UserService) DeleteUser(ctx context.Context, caller auth.Caller, id int64) error {
	if err := auth.CanDeleteUser(caller); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching user: %w", err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	return s.userRepo.Delete(ctx, id)
}

func (s *UserService) checkEmailFree(ctx context.Context, email string, excludeID int64) error {
	taken, err := s.userRepo.EmailExists(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("checking email uniqueness: %w", err)
	}
	if taken {
		return apperrors.ErrEmailAlreadyExists
	}
	return nil
}

func (s *UserService) checkPhoneFree(ctx context.Context, phone string, excludeID int64) error {
	taken, err := s.userRepo.PhoneExists(ctx, phone, excludeID)
	if err != nil {
		return fmt.Errorf("checking phone uniqueness: %w", err)
	}
	if taken {
		return apperrors.ErrPhoneAlreadyExists
	}
	return nil
}

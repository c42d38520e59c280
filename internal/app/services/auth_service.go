package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/app/models/dto"
	"github.com/mertkaya/eduhub/internal/app/repositories"
	"github.com/mertkaya/eduhub/internal/pkg/apperrors"
	"github.com/mertkaya/eduhub/internal/pkg/auth"
	"github.com/mertkaya/eduhub/internal/pkg/validation"
)

// IAuthService defines the authentication operations.
type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo   repositories.IUserRepository
	roleRepo   repositories.IRoleRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	userRepo repositories.IUserRepository,
	roleRepo repositories.IRoleRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new account with the STUDENT or INSTRUCTOR role and
// returns a token for it. All guard failures share one generic message so
// the endpoint does not leak which field was rejected.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	rejected := apperrors.NewValidationError("registration failed")

	if !validation.IsValidEmail(req.Email) || !validation.IsValidPhone(req.PhoneNumber) {
		return nil, rejected
	}

	roleName := models.RoleName(req.RoleName)
	if roleName != models.RoleStudent && roleName != models.RoleInstructor {
		return nil, rejected
	}

	role, err := s.roleRepo.GetByName(ctx, string(roleName))
	if err != nil {
		return nil, fmt.Errorf("checking role: %w", err)
	}
	if role == nil {
		return nil, rejected
	}

	emailTaken, err := s.userRepo.EmailExists(ctx, req.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("checking email uniqueness: %w", err)
	}
	phoneTaken, err := s.userRepo.PhoneExists(ctx, req.PhoneNumber, 0)
	if err != nil {
		return nil, fmt.Errorf("checking phone uniqueness: %w", err)
	}
	if emailTaken || phoneTaken {
		return nil, rejected
	}

	hashedPassword, err := auth.HashPassword(req.Password)
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

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// A concurrent register can still hit the unique index.
		if apperrors.IsAlreadyExists(err) {
			return nil, rejected
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Str("role", string(roleName)).Msg("User registered")
	return s.issueToken(ctx, userID)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Debug().Int64("userID", user.ID).Msg("User logged in")
	return s.tokenFor(user)
}

func (s *AuthService) issueToken(ctx context.Context, userID int64) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching user for token: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.tokenFor(user)
}

func (s *AuthService) tokenFor(user *models.User) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mertkaya/eduhub/internal/app/models"
	"github.com/mertkaya/eduhub/internal/app/repositories"
	"github.com/mertkaya/eduhub/internal/config"
	"github.com/mertkaya/eduhub/internal/pkg/auth"
)

// Starter categories created on first boot. Admins can rename or delete
// them afterwards.
var defaultCategories = []string{
	"Computer Science",
	"Mathematics",
	"Languages",
}

// CreateDefaultData ensures the role set, the default admin account and the
// starter categories exist. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	roleRepo := repositories.NewRoleRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)
	categoryRepo := repositories.NewCategoryRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// The role set is closed; these three are the only roles that exist.
	adminRoleID := int64(0)
	for _, name := range []models.RoleName{models.RoleAdmin, models.RoleInstructor, models.RoleStudent} {
		id, err := roleRepo.EnsureRole(ctx, name)
		if err != nil {
			lgr.Error().Err(err).Str("role", string(name)).Msg("Error ensuring role")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if name == models.RoleAdmin {
			adminRoleID = id
		}
	}

	if adminRoleID > 0 {
		if err := ensureAdminUser(ctx, userRepo, cfg, adminRoleID, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, name := range defaultCategories {
		exists, err := categoryRepo.NameExists(ctx, name, 0)
		if err != nil {
			lgr.Error().Err(err).Str("category", name).Msg("Error checking category")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		if err := categoryRepo.Create(ctx, &models.CourseCategory{Name: name}); err != nil {
			lgr.Error().Err(err).Str("category", name).Msg("Error creating category")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data is in place.")
	}
	return finalErr
}

func ensureAdminUser(ctx context.Context, userRepo *repositories.UserRepository, cfg *config.Config, adminRoleID int64, lgr zerolog.Logger) error {
	existing, err := userRepo.GetByEmail(ctx, cfg.Admin.Email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking admin account")
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		Email:       cfg.Admin.Email,
		PhoneNumber: cfg.Admin.Phone,
		Password:    hashedPassword,
		FirstName:   "System",
		LastName:    "Admin",
		RoleID:      adminRoleID,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
	return nil
}
